package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/application/usecase"
	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/authz"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
)

const (
	reviewOwnerID = "00000000-0000-0000-0000-000000000001"
	reviewOtherID = "00000000-0000-0000-0000-000000000002"
	reviewAdminID = "00000000-0000-0000-0000-0000000000ad"
	plantID       = "00000000-0000-0000-0000-0000000000b1"
	reviewID      = "00000000-0000-0000-0000-0000000000c1"
	commentID     = "00000000-0000-0000-0000-0000000000d1"
)

type reviewFixture struct {
	uc          *usecase.ReviewUseCase
	reviewRepo  *fakeReviewRepo
	commentRepo *fakeCommentRepo
	txRunner    *fakeTxRunner
}

// reviewSetup arma el caso de uso con una planta, una reseña del dueño y un
// comentario ajeno colgando de la reseña.
func reviewSetup() *reviewFixture {
	now := time.Now()
	plantRepo := newFakePlantRepo(&entity.Plant{ID: plantID, CName: "Monstera", SName: "Monstera deliciosa"})
	reviewRepo := newFakeReviewRepo(&entity.Review{
		ID:        reviewID,
		PlantID:   plantID,
		UserID:    reviewOwnerID,
		Rating:    4,
		Content:   "Muy buena planta",
		CreatedAt: now,
		UpdatedAt: now,
	})
	commentRepo := newFakeCommentRepo(&entity.Comment{
		ID:        commentID,
		ReviewID:  reviewID,
		UserID:    reviewOtherID,
		Content:   "Coincido",
		CreatedAt: now,
		UpdatedAt: now,
	})
	txRunner := &fakeTxRunner{reviewRepo: reviewRepo, commentRepo: commentRepo}
	guard := authz.NewGuard("")
	return &reviewFixture{
		uc:          usecase.NewReviewUseCase(reviewRepo, plantRepo, guard, txRunner),
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		txRunner:    txRunner,
	}
}

func owner() authz.Actor { return authz.Actor{UserID: reviewOwnerID, Role: authz.RoleUser} }
func other() authz.Actor { return authz.Actor{UserID: reviewOtherID, Role: authz.RoleUser} }
func admin() authz.Actor { return authz.Actor{UserID: reviewAdminID, Role: authz.RoleAdmin} }

// ── Create ───────────────────────────────────────────────────────────────────

func TestReviewCreate_OK(t *testing.T) {
	fx := reviewSetup()

	resp, err := fx.uc.Create(other(), dto.CreateReviewRequest{
		PlantID: plantID,
		Rating:  5,
		Content: "Excelente",
	})
	require.NoError(t, err)
	assert.Equal(t, reviewOtherID, resp.UserID, "el autor sale del actor, no del body")
	assert.Equal(t, 5, resp.Rating)
}

func TestReviewCreate_RatingFueraDeRango(t *testing.T) {
	fx := reviewSetup()

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.uc.Create(owner(), dto.CreateReviewRequest{PlantID: plantID, Rating: rating})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "rating %d debe rechazarse", rating)
	}
}

func TestReviewCreate_PlantaInexistente(t *testing.T) {
	fx := reviewSetup()

	_, err := fx.uc.Create(owner(), dto.CreateReviewRequest{PlantID: "no-existe", Rating: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Update: propietario-o-admin ──────────────────────────────────────────────

func TestReviewUpdate_PropietarioPermitido(t *testing.T) {
	fx := reviewSetup()
	nuevoRating := 2

	resp, err := fx.uc.Update(owner(), reviewID, dto.UpdateReviewRequest{Rating: &nuevoRating})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Rating)
}

func TestReviewUpdate_AdminPermitido(t *testing.T) {
	fx := reviewSetup()
	contenido := "editado por moderación"

	resp, err := fx.uc.Update(admin(), reviewID, dto.UpdateReviewRequest{Content: &contenido})
	require.NoError(t, err)
	assert.Equal(t, contenido, resp.Content)
	assert.Equal(t, reviewOwnerID, resp.UserID, "el autor original no cambia")
}

func TestReviewUpdate_NoPropietarioRechazado(t *testing.T) {
	fx := reviewSetup()
	nuevoRating := 1

	_, err := fx.uc.Update(other(), reviewID, dto.UpdateReviewRequest{Rating: &nuevoRating})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := fx.reviewRepo.GetByID(reviewID)
	assert.Equal(t, 4, stored.Rating, "la reseña no debe haberse modificado")
}

// Inexistente es NotFound, no Forbidden: se localiza antes de decidir propiedad.
func TestReviewUpdate_InexistenteEsNotFound(t *testing.T) {
	fx := reviewSetup()
	nuevoRating := 3

	_, err := fx.uc.Update(other(), "no-existe", dto.UpdateReviewRequest{Rating: &nuevoRating})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Delete: cascada de comentarios en transacción ────────────────────────────

func TestReviewDelete_EliminaComentariosEnCascada(t *testing.T) {
	fx := reviewSetup()

	err := fx.uc.Delete(context.Background(), owner(), reviewID)
	require.NoError(t, err)

	assert.Equal(t, 1, fx.txRunner.calls, "el borrado debe pasar por el TxRunner")
	stored, _ := fx.reviewRepo.GetByID(reviewID)
	assert.Nil(t, stored)
	comments, _ := fx.commentRepo.ListByReview(reviewID, 100, 0)
	assert.Empty(t, comments, "los comentarios de la reseña deben borrarse con ella")
}

func TestReviewDelete_NoPropietarioRechazado(t *testing.T) {
	fx := reviewSetup()

	err := fx.uc.Delete(context.Background(), other(), reviewID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, fx.txRunner.calls, "no debe abrirse transacción si la autorización falla")
}

func TestReviewDelete_AdminPermitido(t *testing.T) {
	fx := reviewSetup()

	err := fx.uc.Delete(context.Background(), admin(), reviewID)
	require.NoError(t, err)
}

func TestReviewDelete_Inexistente(t *testing.T) {
	fx := reviewSetup()

	err := fx.uc.Delete(context.Background(), owner(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
