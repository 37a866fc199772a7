package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/authz"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

// ReviewUseCase reseñas de plantas. Crear exige usuario autenticado; editar y
// borrar exigen propietario-o-admin. El recurso se localiza por PK antes de la
// decisión de propiedad: inexistente es NotFound, no Forbidden.
type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	plantRepo  repository.PlantRepository
	guard      *authz.Guard
	txRunner   TxRunner
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(reviewRepo repository.ReviewRepository, plantRepo repository.PlantRepository, guard *authz.Guard, txRunner TxRunner) *ReviewUseCase {
	return &ReviewUseCase{reviewRepo: reviewRepo, plantRepo: plantRepo, guard: guard, txRunner: txRunner}
}

// Create crea una reseña del actor autenticado sobre una planta existente.
func (uc *ReviewUseCase) Create(actor authz.Actor, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if !entity.ValidRating(in.Rating) {
		return nil, domain.ErrInvalidInput
	}
	plant, err := uc.plantRepo.GetByID(in.PlantID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	review := &entity.Review{
		ID:        uuid.New().String(),
		PlantID:   in.PlantID,
		UserID:    actor.UserID,
		Rating:    in.Rating,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// GetByID obtiene una reseña por ID.
func (uc *ReviewUseCase) GetByID(id string) (*dto.ReviewResponse, error) {
	review, err := uc.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, nil
	}
	return toReviewResponse(review), nil
}

// List lista reseñas; con plantID filtra por planta.
func (uc *ReviewUseCase) List(plantID string, limit, offset int) (*dto.ReviewListResponse, error) {
	var (
		reviews []*entity.Review
		err     error
	)
	if plantID != "" {
		reviews, err = uc.reviewRepo.ListByPlant(plantID, limit, offset)
	} else {
		reviews, err = uc.reviewRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, *toReviewResponse(r))
	}
	return &dto.ReviewListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita rating/contenido. Propietario o admin.
func (uc *ReviewUseCase) Update(actor authz.Actor, id string, in dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := uc.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.CanMutate(actor, review.UserID); err != nil {
		return nil, err
	}
	if in.Rating != nil {
		if !entity.ValidRating(*in.Rating) {
			return nil, domain.ErrInvalidInput
		}
		review.Rating = *in.Rating
	}
	if in.Content != nil {
		review.Content = *in.Content
	}
	review.UpdatedAt = time.Now()
	if err := uc.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// Delete elimina la reseña y sus comentarios en una sola transacción.
// Propietario o admin.
func (uc *ReviewUseCase) Delete(ctx context.Context, actor authz.Actor, id string) error {
	review, err := uc.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return domain.ErrNotFound
	}
	if err := uc.guard.CanMutate(actor, review.UserID); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(reviewRepo repository.ReviewRepository, commentRepo repository.CommentRepository) error {
		if err := commentRepo.DeleteByReview(id); err != nil {
			return err
		}
		return reviewRepo.Delete(id)
	})
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:        r.ID,
		PlantID:   r.PlantID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
