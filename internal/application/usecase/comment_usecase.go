package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/authz"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

// CommentUseCase comentarios sobre reseñas. Mismo ciclo de propiedad que
// las reseñas: editar y borrar exigen propietario-o-admin.
type CommentUseCase struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
	guard       *authz.Guard
}

// NewCommentUseCase construye el caso de uso.
func NewCommentUseCase(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository, guard *authz.Guard) *CommentUseCase {
	return &CommentUseCase{commentRepo: commentRepo, reviewRepo: reviewRepo, guard: guard}
}

// Create crea un comentario del actor autenticado sobre una reseña existente.
func (uc *CommentUseCase) Create(actor authz.Actor, in dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	review, err := uc.reviewRepo.GetByID(in.ReviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	comment := &entity.Comment{
		ID:        uuid.New().String(),
		ReviewID:  in.ReviewID,
		UserID:    actor.UserID,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

// GetByID obtiene un comentario por ID.
func (uc *CommentUseCase) GetByID(id string) (*dto.CommentResponse, error) {
	comment, err := uc.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, nil
	}
	return toCommentResponse(comment), nil
}

// List lista comentarios; con reviewID filtra por reseña.
func (uc *CommentUseCase) List(reviewID string, limit, offset int) (*dto.CommentListResponse, error) {
	var (
		comments []*entity.Comment
		err      error
	)
	if reviewID != "" {
		comments, err = uc.commentRepo.ListByReview(reviewID, limit, offset)
	} else {
		comments, err = uc.commentRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		items = append(items, *toCommentResponse(cm))
	}
	return &dto.CommentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita el contenido. Propietario o admin.
func (uc *CommentUseCase) Update(actor authz.Actor, id, content string) (*dto.CommentResponse, error) {
	comment, err := uc.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.CanMutate(actor, comment.UserID); err != nil {
		return nil, err
	}
	comment.Content = content
	comment.UpdatedAt = time.Now()
	if err := uc.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

// Delete elimina un comentario. Propietario o admin.
func (uc *CommentUseCase) Delete(actor authz.Actor, id string) error {
	comment, err := uc.commentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.ErrNotFound
	}
	if err := uc.guard.CanMutate(actor, comment.UserID); err != nil {
		return err
	}
	return uc.commentRepo.Delete(id)
}

func toCommentResponse(c *entity.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        c.ID,
		ReviewID:  c.ReviewID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
