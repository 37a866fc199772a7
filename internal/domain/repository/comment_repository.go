package repository

import "github.com/jstringer1212/plant-review-api/internal/domain/entity"

// CommentRepository define el puerto de persistencia para Comment.
type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	Update(comment *entity.Comment) error
	List(limit, offset int) ([]*entity.Comment, error)
	ListByReview(reviewID string, limit, offset int) ([]*entity.Comment, error)
	Delete(id string) error
	DeleteByReview(reviewID string) error
}
