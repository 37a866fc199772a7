package repository

import "github.com/jstringer1212/plant-review-api/internal/domain/entity"

// ReviewRepository define el puerto de persistencia para Review.
type ReviewRepository interface {
	Create(review *entity.Review) error
	GetByID(id string) (*entity.Review, error)
	Update(review *entity.Review) error
	List(limit, offset int) ([]*entity.Review, error)
	ListByPlant(plantID string, limit, offset int) ([]*entity.Review, error)
	Delete(id string) error
}
