package repository

import (
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PlantWithRating planta junto con su calificación promedio y conteo de reseñas.
type PlantWithRating struct {
	Plant       *entity.Plant
	AvgRating   decimal.Decimal // 0 si no hay reseñas
	ReviewCount int
}

// PlantRepository define el puerto de persistencia para Plant.
type PlantRepository interface {
	Create(plant *entity.Plant) error
	GetByID(id string) (*entity.Plant, error)
	GetByIDWithRating(id string) (*PlantWithRating, error)
	Update(plant *entity.Plant) error
	List(limit, offset int) ([]*PlantWithRating, error)
	Delete(id string) error
}
