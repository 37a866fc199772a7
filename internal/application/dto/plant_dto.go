package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePlantRequest alta de planta en el catálogo (solo admin).
type CreatePlantRequest struct {
	CName    string `json:"cName"`
	SName    string `json:"sName"`
	Genus    string `json:"genus"`
	Species  string `json:"species"`
	Care     string `json:"care"`
	PColor   string `json:"pColor"`
	SColor   string `json:"sColor"`
	ImageURL string `json:"imageUrl"`
}

// UpdatePlantRequest actualización parcial de planta (solo admin).
type UpdatePlantRequest struct {
	CName    *string `json:"cName"`
	SName    *string `json:"sName"`
	Genus    *string `json:"genus"`
	Species  *string `json:"species"`
	Care     *string `json:"care"`
	PColor   *string `json:"pColor"`
	SColor   *string `json:"sColor"`
	ImageURL *string `json:"imageUrl"`
}

// PlantResponse planta con su calificación promedio agregada.
type PlantResponse struct {
	ID          string          `json:"id"`
	CName       string          `json:"cName"`
	SName       string          `json:"sName"`
	Genus       string          `json:"genus"`
	Species     string          `json:"species"`
	Care        string          `json:"care"`
	PColor      string          `json:"pColor"`
	SColor      string          `json:"sColor"`
	ImageURL    string          `json:"imageUrl"`
	AvgRating   decimal.Decimal `json:"avgRating"`
	ReviewCount int             `json:"reviewCount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PlantListResponse listado paginado de plantas.
type PlantListResponse struct {
	Items []PlantResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
