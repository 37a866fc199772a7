package dto

import "time"

// CreateReviewRequest alta de reseña. El autor se deriva del token, nunca del body.
type CreateReviewRequest struct {
	PlantID string `json:"plantId"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// UpdateReviewRequest edición de reseña (propietario o admin).
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Content *string `json:"content"`
}

// ReviewResponse representación pública de una reseña.
type ReviewResponse struct {
	ID        string    `json:"id"`
	PlantID   string    `json:"plantId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewListResponse listado paginado de reseñas.
type ReviewListResponse struct {
	Items []ReviewResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
