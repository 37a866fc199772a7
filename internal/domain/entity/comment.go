package entity

import "time"

// Comment comentario sobre una reseña. Mismo ciclo de vida de propiedad que Review.
type Comment struct {
	ID        string
	ReviewID  string
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
