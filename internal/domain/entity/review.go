package entity

import "time"

// Límites de calificación para Review.
const (
	RatingMin = 1
	RatingMax = 5
)

// Review reseña de una planta. Pertenece a exactamente una Plant y un User.
type Review struct {
	ID        string
	PlantID   string
	UserID    string
	Rating    int // 1..5
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRating indica si la calificación está dentro del rango permitido.
func ValidRating(r int) bool {
	return r >= RatingMin && r <= RatingMax
}
