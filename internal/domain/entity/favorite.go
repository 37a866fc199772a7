package entity

import "time"

// Favorite marca (userID, plantID) como favorito. El par es único: la
// presencia de la fila es la única fuente de verdad de "favorito".
type Favorite struct {
	ID        string
	UserID    string
	PlantID   string
	CreatedAt time.Time
}
