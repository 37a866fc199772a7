package dto

import "time"

// ToggleFavoriteRequest marca o desmarca una planta como favorita.
// El usuario se deriva del token; IsFavorite indica el estado deseado.
type ToggleFavoriteRequest struct {
	PlantID    string `json:"plantId"`
	IsFavorite *bool  `json:"isFavorite"`
}

// RemoveFavoriteRequest elimina el favorito del usuario autenticado.
type RemoveFavoriteRequest struct {
	PlantID string `json:"plantId"`
}

// FavoriteResponse favorito persistido.
type FavoriteResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	PlantID    string    `json:"plantId"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FavoriteListResponse favoritos del usuario autenticado.
type FavoriteListResponse struct {
	Items []FavoriteResponse `json:"items"`
}
