package repository

import "github.com/jstringer1212/plant-review-api/internal/domain/entity"

// FavoriteRepository define el puerto de persistencia para Favorite.
// Add y Remove son atómicos en el adaptador (upsert condicional / delete
// condicional): no hay secuencia check-then-act que pueda correr en paralelo.
type FavoriteRepository interface {
	// Add inserta el par (userID, plantID). Devuelve domain.ErrAlreadyFavorited
	// si la fila ya existe.
	Add(fav *entity.Favorite) error
	// Remove elimina el par (userID, plantID). Devuelve domain.ErrFavoriteNotFound
	// si no había fila que eliminar.
	Remove(userID, plantID string) error
	ListByUser(userID string) ([]*entity.Favorite, error)
	List(limit, offset int) ([]*entity.Favorite, error)
}
