package postgres

import (
	"context"
	"fmt"

	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo implementación del puerto FavoriteRepository sobre PostgreSQL.
// Add y Remove son sentencias únicas: el constraint UNIQUE (user_id, plant_id)
// y el conteo de filas afectadas deciden el resultado, sin check-then-act.
type FavoriteRepo struct {
	db dbtx
}

// NewFavoriteRepository construye el adaptador de persistencia para favoritos.
func NewFavoriteRepository(db dbtx) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// Add inserta el par (user, plant). ON CONFLICT DO NOTHING: cero filas
// afectadas significa que ya existía.
func (r *FavoriteRepo) Add(fav *entity.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, plant_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, plant_id) DO NOTHING`
	tag, err := r.db.Exec(context.Background(), query,
		fav.ID, fav.UserID, fav.PlantID, fav.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyFavorited
	}
	return nil
}

// Remove elimina el par (user, plant). Cero filas afectadas significa que no
// había nada que eliminar.
func (r *FavoriteRepo) Remove(userID, plantID string) error {
	tag, err := r.db.Exec(context.Background(),
		`DELETE FROM favorites WHERE user_id = $1 AND plant_id = $2`,
		userID, plantID,
	)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

// ListByUser favoritos de un usuario.
func (r *FavoriteRepo) ListByUser(userID string) ([]*entity.Favorite, error) {
	query := `
		SELECT id, user_id, plant_id, created_at
		FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`
	return r.scanList(query, userID)
}

// List lista todos los favoritos con paginación.
func (r *FavoriteRepo) List(limit, offset int) ([]*entity.Favorite, error) {
	query := `
		SELECT id, user_id, plant_id, created_at
		FROM favorites ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset)
}

func (r *FavoriteRepo) scanList(query string, args ...any) ([]*entity.Favorite, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Favorite
	for rows.Next() {
		var f entity.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PlantID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
