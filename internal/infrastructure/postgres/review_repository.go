package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	db dbtx
}

// NewReviewRepository construye el adaptador de persistencia para reseñas.
func NewReviewRepository(db dbtx) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Create persiste una nueva reseña.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, plant_id, user_id, rating, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		review.ID, review.PlantID, review.UserID, review.Rating, review.Content,
		review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID obtiene una reseña por ID. Devuelve nil, nil si no existe.
func (r *ReviewRepo) GetByID(id string) (*entity.Review, error) {
	query := `
		SELECT id, plant_id, user_id, rating, content, created_at, updated_at
		FROM reviews WHERE id = $1`
	var rv entity.Review
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&rv.ID, &rv.PlantID, &rv.UserID, &rv.Rating, &rv.Content,
		&rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review by id: %w", err)
	}
	return &rv, nil
}

// Update actualiza una reseña.
func (r *ReviewRepo) Update(review *entity.Review) error {
	query := `
		UPDATE reviews SET rating = $2, content = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		review.ID, review.Rating, review.Content, review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// List lista reseñas con paginación (más recientes primero).
func (r *ReviewRepo) List(limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, plant_id, user_id, rating, content, created_at, updated_at
		FROM reviews ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset)
}

// ListByPlant lista reseñas de una planta con paginación.
func (r *ReviewRepo) ListByPlant(plantID string, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, plant_id, user_id, rating, content, created_at, updated_at
		FROM reviews WHERE plant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanList(query, plantID, limit, offset)
}

func (r *ReviewRepo) scanList(query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.PlantID, &rv.UserID, &rv.Rating, &rv.Content,
			&rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}

// Delete elimina una reseña por ID.
func (r *ReviewRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
