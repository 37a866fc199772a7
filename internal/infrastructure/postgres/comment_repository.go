package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo implementación del puerto CommentRepository sobre PostgreSQL.
type CommentRepo struct {
	db dbtx
}

// NewCommentRepository construye el adaptador de persistencia para comentarios.
func NewCommentRepository(db dbtx) *CommentRepo {
	return &CommentRepo{db: db}
}

// Create persiste un nuevo comentario.
func (r *CommentRepo) Create(comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, review_id, user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		comment.ID, comment.ReviewID, comment.UserID, comment.Content,
		comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID obtiene un comentario por ID. Devuelve nil, nil si no existe.
func (r *CommentRepo) GetByID(id string) (*entity.Comment, error) {
	query := `
		SELECT id, review_id, user_id, content, created_at, updated_at
		FROM comments WHERE id = $1`
	var c entity.Comment
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ReviewID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment by id: %w", err)
	}
	return &c, nil
}

// Update actualiza un comentario.
func (r *CommentRepo) Update(comment *entity.Comment) error {
	query := `UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		comment.ID, comment.Content, comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// List lista comentarios con paginación (más recientes primero).
func (r *CommentRepo) List(limit, offset int) ([]*entity.Comment, error) {
	query := `
		SELECT id, review_id, user_id, content, created_at, updated_at
		FROM comments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset)
}

// ListByReview lista comentarios de una reseña con paginación.
func (r *CommentRepo) ListByReview(reviewID string, limit, offset int) ([]*entity.Comment, error) {
	query := `
		SELECT id, review_id, user_id, content, created_at, updated_at
		FROM comments WHERE review_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	return r.scanList(query, reviewID, limit, offset)
}

func (r *CommentRepo) scanList(query string, args ...any) ([]*entity.Comment, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Comment
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.ReviewID, &c.UserID, &c.Content,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un comentario por ID.
func (r *CommentRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// DeleteByReview elimina todos los comentarios de una reseña (borrado de reseña en tx).
func (r *CommentRepo) DeleteByReview(reviewID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM comments WHERE review_id = $1`, reviewID)
	if err != nil {
		return fmt.Errorf("delete comments by review: %w", err)
	}
	return nil
}
