package dto

import "time"

// CreateCommentRequest alta de comentario sobre una reseña.
type CreateCommentRequest struct {
	ReviewID string `json:"reviewId"`
	Content  string `json:"content"`
}

// UpdateCommentRequest edición de comentario (propietario o admin).
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse representación pública de un comentario.
type CommentResponse struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"reviewId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentListResponse listado paginado de comentarios.
type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
