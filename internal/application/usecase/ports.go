package usecase

import (
	"context"

	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una transacción PostgreSQL.
// Se usa para el borrado de reseñas: la reseña y sus comentarios caen juntos
// o no cae ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		reviewRepo repository.ReviewRepository,
		commentRepo repository.CommentRepository,
	) error) error
}
