package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/authz"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

// FavoriteUseCase toggle de favoritos por (usuario, planta). El usuario actor
// siempre sale del token; el par es único en la DB y el adaptador hace el
// insert/delete condicional de forma atómica, así que dos toggles concurrentes
// no pueden duplicar filas ni dejar estado intermedio.
type FavoriteUseCase struct {
	favRepo   repository.FavoriteRepository
	plantRepo repository.PlantRepository
}

// NewFavoriteUseCase construye el caso de uso.
func NewFavoriteUseCase(favRepo repository.FavoriteRepository, plantRepo repository.PlantRepository) *FavoriteUseCase {
	return &FavoriteUseCase{favRepo: favRepo, plantRepo: plantRepo}
}

// Toggle aplica el estado deseado:
//   - desired=true sin fila → crea. Con fila → ErrAlreadyFavorited.
//   - desired=false con fila → elimina. Sin fila → ErrFavoriteNotFound.
//
// El conflicto en el caso "ya existe" es deliberado: el cliente hace update
// optimista y usa el error para revertir su estado local.
func (uc *FavoriteUseCase) Toggle(actor authz.Actor, plantID string, desired bool) (*dto.FavoriteResponse, error) {
	plant, err := uc.plantRepo.GetByID(plantID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, domain.ErrNotFound
	}
	if !desired {
		if err := uc.favRepo.Remove(actor.UserID, plantID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	fav := &entity.Favorite{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		PlantID:   plantID,
		CreatedAt: time.Now(),
	}
	if err := uc.favRepo.Add(fav); err != nil {
		return nil, err
	}
	return toFavoriteResponse(fav), nil
}

// Remove elimina el favorito del actor. ErrFavoriteNotFound si no existe.
func (uc *FavoriteUseCase) Remove(actor authz.Actor, plantID string) error {
	return uc.favRepo.Remove(actor.UserID, plantID)
}

// ListByUser favoritos del actor autenticado.
func (uc *FavoriteUseCase) ListByUser(actor authz.Actor) (*dto.FavoriteListResponse, error) {
	favs, err := uc.favRepo.ListByUser(actor.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FavoriteResponse, 0, len(favs))
	for _, f := range favs {
		items = append(items, *toFavoriteResponse(f))
	}
	return &dto.FavoriteListResponse{Items: items}, nil
}

func toFavoriteResponse(f *entity.Favorite) *dto.FavoriteResponse {
	return &dto.FavoriteResponse{
		ID:         f.ID,
		UserID:     f.UserID,
		PlantID:    f.PlantID,
		IsFavorite: true, // la presencia de la fila es el estado
		CreatedAt:  f.CreatedAt,
	}
}
