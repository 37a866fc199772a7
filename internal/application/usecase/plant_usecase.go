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

// PlantUseCase CRUD del catálogo de plantas. Las mutaciones son solo-admin:
// el catálogo lo mantiene el dashboard de administración.
type PlantUseCase struct {
	repo  repository.PlantRepository
	guard *authz.Guard
}

// NewPlantUseCase construye el caso de uso.
func NewPlantUseCase(repo repository.PlantRepository, guard *authz.Guard) *PlantUseCase {
	return &PlantUseCase{repo: repo, guard: guard}
}

// Create crea una planta. El repositorio traduce las violaciones de unicidad
// de cName/sName a errores de dominio específicos.
func (uc *PlantUseCase) Create(actor authz.Actor, in dto.CreatePlantRequest) (*dto.PlantResponse, error) {
	if err := uc.guard.RequireAdmin(actor); err != nil {
		return nil, err
	}
	now := time.Now()
	plant := &entity.Plant{
		ID:        uuid.New().String(),
		CName:     in.CName,
		SName:     in.SName,
		Genus:     in.Genus,
		Species:   in.Species,
		Care:      in.Care,
		PColor:    in.PColor,
		SColor:    in.SColor,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(plant); err != nil {
		return nil, err
	}
	return toPlantResponse(&repository.PlantWithRating{Plant: plant}), nil
}

// GetByID obtiene una planta con su calificación promedio.
func (uc *PlantUseCase) GetByID(id string) (*dto.PlantResponse, error) {
	pw, err := uc.repo.GetByIDWithRating(id)
	if err != nil {
		return nil, err
	}
	if pw == nil {
		return nil, nil
	}
	return toPlantResponse(pw), nil
}

// List lista el catálogo con calificación promedio por planta.
func (uc *PlantUseCase) List(limit, offset int) (*dto.PlantListResponse, error) {
	plants, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlantResponse, 0, len(plants))
	for _, pw := range plants {
		items = append(items, *toPlantResponse(pw))
	}
	return &dto.PlantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial de una planta (solo admin).
func (uc *PlantUseCase) Update(actor authz.Actor, id string, in dto.UpdatePlantRequest) (*dto.PlantResponse, error) {
	if err := uc.guard.RequireAdmin(actor); err != nil {
		return nil, err
	}
	plant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, nil
	}
	if in.CName != nil {
		plant.CName = *in.CName
	}
	if in.SName != nil {
		plant.SName = *in.SName
	}
	if in.Genus != nil {
		plant.Genus = *in.Genus
	}
	if in.Species != nil {
		plant.Species = *in.Species
	}
	if in.Care != nil {
		plant.Care = *in.Care
	}
	if in.PColor != nil {
		plant.PColor = *in.PColor
	}
	if in.SColor != nil {
		plant.SColor = *in.SColor
	}
	if in.ImageURL != nil {
		plant.ImageURL = *in.ImageURL
	}
	plant.UpdatedAt = time.Now()
	if err := uc.repo.Update(plant); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina una planta (solo admin). Las reseñas, comentarios y favoritos
// asociados caen por FK ON DELETE CASCADE.
func (uc *PlantUseCase) Delete(actor authz.Actor, id string) error {
	if err := uc.guard.RequireAdmin(actor); err != nil {
		return err
	}
	plant, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if plant == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPlantResponse(pw *repository.PlantWithRating) *dto.PlantResponse {
	p := pw.Plant
	return &dto.PlantResponse{
		ID:          p.ID,
		CName:       p.CName,
		SName:       p.SName,
		Genus:       p.Genus,
		Species:     p.Species,
		Care:        p.Care,
		PColor:      p.PColor,
		SColor:      p.SColor,
		ImageURL:    p.ImageURL,
		AvgRating:   pw.AvgRating,
		ReviewCount: pw.ReviewCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
