package export

import (
	"context"

	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

// CatalogPDFGenerator puerto de generación del PDF del catálogo.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, plants []*repository.PlantWithRating) ([]byte, error)
}

// CatalogUseCase exporta el catálogo completo como PDF (reporte de administración).
type CatalogUseCase struct {
	plantRepo repository.PlantRepository
	generator CatalogPDFGenerator
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(plantRepo repository.PlantRepository, generator CatalogPDFGenerator) *CatalogUseCase {
	return &CatalogUseCase{plantRepo: plantRepo, generator: generator}
}

// ExportPDF genera el PDF con todas las plantas y su calificación promedio.
func (uc *CatalogUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	plants, err := uc.plantRepo.List(10000, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCatalogPDF(ctx, plants)
}
