package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/application/export"
	"github.com/jstringer1212/plant-review-api/internal/application/usecase"
	"github.com/jstringer1212/plant-review-api/internal/domain"
)

// PlantHandler maneja el catálogo de plantas. Lectura pública, mutación solo-admin.
type PlantHandler struct {
	uc        *usecase.PlantUseCase
	catalogUC *export.CatalogUseCase
}

// NewPlantHandler construye el handler.
func NewPlantHandler(uc *usecase.PlantUseCase, catalogUC *export.CatalogUseCase) *PlantHandler {
	return &PlantHandler{uc: uc, catalogUC: catalogUC}
}

// Create godoc
// @Summary      Crear planta
// @Tags         plants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlantRequest  true  "Datos de la planta"
// @Success      201   {object}  dto.PlantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/plants [post]
func (h *PlantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CName == "" || in.SName == "" || in.Care == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cName, sName y care son requeridos"})
	}
	out, err := h.uc.Create(CurrentActor(c), in)
	if err != nil {
		return mapPlantError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener planta por ID (con calificación promedio)
// @Tags         plants
// @Produce      json
// @Param        id   path  string  true  "ID de la planta"
// @Success      200  {object}  dto.PlantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{id} [get]
func (h *PlantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "planta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo
// @Tags         plants
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PlantListResponse
// @Router       /api/plants [get]
func (h *PlantHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar planta
// @Tags         plants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la planta"
// @Param        body  body  dto.UpdatePlantRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PlantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/plants/{id} [put]
func (h *PlantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(CurrentActor(c), c.Params("id"), in)
	if err != nil {
		return mapPlantError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "planta no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar planta
// @Tags         plants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la planta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{id} [delete]
func (h *PlantHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(CurrentActor(c), c.Params("id")); err != nil {
		return mapPlantError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "planta eliminada"})
}

// ExportPDF godoc
// @Summary      Exportar catálogo como PDF
// @Tags         plants
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/plants/export/pdf [get]
func (h *PlantHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.catalogUC.ExportPDF(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo-plantas.pdf"`)
	return c.Send(pdfBytes)
}

// mapPlantError la taxonomía de unicidad distingue qué nombre chocó.
func mapPlantError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCommonNameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CNAME_EXISTS", Message: "ya existe una planta con ese nombre común"})
	case errors.Is(err, domain.ErrScientificNameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SNAME_EXISTS", Message: "ya existe una planta con ese nombre científico"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la planta ya existe"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un administrador puede modificar el catálogo"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "planta no encontrada"})
	default:
		return internalError(c, err)
	}
}
