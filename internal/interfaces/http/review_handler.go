package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/application/usecase"
	"github.com/jstringer1212/plant-review-api/internal/domain"
)

// ReviewHandler maneja reseñas. Lectura pública; crear requiere token;
// editar/borrar requiere propietario-o-admin.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reseña
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "plantId, rating (1-5), content"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PlantID == "" || in.Rating == 0 || in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plantId, rating y content son requeridos"})
	}
	out, err := h.uc.Create(CurrentActor(c), in)
	if err != nil {
		return mapReviewError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener reseña por ID
// @Tags         reviews
// @Produce      json
// @Param        id   path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.ReviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reviews/{id} [get]
func (h *ReviewHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reseña no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reseñas (opcionalmente por planta)
// @Tags         reviews
// @Produce      json
// @Param        plantId  query  string  false  "Filtrar por planta"
// @Param        limit    query  int     false  "Límite"   default(20)
// @Param        offset   query  int     false  "Offset"   default(0)
// @Success      200      {object}  dto.ReviewListResponse
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("plantId"), limit, offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar reseña (propietario o admin)
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reseña"
// @Param        body  body  dto.UpdateReviewRequest  true  "rating y/o content"
// @Success      200   {object}  dto.ReviewResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reviews/{id} [put]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(CurrentActor(c), c.Params("id"), in)
	if err != nil {
		return mapReviewError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar reseña y sus comentarios (propietario o admin)
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reseña"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentActor(c), c.Params("id")); err != nil {
		return mapReviewError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "reseña eliminada"})
}

// mapReviewError NOT_FOUND se decide antes que FORBIDDEN: "no existe" nunca
// se confunde con "existe pero no es tuya".
func mapReviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puedes modificar tus propias reseñas"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rating debe estar entre 1 y 5"})
	default:
		return internalError(c, err)
	}
}
