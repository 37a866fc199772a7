package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/application/usecase"
	"github.com/jstringer1212/plant-review-api/internal/domain"
)

// FavoriteHandler maneja el toggle de favoritos. El usuario sale siempre del
// token autenticado; un userId en el body se ignora.
type FavoriteHandler struct {
	uc *usecase.FavoriteUseCase
}

// NewFavoriteHandler construye el handler.
func NewFavoriteHandler(uc *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// Toggle godoc
// @Summary      Marcar o desmarcar favorito
// @Tags         favorites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ToggleFavoriteRequest  true  "plantId, isFavorite"
// @Success      201   {object}  dto.FavoriteResponse
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/favorites [post]
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	var in dto.ToggleFavoriteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PlantID == "" || in.IsFavorite == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plantId e isFavorite son requeridos"})
	}
	out, err := h.uc.Toggle(CurrentActor(c), in.PlantID, *in.IsFavorite)
	if err != nil {
		return mapFavoriteError(c, err)
	}
	if out == nil {
		// desired=false: la fila se eliminó
		return c.JSON(dto.MessageResponse{Message: "favorito eliminado"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Remove godoc
// @Summary      Eliminar favorito
// @Tags         favorites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveFavoriteRequest  true  "plantId"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/favorites [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	var in dto.RemoveFavoriteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PlantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plantId es requerido"})
	}
	if err := h.uc.Remove(CurrentActor(c), in.PlantID); err != nil {
		return mapFavoriteError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "favorito eliminado"})
}

// List godoc
// @Summary      Favoritos del usuario autenticado
// @Tags         favorites
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FavoriteListResponse
// @Router       /api/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(CurrentActor(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// mapFavoriteError los conflictos de estado del toggle son 400: el cliente
// los usa para revertir su update optimista.
func mapFavoriteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrAlreadyFavorited):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_FAVORITED", Message: "el favorito ya existe"})
	case errors.Is(err, domain.ErrFavoriteNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FAVORITE_NOT_FOUND", Message: "el favorito no existe para eliminar"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "planta no encontrada"})
	default:
		return internalError(c, err)
	}
}
