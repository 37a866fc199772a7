package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/application/usecase"
	"github.com/jstringer1212/plant-review-api/internal/domain"
)

// CommentHandler maneja comentarios sobre reseñas.
type CommentHandler struct {
	uc *usecase.CommentUseCase
}

// NewCommentHandler construye el handler.
func NewCommentHandler(uc *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear comentario
// @Tags         comments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCommentRequest  true  "reviewId, content"
// @Success      201   {object}  dto.CommentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ReviewID == "" || in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reviewId y content son requeridos"})
	}
	out, err := h.uc.Create(CurrentActor(c), in)
	if err != nil {
		return mapCommentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener comentario por ID
// @Tags         comments
// @Produce      json
// @Param        id   path  string  true  "ID del comentario"
// @Success      200  {object}  dto.CommentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comments/{id} [get]
func (h *CommentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "comentario no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar comentarios (opcionalmente por reseña)
// @Tags         comments
// @Produce      json
// @Param        reviewId  query  string  false  "Filtrar por reseña"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.CommentListResponse
// @Router       /api/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("reviewId"), limit, offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar comentario (propietario o admin)
// @Tags         comments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del comentario"
// @Param        body  body  dto.UpdateCommentRequest  true  "content"
// @Success      200   {object}  dto.CommentResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/comments/{id} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "content es requerido"})
	}
	out, err := h.uc.Update(CurrentActor(c), c.Params("id"), in.Content)
	if err != nil {
		return mapCommentError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar comentario (propietario o admin)
// @Tags         comments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del comentario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(CurrentActor(c), c.Params("id")); err != nil {
		return mapCommentError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "comentario eliminado"})
}

func mapCommentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puedes modificar tus propios comentarios"})
	default:
		return internalError(c, err)
	}
}
