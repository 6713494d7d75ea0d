package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/juguetes-api/internal/application/dto"
	"github.com/jhoicas/juguetes-api/internal/application/usecase"
	"github.com/jhoicas/juguetes-api/internal/domain"
)

// ToyHandler CRUD de juguetes.
type ToyHandler struct {
	uc *usecase.ToyUseCase
}

// NewToyHandler construye el handler.
func NewToyHandler(uc *usecase.ToyUseCase) *ToyHandler {
	return &ToyHandler{uc: uc}
}

// List godoc
// @Summary      Listar juguetes
// @Tags         juguetes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope[[]dto.ToyResponse]
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/juguetes [get]
func (h *ToyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.OK(list))
}

// Create godoc
// @Summary      Crear juguete
// @Description  El ID (JUG-<n>) lo genera el servidor.
// @Tags         juguetes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ToyRequest  true  "nombre_juguete, categoria, material, stock_disponible"
// @Success      201   {object}  dto.Envelope[dto.ToyResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/juguetes [post]
func (h *ToyHandler) Create(c *fiber.Ctx) error {
	var in dto.ToyRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "nombre_juguete es requerido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return toyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope[*dto.ToyResponse]{
		Success: true,
		Message: "Juguete creado",
		Data:    out,
	})
}

// Update godoc
// @Summary      Actualizar juguete
// @Tags         juguetes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string          true  "ID del juguete (JUG-<n>)"
// @Param        body  body  dto.ToyRequest  true  "nombre_juguete, categoria, material, stock_disponible"
// @Success      200   {object}  dto.Envelope[dto.ToyResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/juguetes/{id} [put]
func (h *ToyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ToyRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "nombre_juguete es requerido")
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return toyError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar juguete
// @Tags         juguetes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del juguete"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/juguetes/{id} [delete]
func (h *ToyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return toyError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Juguete eliminado"})
}

func toyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "datos del juguete inválidos")
	case errors.Is(err, domain.ErrInvalidReference):
		return fail(c, fiber.StatusBadRequest, "INVALID_REFERENCE", "la categoría o el material no existe")
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "juguete no encontrado")
	}
	return internalError(c, err)
}
