package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/juguetes-api/internal/application/dto"
	"github.com/jhoicas/juguetes-api/internal/application/usecase"
	"github.com/jhoicas/juguetes-api/internal/domain"
)

// CatalogHandler categorías y materiales.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope[[]dto.CategoryResponse]
// @Router       /api/categorias [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.OK(list))
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.NameRequest  true  "nombre"
// @Success      201   {object}  dto.Envelope[dto.CategoryResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "nombre es requerido")
	}
	out, err := h.uc.CreateCategory(c.UserContext(), in)
	if err != nil {
		return catalogError(c, err, "la categoría ya existe")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListMaterials godoc
// @Summary      Listar materiales
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope[[]dto.MaterialResponse]
// @Router       /api/materiales [get]
func (h *CatalogHandler) ListMaterials(c *fiber.Ctx) error {
	list, err := h.uc.ListMaterials(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.OK(list))
}

// CreateMaterial godoc
// @Summary      Crear material
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.NameRequest  true  "nombre"
// @Success      201   {object}  dto.Envelope[dto.MaterialResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materiales [post]
func (h *CatalogHandler) CreateMaterial(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "nombre es requerido")
	}
	out, err := h.uc.CreateMaterial(c.UserContext(), in)
	if err != nil {
		return catalogError(c, err, "el material ya existe")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

func catalogError(c *fiber.Ctx, err error, duplicateMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "nombre es requerido")
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", duplicateMsg)
	}
	return internalError(c, err)
}
