package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// ProductHandler catálogo: productos y categorías (protegido).
type ProductHandler struct {
	uc  *catalog.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create crea un producto.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List lista los productos de la tienda.
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetStoreID(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByID obtiene un producto.
// GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetStoreID(c), c.Params("id"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update actualiza los campos presentes.
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetStoreID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete elimina un producto.
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetStoreID(c), c.Params("id")); err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"id": c.Params("id")})
}

// CreateCategory POST /api/categories
func (h *ProductHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCategory(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListCategories GET /api/categories
func (h *ProductHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext(), GetStoreID(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// DeleteCategory DELETE /api/categories/:id
func (h *ProductHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategory(c.UserContext(), GetStoreID(c), c.Params("id")); err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"id": c.Params("id")})
}
