package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// StoreHandler tienda propia y su tarjeta QR.
type StoreHandler struct {
	stores *catalog.StoreUseCase
	menu   *catalog.MenuUseCase
	log    *logger.Logger
}

// NewStoreHandler construye el handler.
func NewStoreHandler(stores *catalog.StoreUseCase, menu *catalog.MenuUseCase, log *logger.Logger) *StoreHandler {
	return &StoreHandler{stores: stores, menu: menu, log: log}
}

// Get devuelve la tienda del token.
// GET /api/store
func (h *StoreHandler) Get(c *fiber.Ctx) error {
	out, err := h.stores.Get(c.UserContext(), GetStoreID(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update edita los datos públicos de la tienda.
// PUT /api/store
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.stores.Update(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// MenuCard descarga el PDF con el QR del menú.
// GET /api/store/menu-card.pdf
func (h *StoreHandler) MenuCard(c *fiber.Ctx) error {
	pdf, filename, err := h.menu.DownloadMenuCard(c.UserContext(), GetStoreID(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

// PublicMenu menú público por slug (destino del QR). No requiere token.
// GET /public/stores/:slug/menu
func (h *StoreHandler) PublicMenu(c *fiber.Ctx) error {
	out, err := h.menu.PublicMenu(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}
