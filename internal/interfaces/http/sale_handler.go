package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// SaleHandler ventas de la tienda del token: ABM, listado filtrado y exportación.
type SaleHandler struct {
	uc     *sales.SaleUseCase
	export *sales.ExportUseCase
	log    *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase, export *sales.ExportUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, export: export, log: log}
}

// List godoc
// @Summary      Listar ventas con filtros, orden y estadísticas
// @Tags         sales
// @Produce      json
// @Param        customer         query  string  false  "búsqueda por nombre de cliente"
// @Param        start_date       query  string  false  "YYYY-MM-DD"
// @Param        end_date         query  string  false  "YYYY-MM-DD"
// @Param        payment_method   query  string  false  "all|efectivo|transferencia|mercadopago"
// @Param        delivery_method  query  string  false  "all|retiro|delivery"
// @Param        source           query  string  false  "all|local|web|whatsapp"
// @Param        sort_by          query  string  false  "date-desc|date-asc|customer-asc|total-desc"
// @Success      200  {object}  dto.Result
// @Failure      400  {object}  dto.Result
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var in dto.SaleListRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.List(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Registrar una venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "venta"
// @Success      201   {object}  dto.Result
// @Failure      400   {object}  dto.Result
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// Get obtiene una venta.
// GET /api/sales/:id
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetStoreID(c), c.Params("id"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update aplica un patch parcial. Con expected_updated_at responde 409 si la
// venta cambió desde que se leyó.
// PATCH /api/sales/:id
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetStoreID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete elimina una venta.
// DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetStoreID(c), c.Params("id")); err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"id": c.Params("id")})
}

// Export godoc
// @Summary      Exportar ventas filtradas
// @Tags         sales
// @Produce      octet-stream
// @Param        format            query  string  false  "csv|xlsx"
// @Param        include_products  query  bool    false  "hoja de detalle (xlsx)"
// @Param        include_stats     query  bool    false  "hoja de estadísticas (xlsx)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.Result
// @Router       /api/sales/export [get]
func (h *SaleHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if err := c.QueryParser(&in.SaleListRequest); err != nil {
		return invalidBody(c)
	}
	in.Format = c.Query("format")
	in.IncludeProducts = c.QueryBool("include_products")
	in.IncludeStats = c.QueryBool("include_stats")

	file, err := h.export.Export(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Content)
}
