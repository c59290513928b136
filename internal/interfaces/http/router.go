package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	SaleUC    *sales.SaleUseCase
	ExportUC  *sales.ExportUseCase
	StoreUC   *catalog.StoreUseCase
	ProductUC *catalog.ProductUseCase
	MenuUC    *catalog.MenuUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	ownerOnly := RequireRole(entity.RoleOwner)
	anyRole := RequireRole(entity.RoleOwner, entity.RoleStaff)

	storeHandler := NewStoreHandler(deps.StoreUC, deps.MenuUC, log)

	// Menú público (destino del QR)
	app.Get("/public/stores/:slug/menu", storeHandler.PublicMenu)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), anyRole)

	// Tienda
	store := protected.Group("/store")
	store.Get("/", storeHandler.Get)
	store.Put("/", ownerOnly, storeHandler.Update)
	store.Get("/menu-card.pdf", storeHandler.MenuCard)

	// Catálogo: lectura para todos, escritura sólo owner
	productHandler := NewProductHandler(deps.ProductUC, log)
	categories := protected.Group("/categories")
	categories.Get("/", productHandler.ListCategories)
	categories.Post("/", ownerOnly, productHandler.CreateCategory)
	categories.Delete("/:id", ownerOnly, productHandler.DeleteCategory)

	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", ownerOnly, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", ownerOnly, productHandler.Update)
	products.Delete("/:id", ownerOnly, productHandler.Delete)

	// Ventas: /export antes de /:id
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ExportUC, log)
	salesGroup := protected.Group("/sales")
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/export", ownerOnly, saleHandler.Export)
	salesGroup.Get("/:id", saleHandler.Get)
	salesGroup.Patch("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", ownerOnly, saleHandler.Delete)
}
