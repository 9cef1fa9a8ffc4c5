package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/geeky-dawood/snackstock-api/internal/application/analytics"
	"github.com/geeky-dawood/snackstock-api/internal/application/inventory"
	"github.com/geeky-dawood/snackstock-api/internal/application/reports"
	"github.com/geeky-dawood/snackstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	AdjustStock  *inventory.AdjustStockUseCase
	MovementUC   *inventory.MovementUseCase
	DashboardUC  *analytics.DashboardUseCase
	ReportsUC    *analytics.ReportsUseCase
	InventoryPDF *reports.PDFUseCase
	Metrics      *Metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(deps.Metrics.Middleware())
	app.Get("/metrics", deps.Metrics.Handler())

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory: ajustes de stock e historial de movimientos
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.Metrics)
	movementHandler := NewMovementHandler(deps.MovementUC)
	invGroup.Post("/adjustments", inventoryHandler.AdjustStock)
	invGroup.Get("/movements", movementHandler.List)
	invGroup.Put("/movements/:id", movementHandler.Update)
	invGroup.Delete("/movements/:id", movementHandler.Delete)

	// Dashboard y analítica
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	analyticsHandler := NewAnalyticsHandler(deps.ReportsUC)
	api.Get("/analytics/summary", analyticsHandler.GetSummary)

	// Reportes
	reportsGroup := api.Group("/reports")
	reportsGroup.Get("/sales", analyticsHandler.SalesReport)
	reportsGroup.Get("/damages", analyticsHandler.DamagesReport)
	reportsGroup.Get("/top-selling", analyticsHandler.TopSelling)

	reportHandler := NewReportHandler(deps.InventoryPDF)
	reportsGroup.Get("/inventory/pdf", reportHandler.InventoryPDF)
}
