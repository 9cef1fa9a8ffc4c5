package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/geeky-dawood/snackstock-api/internal/application/analytics"
	appinventory "github.com/geeky-dawood/snackstock-api/internal/application/inventory"
	appreports "github.com/geeky-dawood/snackstock-api/internal/application/reports"
	"github.com/geeky-dawood/snackstock-api/internal/application/usecase"
	"github.com/geeky-dawood/snackstock-api/internal/infrastructure/memory"
	infrapdf "github.com/geeky-dawood/snackstock-api/internal/infrastructure/pdf"
	httpRouter "github.com/geeky-dawood/snackstock-api/internal/interfaces/http"
	"github.com/geeky-dawood/snackstock-api/pkg/config"
	"github.com/geeky-dawood/snackstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Store en memoria: catálogo + log de movimientos, vida = sesión del proceso
	store := memory.NewStore()
	if cfg.Seed.DemoData {
		n := memory.SeedDemoData(store)
		log.Info().Int("products", n).Msg("catálogo de demostración cargado")
	}

	productRepo := store.Products()
	movementRepo := store.Movements()

	productUC := usecase.NewProductUseCase(productRepo)
	adjustStockUC := appinventory.NewAdjustStockUseCase(store)
	movementUC := appinventory.NewMovementUseCase(movementRepo, productRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, movementRepo)
	reportsUC := appanalytics.NewReportsUseCase(productRepo, movementRepo)

	pdfGenerator := infrapdf.NewMarotoInventoryReport(cfg.App.Name)
	inventoryPDFUC := appreports.NewPDFUseCase(productRepo, pdfGenerator)

	metrics := httpRouter.NewMetrics(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SnackStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		AdjustStock:  adjustStockUC,
		MovementUC:   movementUC,
		DashboardUC:  dashboardUC,
		ReportsUC:    reportsUC,
		InventoryPDF: inventoryPDFUC,
		Metrics:      metrics,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// El estado era efímero por diseño: nada que persistir al salir.
	log.Info().Msg("aplicación detenida")
}
