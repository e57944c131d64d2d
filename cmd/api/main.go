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

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/report"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/fixtures"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Tablas en memoria, propiedad de esta sesión. El estado dura lo que
	// dura el proceso; cada arranque parte del fixture (o de tablas vacías).
	productRepo := memory.NewProductRepository()
	movementRepo := memory.NewStockMovementRepository()
	customerRepo := memory.NewCustomerRepository()

	if cfg.Seed.Demo {
		if err := fixtures.Apply(cfg.Seed.Value, productRepo, movementRepo, customerRepo); err != nil {
			log.Fatal().Err(err).Msg("cargar fixture demo")
		}
		log.Info().Int64("seed", cfg.Seed.Value).Msg("fixture demo cargado")
	}

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	movementUC := inventory.NewMovementUseCase(movementRepo)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, movementRepo, customerRepo)

	// PDF: representación imprimible del tablero
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewInventoryReportUseCase(dashboardUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		MovementUC:  movementUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
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

	log.Info().Msg("aplicación detenida")
}
