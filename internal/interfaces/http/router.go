package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/report"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	MovementUC  *inventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.InventoryReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)

	// Libro de movimientos
	movements := api.Group("/movements")
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	movements.Post("/", inventoryHandler.RegisterMovement)
	movements.Get("/", inventoryHandler.List)
	movements.Get("/by-kind", inventoryHandler.ByKind)

	// Directorio de clientes (solo lectura)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)

	// Tablero de métricas
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory.pdf", reportHandler.InventoryPDF)
}
