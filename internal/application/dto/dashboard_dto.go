package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Tarjetas de métricas del tablero, el reporte de bajo mínimo y los datos
// del gráfico de movimientos por tipo, todo derivado del estado actual de
// las tablas (sin caché; se recalcula en cada petición).
type DashboardSummaryDTO struct {
	// Tarjetas de métricas
	TotalStockValue      decimal.Decimal `json:"total_stock_value"`       // redondeado a 2 decimales
	TotalStockValueLabel string          `json:"total_stock_value_label"` // ej: "R$ 1.234,56"
	ProductCount         int             `json:"product_count"`
	MovementCount        int             `json:"movement_count"`
	CustomerCount        int             `json:"customer_count"`

	// Tabla de advertencia: productos con quantity < min_quantity
	LowStock []LowStockItem `json:"low_stock"`

	// Datos para el gráfico de barras por tipo de movimiento
	MovementsByKind []KindTotal `json:"movements_by_kind"`
}
