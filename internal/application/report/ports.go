// Package report genera la representación imprimible del tablero: un PDF
// con las tarjetas de métricas y la tabla de productos bajo mínimo.
package report

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

// InventoryReportData datos ya derivados que consume el generador PDF.
type InventoryReportData struct {
	GeneratedAt time.Time
	Summary     dto.DashboardSummaryDTO
}

// InventoryPDFGenerator puerto de generación del PDF (implementado con
// Maroto en infrastructure/pdf).
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, data InventoryReportData) ([]byte, error)
}
