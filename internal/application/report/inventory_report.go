package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
)

// InventoryReportUseCase arma los datos del reporte y delega el dibujo al
// generador PDF. Reutiliza la derivación del tablero para que el PDF y el
// JSON muestren exactamente las mismas cifras.
type InventoryReportUseCase struct {
	dashboard *analytics.DashboardUseCase
	generator InventoryPDFGenerator
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(dashboard *analytics.DashboardUseCase, generator InventoryPDFGenerator) *InventoryReportUseCase {
	return &InventoryReportUseCase{dashboard: dashboard, generator: generator}
}

// Generate devuelve los bytes del PDF del reporte de inventario.
func (uc *InventoryReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	summary, err := uc.dashboard.GetSummary()
	if err != nil {
		return nil, fmt.Errorf("reporte: resumen del tablero: %w", err)
	}
	data := InventoryReportData{
		GeneratedAt: time.Now(),
		Summary:     *summary,
	}
	pdf, err := uc.generator.GenerateInventoryPDF(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdf, nil
}
