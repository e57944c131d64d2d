// Package analytics contiene el caso de uso del tablero: las tarjetas de
// métricas, el reporte de bajo mínimo y los datos del gráfico por tipo.
package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// DashboardUseCase deriva el resumen del tablero del estado actual de las
// tres tablas. Sin estado propio ni caché: cada llamada recalcula todo.
type DashboardUseCase struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	customers repository.CustomerRepository

	printer *message.Printer // etiquetas monetarias en pt-BR
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	customers repository.CustomerRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		products:  products,
		movements: movements,
		customers: customers,
		printer:   message.NewPrinter(language.BrazilianPortuguese),
	}
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	products, err := uc.products.All()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.All()
	if err != nil {
		return nil, err
	}
	customerCount, err := uc.customers.Count()
	if err != nil {
		return nil, err
	}

	totalValue := inventory.TotalStockValue(products)

	lowStock := make([]dto.LowStockItem, 0)
	for _, p := range inventory.LowStock(products) {
		lowStock = append(lowStock, dto.LowStockItem{
			Code:        p.Code,
			Name:        p.Name,
			Quantity:    p.Quantity,
			MinQuantity: p.MinQuantity,
		})
	}

	byKind := make([]dto.KindTotal, 0)
	for _, t := range inventory.AggregateByKind(movements) {
		byKind = append(byKind, dto.KindTotal{Kind: t.Kind, Quantity: t.Quantity})
	}

	return &dto.DashboardSummaryDTO{
		TotalStockValue:      totalValue.Round(2),
		TotalStockValueLabel: uc.MoneyLabel(totalValue),
		ProductCount:         len(products),
		MovementCount:        len(movements),
		CustomerCount:        customerCount,
		LowStock:             lowStock,
		MovementsByKind:      byKind,
	}, nil
}

// MoneyLabel formatea un monto como etiqueta monetaria pt-BR, ej: "R$ 1.234,56".
func (uc *DashboardUseCase) MoneyLabel(v decimal.Decimal) string {
	return uc.printer.Sprintf("R$ %.2f", v.InexactFloat64())
}
