package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// CreateProductRequest comando AddProduct: alta de un repuesto en el catálogo.
type CreateProductRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int64           `json:"quantity"`
	MinQuantity int64           `json:"min_quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Supplier    string          `json:"supplier"`
}

// Validate aplica las restricciones numéricas del comando. El contrato del
// catálogo no exige unicidad de code ni campos no vacíos; solo rangos.
func (r *CreateProductRequest) Validate() error {
	if r.Quantity < 0 || r.MinQuantity < 0 {
		return domain.ErrInvalidInput
	}
	if r.UnitCost.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// ProductResponse salida de un producto. TotalValue se calcula en cada
// lectura (quantity × unit_cost, redondeado a 2 para presentación).
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int64           `json:"quantity"`
	MinQuantity int64           `json:"min_quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Supplier    string          `json:"supplier"`
	TotalValue  decimal.Decimal `json:"total_value"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse snapshot del catálogo en orden de inserción.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// LowStockItem proyección de un producto bajo mínimo para el reporte.
type LowStockItem struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	MinQuantity int64  `json:"min_quantity"`
}

// LowStockResponse reporte de productos bajo mínimo, en orden de catálogo.
type LowStockResponse struct {
	Items []LowStockItem `json:"items"`
	Total int            `json:"total"`
}
