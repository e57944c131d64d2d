package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de repuestos de camión. El catálogo no restringe el campo a
// esta lista; son los valores que usan los formularios y el fixture demo.
const (
	CategorySuspensionBrakes = "Suspensão e Freios"
	CategoryEngine           = "Motor"
	CategoryTransmission     = "Transmissão"
	CategoryCooling          = "Arrefecimento"
)

// Categories lista de categorías conocidas, en el orden de presentación.
var Categories = []string{
	CategorySuspensionBrakes,
	CategoryEngine,
	CategoryTransmission,
	CategoryCooling,
}

// Product representa un repuesto del catálogo.
// Code debería ser único pero el catálogo no lo exige; Name es la clave de
// referencia que usan los movimientos. Quantity no se ajusta al registrar
// movimientos (catálogo y libro de movimientos son fuentes independientes).
type Product struct {
	ID          string
	Code        string // ej. P001
	Name        string
	Category    string
	Quantity    int64 // existencia actual, >= 0
	MinQuantity int64 // umbral de reposición, >= 0
	UnitCost    decimal.Decimal
	Supplier    string
	CreatedAt   time.Time
}

// TotalValue valor del stock del producto: Quantity × UnitCost.
// Se calcula en cada lectura, nunca se almacena.
func (p *Product) TotalValue() decimal.Decimal {
	return decimal.NewFromInt(p.Quantity).Mul(p.UnitCost)
}

// BelowMinimum indica si el producto está bajo el umbral de reposición
// (estrictamente menor, no menor o igual).
func (p *Product) BelowMinimum() bool {
	return p.Quantity < p.MinQuantity
}
