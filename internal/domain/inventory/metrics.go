// Package inventory contiene la lógica de derivación del libro de inventario:
// valorización del stock, productos bajo mínimo y agregación de movimientos.
// Funciones puras sobre el estado actual de las tablas; sin estado interno.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// TotalStockValue valorización total del stock: suma de Quantity × UnitCost
// sobre todos los productos. Precisión completa; el redondeo a 2 decimales
// es responsabilidad de la capa de presentación.
func TotalStockValue(products []*entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.TotalValue())
	}
	return total
}

// LowStock filtra los productos con Quantity < MinQuantity, preservando el
// orden del catálogo.
func LowStock(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if p.BelowMinimum() {
			out = append(out, p)
		}
	}
	return out
}

// KindTotal total de unidades movidas por tipo de movimiento.
type KindTotal struct {
	Kind     string
	Quantity int64
}

// AggregateByKind agrupa los movimientos por tipo sumando Quantity.
// Solo aparecen los tipos presentes en el libro (sin ceros para ausentes);
// el resultado se ordena por nombre de tipo para que sea determinista.
func AggregateByKind(movements []*entity.StockMovement) []KindTotal {
	sums := make(map[string]int64)
	for _, m := range movements {
		sums[m.Kind] += m.Quantity
	}
	out := make([]KindTotal, 0, len(sums))
	for kind, qty := range sums {
		out = append(out, KindTotal{Kind: kind, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
