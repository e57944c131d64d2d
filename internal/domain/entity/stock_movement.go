package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementKindIn  = "in"  // entrada
	MovementKindOut = "out" // salida
)

// Motivos de movimiento.
const (
	MovementReasonPurchase = "purchase" // compra
	MovementReasonSale     = "sale"     // venta
	MovementReasonLoss     = "loss"     // pérdida
)

// ValidMovementKind reporta si kind es un tipo conocido.
func ValidMovementKind(kind string) bool {
	return kind == MovementKindIn || kind == MovementKindOut
}

// ValidMovementReason reporta si reason es un motivo conocido.
func ValidMovementReason(reason string) bool {
	return reason == MovementReasonPurchase || reason == MovementReasonSale || reason == MovementReasonLoss
}

// StockMovement representa un evento del libro de movimientos (append-only,
// inmutable). ProductName y CustomerName referencian por nombre, sin
// verificación contra las otras tablas. Value es el monto del movimiento,
// independiente del costo unitario del producto.
type StockMovement struct {
	ID           string
	Date         time.Time // fecha del movimiento (solo día)
	Kind         string    // in, out
	Quantity     int64     // >= 0
	ProductName  string
	Reason       string // purchase, sale, loss
	Value        decimal.Decimal
	CustomerName string // solo salidas; vacío en entradas
	CreatedAt    time.Time
}
