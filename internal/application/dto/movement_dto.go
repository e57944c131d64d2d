package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// MovementDateLayout formato de fecha en la API (solo día).
const MovementDateLayout = "2006-01-02"

// RegisterMovementRequest comando AddMovement: registro en el libro de
// movimientos. customer_name es obligatorio en salidas y debe omitirse en
// entradas; product_name y customer_name no se verifican contra las otras
// tablas.
type RegisterMovementRequest struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	Kind         string          `json:"kind"` // in, out
	Quantity     int64           `json:"quantity"`
	ProductName  string          `json:"product_name"`
	Reason       string          `json:"reason"` // purchase, sale, loss
	Value        decimal.Decimal `json:"value"`
	CustomerName string          `json:"customer_name,omitempty"`
}

// Validate aplica rangos numéricos, enums y la política de cliente.
func (r *RegisterMovementRequest) Validate() error {
	if !entity.ValidMovementKind(r.Kind) {
		return domain.ErrInvalidInput
	}
	if !entity.ValidMovementReason(r.Reason) {
		return domain.ErrInvalidInput
	}
	if r.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	if r.Value.IsNegative() {
		return domain.ErrInvalidInput
	}
	if _, err := time.Parse(MovementDateLayout, r.Date); err != nil {
		return domain.ErrInvalidInput
	}
	if r.Kind == entity.MovementKindOut && r.CustomerName == "" {
		return domain.ErrCustomerRequired
	}
	if r.Kind == entity.MovementKindIn && r.CustomerName != "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ParsedDate devuelve la fecha ya validada. Llamar después de Validate.
func (r *RegisterMovementRequest) ParsedDate() time.Time {
	t, _ := time.Parse(MovementDateLayout, r.Date)
	return t
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Kind         string          `json:"kind"`
	Quantity     int64           `json:"quantity"`
	ProductName  string          `json:"product_name"`
	Reason       string          `json:"reason"`
	Value        decimal.Decimal `json:"value"`
	CustomerName string          `json:"customer_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MovementListResponse snapshot del libro en orden de inserción.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// KindTotal fila del gráfico de movimientos por tipo (eje categoría = tipo,
// eje valor = unidades sumadas). Orden determinista por nombre de tipo.
type KindTotal struct {
	Kind     string `json:"kind"`
	Quantity int64  `json:"quantity"`
}

// MovementsByKindResponse agregación del libro por tipo de movimiento.
type MovementsByKindResponse struct {
	Items []KindTotal `json:"items"`
}
