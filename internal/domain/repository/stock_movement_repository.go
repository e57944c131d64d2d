package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// StockMovementRepository puerto del libro de movimientos.
// Secuencia append-only e inmutable; el orden es el de inserción, no
// necesariamente ordenado por fecha.
type StockMovementRepository interface {
	// Add agrega un movimiento al final del libro.
	Add(m *entity.StockMovement) error
	// All devuelve un snapshot en orden de inserción.
	All() ([]*entity.StockMovement, error)
	// Count número de movimientos registrados.
	Count() (int, error)
}
