package memory

import (
	"sync"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo libro de movimientos en memoria, append-only e inmutable.
// Registrar un movimiento nunca ajusta Quantity en el catálogo: libro y
// catálogo son fuentes de datos independientes.
type StockMovementRepo struct {
	mu   sync.RWMutex
	rows []*entity.StockMovement
}

// NewStockMovementRepository construye un libro vacío.
func NewStockMovementRepository() *StockMovementRepo {
	return &StockMovementRepo{}
}

// Add agrega el movimiento al final del libro. No verifica que ProductName
// ni CustomerName existan en las otras tablas.
func (r *StockMovementRepo) Add(m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, m)
	return nil
}

// All devuelve un snapshot en orden de inserción.
func (r *StockMovementRepo) All() ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.StockMovement, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// Count número de movimientos del libro.
func (r *StockMovementRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}
