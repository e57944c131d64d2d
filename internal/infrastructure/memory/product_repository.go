// Package memory implementa los puertos de repositorio sobre tablas en
// memoria. El estado vive lo que dura la sesión del proceso: sin
// persistencia, sin compartir entre sesiones. Cada instancia es propiedad
// del objeto de aplicación que la construye (nada de globales de paquete).
//
// El mutex existe porque el listener HTTP puede intercalar peticiones;
// no hay ninguna otra disciplina de bloqueo.
package memory

import (
	"sync"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo de productos en memoria (slice append-only).
type ProductRepo struct {
	mu   sync.RWMutex
	rows []*entity.Product
}

// NewProductRepository construye un catálogo vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{}
}

// Add agrega la fila al final. No valida unicidad de Code ni campos vacíos.
func (r *ProductRepo) Add(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, p)
	return nil
}

// All devuelve un snapshot en orden de inserción.
func (r *ProductRepo) All() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// BelowMinimum productos con Quantity < MinQuantity, en orden de catálogo.
func (r *ProductRepo) BelowMinimum() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return inventory.LowStock(r.rows), nil
}

// Count número de filas del catálogo.
func (r *ProductRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}
