package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// ProductRepository puerto del catálogo de productos.
// El catálogo es append-only: las filas nunca se editan ni se borran.
// No se exige unicidad de Code (ver DESIGN.md).
type ProductRepository interface {
	// Add agrega una fila al final del catálogo.
	Add(p *entity.Product) error
	// All devuelve un snapshot en orden de inserción.
	All() ([]*entity.Product, error)
	// BelowMinimum devuelve los productos con Quantity < MinQuantity,
	// preservando el orden del catálogo.
	BelowMinimum() ([]*entity.Product, error)
	// Count número de filas del catálogo.
	Count() (int, error)
}
