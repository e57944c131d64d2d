package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// CustomerRepository puerto del directorio de clientes (referencia estática;
// Add existe solo para cargar el fixture inicial).
type CustomerRepository interface {
	Add(c *entity.Customer) error
	All() ([]*entity.Customer, error)
	Count() (int, error)
}
