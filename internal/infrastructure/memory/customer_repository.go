package memory

import (
	"sync"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo directorio de clientes en memoria. Add solo se usa al cargar
// el fixture; el resto de la aplicación lo trata como referencia de lectura.
type CustomerRepo struct {
	mu   sync.RWMutex
	rows []*entity.Customer
}

// NewCustomerRepository construye un directorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{}
}

func (r *CustomerRepo) Add(c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, c)
	return nil
}

func (r *CustomerRepo) All() ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Customer, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *CustomerRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}
