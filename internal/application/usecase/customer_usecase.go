package usecase

import (
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// CustomerUseCase lectura del directorio de clientes (referencia estática;
// los movimientos de salida lo usan como fuente de nombres).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List devuelve el snapshot completo del directorio.
func (uc *CustomerUseCase) List() (*dto.CustomerListResponse, error) {
	list, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		TaxID:   c.TaxID,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}
