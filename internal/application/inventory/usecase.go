// Package inventory contiene los casos de uso del libro de movimientos.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// MovementUseCase registra movimientos y expone las vistas del libro.
// Registrar un movimiento NO ajusta Quantity del producto referenciado:
// libro y catálogo son fuentes independientes (ver DESIGN.md).
type MovementUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// Register valida el comando y agrega el movimiento al libro. Una salida
// sin cliente se rechaza (domain.ErrCustomerRequired); una entrada con
// cliente también se rechaza. product_name y customer_name no se verifican
// contra las otras tablas.
func (uc *MovementUseCase) Register(in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	movement := &entity.StockMovement{
		ID:           uuid.New().String(),
		Date:         in.ParsedDate(),
		Kind:         in.Kind,
		Quantity:     in.Quantity,
		ProductName:  in.ProductName,
		Reason:       in.Reason,
		Value:        in.Value,
		CustomerName: in.CustomerName,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Add(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// List devuelve el snapshot completo del libro en orden de inserción.
func (uc *MovementUseCase) List() (*dto.MovementListResponse, error) {
	list, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// ByKind agrega el libro por tipo de movimiento (unidades sumadas), en
// orden determinista por nombre de tipo. Solo aparecen tipos presentes.
func (uc *MovementUseCase) ByKind() (*dto.MovementsByKindResponse, error) {
	list, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	totals := domaininv.AggregateByKind(list)
	items := make([]dto.KindTotal, 0, len(totals))
	for _, t := range totals {
		items = append(items, dto.KindTotal{Kind: t.Kind, Quantity: t.Quantity})
	}
	return &dto.MovementsByKindResponse{Items: items}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:           m.ID,
		Date:         m.Date.Format(dto.MovementDateLayout),
		Kind:         m.Kind,
		Quantity:     m.Quantity,
		ProductName:  m.ProductName,
		Reason:       m.Reason,
		Value:        m.Value,
		CustomerName: m.CustomerName,
		CreatedAt:    m.CreatedAt,
	}
}
