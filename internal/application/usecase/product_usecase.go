package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: alta, snapshot y reporte de
// bajo mínimo. El catálogo es append-only; no hay edición ni borrado.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto nuevo y devuelve la fila agregada.
// Solo valida rangos numéricos; code duplicado y campos vacíos se aceptan
// (contrato laxo del catálogo, ver DESIGN.md).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		UnitCost:    in.UnitCost,
		Supplier:    in.Supplier,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Add(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el snapshot completo del catálogo en orden de inserción.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// LowStock reporte de productos con quantity < min_quantity, proyectado a
// los cuatro campos de presentación, en orden de catálogo.
func (uc *ProductUseCase) LowStock() (*dto.LowStockResponse, error) {
	list, err := uc.repo.BelowMinimum()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItem, 0, len(list))
	for _, p := range list {
		items = append(items, dto.LowStockItem{
			Code:        p.Code,
			Name:        p.Name,
			Quantity:    p.Quantity,
			MinQuantity: p.MinQuantity,
		})
	}
	return &dto.LowStockResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		UnitCost:    p.UnitCost,
		Supplier:    p.Supplier,
		TotalValue:  p.TotalValue().Round(2),
		CreatedAt:   p.CreatedAt,
	}
}
