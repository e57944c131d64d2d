package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del libro de movimientos.
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Agrega un movimiento al libro. No ajusta la cantidad del
//
//	producto referenciado: libro y catálogo son independientes.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "date (YYYY-MM-DD), kind (in|out), quantity, product_name, reason (purchase|sale|loss), value, customer_name (solo out)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUSTOMER_REQUIRED", Message: "customer_name es requerido en movimientos de salida"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ByKind godoc
// @Summary      Movimientos agregados por tipo
// @Description  Unidades sumadas por tipo de movimiento, para el gráfico de barras.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.MovementsByKindResponse
// @Router       /api/movements/by-kind [get]
func (h *InventoryHandler) ByKind(c *fiber.Ctx) error {
	out, err := h.uc.ByKind()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
