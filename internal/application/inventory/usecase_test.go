package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

func newMovementUC() (*inventory.MovementUseCase, *memory.StockMovementRepo) {
	repo := memory.NewStockMovementRepository()
	return inventory.NewMovementUseCase(repo), repo
}

func outboundRequest() dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		Date:         "2026-08-30",
		Kind:         entity.MovementKindOut,
		Quantity:     5,
		ProductName:  "Pneu 295/80R22.5",
		Reason:       entity.MovementReasonSale,
		Value:        decimal.RequireFromString("350.00"),
		CustomerName: "Transportadora ABC",
	}
}

func inboundRequest() dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		Date:        "2026-08-29",
		Kind:        entity.MovementKindIn,
		Quantity:    12,
		ProductName: "Filtro de Óleo Motor",
		Reason:      entity.MovementReasonPurchase,
		Value:       decimal.RequireFromString("120.50"),
	}
}

// El registro agrega al final del libro y devuelve la entrada creada.
func TestRegister_AgregaAlLibro(t *testing.T) {
	uc, repo := newMovementUC()

	out, err := uc.Register(outboundRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "2026-08-30", out.Date)
	assert.Equal(t, entity.MovementKindOut, out.Kind)
	assert.Equal(t, "Transportadora ABC", out.CustomerName)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// Una salida sin cliente se rechaza con ErrCustomerRequired.
func TestRegister_SalidaSinClienteRechazada(t *testing.T) {
	uc, repo := newMovementUC()

	in := outboundRequest()
	in.CustomerName = ""

	_, err := uc.Register(in)
	require.ErrorIs(t, err, domain.ErrCustomerRequired)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count, "un comando rechazado no debe dejar entradas")
}

// Una entrada con cliente también se rechaza: el cliente es solo de salidas.
func TestRegister_EntradaConClienteRechazada(t *testing.T) {
	uc, _ := newMovementUC()

	in := inboundRequest()
	in.CustomerName = "Transportadora ABC"

	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newMovementUC()

	cases := []struct {
		name   string
		mutate func(*dto.RegisterMovementRequest)
	}{
		{"tipo desconocido", func(r *dto.RegisterMovementRequest) { r.Kind = "transfer" }},
		{"motivo desconocido", func(r *dto.RegisterMovementRequest) { r.Reason = "donation" }},
		{"cantidad negativa", func(r *dto.RegisterMovementRequest) { r.Quantity = -3 }},
		{"valor negativo", func(r *dto.RegisterMovementRequest) { r.Value = decimal.RequireFromString("-1") }},
		{"fecha inválida", func(r *dto.RegisterMovementRequest) { r.Date = "30/08/2026" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := outboundRequest()
			tc.mutate(&in)
			_, err := uc.Register(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// product_name no se verifica contra el catálogo (referencia débil por nombre).
func TestRegister_ProductoInexistenteAceptado(t *testing.T) {
	uc, _ := newMovementUC()

	in := outboundRequest()
	in.ProductName = "peça que não existe"

	_, err := uc.Register(in)
	assert.NoError(t, err)
}

// ByKind delega en la agregación del dominio, con orden determinista.
func TestByKind_SumasPorTipo(t *testing.T) {
	uc, _ := newMovementUC()

	in1 := inboundRequest()
	in1.Quantity = 5
	in2 := outboundRequest()
	in2.Quantity = 3
	in3 := inboundRequest()
	in3.Quantity = 2

	for _, in := range []dto.RegisterMovementRequest{in1, in2, in3} {
		_, err := uc.Register(in)
		require.NoError(t, err)
	}

	out, err := uc.ByKind()
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, dto.KindTotal{Kind: entity.MovementKindIn, Quantity: 7}, out.Items[0])
	assert.Equal(t, dto.KindTotal{Kind: entity.MovementKindOut, Quantity: 3}, out.Items[1])
}
