package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	products  *memory.ProductRepo
	movements *memory.StockMovementRepo
	customers *memory.CustomerRepo
	uc        *analytics.DashboardUseCase
}

func newFixture() *fixture {
	products := memory.NewProductRepository()
	movements := memory.NewStockMovementRepository()
	customers := memory.NewCustomerRepository()
	return &fixture{
		products:  products,
		movements: movements,
		customers: customers,
		uc:        analytics.NewDashboardUseCase(products, movements, customers),
	}
}

// Escenario del tablero: P001 con 10 unidades a 100.00, mínimo 20.
func (f *fixture) seedP001(t *testing.T) {
	t.Helper()
	err := f.products.Add(&entity.Product{
		Code:        "P001",
		Name:        "Pneu 295/80R22.5",
		Quantity:    10,
		MinQuantity: 20,
		UnitCost:    decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de punta a punta: valorización 1000.00 y P001 en bajo mínimo.
func TestGetSummary_EscenarioP001(t *testing.T) {
	f := newFixture()
	f.seedP001(t)

	summary, err := f.uc.GetSummary()
	require.NoError(t, err)

	assert.True(t, summary.TotalStockValue.Equal(decimal.RequireFromString("1000.00")),
		"valorización esperada 1000.00, obtenida %s", summary.TotalStockValue)
	assert.Equal(t, 1, summary.ProductCount)
	assert.Equal(t, 0, summary.MovementCount)
	assert.Equal(t, 0, summary.CustomerCount)

	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "P001", summary.LowStock[0].Code)
}

// Registrar una salida incrementa movement_count y el total por tipo, pero
// NO toca la cantidad del producto en el catálogo.
func TestGetSummary_MovimientoNoAjustaStock(t *testing.T) {
	f := newFixture()
	f.seedP001(t)

	before, err := f.uc.GetSummary()
	require.NoError(t, err)

	err = f.movements.Add(&entity.StockMovement{
		Date:         time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Kind:         entity.MovementKindOut,
		Quantity:     5,
		ProductName:  "P001",
		Reason:       entity.MovementReasonSale,
		Value:        decimal.RequireFromString("350.00"),
		CustomerName: "Transportadora ABC",
	})
	require.NoError(t, err)

	after, err := f.uc.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, before.MovementCount+1, after.MovementCount)
	require.Len(t, after.MovementsByKind, 1)
	assert.Equal(t, entity.MovementKindOut, after.MovementsByKind[0].Kind)
	assert.Equal(t, int64(5), after.MovementsByKind[0].Quantity)

	// La cantidad en catálogo queda intacta: libro y catálogo son independientes.
	products, err := f.products.All()
	require.NoError(t, err)
	assert.Equal(t, int64(10), products[0].Quantity)
	assert.True(t, after.TotalStockValue.Equal(before.TotalStockValue),
		"la valorización no debe cambiar por registrar un movimiento")
}

// El resumen se recalcula en cada llamada, sin estado viejo en caché.
func TestGetSummary_SinCache(t *testing.T) {
	f := newFixture()
	f.seedP001(t)

	first, err := f.uc.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 1, first.ProductCount)

	err = f.products.Add(&entity.Product{
		Code:        "P002",
		Quantity:    4,
		MinQuantity: 1,
		UnitCost:    decimal.RequireFromString("2.50"),
	})
	require.NoError(t, err)

	second, err := f.uc.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 2, second.ProductCount)
	assert.True(t, second.TotalStockValue.Equal(decimal.RequireFromString("1010.00")))
}

// Etiqueta monetaria en formato pt-BR.
func TestMoneyLabel_FormatoBrasileno(t *testing.T) {
	f := newFixture()

	got := f.uc.MoneyLabel(decimal.RequireFromString("1234.56"))
	assert.Equal(t, "R$ 1.234,56", got)

	got = f.uc.MoneyLabel(decimal.RequireFromString("0"))
	assert.Equal(t, "R$ 0,00", got)
}
