package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func product(code string, qty, min int64, cost string) *entity.Product {
	return &entity.Product{
		Code:        code,
		Name:        "Produto " + code,
		Quantity:    qty,
		MinQuantity: min,
		UnitCost:    decimal.RequireFromString(cost),
	}
}

func movement(kind string, qty int64) *entity.StockMovement {
	return &entity.StockMovement{Kind: kind, Quantity: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// TotalStockValue
// ──────────────────────────────────────────────────────────────────────────────

// La valorización es la suma de quantity × unit_cost de todos los productos.
func TestTotalStockValue_SumaCantidadPorCosto(t *testing.T) {
	products := []*entity.Product{
		product("P001", 10, 20, "100.00"), // 1000.00
		product("P002", 3, 1, "19.90"),    // 59.70
		product("P003", 0, 5, "500.00"),   // 0.00
	}

	got := inventory.TotalStockValue(products)

	want := decimal.RequireFromString("1059.70")
	assert.True(t, got.Equal(want), "valorización esperada %s, obtenida %s", want, got)
}

// Recalcular dos veces sin mutaciones intermedias da el mismo resultado.
func TestTotalStockValue_Idempotente(t *testing.T) {
	products := []*entity.Product{
		product("P001", 7, 2, "123.45"),
		product("P002", 11, 3, "0.99"),
	}

	first := inventory.TotalStockValue(products)
	second := inventory.TotalStockValue(products)

	assert.True(t, first.Equal(second), "dos recomputaciones deben coincidir")
}

func TestTotalStockValue_CatalogoVacio(t *testing.T) {
	got := inventory.TotalStockValue(nil)
	assert.True(t, got.IsZero(), "catálogo vacío debe valer cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock
// ──────────────────────────────────────────────────────────────────────────────

// El reporte contiene exactamente los productos con quantity < min_quantity.
func TestLowStock_MembresiaExacta(t *testing.T) {
	below := product("P001", 10, 20, "1.00")
	atMin := product("P002", 5, 5, "1.00") // igual al mínimo: NO es bajo stock
	above := product("P003", 50, 10, "1.00")

	got := inventory.LowStock([]*entity.Product{below, atMin, above})

	require.Len(t, got, 1)
	assert.Equal(t, "P001", got[0].Code)
}

// El filtro preserva el orden del catálogo.
func TestLowStock_PreservaOrden(t *testing.T) {
	products := []*entity.Product{
		product("P003", 1, 9, "1.00"),
		product("P001", 2, 9, "1.00"),
		product("P002", 99, 9, "1.00"),
		product("P005", 3, 9, "1.00"),
	}

	got := inventory.LowStock(products)

	require.Len(t, got, 3)
	assert.Equal(t, "P003", got[0].Code)
	assert.Equal(t, "P001", got[1].Code)
	assert.Equal(t, "P005", got[2].Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// AggregateByKind
// ──────────────────────────────────────────────────────────────────────────────

// Las sumas coinciden con un groupby manual: [in 5, out 3, in 2] → in 7, out 3.
func TestAggregateByKind_GroupbyManual(t *testing.T) {
	movs := []*entity.StockMovement{
		movement(entity.MovementKindIn, 5),
		movement(entity.MovementKindOut, 3),
		movement(entity.MovementKindIn, 2),
	}

	got := inventory.AggregateByKind(movs)

	require.Len(t, got, 2)
	// Orden determinista: alfabético por tipo ("in" < "out")
	assert.Equal(t, inventory.KindTotal{Kind: entity.MovementKindIn, Quantity: 7}, got[0])
	assert.Equal(t, inventory.KindTotal{Kind: entity.MovementKindOut, Quantity: 3}, got[1])
}

// Sin relleno de ceros: un tipo ausente del libro no aparece en el resultado.
func TestAggregateByKind_SinCerosParaAusentes(t *testing.T) {
	movs := []*entity.StockMovement{
		movement(entity.MovementKindIn, 4),
		movement(entity.MovementKindIn, 1),
	}

	got := inventory.AggregateByKind(movs)

	require.Len(t, got, 1)
	assert.Equal(t, entity.MovementKindIn, got[0].Kind)
	assert.Equal(t, int64(5), got[0].Quantity)
}

func TestAggregateByKind_LibroVacio(t *testing.T) {
	got := inventory.AggregateByKind(nil)
	assert.Empty(t, got)
}
