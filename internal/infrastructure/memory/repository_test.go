package memory_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// ProductRepo
// ──────────────────────────────────────────────────────────────────────────────

// Tras N altas, All devuelve N filas en el orden de las llamadas.
func TestProductRepo_AppendPreservaOrden(t *testing.T) {
	repo := memory.NewProductRepository()

	const n = 25
	for i := 0; i < n; i++ {
		err := repo.Add(&entity.Product{Code: fmt.Sprintf("P%03d", i)})
		require.NoError(t, err)
	}

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, n)
	for i, p := range all {
		assert.Equal(t, fmt.Sprintf("P%03d", i), p.Code, "fila %d fuera de orden", i)
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

// El snapshot es una copia: agregar después no altera snapshots previos.
func TestProductRepo_SnapshotEsCopia(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Add(&entity.Product{Code: "P001"}))

	before, err := repo.All()
	require.NoError(t, err)

	require.NoError(t, repo.Add(&entity.Product{Code: "P002"}))
	assert.Len(t, before, 1, "el snapshot anterior no debe crecer")
}

// Code duplicado se acepta: el catálogo no exige unicidad.
func TestProductRepo_CodeDuplicadoAceptado(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Add(&entity.Product{Code: "P001", Name: "uno"}))
	require.NoError(t, repo.Add(&entity.Product{Code: "P001", Name: "dos"}))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestProductRepo_BelowMinimum(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Add(&entity.Product{Code: "P001", Quantity: 10, MinQuantity: 20}))
	require.NoError(t, repo.Add(&entity.Product{Code: "P002", Quantity: 30, MinQuantity: 20}))
	require.NoError(t, repo.Add(&entity.Product{Code: "P003", Quantity: 2, MinQuantity: 5}))

	low, err := repo.BelowMinimum()
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "P001", low[0].Code)
	assert.Equal(t, "P003", low[1].Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockMovementRepo
// ──────────────────────────────────────────────────────────────────────────────

// El libro es append-only y conserva el orden de inserción, no el de fecha.
func TestStockMovementRepo_OrdenDeInsercion(t *testing.T) {
	repo := memory.NewStockMovementRepository()

	first := &entity.StockMovement{Kind: entity.MovementKindIn, Quantity: 5, Value: decimal.New(10, 0)}
	second := &entity.StockMovement{Kind: entity.MovementKindOut, Quantity: 3, Value: decimal.New(20, 0)}
	require.NoError(t, repo.Add(first))
	require.NoError(t, repo.Add(second))

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Same(t, first, all[0])
	assert.Same(t, second, all[1])

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// ──────────────────────────────────────────────────────────────────────────────
// CustomerRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerRepo_AddYCount(t *testing.T) {
	repo := memory.NewCustomerRepository()
	require.NoError(t, repo.Add(&entity.Customer{Name: "Transportadora ABC"}))
	require.NoError(t, repo.Add(&entity.Customer{Name: "Frota Nacional Ltda"}))

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
