// Package fixtures genera los datos demo del sistema con un generador
// pseudoaleatorio de semilla fija: mismas tablas en cada arranque.
// Es un asunto de fixture (demo y tests), no del camino de datos de
// producción; los comandos de la API nunca pasan por aquí.
package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// DefaultSeed semilla por defecto del generador.
const DefaultSeed = 42

// Catálogo demo: diez repuestos de camión.
var productSeed = []struct {
	name     string
	category string
}{
	{"Pneu 295/80R22.5", entity.CategorySuspensionBrakes},
	{"Filtro de Óleo Motor", entity.CategoryEngine},
	{"Pastilha de Freio Dianteira", entity.CategorySuspensionBrakes},
	{"Disco de Embreagem", entity.CategoryTransmission},
	{"Radiador de Água", entity.CategoryCooling},
	{"Correia Dentada", entity.CategoryTransmission},
	{"Amortecedor Traseiro", entity.CategorySuspensionBrakes},
	{"Kit de Embreagem", entity.CategoryTransmission},
	{"Filtro de Combustível", entity.CategoryEngine},
	{"Eixo Cardan", entity.CategoryTransmission},
}

var suppliers = []string{
	"AutoPeças São Carlos",
	"Distribuidora DieselTec",
	"Mecânica Caminhões Ltda.",
}

// Products genera el catálogo demo (P001..P010). Los IDs se derivan del
// código para que el fixture sea reproducible byte a byte.
func Products(r *rand.Rand, now time.Time) []*entity.Product {
	out := make([]*entity.Product, 0, len(productSeed))
	for i, s := range productSeed {
		code := productCode(i + 1)
		out = append(out, &entity.Product{
			ID:          stableID("product:" + code),
			Code:        code,
			Name:        s.name,
			Category:    s.category,
			Quantity:    10 + r.Int63n(90), // 10..99
			MinQuantity: 5 + r.Int63n(15),  // 5..19
			UnitCost:    randomMoney(r, 100, 2000),
			Supplier:    suppliers[r.Intn(len(suppliers))],
			CreatedAt:   now,
		})
	}
	return out
}

// Movements genera veinte movimientos demo sobre el catálogo dado, con
// fechas en los últimos 30 días. Las salidas llevan un cliente del
// directorio (política de la API); las entradas van sin cliente.
func Movements(r *rand.Rand, products []*entity.Product, customers []*entity.Customer, now time.Time) []*entity.StockMovement {
	kinds := []string{entity.MovementKindIn, entity.MovementKindOut}
	reasons := []string{entity.MovementReasonPurchase, entity.MovementReasonSale, entity.MovementReasonLoss}

	out := make([]*entity.StockMovement, 0, 20)
	for i := 0; i < 20; i++ {
		kind := kinds[r.Intn(len(kinds))]
		day := now.AddDate(0, 0, -int(1+r.Int63n(29)))
		m := &entity.StockMovement{
			ID:          stableID(fmt.Sprintf("movement:%02d", i+1)),
			Date:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Kind:        kind,
			Quantity:    1 + r.Int63n(49), // 1..49
			ProductName: products[r.Intn(len(products))].Name,
			Reason:      reasons[r.Intn(len(reasons))],
			Value:       randomMoney(r, 10, 1000),
			CreatedAt:   now,
		}
		if kind == entity.MovementKindOut {
			m.CustomerName = customers[r.Intn(len(customers))].Name
		}
		out = append(out, m)
	}
	return out
}

// Customers devuelve el directorio demo (datos fijos, sin aleatoriedad).
func Customers() []*entity.Customer {
	rows := []struct{ name, taxID, phone, email, address string }{
		{"Transportadora ABC", "00.000.000/0001-91", "(11) 1111-1111", "abc@transp.com", "Rua A, 100"},
		{"Transportes Dourados", "11.111.111/1111-11", "(21) 2222-2222", "dourados@transp.com", "Avenida B, 200"},
		{"Caminhões e Cia", "22.222.222/2222-22", "(31) 3333-3333", "cia@caminhoes.com", "Estrada C, 300"},
		{"Logística São Pedro", "33.333.333/3333-33", "(41) 4444-4444", "pedro@logistica.com", "Rua D, 400"},
		{"Frota Nacional Ltda", "44.444.444/4444-44", "(51) 5555-5555", "nacional@frota.com", "Avenida E, 500"},
	}
	out := make([]*entity.Customer, 0, len(rows))
	for _, c := range rows {
		out = append(out, &entity.Customer{
			ID:      stableID("customer:" + c.taxID),
			Name:    c.name,
			TaxID:   c.taxID,
			Phone:   c.phone,
			Email:   c.email,
			Address: c.address,
		})
	}
	return out
}

// Apply siembra las tres tablas con la semilla dada.
func Apply(
	seed int64,
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	customers repository.CustomerRepository,
) error {
	r := rand.New(rand.NewSource(seed))
	now := time.Now()

	customerRows := Customers()
	for _, c := range customerRows {
		if err := customers.Add(c); err != nil {
			return err
		}
	}

	productRows := Products(r, now)
	for _, p := range productRows {
		if err := products.Add(p); err != nil {
			return err
		}
	}

	for _, m := range Movements(r, productRows, customerRows, now) {
		if err := movements.Add(m); err != nil {
			return err
		}
	}
	return nil
}

func productCode(n int) string {
	return fmt.Sprintf("P%03d", n)
}

// randomMoney valor uniforme en [min, max) redondeado a 2 decimales.
func randomMoney(r *rand.Rand, min, max float64) decimal.Decimal {
	v := min + r.Float64()*(max-min)
	return decimal.NewFromFloat(v).Round(2)
}

// stableID UUID v5 derivado de la clave, para IDs reproducibles.
func stableID(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}
