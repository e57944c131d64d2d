// Package pdf implementa la versión imprimible del tablero de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sistema de Gestão de Estoque  │  Fecha generación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Valor stock | Productos | Movim. | Clientes       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Produtos com Estoque Baixo                           │
//	│        Código | Nome | Quantidade | Quantidade mínima        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MOVIMIENTOS POR TIPO: entrada / salida con unidades         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/report"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 176, Green: 32, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	data report.InventoryReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRow(data.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de bajo mínimo
	m.AddRows(sectionTitleRow("Produtos com Estoque Baixo"))
	if len(data.Summary.LowStock) == 0 {
		m.AddRows(row.New(7).Add(col.New(12).Add(
			text.New("Nenhum produto abaixo do mínimo.", props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	} else {
		m.AddRows(lowStockHeaderRow())
		for _, r := range lowStockRows(data.Summary.LowStock) {
			m.AddRows(r)
		}
	}

	// Movimientos por tipo
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("Movimentação por Tipo"))
	for _, r := range byKindRows(data.Summary.MovementsByKind) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del sistema (izq) y fecha de generación (der).
func headerRow(data report.InventoryReportData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Sistema de Gestão de Estoque", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Peças para caminhões", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("RELATÓRIO DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Gerado em: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// metricsRow: cuatro tarjetas, como las metric cards del tablero.
func metricsRow(s dto.DashboardSummaryDTO) core.Row {
	card := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		card("Valor Total do Estoque", s.TotalStockValueLabel),
		card("Total de Produtos", strconv.Itoa(s.ProductCount)),
		card("Total de Movimentações", strconv.Itoa(s.MovementCount)),
		card("Total de Clientes", strconv.Itoa(s.CustomerCount)),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

// lowStockHeaderRow: cabecera de la tabla de bajo mínimo.
func lowStockHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Nome", 6, align.Left),
		h("Quantidade", 2, align.Right),
		h("Qtd. mínima", 2, align.Right),
	)
}

// lowStockRows: una fila por producto bajo mínimo; la cantidad en rojo.
func lowStockRows(items []dto.LowStockItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(it.Code, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(6).Add(text.New(it.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(strconv.FormatInt(it.Quantity, 10), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAlert,
			})),
			col.New(2).Add(text.New(strconv.FormatInt(it.MinQuantity, 10), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// byKindRows: totales por tipo de movimiento, con etiqueta legible.
func byKindRows(items []dto.KindTotal) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(kindLabel(it.Kind), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(strconv.FormatInt(it.Quantity, 10)+" unidades", props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(6),
		))
	}
	return result
}

func kindLabel(kind string) string {
	switch kind {
	case entity.MovementKindIn:
		return "Entrada"
	case entity.MovementKindOut:
		return "Saída"
	default:
		return kind
	}
}
