// Package pdf implementa la generación del Reporte de Valoración de
// Inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Fecha del reporte           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Categoría | Stock | Mín | Precio   │
//	│         | Costo | Valor                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Productos / Unidades / Valor / Utilidad potencial │
//	│  FOOTER: conteo de productos en stock bajo                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	appreports "github.com/geeky-dawood/snackstock-api/internal/application/reports"
	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
	domaininv "github.com/geeky-dawood/snackstock-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInventoryReport implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoInventoryReport struct {
	businessName string
}

// NewMarotoInventoryReport construye el generador.
func NewMarotoInventoryReport(businessName string) *MarotoInventoryReport {
	return &MarotoInventoryReport{businessName: businessName}
}

// Ensure MarotoInventoryReport implements the port.
var _ appreports.InventoryPDFGenerator = (*MarotoInventoryReport)(nil)

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoInventoryReport) GenerateInventoryPDF(
	_ context.Context,
	products []*entity.Product,
	totals appreports.InventoryTotals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totals))
	m.AddRows(footerRow(totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y fecha del reporte (der).
func headerRow(businessName string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de valoración de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Mín", 1, align.Right),
		h("Precio", 1, align.Right),
		h("Costo", 1, align.Right),
		h("Valor", 1, align.Right),
	)
}

// productRow: fila de detalle; productos en stock bajo van en rojo.
func productRow(p *entity.Product) core.Row {
	color := colorGray
	if p.IsLowStock() {
		color = colorAlert
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Color: color, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		cell(p.SKU, 2, align.Left),
		cell(p.Name, 3, align.Left),
		cell(p.Category, 2, align.Left),
		cell(fmt.Sprintf("%d", p.Stock), 1, align.Right),
		cell(fmt.Sprintf("%d", p.MinStock), 1, align.Right),
		cell(p.Price.StringFixed(2), 1, align.Right),
		cell(p.Cost.StringFixed(2), 1, align.Right),
		cell(domaininv.StockValue(p).StringFixed(2), 1, align.Right),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(totals appreports.InventoryTotals) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label(fmt.Sprintf("Productos: %d   Unidades: %d", totals.TotalProducts, totals.TotalUnits), 2),
			label("Utilidad potencial:", 9),
			grandLabel("VALOR TOTAL DEL STOCK:", 17),
		),
		col.New(4).Add(
			value(totals.TotalProfit.StringFixed(2), 9),
			grandValue(totals.TotalValue.StringFixed(2), 17),
		),
		col.New(1),
	)
}

// footerRow: alerta de stock bajo al pie del reporte.
func footerRow(totals appreports.InventoryTotals) core.Row {
	msg := "Sin productos en stock bajo."
	color := colorGray
	if totals.LowStockCount > 0 {
		msg = fmt.Sprintf("%d producto(s) en o por debajo de su stock mínimo (filas en rojo).", totals.LowStockCount)
		color = colorAlert
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 7.5, Color: color, Top: 2}),
	))
}
