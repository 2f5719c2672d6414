// Package pdf implementa la exportación del reporte de productos usando
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Estoque + fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nome | Categoria | Qtd | Preço de Custo | Local |    │
//	│         Última Atualização                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de productos listados                            │
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

	"github.com/tu-usuario/estoque-pro/internal/application/ports"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

var _ ports.ProductExporter = (*MarotoProductExporter)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorZebra   = &props.Color{Red: 240, Green: 244, Blue: 250}
)

// MarotoProductExporter genera el reporte de productos en PDF.
type MarotoProductExporter struct {
	now func() time.Time
}

// NewMarotoProductExporter construye el exportador.
func NewMarotoProductExporter() *MarotoProductExporter {
	return &MarotoProductExporter{now: time.Now}
}

// ExportProducts genera el PDF con la tabla de productos y devuelve sus bytes.
func (g *MarotoProductExporter) ExportProducts(_ context.Context, products []entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for i, p := range products {
		m.AddRows(productRow(p, i%2 == 1))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Relatório de Estoque", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 4, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9,
		}))
	}
	return row.New(8).Add(
		header(3, "Nome"),
		header(2, "Categoria"),
		header(1, "Qtd"),
		header(2, "Preço de Custo"),
		header(2, "Localização"),
		header(2, "Última Atualização"),
	)
}

func productRow(p entity.Product, zebra bool) core.Row {
	cell := func(size int, value string, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: alignment}))
	}

	r := row.New(6).Add(
		cell(3, p.Name, align.Left),
		cell(2, p.Category, align.Left),
		cell(1, fmt.Sprintf("%d", p.Quantity), align.Right),
		cell(2, "R$ "+p.CostPrice.StringFixed(2), align.Right),
		cell(2, p.Location, align.Left),
		cell(2, p.LastUpdated.Format("02/01/2006"), align.Left),
	)
	if zebra {
		r.WithStyle(&props.Cell{BackgroundColor: colorZebra})
	}
	return r
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de produtos: %d", total), props.Text{
				Size: 9, Style: fontstyle.Bold, Top: 2,
			}),
		),
	)
}
