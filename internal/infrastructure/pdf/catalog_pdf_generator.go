// Package pdf implementa la exportación del catálogo de plantas como PDF
// (reporte del dashboard de administración).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Catálogo de Plantas + fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre común | Nombre científico | Género | ★ Prom.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de plantas                                    │
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

	"github.com/jstringer1212/plant-review-api/internal/application/export"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementa export.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// GenerateCatalogPDF genera el PDF del catálogo y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(_ context.Context, plants []*repository.PlantWithRating) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de Plantas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(plants) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(plants)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Catálogo de Plantas", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nombre común", 3, align.Left),
		h("Nombre científico", 3, align.Left),
		h("Género", 2, align.Left),
		h("Reseñas", 2, align.Center),
		h("Calificación", 2, align.Right),
	)
}

func tableRows(plants []*repository.PlantWithRating) []core.Row {
	result := make([]core.Row, 0, len(plants))
	for _, pw := range plants {
		p := pw.Plant
		rating := "—"
		if pw.ReviewCount > 0 {
			rating = pw.AvgRating.StringFixed(2) + " / 5"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(p.CName, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(p.SName, props.Text{Size: 8, Top: 1, Style: fontstyle.Italic})),
			col.New(2).Add(text.New(p.Genus, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", pw.ReviewCount), props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(2).Add(text.New(rating, props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d plantas", total), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
