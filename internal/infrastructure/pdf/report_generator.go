// Package pdf renderiza reportes del panel como PDF de una página usando
// Maroto v2: encabezado con nombre y tipo, tabla clave/valor de métricas y
// pie con la fecha de generación.
package pdf

import (
	"fmt"
	"sort"
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

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 253}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Render genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Render(report dto.ReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(report.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricRows(report.Data)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte %d: %w", report.ID, err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report dto.ReportResponse) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Name, props.Text{Size: 16, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New(fmt.Sprintf("%s · %s", report.Type, report.Date), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(report.Status, props.Text{Size: 10, Align: align.Right, Style: fontstyle.Bold}),
			text.New(report.Size, props.Text{Size: 9, Top: 6, Align: align.Right, Color: colorGray}),
		),
	)
}

func metricRows(data map[string]any) []core.Row {
	// Orden alfabético: la iteración de mapas no es determinista.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]core.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, row.New(8).Add(
			col.New(6).Add(text.New(k, props.Text{Size: 10})),
			col.New(6).Add(text.New(fmt.Sprintf("%v", data[k]), props.Text{Size: 10, Align: align.Right, Style: fontstyle.Bold})),
		))
	}
	return rows
}

func footerRow() core.Row {
	generated := fmt.Sprintf("Generated at %s", time.Now().Format("2006-01-02 15:04"))
	return row.New(8).Add(
		col.New(12).Add(text.New(generated, props.Text{Size: 8, Color: colorGray})),
	)
}
