// Package pdf implementa la generación del certificado de bautismo en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│              CERTIFICADO DE BAUTISMO (título)                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Se certifica que [Miembro] fue bautizado(a)                 │
//	│  Fecha / Lugar / Iglesia                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Firma: Pastor oficiante                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCertificadoGenerator implementa usecase.CertificadoGenerator usando Maroto v2.
type MarotoCertificadoGenerator struct{}

// NewMarotoCertificadoGenerator construye el generador.
func NewMarotoCertificadoGenerator() *MarotoCertificadoGenerator {
	return &MarotoCertificadoGenerator{}
}

// GenerarCertificado genera el PDF del certificado y devuelve sus bytes.
func (g *MarotoCertificadoGenerator) GenerarCertificado(cert usecase.CertificadoBautismo) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(25).WithBottomMargin(20).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Certificado de Bautismo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(tituloRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.8}))
	m.AddRows(line.NewRow(8))
	m.AddRows(cuerpoRows(cert)...)
	m.AddRows(line.NewRow(20))
	m.AddRows(firmaRow(cert))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar certificado: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func tituloRow() core.Row {
	return row.New(24).Add(
		col.New(12).Add(
			text.New("CERTIFICADO DE BAUTISMO", props.Text{
				Style: fontstyle.Bold, Size: 20, Align: align.Center,
				Color: colorPrimary, Top: 4,
			}),
			text.New("Iglesia Adventista del Séptimo Día", props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 16,
			}),
		),
	)
}

func cuerpoRows(cert usecase.CertificadoBautismo) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Por medio del presente se certifica que", props.Text{
				Size: 11, Align: align.Center, Top: 2,
			}),
		)),
		row.New(14).Add(col.New(12).Add(
			text.New(nonEmpty(cert.NombreMiembro, "—"), props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New("recibió el rito del bautismo por inmersión", props.Text{
				Size: 11, Align: align.Center, Top: 2,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("el día "+cert.Fecha.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 1,
			}),
		)),
	}
	if cert.Lugar != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("en "+cert.Lugar, props.Text{
				Size: 11, Align: align.Center, Top: 1,
			}),
		)))
	}
	if cert.NombreIglesia != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Iglesia: "+cert.NombreIglesia, props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)))
	}
	return rows
}

// firmaRow: línea de firma con el nombre del pastor oficiante.
func firmaRow(cert usecase.CertificadoBautismo) core.Row {
	return row.New(20).Add(
		col.New(3),
		col.New(6).Add(
			text.New("______________________________", props.Text{
				Size: 11, Align: align.Center, Top: 2,
			}),
			text.New(nonEmpty(cert.NombrePastor, "Pastor oficiante"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 9,
			}),
			text.New("Pastor oficiante", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 14,
			}),
		),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
