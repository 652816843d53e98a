// Package pdf implementa la representación imprimible de una factura
// (recibo) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Recibo de factura │ id + fecha     │
//	│  ─────────────────────────────────────────  │
//	│  CLIENTE: nombre + contacto (si existe)     │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Descripción | Cantidad | Estado     │
//	│  ─────────────────────────────────────────  │
//	│  TOTAL                                      │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/Clientes-api/internal/application/billing"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa billing.ReceiptPDFGenerator con Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
// customer puede ser nil si la referencia blanda ya no resuelve.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	bill *entity.Bill,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de factura", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if customer != nil {
		m.AddRows(customerRow(customer))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}
	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(bill))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) e identificación de la factura (der).
func headerRow(bill *entity.Bill) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Recibo de factura", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Factura: "+bill.ID, props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New("Fecha: "+bill.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 7,
			}),
		),
	)
}

// customerRow: datos del cliente referenciado.
func customerRow(c *entity.Customer) core.Row {
	contact := c.Email
	if c.Phone != "" {
		contact += " · " + c.Phone
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Cliente: "+c.FirstName+" "+c.LastName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1,
			}),
			text.New(contact, props.Text{Size: 8, Color: colorGray, Top: 7}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(8).Add(
		col.New(6).Add(text.New("Descripción", header)),
		col.New(3).Add(text.New("Cantidad", header)),
		col.New(3).Add(text.New("Estado", header)),
	)
}

func detailRow(bill *entity.Bill) core.Row {
	desc := bill.Description
	if desc == "" {
		desc = "—"
	}
	return row.New(8).Add(
		col.New(6).Add(text.New(desc, props.Text{Size: 9})),
		col.New(3).Add(text.New(bill.Quantity.String(), props.Text{Size: 9})),
		col.New(3).Add(text.New(bill.Status, props.Text{Size: 9})),
	)
}

func totalRow(bill *entity.Bill) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("TOTAL: "+bill.Amount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}
