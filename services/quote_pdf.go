package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// RenderQuotePDF renders an already-built QuoteDocument to PDF bytes using
// maroto/v2. It never recomputes amounts; the document is rendered as-is.
func RenderQuotePDF(doc QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, doc)
	addCustomerBlock(m, doc)
	addSystemTable(m, doc)
	addComponentsTable(m, doc)
	addPriceTable(m, doc)
	addQuoteFooter(m, doc)

	rendered, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}

	return rendered.GetBytes(), nil
}

// addQuoteHeader adds the company identity block and the QUOTATION title.
func addQuoteHeader(m core.Maroto, doc QuoteDocument) {
	grey := &props.Color{Red: 100, Green: 100, Blue: 100}

	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(
				text.New(doc.Company.Name, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(5).Add(
				text.New("QUOTATION", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(doc.Company.Address, props.Text{Size: 8, Align: align.Left, Color: grey}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("GSTIN: %s | Contact: %s | %s",
					doc.Company.GSTIN, doc.Company.Contact, doc.Company.Email),
					props.Text{Size: 8, Align: align.Left, Color: grey}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addCustomerBlock adds the recipient and quote date.
func addCustomerBlock(m core.Maroto, doc QuoteDocument) {
	label := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	value := props.Text{Size: 9, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(8).Add(text.New("TO", label)),
			col.New(4).Add(text.New(fmt.Sprintf("Date: %s", doc.Date), props.Text{Size: 9, Align: align.Right})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(doc.Customer.Name, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Address: %s", doc.Customer.Address), value)),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Phone: %s", doc.Customer.Phone), value)),
		),
	)

	m.AddRows(row.New(4))
}

// addSystemTable adds the system specification rows.
func addSystemTable(m core.Maroto, doc QuoteDocument) {
	addTableHeader(m, "Description", "Details")

	specs := []struct {
		label string
		value string
	}{
		{"System Capacity", fmt.Sprintf("%g kWp", doc.SystemKWp)},
		{"Phase", fmt.Sprintf("%d", doc.Phase)},
		{"Module Type", fmt.Sprintf("%d W", doc.ModuleWatt)},
		{"Module Quantity", fmt.Sprintf("%d", doc.ModuleQty)},
	}

	for i, s := range specs {
		addTableRow(m, i, s.label, s.value, false)
	}

	m.AddRows(row.New(4))
}

// addComponentsTable lists the supplied components, when the variant
// carries them.
func addComponentsTable(m core.Maroto, doc QuoteDocument) {
	if len(doc.Components) == 0 {
		return
	}

	addTableHeader(m, "Component", "Brand/Spec | Quantity")

	for i, c := range doc.Components {
		detail := c.Brand
		if c.Spec != "" {
			if detail != "" {
				detail += " "
			}
			detail += c.Spec
		}
		addTableRow(m, i, c.Name, fmt.Sprintf("%s | %s", detail, c.Quantity), false)
	}

	m.AddRows(row.New(4))
}

// addPriceTable adds the itemized pricing table ending in
// Subtotal, GST, Total, optional Discount, Grand Total.
func addPriceTable(m core.Maroto, doc QuoteDocument) {
	addTableHeader(m, "Pricing", "Amount")

	i := 0
	for _, line := range doc.Lines {
		label := line.Label
		if line.Indent {
			label = "    " + label
		}
		addTableRow(m, i, label, FormatINR(line.Amount), false)
		i++
	}

	addTableRow(m, i, "Subtotal", FormatINR(doc.Subtotal), true)
	i++
	addTableRow(m, i, fmt.Sprintf("GST @ %g%%", doc.TaxRate*100), FormatINR(doc.GSTAmount), false)
	i++
	addTableRow(m, i, "Total Amount", FormatINR(doc.Total), true)
	i++
	if doc.Discount > 0 {
		addTableRow(m, i, "Discount", "-"+FormatINR(doc.Discount), true)
		i++
	}

	grandBg := props.Cell{BackgroundColor: &props.Color{Red: 242, Green: 242, Blue: 242}}
	grandText := props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Left}
	grandAmount := grandText
	grandAmount.Align = align.Right
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("Grand Total", grandText)).WithStyle(&grandBg),
			col.New(4).Add(text.New(FormatINR(doc.GrandTotal), grandAmount)).WithStyle(&grandBg),
		),
	)
}

// addQuoteFooter adds the variant-specific disclaimer line.
func addQuoteFooter(m core.Maroto, doc QuoteDocument) {
	m.AddRows(
		row.New(6),
		row.New(6).Add(
			col.New(12).Add(
				text.New(doc.Footer, props.Text{
					Size:  8,
					Align: align.Center,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
	)
}

func addTableHeader(m core.Maroto, left, right string) {
	headerBg := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerRight := headerText
	headerRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New(left, headerText)).WithStyle(&headerBg),
			col.New(4).Add(text.New(right, headerRight)).WithStyle(&headerBg),
		),
	)
}

func addTableRow(m core.Maroto, index int, label, value string, bold bool) {
	cell := props.Cell{}
	if index%2 == 1 {
		cell.BackgroundColor = &props.Color{Red: 248, Green: 249, Blue: 250}
	}
	labelText := props.Text{Size: 9, Align: align.Left}
	valueText := props.Text{Size: 9, Align: align.Right}
	if bold {
		labelText.Style = fontstyle.Bold
		valueText.Style = fontstyle.Bold
	}

	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(text.New(label, labelText)).WithStyle(&cell),
			col.New(4).Add(text.New(value, valueText)).WithStyle(&cell),
		),
	)
}
