package services

import "time"

// DocumentVariant selects which rendition of a quotation is produced.
type DocumentVariant string

const (
	// VariantInternalSales is the sales-team copy with the margin split.
	VariantInternalSales DocumentVariant = "internal_sales"
	// VariantCustomer is the customer print copy.
	VariantCustomer DocumentVariant = "customer_facing"
	// VariantWhatsApp is the single PDF delivered over the messaging
	// channel. Its margin is folded into the base price line.
	VariantWhatsApp DocumentVariant = "single_pdf"
)

// Channel tags the delivery channel recorded with each quote.
type Channel string

const (
	ChannelWhatsApp      Channel = "whatsapp"
	ChannelSalesPrint    Channel = "sales_print"
	ChannelCustomerPrint Channel = "customer_print"
)

// Channel returns the delivery channel a variant is produced for.
func (v DocumentVariant) Channel() Channel {
	switch v {
	case VariantInternalSales:
		return ChannelSalesPrint
	case VariantCustomer:
		return ChannelCustomerPrint
	default:
		return ChannelWhatsApp
	}
}

// CustomerInfo identifies the quote recipient.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PriceLine is one row of the itemized price table.
type PriceLine struct {
	Label  string
	Amount float64
	Indent bool
}

// QuoteDocument is a fully resolved quotation ready for rendering. It is
// built from an already-computed PriceBreakdown and never recomputes or
// validates any amount.
type QuoteDocument struct {
	Variant    DocumentVariant
	Company    CompanyInfo
	Customer   CustomerInfo
	Date       string
	SystemKWp  float64
	Phase      int
	ModuleWatt int
	ModuleQty  int
	Components []QuoteComponent
	Lines      []PriceLine
	Subtotal   float64
	GSTAmount  float64
	Total      float64
	Discount   float64
	GrandTotal float64
	TaxRate    float64
	Footer     string
}

const (
	footerInternal = "For internal sales use only - not for customer distribution."
	footerCustomer = "Thank you for choosing Arpit Solar. We look forward to powering your home."
	footerWhatsApp = "This is a computer-generated quotation."
)

// BuildQuoteDocument assembles the rendition of a breakdown for the given
// variant. Base Price is always listed; every other line item appears only
// when strictly positive. The internal sales copy carries the vendor and
// salesperson margin sub-lines as a pair; the WhatsApp rendition shows
// base price and margin as one combined number.
func BuildQuoteDocument(b PriceBreakdown, p *Product, cust CustomerInfo, comps []QuoteComponent, variant DocumentVariant, taxRate float64, date time.Time) QuoteDocument {
	doc := QuoteDocument{
		Variant:    variant,
		Company:    Company,
		Customer:   withFallbacks(cust),
		Date:       date.Format("02/01/2006"),
		TaxRate:    taxRate,
		Subtotal:   b.Subtotal,
		GSTAmount:  b.GSTAmount,
		Total:      b.Total,
		Discount:   b.Discount,
		GrandTotal: b.GrandTotal,
	}

	if p != nil {
		doc.SystemKWp = p.KWp
		doc.Phase = p.Phase
		doc.ModuleWatt = p.ModuleWatt
		doc.ModuleQty = p.ModuleQty
	}

	basePrice := b.BasePrice
	if variant == VariantWhatsApp {
		// The messaging copy never itemizes the margin.
		basePrice += b.MarginPrice
	}
	doc.Lines = append(doc.Lines, PriceLine{Label: "Base System Price", Amount: basePrice})

	if variant != VariantWhatsApp && b.MarginPrice > 0 {
		doc.Lines = append(doc.Lines, PriceLine{Label: "Extra Margin", Amount: b.MarginPrice})
		if variant == VariantInternalSales {
			doc.Lines = append(doc.Lines,
				PriceLine{Label: "Vendor Margin (60%)", Amount: b.VendorMarginShare(), Indent: true},
				PriceLine{Label: "Salesperson Margin (40%)", Amount: b.SalespersonMarginShare(), Indent: true},
			)
		}
	}

	if b.WirePrice > 0 {
		doc.Lines = append(doc.Lines, PriceLine{Label: "Extra Wire Cost", Amount: b.WirePrice})
	}
	if b.HeightPrice > 0 {
		doc.Lines = append(doc.Lines, PriceLine{Label: "Extra Height Cost", Amount: b.HeightPrice})
	}
	if b.OutOfAreaPrice > 0 {
		doc.Lines = append(doc.Lines, PriceLine{Label: outOfAreaLabel(variant), Amount: b.OutOfAreaPrice})
	}

	switch variant {
	case VariantInternalSales:
		doc.Footer = footerInternal
	case VariantCustomer:
		doc.Footer = footerCustomer
		doc.Components = comps
	default:
		doc.Footer = footerWhatsApp
		doc.Components = comps
	}

	return doc
}

// outOfAreaLabel keeps the blunt internal wording off customer copies.
func outOfAreaLabel(variant DocumentVariant) string {
	if variant == VariantInternalSales {
		return "Out of Varanasi Charge"
	}
	return "Logistics & Delivery Fee"
}

func withFallbacks(c CustomerInfo) CustomerInfo {
	if c.Name == "" {
		c.Name = "N/A"
	}
	if c.Phone == "" {
		c.Phone = "N/A"
	}
	if c.Address == "" {
		c.Address = "N/A"
	}
	return c
}
