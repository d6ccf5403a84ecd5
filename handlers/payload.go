package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/collections"
	"solarquote/services"
)

// QuoteInput is the JSON body shared by the calculate, print, send and
// save endpoints.
type QuoteInput struct {
	KWp         float64               `json:"kWp"`
	Phase       int                   `json:"phase"`
	ExtraMargin float64               `json:"extraMargin"`
	ExtraWire   services.WireOption   `json:"extraWire"`
	ExtraHeight services.HeightOption `json:"extraHeight"`
	Location    string                `json:"location"`
	Discount    float64               `json:"discount"`
	Salesperson string                `json:"salespersonName"`
	Customer    services.CustomerInfo `json:"customerInfo"`
}

// product resolves the catalog entry for the requested size and phase.
// Returns nil when no such system exists.
func (in QuoteInput) product() *services.Product {
	if in.KWp == 0 && in.Phase == 0 {
		return services.DefaultProduct()
	}
	return services.FindProduct(in.KWp, in.Phase)
}

func (in QuoteInput) toQuoteRequest() services.QuoteRequest {
	return services.QuoteRequest{
		Product:     in.product(),
		ExtraMargin: in.ExtraMargin,
		ExtraWire:   in.ExtraWire,
		ExtraHeight: in.ExtraHeight,
		Location:    in.Location,
		Discount:    in.Discount,
	}
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// quoteFilename builds the download name for a quotation PDF.
func quoteFilename(customerName string) string {
	name := customerName
	if name == "" {
		name = "customer"
	}
	return fmt.Sprintf("quotation-%s-%d.pdf",
		strings.ToLower(sanitizeFilename(name)), time.Now().UnixMilli())
}

// saveQuoteRecord persists one quotation to the quotes collection.
// The caller decides whether a failure is fatal for the request.
func saveQuoteRecord(app *pocketbase.PocketBase, in QuoteInput, b services.PriceBreakdown, channel services.Channel, taxRate float64) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId(collections.QuotesCollection)
	if err != nil {
		return nil, fmt.Errorf("quotes collection not found: %w", err)
	}

	p := in.product()

	record := core.NewRecord(col)
	record.Set("customer_name", in.Customer.Name)
	record.Set("customer_phone", in.Customer.Phone)
	record.Set("customer_address", in.Customer.Address)
	record.Set("salesperson_name", in.Salesperson)
	record.Set("location", in.Location)
	record.Set("currency", "INR")
	if p != nil {
		record.Set("kwp", p.KWp)
		record.Set("phase", p.Phase)
		record.Set("module_watt", p.ModuleWatt)
		record.Set("qty", p.ModuleQty)
	}
	record.Set("base_price", b.BasePrice)
	record.Set("extra_margin", b.MarginPrice)
	record.Set("wire_price", b.WirePrice)
	record.Set("height_price", b.HeightPrice)
	record.Set("out_of_area_price", b.OutOfAreaPrice)
	record.Set("subtotal", b.Subtotal)
	record.Set("gst_amount", b.GSTAmount)
	record.Set("total", b.Total)
	record.Set("discount", b.Discount)
	record.Set("grand_total", b.GrandTotal)
	record.Set("tax_rate", taxRate)
	record.Set("channel", string(channel))
	record.Set("raw_payload", in)

	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}
	return record, nil
}
