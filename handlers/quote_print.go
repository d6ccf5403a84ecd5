package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleQuotePrint handles POST /api/quote/print?variant=sales|customer.
// It renders a printable quotation PDF and records the quote. The sales
// variant carries the margin split for internal use; the customer variant
// is the clean document handed to the customer, so it requires a valid
// contact number.
func HandleQuotePrint(app *pocketbase.PocketBase, taxRate float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		variantParam := e.Request.URL.Query().Get("variant")

		var variant services.DocumentVariant
		switch variantParam {
		case "sales":
			variant = services.VariantInternalSales
		case "customer":
			variant = services.VariantCustomer
		default:
			return e.String(http.StatusBadRequest, "Unknown print variant")
		}

		var in QuoteInput
		if err := e.BindBody(&in); err != nil {
			log.Printf("quote_print: bad request body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		if in.product() == nil {
			return e.String(http.StatusBadRequest, "Unknown system size")
		}

		if variant == services.VariantCustomer && !services.ValidatePhone(in.Customer.Phone) {
			return e.String(http.StatusBadRequest, "Please enter a valid 10-digit phone number")
		}

		b := services.ComputeBreakdown(in.toQuoteRequest(), taxRate)
		doc := services.BuildQuoteDocument(b, in.product(), in.Customer,
			services.DefaultComponents, variant, taxRate, time.Now())

		pdfBytes, err := services.RenderQuotePDF(doc)
		if err != nil {
			log.Printf("quote_print: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		// The printout is the deliverable; a failed history entry should
		// not block it.
		if _, err := saveQuoteRecord(app, in, b, variant.Channel(), taxRate); err != nil {
			log.Printf("quote_print: failed to record quote: %v", err)
		}

		filename := quoteFilename(in.Customer.Name)

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
