package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleQuoteSave handles POST /api/quotes.
// Records a quotation without generating or delivering a document, for
// quotes negotiated in person.
func HandleQuoteSave(app *pocketbase.PocketBase, taxRate float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in QuoteInput
		if err := e.BindBody(&in); err != nil {
			log.Printf("quote_save: bad request body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		if in.product() == nil {
			return e.String(http.StatusBadRequest, "Unknown system size")
		}

		b := services.ComputeBreakdown(in.toQuoteRequest(), taxRate)

		record, err := saveQuoteRecord(app, in, b, services.ChannelSalesPrint, taxRate)
		if err != nil {
			log.Printf("quote_save: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to save quote")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"quoteId":    record.Id,
			"grandTotal": b.GrandTotal,
		})
	}
}
