package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleCalculate handles POST /api/calculate.
// It prices the requested system without persisting anything so the
// UI can show live totals while the salesperson adjusts add-ons.
func HandleCalculate(app *pocketbase.PocketBase, taxRate float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in QuoteInput
		if err := e.BindBody(&in); err != nil {
			log.Printf("calculate: bad request body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		if in.product() == nil {
			return e.String(http.StatusBadRequest, "Unknown system size")
		}

		b := services.ComputeBreakdown(in.toQuoteRequest(), taxRate)

		return e.JSON(http.StatusOK, map[string]any{
			"breakdown":         b,
			"vendorMargin":      services.Round2(b.VendorMarginShare()),
			"salespersonMargin": services.Round2(b.SalespersonMarginShare()),
		})
	}
}
