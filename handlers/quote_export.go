package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/collections"
	"solarquote/services"
)

// HandleQuoteExportExcel handles GET /api/quotes/export/excel.
// Downloads the full quotation history as a spreadsheet.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter(
			collections.QuotesCollection,
			"id != ''",
			"-created",
			0,
			0,
			nil,
		)
		if err != nil {
			log.Printf("quote_export: could not query quotes: %v", err)
			records = nil
		}

		rows := make([]services.QuoteExportRow, 0, len(records))
		for _, rec := range records {
			date := ""
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				date = dt.Time().Format("02 Jan 2006")
			}
			rows = append(rows, services.QuoteExportRow{
				Date:         date,
				CustomerName: rec.GetString("customer_name"),
				Phone:        rec.GetString("customer_phone"),
				Location:     rec.GetString("location"),
				KWp:          rec.GetFloat("kwp"),
				Phase:        rec.GetInt("phase"),
				Salesperson:  rec.GetString("salesperson_name"),
				Channel:      rec.GetString("channel"),
				Subtotal:     rec.GetFloat("subtotal"),
				GSTAmount:    rec.GetFloat("gst_amount"),
				Total:        rec.GetFloat("total"),
				Discount:     rec.GetFloat("discount"),
				GrandTotal:   rec.GetFloat("grand_total"),
			})
		}

		xlsxBytes, err := services.GenerateQuotesExcel(rows)
		if err != nil {
			log.Printf("quote_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("quotations_%d.xlsx", time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
