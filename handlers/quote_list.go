package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/collections"
)

// QuoteListItem is one row of the quotation history.
type QuoteListItem struct {
	ID           string  `json:"id"`
	CreatedDate  string  `json:"createdDate"`
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	Location     string  `json:"location"`
	KWp          float64 `json:"kWp"`
	Phase        int     `json:"phase"`
	Salesperson  string  `json:"salespersonName"`
	Channel      string  `json:"channel"`
	GrandTotal   float64 `json:"grandTotal"`
}

// HandleQuoteList handles GET /api/quotes.
// Lists saved quotations newest first, optionally filtered by delivery
// channel via ?channel=.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		channel := e.Request.URL.Query().Get("channel")

		var (
			filter string
			params map[string]any
		)

		if channel != "" {
			filter = "channel = {:channel}"
			params = map[string]any{"channel": channel}
		} else {
			filter = "id != ''"
		}

		records, err := app.FindRecordsByFilter(
			collections.QuotesCollection,
			filter,
			"-created",
			0,
			0,
			params,
		)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			records = nil
		}

		items := make([]QuoteListItem, 0, len(records))
		for _, rec := range records {
			createdDate := ""
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				createdDate = dt.Time().Format("02 Jan 2006")
			}
			items = append(items, QuoteListItem{
				ID:           rec.Id,
				CreatedDate:  createdDate,
				CustomerName: rec.GetString("customer_name"),
				Phone:        rec.GetString("customer_phone"),
				Location:     rec.GetString("location"),
				KWp:          rec.GetFloat("kwp"),
				Phase:        rec.GetInt("phase"),
				Salesperson:  rec.GetString("salesperson_name"),
				Channel:      rec.GetString("channel"),
				GrandTotal:   rec.GetFloat("grand_total"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"quotes": items})
	}
}
