package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleCatalog handles GET /api/catalog.
// Returns the available systems and the standard component list so the
// quotation form can be populated without hardcoding prices client-side.
func HandleCatalog(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"products":   services.Products,
			"components": services.DefaultComponents,
			"company":    services.Company,
		})
	}
}
