package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/collections"
	"solarquote/config"
	"solarquote/handlers"
	"solarquote/services"
)

func main() {
	cfg, err := config.Load(os.Getenv("SOLAR_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app := pocketbase.New()

	// Create collections on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	waClient := services.NewWhatsAppClient(
		cfg.WhatsApp.APIURL,
		cfg.WhatsApp.APIKey,
		cfg.WhatsApp.SenderPhone,
		cfg.WhatsApp.Template,
		cfg.WhatsApp.MaxAttempts,
	)

	taxRate := cfg.Pricing.TaxRate

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Pricing & catalog ────────────────────────────────────
		se.Router.POST("/api/calculate", handlers.HandleCalculate(app, taxRate))
		se.Router.GET("/api/catalog", handlers.HandleCatalog(app))

		// ── Quotation documents ─────────────────────────────────
		se.Router.POST("/api/quote", handlers.HandleQuoteSend(app, waClient, cfg.App.PublicURL, taxRate))
		se.Router.POST("/api/quote/print", handlers.HandleQuotePrint(app, taxRate))

		// ── Quote history ───────────────────────────────────────
		se.Router.POST("/api/quotes", handlers.HandleQuoteSave(app, taxRate))
		se.Router.GET("/api/quotes", handlers.HandleQuoteList(app))
		se.Router.GET("/api/quotes/export/excel", handlers.HandleQuoteExportExcel(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
