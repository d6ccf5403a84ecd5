package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"

	"solarquote/collections"
	"solarquote/services"
)

// HandleQuoteSend handles POST /api/quote.
// It prices the system, renders the single-PDF quotation, stores it on the
// quote record and delivers it to the customer over WhatsApp. The stored
// file doubles as the public URL the template message points at.
func HandleQuoteSend(app *pocketbase.PocketBase, client *services.WhatsAppClient, publicURL string, taxRate float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in QuoteInput
		if err := e.BindBody(&in); err != nil {
			log.Printf("quote_send: bad request body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		if in.product() == nil {
			return e.String(http.StatusBadRequest, "Unknown system size")
		}

		if !services.ValidatePhone(in.Customer.Phone) {
			return e.String(http.StatusBadRequest, "Please enter a valid 10-digit phone number")
		}

		b := services.ComputeBreakdown(in.toQuoteRequest(), taxRate)
		doc := services.BuildQuoteDocument(b, in.product(), in.Customer,
			services.DefaultComponents, services.VariantWhatsApp, taxRate, time.Now())

		pdfBytes, err := services.RenderQuotePDF(doc)
		if err != nil {
			log.Printf("quote_send: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		record, err := saveQuoteRecord(app, in, b, services.ChannelWhatsApp, taxRate)
		if err != nil {
			log.Printf("quote_send: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to save quote")
		}

		pdfFile, err := filesystem.NewFileFromBytes(pdfBytes, quoteFilename(in.Customer.Name))
		if err != nil {
			log.Printf("quote_send: failed to wrap PDF file: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to store PDF file")
		}
		record.Set("pdf", pdfFile)
		if err := app.Save(record); err != nil {
			log.Printf("quote_send: failed to attach PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to store PDF file")
		}

		pdfURL := fmt.Sprintf("%s/api/files/%s/%s/%s",
			strings.TrimRight(publicURL, "/"),
			collections.QuotesCollection, record.Id, record.GetString("pdf"))

		if err := client.SendQuotationDocument(e.Request.Context(), in.Customer.Phone, pdfURL); err != nil {
			log.Printf("quote_send: delivery failed for %s: %v", in.Customer.Phone, err)
			return e.String(http.StatusBadGateway, "Failed to send quotation over WhatsApp")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"message": "Quotation sent successfully!",
			"quoteId": record.Id,
			"pdfUrl":  pdfURL,
		})
	}
}
