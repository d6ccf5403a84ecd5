// Package testhelpers provides utilities for testing the PocketBase-based
// quotation service.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuote creates a minimal quote record and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, customerName, channel string, grandTotal float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.QuotesCollection)
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer_name", customerName)
	record.Set("customer_phone", "9876543210")
	record.Set("location", "Varanasi")
	record.Set("kwp", 5.04)
	record.Set("phase", 3)
	record.Set("channel", channel)
	record.Set("tax_rate", 0.089)
	record.Set("currency", "INR")
	record.Set("grand_total", grandTotal)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CountQuotes returns the number of stored quote records.
func CountQuotes(t *testing.T, app *pocketbase.PocketBase) int {
	t.Helper()

	records, err := app.FindAllRecords(collections.QuotesCollection)
	if err != nil {
		t.Fatalf("failed to list quotes: %v", err)
	}
	return len(records)
}
