package handlers

import (
	"strings"
	"testing"

	"solarquote/services"
	"solarquote/testhelpers"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Ravi Kumar", "Ravi-Kumar"},
		{"slashes to hyphens", "a/b", "a-b"},
		{"backslashes", "a\\b", "a-b"},
		{"colons", "a:b", "a-b"},
		{"no special chars", "simple", "simple"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuoteFilename(t *testing.T) {
	got := quoteFilename("Ravi Kumar")
	if !strings.HasPrefix(got, "quotation-ravi-kumar-") {
		t.Errorf("quoteFilename = %q, want quotation-ravi-kumar-<ts>.pdf", got)
	}
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("quoteFilename = %q, want .pdf suffix", got)
	}

	got = quoteFilename("")
	if !strings.HasPrefix(got, "quotation-customer-") {
		t.Errorf("quoteFilename empty name = %q, want quotation-customer-<ts>.pdf", got)
	}
}

func TestQuoteInput_ProductResolution(t *testing.T) {
	in := QuoteInput{KWp: 5.04, Phase: 3}
	p := in.product()
	if p == nil {
		t.Fatal("expected catalog match for 5.04 kWp / 3 phase")
	}
	if p.Price != 244831 {
		t.Errorf("price = %v, want 244831", p.Price)
	}

	// Zero values fall back to the default system.
	in = QuoteInput{}
	if in.product() == nil {
		t.Fatal("expected default product for zero input")
	}

	// A size that exists only on the other phase is not a match.
	in = QuoteInput{KWp: 2.24, Phase: 3}
	if in.product() != nil {
		t.Error("expected no match for 2.24 kWp / 3 phase")
	}
}

func TestSaveQuoteRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	in := QuoteInput{
		KWp:         5.04,
		Phase:       3,
		ExtraMargin: 2250,
		Location:    "Lucknow",
		Salesperson: "Amit",
		Customer:    services.CustomerInfo{Name: "Ravi Kumar", Phone: "9876543210", Address: "12 MG Road"},
	}
	b := services.ComputeBreakdown(in.toQuoteRequest(), services.DefaultGSTRate)

	rec, err := saveQuoteRecord(app, in, b, services.ChannelWhatsApp, services.DefaultGSTRate)
	if err != nil {
		t.Fatalf("saveQuoteRecord error: %v", err)
	}
	if rec.GetString("customer_name") != "Ravi Kumar" {
		t.Errorf("customer_name = %q", rec.GetString("customer_name"))
	}
	if rec.GetString("channel") != "whatsapp" {
		t.Errorf("channel = %q, want whatsapp", rec.GetString("channel"))
	}
	if rec.GetFloat("kwp") != 5.04 {
		t.Errorf("kwp = %v, want 5.04", rec.GetFloat("kwp"))
	}
	if rec.GetFloat("grand_total") != b.GrandTotal {
		t.Errorf("grand_total = %v, want %v", rec.GetFloat("grand_total"), b.GrandTotal)
	}
	if got := testhelpers.CountQuotes(t, app); got != 1 {
		t.Errorf("quote count = %d, want 1", got)
	}
}
