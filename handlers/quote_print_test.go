package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solarquote/services"
	"solarquote/testhelpers"
)

func TestHandleQuotePrint_SalesVariant(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotePrint(app, services.DefaultGSTRate)

	req := newJSONRequest("/api/quote/print?variant=sales", quoteBody)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "quotation-ravi-kumar-") {
		t.Errorf("unexpected disposition %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("expected PDF body")
	}

	// The printout is recorded against the sales channel.
	records, err := app.FindAllRecords("quotes")
	if err != nil {
		t.Fatalf("find quotes: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("quote count = %d, want 1", len(records))
	}
	if got := records[0].GetString("channel"); got != "sales_print" {
		t.Errorf("channel = %q, want sales_print", got)
	}
}

func TestHandleQuotePrint_CustomerVariant(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotePrint(app, services.DefaultGSTRate)

	req := newJSONRequest("/api/quote/print?variant=customer", quoteBody)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	records, err := app.FindAllRecords("quotes")
	if err != nil {
		t.Fatalf("find quotes: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("quote count = %d, want 1", len(records))
	}
	if got := records[0].GetString("channel"); got != "customer_print" {
		t.Errorf("channel = %q, want customer_print", got)
	}
}

func TestHandleQuotePrint_CustomerVariantRequiresPhone(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotePrint(app, services.DefaultGSTRate)

	req := newJSONRequest("/api/quote/print?variant=customer", badPhoneBody)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if got := testhelpers.CountQuotes(t, app); got != 0 {
		t.Errorf("quote count = %d, want 0", got)
	}
}

func TestHandleQuotePrint_SalesVariantSkipsPhoneGate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotePrint(app, services.DefaultGSTRate)

	req := newJSONRequest("/api/quote/print?variant=sales", badPhoneBody)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleQuotePrint_UnknownVariant(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotePrint(app, services.DefaultGSTRate)

	req := newJSONRequest("/api/quote/print?variant=vendor", quoteBody)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
