package services

import (
	"bytes"
	"testing"
)

func TestRenderQuotePDF_Complete(t *testing.T) {
	doc := BuildQuoteDocument(
		fullBreakdown(),
		&threePhase504,
		CustomerInfo{Name: "Ravi Kumar", Phone: "9876543210", Address: "Sigra, Varanasi"},
		DefaultComponents,
		VariantWhatsApp,
		DefaultGSTRate,
		docTestDate,
	)

	result, err := RenderQuotePDF(doc)
	if err != nil {
		t.Fatalf("RenderQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("RenderQuotePDF() returned empty bytes")
	}
	if !bytes.HasPrefix(result, []byte("%PDF")) {
		t.Errorf("output does not start with PDF magic bytes: %q", result[:8])
	}
}

func TestRenderQuotePDF_AllVariants(t *testing.T) {
	b := fullBreakdown()
	cust := CustomerInfo{Name: "Ravi Kumar", Phone: "9876543210", Address: "Sigra, Varanasi"}

	for _, variant := range []DocumentVariant{VariantInternalSales, VariantCustomer, VariantWhatsApp} {
		t.Run(string(variant), func(t *testing.T) {
			doc := BuildQuoteDocument(b, &threePhase504, cust, DefaultComponents, variant, DefaultGSTRate, docTestDate)
			result, err := RenderQuotePDF(doc)
			if err != nil {
				t.Fatalf("RenderQuotePDF(%s) error = %v", variant, err)
			}
			if len(result) == 0 {
				t.Errorf("RenderQuotePDF(%s) returned empty bytes", variant)
			}
		})
	}
}

func TestRenderQuotePDF_MinimalDocument(t *testing.T) {
	// No add-ons, no components, missing customer fields.
	b := ComputeBreakdown(QuoteRequest{Product: &threePhase504, Location: HomeServiceArea}, DefaultGSTRate)
	doc := BuildQuoteDocument(b, &threePhase504, CustomerInfo{}, nil, VariantCustomer, DefaultGSTRate, docTestDate)

	result, err := RenderQuotePDF(doc)
	if err != nil {
		t.Fatalf("RenderQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("RenderQuotePDF() returned empty bytes")
	}
}
