package services

import "math"

const (
	// DefaultGSTRate is the GST rate applied when no rate is configured.
	DefaultGSTRate = 0.089

	// ExtraHeightRate is charged per unit of extra mounting height per kWp
	// of system size. The size scaling is intentional pricing policy.
	ExtraHeightRate = 1500
)

// WireOption describes the optional extra-cable add-on.
type WireOption struct {
	Enabled      bool    `json:"enabled"`
	LengthMeters float64 `json:"lengthMeters"`
}

// HeightOption describes the optional extra-mounting-height add-on.
type HeightOption struct {
	Enabled bool    `json:"enabled"`
	Amount  float64 `json:"amount"`
}

// QuoteRequest is the full input of one pricing calculation. It is built
// fresh per request and never mutated by the engine.
type QuoteRequest struct {
	Product     *Product
	ExtraMargin float64
	ExtraWire   WireOption
	ExtraHeight HeightOption
	Location    string
	Discount    float64
}

// PriceBreakdown is the itemized result of a pricing calculation.
// Derived fields are rounded exactly once; line items carry the raw
// arithmetic values.
type PriceBreakdown struct {
	BasePrice      float64 `json:"basePrice"`
	MarginPrice    float64 `json:"marginPrice"`
	WirePrice      float64 `json:"wirePrice"`
	HeightPrice    float64 `json:"heightPrice"`
	OutOfAreaPrice float64 `json:"outOfAreaPrice"`
	Subtotal       float64 `json:"subtotal"`
	GSTAmount      float64 `json:"gstAmount"`
	Total          float64 `json:"total"`
	Discount       float64 `json:"discount"`
	GrandTotal     float64 `json:"grandTotal"`
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clampAmount floors negative or NaN numeric inputs at zero. Invalid
// amounts are a UI concern; the engine never rejects them.
func clampAmount(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// ComputeBreakdown calculates the complete price breakdown for a quote
// request at the given tax rate. It is pure and deterministic. A nil
// product yields an all-zero breakdown rather than an error, mirroring
// the "no product selected" state of the calculator.
func ComputeBreakdown(req QuoteRequest, taxRate float64) PriceBreakdown {
	if req.Product == nil {
		return PriceBreakdown{}
	}

	basePrice := req.Product.Price
	marginPrice := clampAmount(req.ExtraMargin)

	var wirePrice float64
	if req.ExtraWire.Enabled {
		wirePrice = clampAmount(req.ExtraWire.LengthMeters) * req.Product.WireRate
	}

	var heightPrice float64
	if req.ExtraHeight.Enabled {
		heightPrice = clampAmount(req.ExtraHeight.Amount) * ExtraHeightRate * req.Product.KWp
	}

	var outOfAreaPrice float64
	if req.Location != HomeServiceArea {
		outOfAreaPrice = req.Product.OutOfArea
	}

	subtotal := basePrice + marginPrice + wirePrice + heightPrice + outOfAreaPrice
	gstAmount := Round2(subtotal * taxRate)
	total := Round2(subtotal + gstAmount)
	discount := clampAmount(req.Discount)
	grandTotal := math.Max(0, Round2(total-discount))

	return PriceBreakdown{
		BasePrice:      basePrice,
		MarginPrice:    marginPrice,
		WirePrice:      wirePrice,
		HeightPrice:    heightPrice,
		OutOfAreaPrice: outOfAreaPrice,
		Subtotal:       subtotal,
		GSTAmount:      gstAmount,
		Total:          total,
		Discount:       discount,
		GrandTotal:     grandTotal,
	}
}

// VendorMarginShare is the vendor's 60% portion of the extra margin.
// Display-only; the split is never a separate charge.
func (b PriceBreakdown) VendorMarginShare() float64 {
	return b.MarginPrice * 0.6
}

// SalespersonMarginShare is the salesperson's 40% portion of the extra margin.
func (b PriceBreakdown) SalespersonMarginShare() float64 {
	return b.MarginPrice * 0.4
}
