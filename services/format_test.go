package services

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "₹0.00"},
		{"under a thousand", 999, "₹999.00"},
		{"thousands", 5000, "₹5,000.00"},
		{"lakh boundary", 123456, "₹1,23,456.00"},
		{"catalog price", 244831, "₹2,44,831.00"},
		{"crore", 12345678.9, "₹1,23,45,678.90"},
		{"decimal only", 0.5, "₹0.50"},
		{"grand total", 286426.89, "₹2,86,426.89"},
		{"negative", -5000, "-₹5,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.want {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
