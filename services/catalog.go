// Package services provides the pricing engine, document builder and
// export generators for solar system quotations.
package services

// HomeServiceArea is the install location that carries no delivery surcharge.
const HomeServiceArea = "Varanasi"

// Product is a single entry of the static price catalog. A product is
// uniquely identified by its (KWp, Phase) pair.
type Product struct {
	KWp        float64 `json:"kWp"`
	Phase      int     `json:"phase"`
	ModuleWatt int     `json:"module"`
	ModuleQty  int     `json:"qty"`
	Price      float64 `json:"price"`
	WireRate   float64 `json:"wire"`      // ₹ per extra meter of cable
	OutOfArea  float64 `json:"outOfArea"` // flat charge outside the home service area
}

// CompanyInfo is the company identity block printed on every quotation.
type CompanyInfo struct {
	Name    string
	Address string
	GSTIN   string
	Contact string
	Email   string
}

// Company holds the fixed company details for all generated documents.
var Company = CompanyInfo{
	Name:    "Arpit Solar Shop",
	Address: "SH16/114-25-K-2, Sharvodayanagar, Varanasi - 221003, Uttar Pradesh",
	GSTIN:   "09APKPM6299L1ZW",
	Contact: "9044555572",
	Email:   "info@arpitsolar.com",
}

// Products is the ordered catalog. It is fixed at load time; the first
// entry is the default selection.
var Products = []Product{
	{KWp: 2.24, Phase: 1, ModuleWatt: 560, ModuleQty: 4, Price: 108974, WireRate: 150, OutOfArea: 5000},
	{KWp: 3.36, Phase: 1, ModuleWatt: 560, ModuleQty: 6, Price: 150895, WireRate: 150, OutOfArea: 5000},
	{KWp: 4.48, Phase: 1, ModuleWatt: 560, ModuleQty: 8, Price: 197348, WireRate: 150, OutOfArea: 5000},
	{KWp: 5.04, Phase: 1, ModuleWatt: 560, ModuleQty: 9, Price: 223819, WireRate: 150, OutOfArea: 5000},
	{KWp: 5.04, Phase: 3, ModuleWatt: 560, ModuleQty: 9, Price: 244831, WireRate: 225, OutOfArea: 5000},
	{KWp: 6.16, Phase: 3, ModuleWatt: 560, ModuleQty: 11, Price: 290872, WireRate: 225, OutOfArea: 5000},
	{KWp: 8.4, Phase: 3, ModuleWatt: 560, ModuleQty: 15, Price: 373890, WireRate: 225, OutOfArea: 5000},
	{KWp: 10.08, Phase: 3, ModuleWatt: 560, ModuleQty: 18, Price: 437853, WireRate: 225, OutOfArea: 5000},
}

// DefaultProduct returns the first catalog entry, or nil for an empty catalog.
func DefaultProduct() *Product {
	if len(Products) == 0 {
		return nil
	}
	return &Products[0]
}

// FindProduct looks up a catalog entry by its (kWp, phase) identity.
// It returns nil when no such entry exists.
func FindProduct(kWp float64, phase int) *Product {
	for i := range Products {
		if Products[i].KWp == kWp && Products[i].Phase == phase {
			return &Products[i]
		}
	}
	return nil
}

// QuoteComponent is one row of the component table printed on quotations.
type QuoteComponent struct {
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Spec     string `json:"spec,omitempty"`
	Quantity string `json:"quantity"`
}

// DefaultComponents is the standard bill of supplied components included
// with every system.
var DefaultComponents = []QuoteComponent{
	{Name: "Acdb", Brand: "Tata Kit", Quantity: "1 nos"},
	{Name: "Dcdb", Brand: "Tata Kit", Quantity: "1 nos"},
	{Name: "Ac Cable", Brand: "Polycab/KEI", Quantity: "10 mtr"},
	{Name: "Dc Cable", Brand: "Polycab/KEI", Quantity: "40 mtr"},
	{Name: "Module M. Structure", Spec: "GI 3'X6'", Quantity: "3'X6'"},
	{Name: "Earthing Rod", Brand: "Tata Kit", Quantity: "3 nos"},
	{Name: "Earthing Chemical", Brand: "Tata Kit", Quantity: "3 nos"},
	{Name: "Earthing Wire", Spec: "Al 10mm", Quantity: "90 mtr"},
	{Name: "Lighting Arrestor", Brand: "Tata Kit", Quantity: "1 pc"},
}
