// Package collections ensures the PocketBase collections used by the
// quotation service exist.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuotesCollection is the write-once audit log of every generated quote.
const QuotesCollection = "quotes"

// Setup programmatically creates/ensures the quotes collection exists.
// Each record is a flat denormalization of the request, the computed
// breakdown and the delivery channel, plus the generated PDF.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, QuotesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "customer_name"})
		c.Fields.Add(&core.TextField{Name: "customer_phone"})
		c.Fields.Add(&core.TextField{Name: "customer_address"})
		c.Fields.Add(&core.TextField{Name: "salesperson_name"})
		c.Fields.Add(&core.TextField{Name: "location"})
		c.Fields.Add(&core.NumberField{Name: "kwp"})
		c.Fields.Add(&core.NumberField{Name: "phase"})
		c.Fields.Add(&core.NumberField{Name: "module_watt"})
		c.Fields.Add(&core.NumberField{Name: "qty"})
		c.Fields.Add(&core.NumberField{Name: "base_price"})
		c.Fields.Add(&core.NumberField{Name: "extra_margin"})
		c.Fields.Add(&core.NumberField{Name: "wire_price"})
		c.Fields.Add(&core.NumberField{Name: "height_price"})
		c.Fields.Add(&core.NumberField{Name: "out_of_area_price"})
		c.Fields.Add(&core.NumberField{Name: "subtotal"})
		c.Fields.Add(&core.NumberField{Name: "gst_amount"})
		c.Fields.Add(&core.NumberField{Name: "total"})
		c.Fields.Add(&core.NumberField{Name: "discount"})
		c.Fields.Add(&core.NumberField{Name: "grand_total"})
		c.Fields.Add(&core.SelectField{
			Name:      "channel",
			Required:  true,
			Values:    []string{"whatsapp", "sales_print", "customer_print"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "tax_rate"})
		c.Fields.Add(&core.TextField{Name: "currency"})
		c.Fields.Add(&core.JSONField{Name: "raw_payload", MaxSize: 1 << 20})
		c.Fields.Add(&core.FileField{
			Name:      "pdf",
			MaxSelect: 1,
			MaxSize:   10 << 20,
			MimeTypes: []string{"application/pdf"},
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
