package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newJSONRequest builds a POST request carrying a JSON body.
func newJSONRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// quoteBody is a valid request body for the three-phase 5.04 kWp system
// with every add-on enabled.
const quoteBody = `{
	"kWp": 5.04,
	"phase": 3,
	"extraMargin": 5000,
	"extraWire": {"enabled": true, "lengthMeters": 10},
	"extraHeight": {"enabled": true, "amount": 2},
	"location": "Lucknow",
	"discount": 0,
	"salespersonName": "Amit",
	"customerInfo": {"name": "Ravi Kumar", "phone": "9876543210", "address": "12 MG Road, Lucknow"}
}`

// badPhoneBody is quoteBody with a phone number that fails validation.
const badPhoneBody = `{
	"kWp": 5.04,
	"phase": 3,
	"location": "Varanasi",
	"customerInfo": {"name": "Ravi Kumar", "phone": "12345", "address": ""}
}`
