// Package testhelpers provides fixtures shared by the handler and service tests.
package testhelpers

import (
	"strings"
	"testing"
	"time"

	"quotegen/services"
)

// FixedDate is the clock used by fixtures so date defaults are stable.
var FixedDate = time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

// NewTestState returns a fresh session state pinned to FixedDate.
func NewTestState(t *testing.T) *services.State {
	t.Helper()
	return services.NewState(FixedDate)
}

// FilledQuotation returns a quotation that passes validation, with one
// line item.
func FilledQuotation(t *testing.T) services.Quotation {
	t.Helper()

	q := services.NewQuotation(FixedDate)
	q.CustomerName = "Acme Constructions"
	q.Address = "12 College Road, Nashik"
	q.MobileNumber = "9876543210"
	q.QuoteNumber = "QT-2026-041"
	q.PreparedBy = "S. Kulkarni"
	q.SalesPerson = "R. Deshmukh"
	q.AddItem(services.LineItem{
		Description: "PVC Pipe 2 inch",
		Quantity:    3,
		Unit:        "MTR",
		UnitRate:    services.PaiseFromRupees(100),
	})
	return q
}

// FilledState returns session state holding FilledQuotation with the base
// quote number recorded.
func FilledState(t *testing.T) *services.State {
	t.Helper()

	state := services.NewState(FixedDate)
	state.Quotation = FilledQuotation(t)
	state.BaseQuoteNumber = state.Quotation.QuoteNumber
	return state
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
