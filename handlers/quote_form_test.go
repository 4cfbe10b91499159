package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"quotegen/sessions"
	"quotegen/testhelpers"
)

func TestHandleQuotePage(t *testing.T) {
	store := sessions.NewStore()
	cookie, _ := seedSession(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	req.AddCookie(cookie)

	if err := HandleQuotePage(store)(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Acme Constructions",
		"QT-2026-041",
		"PVC Pipe 2 inch",
		"₹300.00",
		"Three Hundred Rupees Only/-",
	)
}

func TestHandleFieldUpdate(t *testing.T) {
	store := sessions.NewStore()
	cookie, state := seedSession(t, store)

	rec := httptest.NewRecorder()
	req := formRequest("/quote/field", url.Values{
		"field": {"customerName"},
		"value": {"Bharat Traders"},
	})
	req.AddCookie(cookie)

	if err := HandleFieldUpdate(store)(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if state.Quotation.CustomerName != "Bharat Traders" {
		t.Errorf("expected the field to be applied, got %q", state.Quotation.CustomerName)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Bharat Traders")
}

func TestHandleFieldUpdate_UnknownField(t *testing.T) {
	store := sessions.NewStore()
	cookie, _ := seedSession(t, store)

	rec := httptest.NewRecorder()
	req := formRequest("/quote/field", url.Values{
		"field": {"bogus"},
		"value": {"x"},
	})
	req.AddCookie(cookie)

	HandleFieldUpdate(store)(newTestRequestEvent(req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown field, got %d", rec.Code)
	}
}

func TestHandleAddItem(t *testing.T) {
	store := sessions.NewStore()
	cookie, state := seedSession(t, store)

	rec := httptest.NewRecorder()
	req := formRequest("/quote/items", url.Values{
		"description": {"Cement Bag 50kg"},
		"quantity":    {"10"},
		"unit":        {"BAG"},
		"rate":        {"380"},
	})
	req.AddCookie(cookie)

	if err := HandleAddItem(store)(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(state.Quotation.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(state.Quotation.Items))
	}
	added := state.Quotation.Items[1]
	if added.Description != "Cement Bag 50kg" || added.Amount != 380000 {
		t.Errorf("unexpected added item: %+v", added)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Cement Bag 50kg", "₹3,800.00")
}

func TestHandleAddItem_Rejection(t *testing.T) {
	store := sessions.NewStore()
	cookie, state := seedSession(t, store)

	rec := httptest.NewRecorder()
	req := formRequest("/quote/items", url.Values{
		"description": {""},
		"quantity":    {"10"},
		"unit":        {"BAG"},
		"rate":        {"380"},
	})
	req.AddCookie(cookie)

	if err := HandleAddItem(store)(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	if len(state.Quotation.Items) != 1 {
		t.Errorf("expected the item list untouched, got %d items", len(state.Quotation.Items))
	}
	if state.Entry.Quantity != 10 {
		t.Error("expected the rejected entry values to be retained")
	}
	if rec.Header().Get("HX-Trigger") == "" {
		t.Error("expected a toast on rejection")
	}
	// The section still renders so the retained entry values stay visible.
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `value="10"`)
}

func TestHandleRemoveItem(t *testing.T) {
	store := sessions.NewStore()
	cookie, state := seedSession(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/quote/items/0", nil)
	req.SetPathValue("index", "0")
	req.AddCookie(cookie)

	if err := HandleRemoveItem(store)(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(state.Quotation.Items) != 0 {
		t.Errorf("expected the item removed, got %d items", len(state.Quotation.Items))
	}
}

func TestHandleRemoveItem_BadIndex(t *testing.T) {
	store := sessions.NewStore()
	cookie, state := seedSession(t, store)

	tests := []struct {
		name  string
		index string
	}{
		{"not a number", "abc"},
		{"out of range", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/quote/items/"+tt.index, nil)
			req.SetPathValue("index", tt.index)
			req.AddCookie(cookie)

			HandleRemoveItem(store)(newTestRequestEvent(req, rec))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}

	if len(state.Quotation.Items) != 1 {
		t.Errorf("expected the item list untouched, got %d items", len(state.Quotation.Items))
	}
}
