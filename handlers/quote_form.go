package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/sessions"
	"quotegen/templates"
)

// HandleQuotePage renders the full single-page form for the session.
func HandleQuotePage(store *sessions.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := sessionState(e, store)
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.Layout("Quotation Builder", templates.QuotePage(buildQuoteView(state))).
			Render(e.Request.Context(), e.Response)
	}
}

// HandleFieldUpdate handles POST /quote/field: sets one scalar field and
// returns the refreshed preview fragment.
func HandleFieldUpdate(store *sessions.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := sessionState(e, store)

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		field := e.Request.FormValue("field")
		value := e.Request.FormValue("value")

		if err := state.UpdateField(field, value); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Unknown field")
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.Preview(buildQuoteView(state)).Render(e.Request.Context(), e.Response)
	}
}

// HandleAddItem handles POST /quote/items: fills the scratch entry from the
// form, then tries to append it as a line item. Rejection keeps the entered
// values and surfaces a toast.
func HandleAddItem(store *sessions.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := sessionState(e, store)

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		state.SetEntry(
			e.Request.FormValue("description"),
			e.Request.FormValue("quantity"),
			e.Request.FormValue("unit"),
			e.Request.FormValue("customUnit"),
			e.Request.FormValue("rate"),
		)

		if err := state.AddItem(); err != nil {
			SetToast(e, "warning", err.Error())
			e.Response.WriteHeader(http.StatusUnprocessableEntity)
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.ItemsSection(buildQuoteView(state)).Render(e.Request.Context(), e.Response)
	}
}

// HandleRemoveItem handles DELETE /quote/items/{index}.
func HandleRemoveItem(store *sessions.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := sessionState(e, store)

		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid item index")
		}

		if !state.Quotation.RemoveItem(index) {
			return ErrorToast(e, http.StatusBadRequest, "Item not found")
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.ItemsSection(buildQuoteView(state)).Render(e.Request.Context(), e.Response)
	}
}
