package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/sessions"
)

// HandleSubmit finalizes the quotation: validate, export the PDF from a
// snapshot of the record, then reset the session to a fresh quotation
// carrying the auto-incremented quote number. The snapshot is taken before
// any reset mutation, so the export can never observe a half-reset record.
func HandleSubmit(store *sessions.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := sessionState(e, store)

		if !state.Validate() {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Please fix the highlighted fields before submitting")
		}

		snapshot := state.Quotation.Clone()

		pdfBytes, err := services.GenerateQuotationPDF(snapshot, time.Now())
		if err != nil {
			log.Printf("quote_submit: failed to generate pdf: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		next := state.Advance(time.Now())
		log.Printf("quote_submit: submitted %s, next quotation is %s", snapshot.QuoteNumber, next)

		writePDFDownload(e, snapshot.QuoteNumber, pdfBytes)
		return nil
	}
}
