package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/sessions"
	"quotegen/templates"
)

// maxImportSize bounds uploaded documents (16 MiB).
const maxImportSize = 16 << 20

// HandleImportPDF handles POST /quote/import: reads the uploaded PDF,
// extracts the embedded quotation and replaces the session's record. Any
// failure leaves current form data untouched.
func HandleImportPDF(store *sessions.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := sessionState(e, store)

		if err := e.Request.ParseMultipartForm(maxImportSize); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid upload")
		}

		file, header, err := e.Request.FormFile("document")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Select a PDF file to load")
		}
		defer file.Close()

		if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
			return ErrorToast(e, http.StatusBadRequest, "Only PDF documents can be loaded")
		}

		data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
		if err != nil {
			log.Printf("quote_import: read upload: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the uploaded file")
		}

		q, err := services.ReadQuotationPDF(data, time.Now())
		if err != nil {
			if errors.Is(err, services.ErrNoQuotationData) {
				return ErrorToast(e, http.StatusUnprocessableEntity, "No quotation data found in this PDF")
			}
			log.Printf("quote_import: %v", err)
			return ErrorToast(e, http.StatusUnprocessableEntity,
				fmt.Sprintf("Could not load quotation: %v", err))
		}

		state.Load(q)
		SetToast(e, "success", "Quotation loaded from PDF")

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.QuoteForm(buildQuoteView(state)).Render(e.Request.Context(), e.Response)
	}
}
