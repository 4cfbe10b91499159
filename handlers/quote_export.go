package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/sessions"
)

// sanitizeFilename strips path and header separators from a quote number
// before it becomes part of a download filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, "\"", "-")
	return s
}

// HandleExportExcel validates the quotation and downloads it as a
// spreadsheet named after the quote number.
func HandleExportExcel(store *sessions.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := sessionState(e, store)

		if !state.Validate() {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Please fix the highlighted fields before exporting")
		}

		xlsxBytes, err := services.GenerateExcel(state.Quotation)
		if err != nil {
			log.Printf("quote_export: failed to generate excel: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate spreadsheet")
		}

		filename := fmt.Sprintf("Quotation_%s.xlsx", sanitizeFilename(state.Quotation.QuoteNumber))

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleExportPDF validates the quotation and downloads the PDF document
// carrying the embedded record.
func HandleExportPDF(store *sessions.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := sessionState(e, store)

		if !state.Validate() {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Please fix the highlighted fields before exporting")
		}

		pdfBytes, err := services.GenerateQuotationPDF(state.Quotation, time.Now())
		if err != nil {
			log.Printf("quote_export: failed to generate pdf: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		writePDFDownload(e, state.Quotation.QuoteNumber, pdfBytes)
		return nil
	}
}

func writePDFDownload(e *core.RequestEvent, quoteNumber string, pdfBytes []byte) {
	filename := fmt.Sprintf("Quotation_%s.pdf", sanitizeFilename(quoteNumber))
	e.Response.Header().Set("Content-Type", "application/pdf")
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.Write(pdfBytes)
}
