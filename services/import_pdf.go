package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNoQuotationData is returned when an imported PDF carries no embedded
// quotation blob in its Subject metadata field.
var ErrNoQuotationData = errors.New("no quotation data found")

// ReadQuotationPDF extracts the embedded blob from a previously exported
// quotation PDF and reconstructs the record, backfilling defaults for any
// field the blob omits.
func ReadQuotationPDF(data []byte, now time.Time) (Quotation, error) {
	info, err := api.PDFInfo(bytes.NewReader(data), "quotation.pdf", nil, model.NewDefaultConfiguration())
	if err != nil {
		return Quotation{}, fmt.Errorf("read pdf: %w", err)
	}

	subject := strings.TrimSpace(info.Subject)
	if subject == "" {
		return Quotation{}, ErrNoQuotationData
	}

	return UnmarshalQuotation([]byte(subject), now)
}
