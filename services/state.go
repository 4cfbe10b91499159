package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// State is the live editing state owned by one session: the quotation
// being edited, the item-entry scratch row, the base quote number used as
// the increment anchor, and the current validation errors.
//
// There is exactly one writer per session (the browser driving the form),
// so State carries no lock of its own; the session store serializes access.
type State struct {
	Quotation       Quotation
	Entry           ItemEntry
	BaseQuoteNumber string
	Errors          ValidationErrors
}

// NewState returns a fresh session state with default quotation values.
func NewState(now time.Time) *State {
	return &State{
		Quotation: NewQuotation(now),
		Errors:    make(ValidationErrors),
	}
}

// errorKeys maps field names to their validation-error keys.
var errorKeys = map[string]string{
	"customerName": "customerName",
	"address":      "address",
	"mobileNumber": "mobile",
	"quoteNumber":  "quoteNo",
}

// UpdateField sets a scalar quotation field by name and clears any
// validation error recorded for it. The first time quoteNumber is set it
// is also recorded as the base quote number for auto-increment.
func (s *State) UpdateField(field, value string) error {
	switch field {
	case "customerName":
		s.Quotation.CustomerName = value
	case "address":
		s.Quotation.Address = value
	case "mobileNumber":
		s.Quotation.MobileNumber = value
	case "quoteNumber":
		s.Quotation.QuoteNumber = value
		if s.BaseQuoteNumber == "" {
			s.BaseQuoteNumber = value
		}
	case "date":
		s.Quotation.Date = value
	case "validityDays":
		s.Quotation.ValidityDays = value
	case "requirements":
		s.Quotation.Requirements = value
	case "preparedBy":
		s.Quotation.PreparedBy = value
	case "salesPerson":
		s.Quotation.SalesPerson = value
	case "showTitleHeading":
		s.Quotation.ShowTitleHeading = value == "true" || value == "on"
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	if key, ok := errorKeys[field]; ok {
		delete(s.Errors, key)
	}
	return nil
}

// SetEntry replaces the item-entry scratch row from raw form values.
func (s *State) SetEntry(description, quantity, unit, customUnit, rate string) {
	qty, _ := strconv.ParseFloat(strings.TrimSpace(quantity), 64)
	s.Entry = ItemEntry{
		Description: description,
		Quantity:    qty,
		Unit:        unit,
		CustomUnit:  customUnit,
		UnitRate:    ParsePaise(rate),
	}
}

// AddItem resolves the scratch entry into a line item and appends it.
// On success the scratch row is cleared, including any pending custom
// unit text. On rejection nothing changes.
func (s *State) AddItem() error {
	item, err := s.Entry.Resolve()
	if err != nil {
		return err
	}
	s.Quotation.Items = append(s.Quotation.Items, item)
	s.Entry = ItemEntry{}
	return nil
}

// Validate runs the quotation checks, stores the full violation set on the
// state, and reports whether the record passed.
func (s *State) Validate() bool {
	s.Errors = s.Quotation.Validate()
	return len(s.Errors) == 0
}

// Advance resets the state after a successful submit: a fresh quotation
// keeps only the auto-incremented quote number, which also becomes the new
// base. The scratch entry and validation errors are cleared. It returns
// the new quote number.
func (s *State) Advance(now time.Time) string {
	next := NextQuoteNumber(s.Quotation.QuoteNumber)

	s.Quotation = NewQuotation(now)
	s.Quotation.QuoteNumber = next
	s.BaseQuoteNumber = next
	s.Entry = ItemEntry{}
	s.Errors = make(ValidationErrors)

	return next
}

// Load replaces the quotation with one reconstructed from an imported
// document. The base quote number follows the loaded number (cleared when
// absent); errors and the scratch entry are reset.
func (s *State) Load(q Quotation) {
	s.Quotation = q
	s.BaseQuoteNumber = q.QuoteNumber
	s.Entry = ItemEntry{}
	s.Errors = make(ValidationErrors)
}
