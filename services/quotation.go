package services

import (
	"errors"
	"strings"
	"time"
)

// Company identity printed on every export. These are fixed constants,
// not part of the editable record.
const (
	CompanyName         = "Shree Samarth Enterprises"
	CompanyAddressLine1 = "Plot 14, MIDC Industrial Area"
	CompanyAddressLine2 = "Nashik, Maharashtra 422010"
	CompanyPhone        = "+91 98220 12345"
	CompanyEmail        = "sales@shreesamarth.in"
)

// DefaultValidityDays is the validity applied to a fresh quotation.
const DefaultValidityDays = "7"

// DateLayout is the day/month/year display format used for the quotation date.
const DateLayout = "02/01/2006"

// CustomUnit is the sentinel unit code meaning "use the free-text custom unit".
const CustomUnit = "custom"

// Units is the fixed set of selectable unit codes, in display order.
var Units = []string{"NOS", "KG", "SQFT", "MTR", "LTR", "SET", "BAG"}

// LineItem is one row of the quotation. Amount is derived from Quantity
// and UnitRate and is never set independently.
type LineItem struct {
	Description string
	Quantity    float64
	Unit        string
	UnitRate    Paise
	Amount      Paise
}

// Quotation is the full editable record: customer and quote metadata plus
// the ordered list of line items. Item order is display and export order.
type Quotation struct {
	CustomerName     string
	Address          string
	MobileNumber     string
	QuoteNumber      string
	Date             string
	ValidityDays     string
	Requirements     string
	PreparedBy       string
	SalesPerson      string
	Items            []LineItem
	ShowTitleHeading bool
}

// NewQuotation returns a fresh record with session defaults: today's date,
// 7 days validity, title heading shown, no items.
func NewQuotation(now time.Time) Quotation {
	return Quotation{
		Date:             now.Format(DateLayout),
		ValidityDays:     DefaultValidityDays,
		ShowTitleHeading: true,
	}
}

// GrandTotal sums all item amounts. It is recomputed on every call.
func (q *Quotation) GrandTotal() Paise {
	var total Paise
	for _, item := range q.Items {
		total += item.Amount
	}
	return total
}

// AddItem appends an item, recomputing its amount from quantity and rate.
func (q *Quotation) AddItem(item LineItem) {
	item.Amount = ItemAmount(item.Quantity, item.UnitRate)
	q.Items = append(q.Items, item)
}

// RemoveItem removes the item at the given position, keeping the remaining
// items in order. An out-of-range index is a no-op and returns false.
func (q *Quotation) RemoveItem(index int) bool {
	if index < 0 || index >= len(q.Items) {
		return false
	}
	q.Items = append(q.Items[:index], q.Items[index+1:]...)
	return true
}

// Clone returns a deep copy of the quotation, safe to export after the
// original has been reset.
func (q *Quotation) Clone() Quotation {
	out := *q
	out.Items = make([]LineItem, len(q.Items))
	copy(out.Items, q.Items)
	return out
}

// Add-item rejection errors, surfaced to the user as toasts.
var (
	ErrItemDescription = errors.New("Item description is required")
	ErrItemQuantity    = errors.New("Item quantity must be greater than zero")
	ErrItemRate        = errors.New("Item rate must be greater than zero")
)

// ItemEntry is the scratch row the user fills before adding an item.
// It is session state so a rejected add keeps the entered values.
type ItemEntry struct {
	Description string
	Quantity    float64
	Unit        string
	CustomUnit  string
	UnitRate    Paise
}

// Resolve validates the scratch entry and produces a line item. The
// "custom" unit sentinel is substituted with the free-text custom unit.
func (e ItemEntry) Resolve() (LineItem, error) {
	if strings.TrimSpace(e.Description) == "" {
		return LineItem{}, ErrItemDescription
	}
	if e.Quantity == 0 {
		return LineItem{}, ErrItemQuantity
	}
	if e.UnitRate == 0 {
		return LineItem{}, ErrItemRate
	}

	unit := e.Unit
	if unit == CustomUnit {
		unit = strings.TrimSpace(e.CustomUnit)
	}
	if unit == "" {
		unit = Units[0]
	}

	return LineItem{
		Description: strings.TrimSpace(e.Description),
		Quantity:    e.Quantity,
		Unit:        unit,
		UnitRate:    e.UnitRate,
		Amount:      ItemAmount(e.Quantity, e.UnitRate),
	}, nil
}
