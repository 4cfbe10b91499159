package services

import (
	"encoding/json"
	"fmt"
	"time"
)

// The embedded-metadata blob is a private, same-process interchange format:
// the JSON written into an exported PDF's Subject field and read back on
// import. It carries no versioning guarantee across schema changes.
//
// Currency travels as rupee floats on the wire; amounts are recomputed from
// quantity and rate on the way back in, so the stored amount is advisory.

type blobItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitRate    float64 `json:"unitRate"`
	Amount      float64 `json:"amount"`
}

type quotationBlob struct {
	CustomerName     string     `json:"customerName"`
	Address          string     `json:"address"`
	MobileNumber     string     `json:"mobileNumber"`
	QuoteNumber      string     `json:"quoteNo"`
	Date             string     `json:"date"`
	ValidityDays     string     `json:"validityDays"`
	Requirements     string     `json:"requirements"`
	PreparedBy       string     `json:"preparedBy"`
	SalesPerson      string     `json:"salesPerson"`
	Items            []blobItem `json:"items"`
	ShowTitleHeading bool       `json:"showTitleHeading"`
}

// Every field optional: absent values fall back to fresh-session defaults
// when the record is materialized.
type quotationPartial struct {
	CustomerName     *string    `json:"customerName"`
	Address          *string    `json:"address"`
	MobileNumber     *string    `json:"mobileNumber"`
	QuoteNumber      *string    `json:"quoteNo"`
	Date             *string    `json:"date"`
	ValidityDays     *string    `json:"validityDays"`
	Requirements     *string    `json:"requirements"`
	PreparedBy       *string    `json:"preparedBy"`
	SalesPerson      *string    `json:"salesPerson"`
	Items            []blobItem `json:"items"`
	ShowTitleHeading *bool      `json:"showTitleHeading"`
}

// MarshalQuotation encodes the record as the embedded-metadata blob.
func MarshalQuotation(q Quotation) ([]byte, error) {
	blob := quotationBlob{
		CustomerName:     q.CustomerName,
		Address:          q.Address,
		MobileNumber:     q.MobileNumber,
		QuoteNumber:      q.QuoteNumber,
		Date:             q.Date,
		ValidityDays:     q.ValidityDays,
		Requirements:     q.Requirements,
		PreparedBy:       q.PreparedBy,
		SalesPerson:      q.SalesPerson,
		Items:            make([]blobItem, 0, len(q.Items)),
		ShowTitleHeading: q.ShowTitleHeading,
	}
	for _, item := range q.Items {
		blob.Items = append(blob.Items, blobItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitRate:    item.UnitRate.Rupees(),
			Amount:      item.Amount.Rupees(),
		})
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return nil, fmt.Errorf("encode quotation: %w", err)
	}
	return data, nil
}

// UnmarshalQuotation decodes a blob back into a full record, defaulting
// any missing field to the fresh-session defaults. A blob whose items
// field is not a list fails outright rather than being coerced.
func UnmarshalQuotation(data []byte, now time.Time) (Quotation, error) {
	var p quotationPartial
	if err := json.Unmarshal(data, &p); err != nil {
		return Quotation{}, fmt.Errorf("parse quotation data: %w", err)
	}

	q := NewQuotation(now)

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&q.CustomerName, p.CustomerName)
	setString(&q.Address, p.Address)
	setString(&q.MobileNumber, p.MobileNumber)
	setString(&q.QuoteNumber, p.QuoteNumber)
	setString(&q.Date, p.Date)
	setString(&q.ValidityDays, p.ValidityDays)
	setString(&q.Requirements, p.Requirements)
	setString(&q.PreparedBy, p.PreparedBy)
	setString(&q.SalesPerson, p.SalesPerson)
	if p.ShowTitleHeading != nil {
		q.ShowTitleHeading = *p.ShowTitleHeading
	}

	for _, item := range p.Items {
		rate := PaiseFromRupees(item.UnitRate)
		q.Items = append(q.Items, LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitRate:    rate,
			Amount:      ItemAmount(item.Quantity, rate),
		})
	}

	return q, nil
}
