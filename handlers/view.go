package handlers

import (
	"fmt"

	"quotegen/services"
	"quotegen/templates"
)

// buildQuoteView converts the session state into the render model, with
// every money amount and quantity already formatted.
func buildQuoteView(state *services.State) templates.QuoteView {
	q := state.Quotation

	items := make([]templates.ItemView, 0, len(q.Items))
	for i, item := range q.Items {
		items = append(items, templates.ItemView{
			Index:       i + 1,
			Description: item.Description,
			Qty:         services.FormatQty(item.Quantity),
			Unit:        item.Unit,
			Rate:        services.FormatINR(item.UnitRate),
			Amount:      services.FormatINR(item.Amount),
		})
	}

	entry := templates.EntryView{
		Description: state.Entry.Description,
		Unit:        state.Entry.Unit,
		CustomUnit:  state.Entry.CustomUnit,
	}
	if state.Entry.Quantity != 0 {
		entry.Quantity = services.FormatQty(state.Entry.Quantity)
	}
	if state.Entry.UnitRate != 0 {
		entry.Rate = fmt.Sprintf("%.2f", state.Entry.UnitRate.Rupees())
	}

	total := q.GrandTotal()

	return templates.QuoteView{
		CustomerName:     q.CustomerName,
		Address:          q.Address,
		MobileNumber:     q.MobileNumber,
		QuoteNumber:      q.QuoteNumber,
		Date:             q.Date,
		ValidityDays:     q.ValidityDays,
		Requirements:     q.Requirements,
		PreparedBy:       q.PreparedBy,
		SalesPerson:      q.SalesPerson,
		ShowTitleHeading: q.ShowTitleHeading,

		Items:         items,
		GrandTotal:    services.FormatINR(total),
		AmountInWords: services.AmountToWords(total),
		Errors:        state.Errors,
		Entry:         entry,
		Units:         services.Units,

		CompanyName:    services.CompanyName,
		CompanyAddress: services.CompanyAddressLine1 + ", " + services.CompanyAddressLine2,
		CompanyPhone:   services.CompanyPhone,
		CompanyEmail:   services.CompanyEmail,
	}
}
