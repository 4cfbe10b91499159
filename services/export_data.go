package services

// RowKind drives per-row styling in the spreadsheet writer.
type RowKind int

const (
	RowTitle RowKind = iota
	RowCompany
	RowInfo
	RowHeader
	RowItem
	RowTotal
	RowSection
)

// ExportRow is one spreadsheet row: up to five cells in column order
// (Description of Goods, QTY, Unit, Rate, Amount).
type ExportRow struct {
	Kind  RowKind
	Cells []string
}

// TabularColumns is the item-table header, in column order.
var TabularColumns = []string{"Description of Goods", "QTY", "Unit", "Rate", "Amount"}

// BuildExportRows assembles the ordered row sequence for the tabular
// export: optional title, company identity, salesperson, customer block,
// quote metadata, item table with grand total, requirements, prepared-by.
// Rows whose cells are all empty are dropped.
func BuildExportRows(q Quotation) []ExportRow {
	var rows []ExportRow

	add := func(kind RowKind, cells ...string) {
		for _, c := range cells {
			if c != "" {
				rows = append(rows, ExportRow{Kind: kind, Cells: cells})
				return
			}
		}
		// Entirely empty rows are not emitted.
	}

	if q.ShowTitleHeading {
		add(RowTitle, "QUOTATION")
	}

	add(RowCompany, CompanyName)
	add(RowCompany, CompanyAddressLine1)
	add(RowCompany, CompanyAddressLine2)
	add(RowCompany, "Phone: "+CompanyPhone)
	add(RowCompany, "Email: "+CompanyEmail)

	if q.SalesPerson != "" {
		add(RowInfo, "Sales Person", q.SalesPerson)
	}

	add(RowInfo, "Customer Name", q.CustomerName)
	add(RowInfo, "Address", q.Address)
	add(RowInfo, "Mobile", q.MobileNumber)

	add(RowInfo, "Quotation No", q.QuoteNumber)
	add(RowInfo, "Date", q.Date)
	add(RowInfo, "Valid For (Days)", q.ValidityDays)

	add(RowHeader, TabularColumns...)

	for _, item := range q.Items {
		add(RowItem,
			item.Description,
			FormatQty(item.Quantity),
			item.Unit,
			FormatAmount(item.UnitRate),
			FormatAmount(item.Amount),
		)
	}

	add(RowTotal, "", "", "", "Grand Total", FormatAmount(q.GrandTotal()))

	if q.Requirements != "" {
		add(RowSection, "Requirements")
		add(RowInfo, q.Requirements)
	}

	if q.PreparedBy != "" {
		add(RowInfo, "Prepared By", q.PreparedBy)
	}

	return rows
}
