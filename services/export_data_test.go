package services

import "testing"

func fullQuotation() Quotation {
	q := NewQuotation(testNow)
	q.CustomerName = "Acme Constructions"
	q.Address = "12 College Road, Nashik"
	q.MobileNumber = "9876543210"
	q.QuoteNumber = "QT-2026-041"
	q.SalesPerson = "R. Deshmukh"
	q.PreparedBy = "S. Kulkarni"
	q.Requirements = "Deliver to site"
	q.AddItem(LineItem{Description: "PVC Pipe 2 inch", Quantity: 3, Unit: "MTR", UnitRate: PaiseFromRupees(100)})
	return q
}

func TestBuildExportRows_Order(t *testing.T) {
	rows := BuildExportRows(fullQuotation())

	wantFirstCells := []string{
		"QUOTATION",
		CompanyName,
		CompanyAddressLine1,
		CompanyAddressLine2,
		"Phone: " + CompanyPhone,
		"Email: " + CompanyEmail,
		"Sales Person",
		"Customer Name",
		"Address",
		"Mobile",
		"Quotation No",
		"Date",
		"Valid For (Days)",
		"Description of Goods",
		"PVC Pipe 2 inch",
		"", // total row starts with blanks
		"Requirements",
		"Deliver to site",
		"Prepared By",
	}
	if len(rows) != len(wantFirstCells) {
		t.Fatalf("expected %d rows, got %d", len(wantFirstCells), len(rows))
	}
	for i, want := range wantFirstCells {
		if rows[i].Cells[0] != want {
			t.Errorf("row %d: expected first cell %q, got %q", i, want, rows[i].Cells[0])
		}
	}
}

func TestBuildExportRows_ItemAndTotal(t *testing.T) {
	rows := BuildExportRows(fullQuotation())

	var item, total *ExportRow
	for i := range rows {
		switch rows[i].Kind {
		case RowItem:
			item = &rows[i]
		case RowTotal:
			total = &rows[i]
		}
	}
	if item == nil || total == nil {
		t.Fatal("expected an item row and a total row")
	}

	wantItem := []string{"PVC Pipe 2 inch", "3", "MTR", "100.00", "300.00"}
	for i, want := range wantItem {
		if item.Cells[i] != want {
			t.Errorf("item cell %d: got %q, want %q", i, item.Cells[i], want)
		}
	}
	if total.Cells[3] != "Grand Total" || total.Cells[4] != "300.00" {
		t.Errorf("unexpected total row: %v", total.Cells)
	}
}

func TestBuildExportRows_DropsEmptyRows(t *testing.T) {
	q := NewQuotation(testNow)
	q.ShowTitleHeading = false

	rows := BuildExportRows(q)

	for _, row := range rows {
		empty := true
		for _, c := range row.Cells {
			if c != "" {
				empty = false
				break
			}
		}
		if empty {
			t.Errorf("expected all-empty rows to be dropped, got %v", row.Cells)
		}
	}
	if rows[0].Cells[0] != CompanyName {
		t.Errorf("expected company row first with the title off, got %q", rows[0].Cells[0])
	}
}

func TestBuildExportRows_OptionalBlocks(t *testing.T) {
	q := fullQuotation()
	q.SalesPerson = ""
	q.Requirements = ""
	q.PreparedBy = ""

	rows := BuildExportRows(q)

	for _, row := range rows {
		switch row.Cells[0] {
		case "Sales Person", "Requirements", "Prepared By":
			t.Errorf("expected optional block %q to be omitted", row.Cells[0])
		}
	}
}

func TestBuildExportRows_CustomerRowsKeptWhenPartial(t *testing.T) {
	q := NewQuotation(testNow)
	q.CustomerName = "Acme"

	rows := BuildExportRows(q)

	// Label-only rows still have a non-empty label cell, so they survive.
	var sawMobile bool
	for _, row := range rows {
		if row.Cells[0] == "Mobile" {
			sawMobile = true
		}
	}
	if !sawMobile {
		t.Error("expected the Mobile label row even with an empty value")
	}
}
