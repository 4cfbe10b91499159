package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF composes the quotation document using maroto/v2 and
// returns the raw PDF bytes. The full record travels in the document's
// Subject metadata field as the embedded blob, and the Title carries the
// quote number, so a later import can reconstruct the record.
func GenerateQuotationPDF(q Quotation, now time.Time) ([]byte, error) {
	blob, err := MarshalQuotation(q)
	if err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithTitle("Quotation "+q.QuoteNumber, true).
		WithSubject(string(blob), true).
		WithAuthor(CompanyName, true).
		WithCreationDate(now).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, q)
	addCustomerBlock(m, q)
	addItemsTable(m, q)
	addGrandTotal(m, q)
	addRequirements(m, q)
	addSignatureBlock(m, q)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the optional QUOTATION caption and the company
// identity block.
func addQuotationHeader(m core.Maroto, q Quotation) {
	if q.ShowTitleHeading {
		m.AddRows(
			row.New(12).Add(
				col.New(12).Add(
					text.New("QUOTATION", props.Text{
						Size:  16,
						Style: fontstyle.Bold,
						Align: align.Center,
					}),
				),
			),
		)
	}

	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(CompanyName, props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%s, %s", CompanyAddressLine1, CompanyAddressLine2), props.Text{
					Size:  8,
					Align: align.Center,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Phone: %s | Email: %s", CompanyPhone, CompanyEmail), props.Text{
					Size:  8,
					Align: align.Center,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addCustomerBlock adds customer details on the left and quote metadata on
// the right.
func addCustomerBlock(m core.Maroto, q Quotation) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightLabelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	rightValueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("CUSTOMER", labelStyle)),
			col.New(6).Add(text.New("QUOTE DETAILS", rightLabelStyle)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(q.CustomerName, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(3).Add(text.New("Quotation No:", rightLabelStyle)),
			col.New(3).Add(text.New(q.QuoteNumber, rightValueStyle)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(q.Address, valueStyle)),
			col.New(3).Add(text.New("Date:", rightLabelStyle)),
			col.New(3).Add(text.New(q.Date, rightValueStyle)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Mobile: %s", q.MobileNumber), valueStyle)),
			col.New(3).Add(text.New("Valid For:", rightLabelStyle)),
			col.New(3).Add(text.New(fmt.Sprintf("%s days", q.ValidityDays), rightValueStyle)),
		),
	)

	if q.SalesPerson != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(fmt.Sprintf("Sales Person: %s", q.SalesPerson), valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addItemsTable adds the line items table with header and body rows.
func addItemsTable(m core.Maroto, q Quotation) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Description of Goods", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("QTY", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Rate", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)

	// Table body with alternating backgrounds
	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, item := range q.Items {
		bodyText := props.Text{Size: 8, Align: align.Center}
		bodyTextLeft := props.Text{Size: 8, Align: align.Left}
		bodyTextRight := props.Text{Size: 8, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colIndex := col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), bodyText))
		colDesc := col.New(5).Add(text.New(item.Description, bodyTextLeft))
		colQty := col.New(1).Add(text.New(FormatQty(item.Quantity), bodyTextRight))
		colUnit := col.New(1).Add(text.New(item.Unit, bodyText))
		colRate := col.New(2).Add(text.New(FormatINR(item.UnitRate), bodyTextRight))
		colAmount := col.New(2).Add(text.New(FormatINR(item.Amount), bodyTextRight))

		if cellStyle != nil {
			colIndex = colIndex.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colUnit = colUnit.WithStyle(cellStyle)
			colRate = colRate.WithStyle(cellStyle)
			colAmount = colAmount.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(colIndex, colDesc, colQty, colUnit, colRate, colAmount),
		)
	}

	m.AddRows(row.New(2))
}

// addGrandTotal adds the grand total bar and the amount in words.
func addGrandTotal(m core.Maroto, q Quotation) {
	total := q.GrandTotal()

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Grand Total", props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: white,
			})).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatINR(total), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: white,
			})).WithStyle(grandCell),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", AmountToWords(total)), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addRequirements adds the requirements section if non-empty.
func addRequirements(m core.Maroto, q Quotation) {
	if q.Requirements == "" {
		return
	}

	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("REQUIREMENTS", sectionLabel)),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(q.Requirements, props.Text{
				Size:  8,
				Align: align.Left,
			})),
		),
	)

	m.AddRows(row.New(3))
}

// addSignatureBlock adds the prepared-by line and the company signature.
func addSignatureBlock(m core.Maroto, q Quotation) {
	m.AddRows(row.New(10))

	preparedBy := q.PreparedBy
	if preparedBy != "" {
		preparedBy = "Prepared By: " + preparedBy
	}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(preparedBy, props.Text{
				Size:  8,
				Align: align.Left,
			})),
			col.New(6).Add(text.New("For "+CompanyName, props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
	)
	m.AddRows(row.New(12))
	m.AddRows(
		row.New(6).Add(
			col.New(6),
			col.New(6).Add(text.New("Authorised Signatory", props.Text{
				Size:  8,
				Align: align.Right,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)
}
