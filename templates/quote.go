package templates

import (
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ItemView is one rendered line item row.
type ItemView struct {
	Index       int
	Description string
	Qty         string
	Unit        string
	Rate        string
	Amount      string
}

// EntryView carries the item-entry scratch values back into the form so a
// rejected add keeps what the user typed.
type EntryView struct {
	Description string
	Quantity    string
	Unit        string
	CustomUnit  string
	Rate        string
}

// QuoteView is everything the quotation page needs to render.
type QuoteView struct {
	CustomerName     string
	Address          string
	MobileNumber     string
	QuoteNumber      string
	Date             string
	ValidityDays     string
	Requirements     string
	PreparedBy       string
	SalesPerson      string
	ShowTitleHeading bool

	Items         []ItemView
	GrandTotal    string
	AmountInWords string
	Errors        map[string]string
	Entry         EntryView
	Units         []string

	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
}

// QuotePage renders the full single-page form: header bar, editable form,
// items section and live preview.
func QuotePage(v QuoteView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder

		b.WriteString("<header class=\"topbar\"><span>Quotation Builder</span>")
		b.WriteString("<form method=\"post\" action=\"/logout\"><button type=\"submit\" class=\"link\">Logout</button></form>")
		b.WriteString("</header>")

		b.WriteString("<main id=\"quote-form\" class=\"quote-layout\">")
		writeCustomerForm(&b, v)
		writeItemsSection(&b, v)
		writePreview(&b, v)
		b.WriteString("</main>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// QuoteForm re-renders the whole form area, used after a successful import.
func QuoteForm(v QuoteView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		b.WriteString("<main id=\"quote-form\" class=\"quote-layout\" hx-swap-oob=\"true\">")
		writeCustomerForm(&b, v)
		writeItemsSection(&b, v)
		writePreview(&b, v)
		b.WriteString("</main>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ItemsSection re-renders the items table, entry row and preview after an
// add or remove.
func ItemsSection(v QuoteView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		writeItemsSection(&b, v)
		writePreviewOOB(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Preview re-renders the preview pane after a field edit.
func Preview(v QuoteView) templ.Component {
	return component(func(w io.Writer) error {
		var b strings.Builder
		writePreview(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func fieldInput(b *strings.Builder, v QuoteView, label, field, errKey, value string) {
	fmt.Fprintf(b, "<label>%s", esc(label))
	fmt.Fprintf(b,
		"<input type=\"text\" name=\"value\" value=\"%s\" hx-post=\"/quote/field?field=%s\" hx-trigger=\"change\" hx-target=\"#preview\" hx-swap=\"outerHTML\">",
		esc(value), field)
	if msg, ok := v.Errors[errKey]; ok {
		fmt.Fprintf(b, "<span class=\"field-error\">%s</span>", esc(msg))
	}
	b.WriteString("</label>")
}

func writeCustomerForm(b *strings.Builder, v QuoteView) {
	b.WriteString("<section class=\"panel\"><h2>Customer &amp; Quote</h2>")

	fieldInput(b, v, "Customer Name", "customerName", "customerName", v.CustomerName)
	fieldInput(b, v, "Address", "address", "address", v.Address)
	fieldInput(b, v, "Mobile Number", "mobileNumber", "mobile", v.MobileNumber)
	fieldInput(b, v, "Quotation No", "quoteNumber", "quoteNo", v.QuoteNumber)
	fieldInput(b, v, "Date", "date", "", v.Date)
	fieldInput(b, v, "Valid For (Days)", "validityDays", "", v.ValidityDays)
	fieldInput(b, v, "Sales Person", "salesPerson", "", v.SalesPerson)
	fieldInput(b, v, "Prepared By", "preparedBy", "", v.PreparedBy)

	b.WriteString("<label>Requirements")
	fmt.Fprintf(b,
		"<textarea name=\"value\" hx-post=\"/quote/field?field=requirements\" hx-trigger=\"change\" hx-target=\"#preview\" hx-swap=\"outerHTML\">%s</textarea>",
		esc(v.Requirements))
	b.WriteString("</label>")

	checked := ""
	if v.ShowTitleHeading {
		checked = " checked"
	}
	fmt.Fprintf(b,
		"<label class=\"check\"><input type=\"checkbox\" name=\"value\" value=\"true\"%s "+
			"hx-post=\"/quote/field?field=showTitleHeading\" hx-trigger=\"change\" hx-target=\"#preview\" hx-swap=\"outerHTML\" "+
			"hx-vals='js:{value: event.target.checked ? \"true\" : \"false\"}'>Show QUOTATION heading</label>",
		checked)

	b.WriteString("<div class=\"actions\">")
	b.WriteString("<a class=\"button\" href=\"/quote/export/excel\">Export Excel</a>")
	b.WriteString("<a class=\"button\" href=\"/quote/export/pdf\">Export PDF</a>")
	b.WriteString("<form method=\"post\" action=\"/quote/submit\"><button type=\"submit\">Submit</button></form>")
	b.WriteString("<form method=\"post\" action=\"/quote/import\" enctype=\"multipart/form-data\" hx-post=\"/quote/import\" hx-encoding=\"multipart/form-data\" hx-target=\"#quote-form\" hx-swap=\"outerHTML\">")
	b.WriteString("<input type=\"file\" name=\"document\" accept=\".pdf\"><button type=\"submit\">Load PDF</button></form>")
	b.WriteString("</div></section>")
}

func writeItemsSection(b *strings.Builder, v QuoteView) {
	b.WriteString("<section class=\"panel\" id=\"items-section\"><h2>Items</h2>")
	b.WriteString("<table class=\"items\"><thead><tr>")
	for _, h := range []string{"#", "Description of Goods", "QTY", "Unit", "Rate", "Amount", ""} {
		fmt.Fprintf(b, "<th>%s</th>", esc(h))
	}
	b.WriteString("</tr></thead><tbody>")

	for _, item := range v.Items {
		fmt.Fprintf(b, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>",
			item.Index, esc(item.Description), esc(item.Qty), esc(item.Unit), esc(item.Rate), esc(item.Amount))
		fmt.Fprintf(b,
			"<td><button hx-delete=\"/quote/items/%d\" hx-target=\"#items-section\" hx-swap=\"outerHTML\">Remove</button></td></tr>",
			item.Index-1)
	}

	// Entry scratch row.
	b.WriteString("<tr class=\"entry\"><td></td>")
	b.WriteString("<form id=\"item-entry\" hx-post=\"/quote/items\" hx-target=\"#items-section\" hx-swap=\"outerHTML\">")
	fmt.Fprintf(b, "<td><input form=\"item-entry\" name=\"description\" value=\"%s\" placeholder=\"Description\"></td>", esc(v.Entry.Description))
	fmt.Fprintf(b, "<td><input form=\"item-entry\" name=\"quantity\" value=\"%s\" inputmode=\"decimal\"></td>", esc(v.Entry.Quantity))

	b.WriteString("<td><select form=\"item-entry\" name=\"unit\">")
	for _, u := range v.Units {
		sel := ""
		if u == v.Entry.Unit {
			sel = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", esc(u), sel, esc(u))
	}
	sel := ""
	if v.Entry.Unit == "custom" {
		sel = " selected"
	}
	fmt.Fprintf(b, "<option value=\"custom\"%s>Other</option>", sel)
	b.WriteString("</select>")
	fmt.Fprintf(b, "<input form=\"item-entry\" name=\"customUnit\" value=\"%s\" placeholder=\"Custom unit\"></td>", esc(v.Entry.CustomUnit))

	fmt.Fprintf(b, "<td><input form=\"item-entry\" name=\"rate\" value=\"%s\" inputmode=\"decimal\"></td>", esc(v.Entry.Rate))
	b.WriteString("<td></td><td><button form=\"item-entry\" type=\"submit\">Add</button></td>")
	b.WriteString("</form></tr>")

	b.WriteString("</tbody></table>")
	fmt.Fprintf(b, "<p class=\"grand-total\">Grand Total: <strong>%s</strong></p>", esc(v.GrandTotal))
	b.WriteString("</section>")
}

func writePreview(b *strings.Builder, v QuoteView) {
	b.WriteString("<section class=\"panel preview\" id=\"preview\">")
	if v.ShowTitleHeading {
		b.WriteString("<h2 class=\"doc-title\">QUOTATION</h2>")
	}
	fmt.Fprintf(b, "<div class=\"company\"><strong>%s</strong><br>%s<br>Phone: %s | Email: %s</div>",
		esc(v.CompanyName), esc(v.CompanyAddress), esc(v.CompanyPhone), esc(v.CompanyEmail))

	b.WriteString("<div class=\"meta\"><div>")
	fmt.Fprintf(b, "<strong>%s</strong><br>%s<br>Mobile: %s", esc(v.CustomerName), esc(v.Address), esc(v.MobileNumber))
	b.WriteString("</div><div>")
	fmt.Fprintf(b, "Quotation No: %s<br>Date: %s<br>Valid For: %s days", esc(v.QuoteNumber), esc(v.Date), esc(v.ValidityDays))
	b.WriteString("</div></div>")

	b.WriteString("<table class=\"items\"><thead><tr>")
	for _, h := range []string{"#", "Description of Goods", "QTY", "Unit", "Rate", "Amount"} {
		fmt.Fprintf(b, "<th>%s</th>", esc(h))
	}
	b.WriteString("</tr></thead><tbody>")
	for _, item := range v.Items {
		fmt.Fprintf(b, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			item.Index, esc(item.Description), esc(item.Qty), esc(item.Unit), esc(item.Rate), esc(item.Amount))
	}
	fmt.Fprintf(b, "<tr class=\"total\"><td colspan=\"5\">Grand Total</td><td>%s</td></tr>", esc(v.GrandTotal))
	b.WriteString("</tbody></table>")

	fmt.Fprintf(b, "<p class=\"words\">%s</p>", esc(v.AmountInWords))

	if v.Requirements != "" {
		fmt.Fprintf(b, "<div class=\"requirements\"><strong>Requirements</strong><p>%s</p></div>", esc(v.Requirements))
	}

	b.WriteString("<div class=\"signature\">")
	if v.PreparedBy != "" {
		fmt.Fprintf(b, "<span>Prepared By: %s</span>", esc(v.PreparedBy))
	}
	fmt.Fprintf(b, "<span>For %s<br><br>Authorised Signatory</span>", esc(v.CompanyName))
	b.WriteString("</div></section>")
}

// writePreviewOOB emits the preview as an HTMX out-of-band swap so item
// changes refresh both the table and the preview in one response.
func writePreviewOOB(b *strings.Builder, v QuoteView) {
	var inner strings.Builder
	writePreview(&inner, v)
	s := strings.Replace(inner.String(), "id=\"preview\"", "id=\"preview\" hx-swap-oob=\"true\"", 1)
	b.WriteString(s)
}
