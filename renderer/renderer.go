// Package renderer formats ptax reports as tab separated values, markdown,
// or spreadsheets.
package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/etnz/ptax"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// Columns are the headers of the report, in order.
var Columns = []string{
	"Data",
	"Mês Anterior",
	"Último dia útil da primeira quinzena do mês anterior",
	"Cotação USD Compra",
	"Cotação USD Venda",
	"Data Cotação",
}

const (
	monthFormat = "01/2006"
	dayFormat   = "02/01/2006"
)

// brl is the currency quotations are expressed in.
var brl = money.GetCurrency(money.BRL)

func formatMonth(d ptax.Date) string { return d.Format(monthFormat) }
func formatDay(d ptax.Date) string   { return d.Format(dayFormat) }

// formatPrice renders a price with all its digits and the BRL decimal separator.
func formatPrice(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", brl.Decimal, 1)
}

// formatMoney is formatPrice with the BRL symbol.
func formatMoney(d decimal.Decimal) string { return brl.Grapheme + " " + formatPrice(d) }

// Fields returns the text of each column of row.
func Fields(row ptax.Row) []string {
	return []string{
		formatMonth(row.Reference),
		formatMonth(row.Previous),
		formatDay(row.Day),
		formatPrice(row.Quote.Buy),
		formatPrice(row.Quote.Sell),
		formatDay(row.Quote.Day),
	}
}

// TSV writes the header line and one tab separated line per row.
func TSV(w io.Writer, rows []ptax.Row) error {
	if _, err := fmt.Fprintln(w, strings.Join(Columns, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(Fields(row), "\t")); err != nil {
			return err
		}
	}
	return nil
}

// Anchors writes the anchor records, one per line, tab separated.
func Anchors(w io.Writer, anchors []ptax.Anchor) error {
	if _, err := fmt.Fprintln(w, strings.Join(Columns[:3], "\t")); err != nil {
		return err
	}
	for _, a := range anchors {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", formatMonth(a.Reference), formatMonth(a.Previous), formatDay(a.Day)); err != nil {
			return err
		}
	}
	return nil
}

// Holidays writes the holidays in chronological order, one per line.
func Holidays(w io.Writer, holidays ptax.HolidaySet) error {
	for _, d := range holidays.Dates() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", formatDay(d), d.Weekday()); err != nil {
			return err
		}
	}
	return nil
}

// Quotes writes quotes as "day buy sell" lines, tab separated.
func Quotes(w io.Writer, quotes []ptax.Quote) error {
	if _, err := fmt.Fprintln(w, strings.Join([]string{Columns[5], Columns[3], Columns[4]}, "\t")); err != nil {
		return err
	}
	for _, q := range quotes {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", formatDay(q.Day), formatPrice(q.Buy), formatPrice(q.Sell)); err != nil {
			return err
		}
	}
	return nil
}

// markdownReport is the data of the report templates.
type markdownReport struct {
	Months  ptax.Range
	Rows    []ptax.Row
	Missing []ptax.Anchor // anchors without a quote
}

// Markdown renders the report as a markdown document.
func Markdown(r *ptax.Report) string {
	data := markdownReport{Months: r.Months, Rows: r.Rows}
	for _, a := range r.Anchors {
		if _, ok := r.Quotes[a.Day]; !ok {
			data.Missing = append(data.Missing, a)
		}
	}
	partials := map[string]string{
		"report_missing": "report_missing.md",
	}
	return renderTemplate("report", "report.md", partials, data)
}

var funcs = template.FuncMap{
	"month": formatMonth,
	"day":   formatDay,
	"price": formatPrice,
	"money": formatMoney,
}

// renderTemplate parses mainFile and its partials, and executes it with data.
// Errors are rendered in place of the document.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
