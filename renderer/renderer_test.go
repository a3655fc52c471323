package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/ptax"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// sampleReport covers 02/2020 to 04/2020, the 04/2020 anchor has no quote.
func sampleReport() *ptax.Report {
	months := ptax.NewRange(ptax.NewDate(2020, 2, 1), ptax.NewDate(2020, 4, 30))
	anchors := ptax.Anchors([]ptax.Date{ptax.NewDate(2020, 2, 1), ptax.NewDate(2020, 3, 1), ptax.NewDate(2020, 4, 1)}, ptax.Holidays())
	quotes := map[ptax.Date]ptax.Quote{
		ptax.NewDate(2020, 1, 15): {Day: ptax.NewDate(2020, 1, 15), Buy: decimal.RequireFromString("4.1823"), Sell: decimal.RequireFromString("4.1829")},
		ptax.NewDate(2020, 2, 14): {Day: ptax.NewDate(2020, 2, 14), Buy: decimal.RequireFromString("4.3437"), Sell: decimal.RequireFromString("4.3440")},
	}
	return &ptax.Report{
		Months:  months,
		Anchors: anchors,
		Quotes:  quotes,
		Rows:    ptax.Assemble(anchors, quotes),
	}
}

func TestTSV(t *testing.T) {
	var b bytes.Buffer
	if err := TSV(&b, sampleReport().Rows); err != nil {
		t.Fatalf("TSV() error = %v", err)
	}
	want := "Data\tMês Anterior\tÚltimo dia útil da primeira quinzena do mês anterior\tCotação USD Compra\tCotação USD Venda\tData Cotação\n" +
		"02/2020\t01/2020\t15/01/2020\t4,1823\t4,1829\t15/01/2020\n" +
		"03/2020\t02/2020\t14/02/2020\t4,3437\t4,344\t14/02/2020\n"
	if got := b.String(); got != want {
		t.Errorf("TSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestTSV_Empty(t *testing.T) {
	var b bytes.Buffer
	if err := TSV(&b, nil); err != nil {
		t.Fatalf("TSV() error = %v", err)
	}
	if got, want := b.String(), strings.Join(Columns, "\t")+"\n"; got != want {
		t.Errorf("TSV(nil) = %q, want only the header %q", got, want)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"4.3437", "4,3437"},
		{"5.2000", "5,2"},
		{"5", "5"},
		{"0.0001", "0,0001"},
	}
	for _, tt := range tests {
		if got := formatPrice(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("formatPrice(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := formatMoney(decimal.RequireFromString("4.3437")); got != "R$ 4,3437" {
		t.Errorf("formatMoney(4.3437) = %q, want %q", got, "R$ 4,3437")
	}
}

func TestAnchors(t *testing.T) {
	var b bytes.Buffer
	if err := Anchors(&b, sampleReport().Anchors); err != nil {
		t.Fatalf("Anchors() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Anchors() printed %d lines, want 4:\n%s", len(lines), b.String())
	}
	if want := "04/2020\t03/2020\t13/03/2020"; lines[3] != want {
		t.Errorf("Anchors() last line = %q, want %q", lines[3], want)
	}
}

func TestHolidays(t *testing.T) {
	var b bytes.Buffer
	set := ptax.Holidays(ptax.NewDate(2020, 2, 25), ptax.NewDate(2020, 1, 1))
	if err := Holidays(&b, set); err != nil {
		t.Fatalf("Holidays() error = %v", err)
	}
	want := "01/01/2020\tWednesday\n25/02/2020\tTuesday\n"
	if got := b.String(); got != want {
		t.Errorf("Holidays() = %q, want %q", got, want)
	}
}

func TestQuotes(t *testing.T) {
	var b bytes.Buffer
	quotes := []ptax.Quote{{Day: ptax.NewDate(2020, 2, 14), Buy: decimal.RequireFromString("4.3437"), Sell: decimal.RequireFromString("4.3443")}}
	if err := Quotes(&b, quotes); err != nil {
		t.Fatalf("Quotes() error = %v", err)
	}
	want := "Data Cotação\tCotação USD Compra\tCotação USD Venda\n14/02/2020\t4,3437\t4,3443\n"
	if got := b.String(); got != want {
		t.Errorf("Quotes() = %q, want %q", got, want)
	}
}

// parseMarkdown parses md with table support.
func parseMarkdown(md string) (ast.Node, []byte) {
	src := []byte(md)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	return parser.Parse(text.NewReader(src)), src
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleReport())
	root, src := parseMarkdown(md)

	var tables, rows, headings int
	var cells []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *east.Table:
			tables++
		case *east.TableRow:
			rows++
		case *east.TableCell:
			if _, ok := n.Parent().(*east.TableRow); ok {
				cells = append(cells, string(n.Text(src)))
			}
		case *ast.Heading:
			headings++
		}
		return ast.WalkContinue, nil
	})

	if tables != 1 {
		t.Errorf("Markdown() has %d tables, want 1:\n%s", tables, md)
	}
	if rows != 2 {
		t.Errorf("Markdown() table has %d rows, want 2:\n%s", rows, md)
	}
	if len(cells) != 12 || cells[3] != "R$ 4,1823" || cells[10] != "R$ 4,344" {
		t.Errorf("Markdown() cells = %q", cells)
	}
	if headings != 2 {
		t.Errorf("Markdown() has %d headings, want the title and the missing section:\n%s", headings, md)
	}
	if !strings.Contains(md, "# Cotação PTAX USD de 02/2020 a 04/2020") {
		t.Errorf("Markdown() title is wrong:\n%s", md)
	}
	if !strings.Contains(md, "- 04/2020: 13/03/2020") {
		t.Errorf("Markdown() does not list the missing 04/2020 anchor:\n%s", md)
	}
}

func TestMarkdown_NothingMissing(t *testing.T) {
	r := sampleReport()
	r.Anchors = r.Anchors[:2]
	md := Markdown(r)
	if strings.Contains(md, "Sem cotação") {
		t.Errorf("Markdown() lists missing anchors while all are quoted:\n%s", md)
	}
}

func TestXLSX(t *testing.T) {
	var b bytes.Buffer
	if err := XLSX(&b, sampleReport().Rows); err != nil {
		t.Fatalf("XLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(&b)
	if err != nil {
		t.Fatalf("excelize.OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	if err != nil {
		t.Fatalf("GetRows(%q) error = %v", reportSheet, err)
	}
	if len(rows) != 3 {
		t.Fatalf("XLSX() has %d rows, want 3", len(rows))
	}
	for i, c := range Columns {
		if rows[0][i] != c {
			t.Errorf("XLSX() header[%d] = %q, want %q", i, rows[0][i], c)
		}
	}
	if got := rows[2][2]; got != "14/02/2020" {
		t.Errorf("XLSX() C3 = %q, want 14/02/2020", got)
	}

	buy, err := f.GetCellValue(reportSheet, "D3", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(D3) error = %v", err)
	}
	if buy != "4.3437" {
		t.Errorf("XLSX() D3 = %q, want 4.3437", buy)
	}
}

func TestXLSX_ExactPrices(t *testing.T) {
	r := sampleReport()
	rows := r.Rows[:1]
	rows[0].Quote.Buy = decimal.RequireFromString("4.12345678901234567891")
	rows[0].Quote.Sell = decimal.RequireFromString("0.1")

	var b bytes.Buffer
	if err := XLSX(&b, rows); err != nil {
		t.Fatalf("XLSX() error = %v", err)
	}
	f, err := excelize.OpenReader(&b)
	if err != nil {
		t.Fatalf("excelize.OpenReader() error = %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell, want string
	}{
		{"D2", "4.12345678901234567891"},
		{"E2", "0.1"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(reportSheet, tt.cell, excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("XLSX() %s = %q, want %q", tt.cell, got, tt.want)
		}
		typ, err := f.GetCellType(reportSheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellType(%s) error = %v", tt.cell, err)
		}
		if typ == excelize.CellTypeInlineString || typ == excelize.CellTypeSharedString {
			t.Errorf("XLSX() %s is a text cell, want a number", tt.cell)
		}
	}
}
