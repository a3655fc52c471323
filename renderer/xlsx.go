package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/ptax"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "PTAX"

// XLSX writes the rows as a single sheet workbook, with the same columns as
// TSV. Prices are numeric cells holding the exact decimal text, dates are text.
func XLSX(w io.Writer, rows []ptax.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return err
	}
	return nil
}

// writeRow writes row on line n of the report sheet.
func writeRow(f *excelize.File, n int, row ptax.Row) error {
	cell := func(col int) string {
		name, _ := excelize.CoordinatesToCellName(col, n) // col and n are positive
		return name
	}
	texts := map[int]string{
		1: formatMonth(row.Reference),
		2: formatMonth(row.Previous),
		3: formatDay(row.Day),
		6: formatDay(row.Quote.Day),
	}
	for col, text := range texts {
		if err := f.SetCellStr(reportSheet, cell(col), text); err != nil {
			return err
		}
	}
	prices := map[int]decimal.Decimal{
		4: row.Quote.Buy,
		5: row.Quote.Sell,
	}
	for col, price := range prices {
		// numeric cell holding the exact decimal text
		if err := f.SetCellDefault(reportSheet, cell(col), price.String()); err != nil {
			return err
		}
	}
	return nil
}
