// Package ptax builds a monthly report of the official USD/BRL quotation
// (PTAX) observed on a fixed business day of the previous month.
//
// For every reference month, the anchor day is the last business day on or
// before the end of the first fortnight of the previous month, that is its
// 1st plus two weeks. Weekends and the national holidays that restrict
// financial operations are skipped backward.
//
// The package is organized around a few steps:
//   - Calendar: yearly business calendars are merged into a HolidaySet.
//   - Anchors: each reference month is mapped to its Anchor.
//   - Alignment: raw quotations are indexed by day with Align, keeping only
//     the anchor days.
//   - Assembly: anchors and quotes are joined into Rows by Assemble. Anchors
//     without a quotation are left out.
//
// Generate runs all the steps against a HolidaySource and a QuoteSource. The
// pagarme and bcb packages implement them over HTTP, the renderer package
// formats the rows, and the ptax command puts everything together.
package ptax
