package ptax

// Row is a line of the report: an anchor and the quote observed on its day.
type Row struct {
	Anchor
	Quote Quote
}

// Assemble joins anchors with their quote, in the anchors order.
//
// Anchors whose day has no quote are left out of the report.
func Assemble(anchors []Anchor, quotes map[Date]Quote) []Row {
	rows := make([]Row, 0, len(anchors))
	for _, a := range anchors {
		q, ok := quotes[a.Day]
		if !ok {
			continue
		}
		rows = append(rows, Row{Anchor: a, Quote: q})
	}
	return rows
}
