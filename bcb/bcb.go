// Package bcb fetches the PTAX quotations of the US dollar published by the
// Banco Central do Brasil on its Olinda OData service.
package bcb

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/ptax"
	"github.com/shopspring/decimal"
)

// DefaultURL is the CotacaoDolarPeriodo resource.
const DefaultURL = "https://olinda.bcb.gov.br/olinda/servico/PTAX/versao/v1/odata/CotacaoDolarPeriodo"

// timestampFormat is the layout of dataHoraCotacao, e.g. "2020-02-14 13:03:28.498".
// Fractional seconds are accepted even though the layout has none.
const timestampFormat = "2006-01-02 15:04:05"

// Client fetches dollar quotations. It implements ptax.QuoteSource.
type Client struct {
	URL  string
	HTTP *http.Client
}

// New returns a Client for the resource at addr. A nil client uses
// http.DefaultClient.
func New(addr string, client *http.Client) *Client {
	if addr == "" {
		addr = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{URL: addr, HTTP: client}
}

// address returns the OData query for the quotations of r.
//
// Dates are quoted and formatted MM-DD-YYYY. There is at most one closing
// quotation per weekday, so the weekday count bounds the result size.
func (c *Client) address(r ptax.Range) string {
	param := func(d ptax.Date) string { return url.QueryEscape("'" + d.Format("01-02-2006") + "'") }
	return fmt.Sprintf("%s(dataInicial=@dataInicial,dataFinalCotacao=@dataFinalCotacao)?@dataInicial=%s&@dataFinalCotacao=%s&$top=%d&$format=json",
		c.URL,
		param(r.From),
		param(r.To),
		max(1, r.Weekdays()),
	)
}

// Quotes returns the quotations published from r.From to r.To, in the order of
// the response.
//
//	{
//	  "@odata.context": "https://was-p.bcnet.bcb.gov.br/olinda/servico/PTAX/versao/v1/odata$metadata#_CotacaoDolarPeriodo",
//	  "value": [
//	    {
//	      "cotacaoCompra": 4.3437,
//	      "cotacaoVenda": 4.3443,
//	      "dataHoraCotacao": "2020-02-14 13:03:28.498"
//	    },
func (c *Client) Quotes(ctx context.Context, r ptax.Range) ([]ptax.Observation, error) {
	addr := c.address(r)
	log.Println("Downloading quotes:", addr)

	var payload any
	if err := ptax.GetJSON(ctx, c.HTTP, addr, &payload); err != nil {
		return nil, fmt.Errorf("failed to get quotes from %s to %s: %w", r.From, r.To, err)
	}
	return parseQuotes(payload)
}

// parseQuotes extracts the observations of a decoded CotacaoDolarPeriodo payload.
// A payload without a value list, like an OData error, is an error. An empty
// list is not.
func parseQuotes(payload any) ([]ptax.Observation, error) {
	path := "$.value"
	jval, err := jsonpath.Get(path, payload)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	records, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: not a list %v", path, jval)
	}

	observations := make([]ptax.Observation, 0, len(records))
	for i, rec := range records {
		fields, ok := rec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("quote #%d is not an object: %v", i, rec)
		}
		o, err := parseObservation(fields)
		if err != nil {
			return nil, fmt.Errorf("quote #%d: %w", i, err)
		}
		observations = append(observations, o)
	}
	return observations, nil
}

func parseObservation(fields map[string]any) (o ptax.Observation, err error) {
	ts, ok := fields["dataHoraCotacao"].(string)
	if !ok {
		return o, fmt.Errorf("missing dataHoraCotacao")
	}
	if o.At, err = parseTimestamp(ts); err != nil {
		return o, err
	}
	if o.Buy, err = parseDecimal(fields, "cotacaoCompra"); err != nil {
		return o, err
	}
	if o.Sell, err = parseDecimal(fields, "cotacaoVenda"); err != nil {
		return o, err
	}
	return o, nil
}

// parseTimestamp reads dataHoraCotacao. Only the date matters, so a value
// with an unexpected time part still yields its day.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(timestampFormat, s); err == nil {
		return t, nil
	}
	if len(s) < len(ptax.DateFormat) {
		return time.Time{}, fmt.Errorf("invalid dataHoraCotacao %q", s)
	}
	d, err := ptax.ParseDate(s[:len(ptax.DateFormat)])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid dataHoraCotacao %q: %w", s, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

func parseDecimal(fields map[string]any, name string) (decimal.Decimal, error) {
	switch v := fields[name].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("missing %s", name)
	}
}

var _ ptax.QuoteSource = (*Client)(nil)
