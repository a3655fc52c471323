// Package pagarme reads the Brazilian business calendars published by
// pagar.me in https://github.com/pagarme/business-calendar.
package pagarme

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/etnz/ptax"
)

// DefaultURL is the address of the yearly calendars, %d is the year.
const DefaultURL = "https://raw.githubusercontent.com/pagarme/business-calendar/master/data/brazil/%d.json"

// Client fetches yearly calendars. It implements ptax.HolidaySource.
type Client struct {
	URL  string // format with a %d verb for the year
	HTTP *http.Client
}

// New returns a Client for the calendars at url. A nil client uses
// http.DefaultClient.
func New(url string, client *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{URL: url, HTTP: client}
}

// businessCalendar is the payload of a yearly calendar.
//
//	{
//	  "calendar": [
//	    {
//	      "date": "2020-01-01",
//	      "holiday": true,
//	      "limited_financial_operation": true,
//	      "description": "Confraternização Universal"
//	    },
type businessCalendar struct {
	Calendar []ptax.CalendarDay `json:"calendar"`
}

// Calendar returns the calendar days of year.
func (c *Client) Calendar(ctx context.Context, year int) ([]ptax.CalendarDay, error) {
	addr := fmt.Sprintf(c.URL, year)
	log.Println("Downloading calendar:", addr)

	var content businessCalendar
	if err := ptax.GetJSON(ctx, c.HTTP, addr, &content); err != nil {
		return nil, fmt.Errorf("failed to get business calendar %d: %w", year, err)
	}
	if len(content.Calendar) == 0 {
		return nil, fmt.Errorf("business calendar %d is empty", year)
	}
	return content.Calendar, nil
}

var _ ptax.HolidaySource = (*Client)(nil)
