package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/ptax"
	"github.com/etnz/ptax/renderer"
	"github.com/google/subcommands"
)

type quotesCmd struct {
	from, to string
}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "prints the daily PTAX quotations of a period" }
func (*quotesCmd) Usage() string {
	return `ptax quotes -from <date> [-to <date>]

Prints the first USD PTAX quotation of each day between two dates, both
included. Days without a quotation are not printed.
`
}

func (c *quotesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First day (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "Last day (YYYY-MM-DD), defaults to -from")
}

func (c *quotesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" {
		fmt.Fprintln(os.Stderr, "Error: -from is required")
		return subcommands.ExitUsageError
	}
	if c.to == "" {
		c.to = c.from
	}
	from, err := ptax.ParseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := ptax.ParseDate(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	period := ptax.NewRange(from, to)

	cfg, err := LoadConfig("", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	_, source, err := sources(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	observations, err := source.Quotes(ctx, period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	days := slices.Collect(period.Days())
	aligned := ptax.Align(observations, days)
	quotes := make([]ptax.Quote, 0, len(aligned))
	for _, d := range days {
		if q, ok := aligned[d]; ok {
			quotes = append(quotes, q)
		}
	}
	if err := renderer.Quotes(stdout, quotes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
