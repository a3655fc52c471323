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

type anchorsCmd struct {
	from, to string
}

func (*anchorsCmd) Name() string     { return "anchors" }
func (*anchorsCmd) Synopsis() string { return "prints the anchor day of each reference month" }
func (*anchorsCmd) Usage() string {
	return `ptax anchors [-from <month>] [-to <month>]

Prints, for each reference month, the previous month and the last business
day of its first fortnight. No quotation is fetched.
`
}

func (c *anchorsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First reference month (YYYY-MM), overrides the configuration")
	f.StringVar(&c.to, "to", "", "Last reference month (YYYY-MM), overrides the configuration")
}

func (c *anchorsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	months, _ := cfg.Months()
	holidays, _, err := sources(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	set, err := ptax.BuildHolidaySet(ctx, holidays, ptax.CalendarYears(months))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load holidays: %v\n", err)
		return subcommands.ExitFailure
	}

	anchors := ptax.Anchors(slices.Collect(months.Months()), set)
	if err := renderer.Anchors(stdout, anchors); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
