package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ptax"
	"github.com/etnz/ptax/renderer"
	"github.com/google/subcommands"
)

type holidaysCmd struct {
	from, to int
}

func (*holidaysCmd) Name() string     { return "holidays" }
func (*holidaysCmd) Synopsis() string { return "prints the days without financial settlement" }
func (*holidaysCmd) Usage() string {
	return `ptax holidays [-from <year>] [-to <year>]

Prints the holidays that restrict financial operations, in chronological
order. Both years default to the years needed by the configured report.
`
}

func (c *holidaysCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.from, "from", 0, "First calendar year")
	f.IntVar(&c.to, "to", 0, "Last calendar year")
}

func (c *holidaysCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig("", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	months, _ := cfg.Months()
	years := ptax.CalendarYears(months)
	from, to := years[0], years[len(years)-1]
	if c.from != 0 {
		from = c.from
	}
	if c.to != 0 {
		to = c.to
	}
	if to < from {
		fmt.Fprintf(os.Stderr, "Error: -from %d is after -to %d\n", from, to)
		return subcommands.ExitUsageError
	}
	years = years[:0]
	for y := from; y <= to; y++ {
		years = append(years, y)
	}

	holidays, _, err := sources(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	set, err := ptax.BuildHolidaySet(ctx, holidays, years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load holidays: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := renderer.Holidays(stdout, set); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
