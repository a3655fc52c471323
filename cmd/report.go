package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/ptax"
	"github.com/etnz/ptax/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	from, to string
	format   string
	output   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "prints the PTAX quotation of each month anchor day" }
func (*reportCmd) Usage() string {
	return `ptax report [-from <month>] [-to <month>] [-format tsv|markdown|xlsx] [-o <file>]

For each reference month in the range, prints the USD buy and sell PTAX
quotation of the last business day on or before the 15th of the previous
month. Weekends and holidays restricting financial operations are skipped.

Months without a quotation on their anchor day are not printed.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First reference month (YYYY-MM), overrides the configuration")
	f.StringVar(&c.to, "to", "", "Last reference month (YYYY-MM), overrides the configuration")
	f.StringVar(&c.format, "format", "tsv", "Output format: tsv, markdown or xlsx")
	f.StringVar(&c.output, "o", "", "Output file. Required for xlsx, defaults to the standard output otherwise")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format == "xlsx" && c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required with -format xlsx")
		return subcommands.ExitUsageError
	}
	if c.format != "tsv" && c.format != "markdown" && c.format != "xlsx" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	months, _ := cfg.Months() // validated
	holidays, quotes, err := sources(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := ptax.Generate(ctx, months, holidays, quotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not generate report: %v\n", err)
		if errors.Is(err, ptax.ErrInvalidConfig) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	if err := c.write(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// createFile opens the -o output file.
var createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

func (c *reportCmd) write(report *ptax.Report) (err error) {
	var w io.Writer = stdout
	if c.output != "" {
		file, ferr := createFile(c.output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}

	switch c.format {
	case "xlsx":
		return renderer.XLSX(w, report.Rows)
	case "markdown":
		md := renderer.Markdown(report)
		if c.output == "" {
			printMarkdown(md)
			return nil
		}
		_, err = io.WriteString(w, md)
		return err
	default:
		return renderer.TSV(w, report.Rows)
	}
}
