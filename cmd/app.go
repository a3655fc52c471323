// Package cmd implements the CLI application to produce PTAX reports.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ptax"
	"github.com/etnz/ptax/bcb"
	"github.com/etnz/ptax/pagarme"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "", "Path to the YAML configuration file. Defaults are used if empty.")

// stdout receives the command results.
var stdout io.Writer = os.Stdout

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&reportCmd{},
	&anchorsCmd{},
	&holidaysCmd{},
	&quotesCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
}

// LoadConfig loads the application configuration, applies non empty
// from/to overrides, and validates the result.
func LoadConfig(from, to string) (ptax.Config, error) {
	cfg, err := ptax.ReadConfig(*configPath)
	if err != nil {
		return cfg, err
	}
	if from != "" {
		cfg.From = from
	}
	if to != "" {
		cfg.To = to
	}
	return cfg, cfg.Validate()
}

// httpClient returns the client configured for the run.
func httpClient(cfg ptax.Config) (*http.Client, error) {
	period, cached, err := cfg.CachePeriod()
	if err != nil {
		return nil, err
	}
	if !cached {
		return http.DefaultClient, nil
	}
	return ptax.NewCachingClient(period), nil
}

// sources returns the holiday and quote sources described by cfg.
func sources(cfg ptax.Config) (*pagarme.Client, *bcb.Client, error) {
	client, err := httpClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return pagarme.New(cfg.CalendarURL, client), bcb.New(cfg.QuotesURL, client), nil
}

// printMarkdown renders md for the terminal, or prints it as is if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(160))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
