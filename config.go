package ptax

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error caused by a malformed
// configuration or static dataset. Such errors are not worth retrying.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes a reporting run.
type Config struct {
	From        string `yaml:"from"`         // first reference month, e.g. 2017-01
	To          string `yaml:"to"`           // last reference month, included
	CalendarURL string `yaml:"calendar_url"` // yearly calendar address, %d is the year
	QuotesURL   string `yaml:"quotes_url"`   // PTAX CotacaoDolarPeriodo resource
	Cache       string `yaml:"cache"`        // daily, monthly or none
}

// DefaultConfig returns the configuration of the historical report: January
// 2017 to January 2021, Brazilian calendars from pagar.me and PTAX quotes
// from the Banco Central do Brasil.
func DefaultConfig() Config {
	return Config{
		From:        "2017-01",
		To:          "2021-01",
		CalendarURL: "https://raw.githubusercontent.com/pagarme/business-calendar/master/data/brazil/%d.json",
		QuotesURL:   "https://olinda.bcb.gov.br/olinda/servico/PTAX/versao/v1/odata/CotacaoDolarPeriodo",
		Cache:       "daily",
	}
}

// ReadConfig reads a YAML configuration file on top of DefaultConfig without
// validating it. An empty path returns the defaults.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// LoadConfig is ReadConfig followed by Validate.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field of the configuration.
func (c Config) Validate() error {
	var errs error
	if _, err := c.Months(); err != nil {
		errs = errors.Join(errs, err)
	}
	if !strings.Contains(c.CalendarURL, "%d") {
		errs = errors.Join(errs, fmt.Errorf("%w: calendar_url %q has no %%d year placeholder", ErrInvalidConfig, c.CalendarURL))
	}
	if c.QuotesURL == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: quotes_url is required", ErrInvalidConfig))
	}
	if _, _, err := c.CachePeriod(); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}

// Months returns the range of reference months of the report.
func (c Config) Months() (Range, error) {
	from, err := ParseMonth(c.From)
	if err != nil {
		return Range{}, fmt.Errorf("%w: from: %w", ErrInvalidConfig, err)
	}
	to, err := ParseMonth(c.To)
	if err != nil {
		return Range{}, fmt.Errorf("%w: to: %w", ErrInvalidConfig, err)
	}
	if to.Before(from) {
		return Range{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidConfig, c.From, c.To)
	}
	return Range{From: from, To: to.EndOf(Monthly)}, nil
}

// CachePeriod returns how long HTTP responses are cached. It returns false
// if caching is disabled.
func (c Config) CachePeriod() (Period, bool, error) {
	switch strings.ToLower(strings.TrimSpace(c.Cache)) {
	case "none", "off", "no":
		return Daily, false, nil
	case "":
		return Daily, true, nil
	}
	p, err := ParsePeriod(c.Cache)
	if err != nil {
		return Daily, false, fmt.Errorf("%w: cache: %w", ErrInvalidConfig, err)
	}
	return p, true, nil
}
