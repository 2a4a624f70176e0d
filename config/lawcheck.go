package config

import (
	"fmt"
	"slices"
)

// Output formats accepted by LawCheck.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	// FormatAuto selects text logs on a terminal and JSON logs otherwise.
	FormatAuto = "auto"
)

// LawCheck configures a law checker run.
type LawCheck struct {
	// Checks is the number of random inputs drawn per law.
	Checks int
	// Seed fixes the random seed; zero picks a fresh one.
	Seed uint64
	// Parallel bounds how many suites run at once.
	Parallel int
	// Suites restricts the run to the named suites; empty runs all.
	Suites []string
	// Format is one of FormatText, FormatJSON or FormatYAML.
	Format    string
	LogLevel  string
	LogFormat string
}

// Defaults returns the default law checker settings.
func Defaults() map[string]any {
	return map[string]any{
		"checks":     100,
		"seed":       0,
		"parallel":   1,
		"format":     FormatText,
		"log.level":  "info",
		"log.format": FormatText,
	}
}

// Load reads defaults, then path if it is not empty, then LAWCHECK_*
// environment variables. Callers layer flags on top with Set.
func Load(path string) (*Config, error) {
	c := New().WithDefaults(Defaults())
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return c.LoadEnv(EnvPrefix), nil
}

// LawCheck decodes and validates the law checker settings.
func (c *Config) LawCheck() (LawCheck, error) {
	if err := c.Validate("checks", "format"); err != nil {
		return LawCheck{}, err
	}
	checks, err := c.GetInt("checks")
	if err != nil {
		return LawCheck{}, err
	}
	seed, err := c.GetUint64("seed")
	if err != nil {
		return LawCheck{}, err
	}
	parallel, err := c.GetInt("parallel")
	if err != nil {
		return LawCheck{}, err
	}
	lc := LawCheck{
		Checks:    checks,
		Seed:      seed,
		Parallel:  parallel,
		Suites:    c.GetStringSlice("suites"),
		Format:    c.GetString("format"),
		LogLevel:  c.GetString("log.level"),
		LogFormat: c.GetString("log.format"),
	}
	if lc.Checks <= 0 {
		return LawCheck{}, fmt.Errorf("%w: checks must be positive, got %d", ErrInvalidValue, lc.Checks)
	}
	if lc.Parallel <= 0 {
		return LawCheck{}, fmt.Errorf("%w: parallel must be positive, got %d", ErrInvalidValue, lc.Parallel)
	}
	if !slices.Contains([]string{FormatText, FormatJSON, FormatYAML}, lc.Format) {
		return LawCheck{}, fmt.Errorf("%w: unknown format %q", ErrInvalidValue, lc.Format)
	}
	if !slices.Contains([]string{FormatText, FormatJSON, FormatAuto}, lc.LogFormat) {
		return LawCheck{}, fmt.Errorf("%w: unknown log format %q", ErrInvalidValue, lc.LogFormat)
	}
	return lc, nil
}
