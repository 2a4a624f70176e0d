package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"text/tabwriter"
	"time"

	"github.com/authcorp/optics/config"
	"github.com/authcorp/optics/internal/suites"
	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/optics/laws"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	errLawsFailed   = errors.New("laws failed")
	errUnknownSuite = errors.New("unknown suite")
)

// configureRapid applies the run settings through rapid's command-line flags.
// Outside of go test the testing flags are registered and parsed first,
// since rapid consults testing.Short. Flags unknown to the linked rapid
// version are skipped.
func configureRapid(lc config.LawCheck) error {
	if !flag.Parsed() {
		// rapid calls testing.Short on every Check, which panics before testing.Init.
		testing.Init()
		if err := flag.CommandLine.Parse(nil); err != nil {
			return fmt.Errorf("init flags: %w", err)
		}
	}
	settings := map[string]string{
		"rapid.checks":     strconv.Itoa(lc.Checks),
		"rapid.nofailfile": "true",
	}
	if lc.Seed != 0 {
		settings["rapid.seed"] = strconv.FormatUint(lc.Seed, 10)
	}
	for name, value := range settings {
		if flag.Lookup(name) == nil {
			continue
		}
		if err := flag.Set(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

func runSuites(out io.Writer, logger *slog.Logger, lc config.LawCheck) error {
	selected, unknown := suites.Select(lc.Suites)
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", errUnknownSuite, strings.Join(unknown, ", "))
	}
	if err := configureRapid(lc); err != nil {
		return err
	}

	reports := make([]laws.Report, len(selected))
	var g errgroup.Group
	g.SetLimit(lc.Parallel)
	for i, s := range selected {
		g.Go(func() error {
			logger.Debug("running suite",
				slog.String("suite", s.Name),
				slog.String("kind", s.Kind.String()),
				slog.Int("laws", len(s.Laws)),
			)
			reports[i] = laws.Evaluate(s.Name, s.Laws)
			if !reports[i].Passed() {
				logger.Warn("suite failed",
					slog.String("suite", s.Name),
					slog.Int("failures", reports[i].Failures()),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	failures := 0
	for _, r := range reports {
		failures += r.Failures()
	}
	logger.Info("law check finished",
		slog.Int("suites", len(reports)),
		slog.Int("failures", failures),
		slog.Int("checks", lc.Checks),
		slog.Int("parallel", lc.Parallel),
	)

	if err := writeReports(out, lc.Format, reports); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%w: %d", errLawsFailed, failures)
	}
	return nil
}

func writeReports(out io.Writer, format string, reports []laws.Report) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(out, reports)
	}
}

func writeText(out io.Writer, reports []laws.Report) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, r := range reports {
		for _, res := range r.Results {
			verdict := "PASS"
			switch {
			case res.Skipped:
				verdict = "SKIP"
			case !res.Passed:
				verdict = "FAIL"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", verdict, r.Suite, res.Law, res.Duration.Round(time.Microsecond))
			if !res.Passed && res.Message != "" {
				for _, line := range strings.Split(res.Message, "\n") {
					fmt.Fprintf(w, "\t\t  %s\t\n", line)
				}
			}
		}
	}
	return w.Flush()
}

// printMeetTable prints the kind produced by composing a row kind with a
// column kind; a dash marks pairs that do not compose.
func printMeetTable(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	kinds := optics.Kinds()
	header := make([]string, 0, len(kinds)+1)
	header = append(header, "")
	for _, k := range kinds {
		header = append(header, k.String())
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, x := range kinds {
		row := []string{x.String()}
		for _, y := range kinds {
			if m, ok := optics.Meet(x, y); ok {
				row = append(row, m.String())
			} else {
				row = append(row, "-")
			}
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
