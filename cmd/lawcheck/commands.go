package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/authcorp/optics/config"
	"github.com/authcorp/optics/internal/suites"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	checks     int
	seed       uint64
	parallel   int
	suites     []string
	format     string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lawcheck",
		Short:         "Check the built-in optics against the laws of their kind",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newListCmd(), newKindsCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run law suites and print a per-law report",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, lc, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, lc)
			logSettings(logger, c)
			err = runSuites(cmd.OutOrStdout(), logger, lc)
			if err != nil {
				logger.Error("law check failed", slog.String("error", err.Error()))
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML or JSON config file")
	cmd.Flags().IntVar(&opts.checks, "checks", 0, "random inputs per law (overrides config)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (overrides config)")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", 0, "suites run at once (overrides config)")
	cmd.Flags().StringSliceVarP(&opts.suites, "suite", "s", nil, "suite to run, repeatable (overrides config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, json or yaml (overrides config)")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in suites",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SUITE\tKIND\tLAWS")
			for _, s := range suites.All() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", s.Name, s.Kind, len(s.Laws))
			}
			return w.Flush()
		},
	}
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Print the table of kinds produced by composition",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printMeetTable(cmd.OutOrStdout())
		},
	}
}

// loadSettings layers command-line flags over the config file and environment.
func loadSettings(cmd *cobra.Command, opts options) (*config.Config, config.LawCheck, error) {
	c, err := config.Load(opts.configPath)
	if err != nil {
		return nil, config.LawCheck{}, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("checks") {
		c.Set("checks", opts.checks)
	}
	if flags.Changed("seed") {
		c.Set("seed", opts.seed)
	}
	if flags.Changed("parallel") {
		c.Set("parallel", opts.parallel)
	}
	if flags.Changed("suite") {
		c.Set("suites", opts.suites)
	}
	if flags.Changed("format") {
		c.Set("format", opts.format)
	}
	lc, err := c.LawCheck()
	return c, lc, err
}

func logSettings(logger *slog.Logger, c *config.Config) {
	for _, key := range c.Keys() {
		v, source, _ := c.Lookup(key)
		logger.Debug("setting",
			slog.String("key", key),
			slog.Any("value", v),
			slog.String("source", source.String()),
		)
	}
}

func newLogger(cmd *cobra.Command, lc config.LawCheck) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	w := cmd.ErrOrStderr()
	format := lc.LogFormat
	if format == config.FormatAuto {
		format = config.FormatJSON
		if isTerminal(w) {
			format = config.FormatText
		}
	}
	if format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
