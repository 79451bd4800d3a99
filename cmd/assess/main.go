// Package main provides the assess binary: a security-maturity
// self-assessment tool. Answers live in a local SQLite store; reports and
// the dashboard API are derived from them on demand.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"security-maturity-assessor/internal/config"
	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/runner"
	"security-maturity-assessor/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath  string
	catalogPath string
	dbPath      string
	outDir      string
	logLevel    string
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Security maturity self-assessment",
		Long: `Assess scores a security-maturity questionnaire: answers are stored
locally, aggregated into weighted domain and subcategory scores, classified
into maturity bands, and ranked into a critical-gap list.

Reports are written as JSON, HTML, Markdown and CSV; the serve command
exposes the same data as a JSON API for dashboards.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&flags.catalogPath, "catalog", "", "Catalog file path (empty = built-in)")
	pf.StringVar(&flags.dbPath, "db", "", "Answer database path")
	pf.StringVar(&flags.outDir, "out", "", "Output directory")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(reportCmd(flags))
	cmd.AddCommand(serveCmd(flags))
	cmd.AddCommand(gapsCmd(flags))
	cmd.AddCommand(answersCmd(flags))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", model.ToolName, model.ToolVersion)
		},
	})

	return cmd
}

// setup resolves config, logger, runner and store for a subcommand.
// Callers must Close the returned store.
func setup(flags *rootFlags) (*config.Config, *slog.Logger, *runner.Runner, *store.Store, error) {
	logger := newLogger(flags.logLevel)

	cfg, err := config.Load(flags.configPath, logger)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	// Flags override file config.
	if flags.catalogPath != "" {
		cfg.CatalogPath = flags.catalogPath
	}
	if flags.dbPath != "" {
		cfg.DBPath = flags.dbPath
	}
	if flags.outDir != "" {
		cfg.OutDir = flags.outDir
	}

	r, err := runner.New(cfg, logger)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return cfg, logger, r, st, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
