package main

import (
	"flag"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

type config struct {
	debug       bool
	noColor     bool
	interactive bool
}

// parseConfig reads the command line flags. Color is also disabled by a
// non-empty NO_COLOR variable, and prompts are only shown on a terminal.
func parseConfig(args []string, getenv func(string) string, isTerminal bool, stderr io.Writer) (config, error) {
	cfg := config{interactive: isTerminal}
	fs := flag.NewFlagSet("holdem-ranker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.debug, "debug", false, "log every parsed line to stderr")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if getenv("NO_COLOR") != "" {
		cfg.noColor = true
	}
	return cfg, nil
}

func newLogger(cfg config, w io.Writer) *slog.Logger {
	level := pterm.LogLevelInfo
	if cfg.debug {
		level = pterm.LogLevelDebug
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(w).WithLevel(level))
	return slog.New(handler)
}
