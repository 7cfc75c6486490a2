package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/luca-patrignani/holdem-ranker/domain/poker"
	"github.com/luca-patrignani/holdem-ranker/leaderboard"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, term.IsTerminal(int(os.Stdout.Fd())), os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	if cfg.noColor {
		pterm.DisableColor()
	}

	logger := newLogger(cfg, os.Stderr)
	os.Exit(run(cfg, os.Stdin, os.Stdout, logger))
}

// run reads the community cards and the players from in, prints the ranking
// to out and returns the process exit code. The first input error is printed
// and stops the run.
func run(cfg config, in io.Reader, out io.Writer, logger *slog.Logger) int {
	collector := poker.NewCollector(poker.WithLogger(logger))
	scanner := bufio.NewScanner(in)

	for collector.Stage() != poker.Finalized {
		if cfg.interactive {
			pterm.Fprintln(out, formatPrompt(collector.Prompt()))
		}

		var err error
		if scanner.Scan() {
			err = collector.Feed(scanner.Text())
		} else {
			if scanErr := scanner.Err(); scanErr != nil {
				logger.Error("cannot read input", "error", scanErr.Error())
				pterm.Fprintln(out, formatError("Cannot read input: "+scanErr.Error()))
				return 1
			}
			err = collector.Close()
		}
		if err != nil {
			logger.Debug("input rejected", "stage", collector.Stage().String(), "error", err.Error())
			pterm.Fprintln(out, formatError(err.Error()))
			return 1
		}
	}

	presenter := leaderboard.New(poker.NewEvaluator(), leaderboard.WithOutput(out))
	if err := presenter.Print(collector.Players(), collector.Board()); err != nil {
		logger.Error("scoring failed", "error", err.Error())
		pterm.Fprintln(out, formatError(err.Error()))
		return 1
	}
	return 0
}
