// chess-console plays a two-player game of chess on the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/game"
	"github.com/lgbarn/console-chess-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-console version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg, os.Stdin))
}

// run plays one game reading answers from in and returns the exit code.
// Closing the input ends the game early without an error.
func run(cfg *config.Config, in io.Reader) int {
	reporter := output.NewReporter(cfg, output.NewWriters(cfg)...)
	g := game.New()

	err := g.Run(newConsolePrompter(in, cfg.OutputFile), reporter)
	closeErr := reporter.Close()

	switch {
	case errors.Is(err, io.EOF):
		fmt.Fprintln(cfg.OutputFile)
		cfg.Logf(1, "Input closed during turn %d.\n", g.Turn())
	case err != nil:
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	if closeErr != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", closeErr)
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-console [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players take turns at one terminal. Name a piece (e.g. wp4),\n")
	fmt.Fprintf(os.Stderr, "then give the row and column to move it to. The game ends when a\n")
	fmt.Fprintf(os.Stderr, "king is captured.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBoard formats (-render):\n")
	fmt.Fprintf(os.Stderr, "  text     Grid of piece names, ___ for empty squares (default)\n")
	fmt.Fprintf(os.Stderr, "  diagram  Unicode board with rank and file labels\n")
	fmt.Fprintf(os.Stderr, "  none     Status lines only\n")
}
