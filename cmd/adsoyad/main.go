// Command adsoyad is the CLI entrypoint for the Turkish name normalizer.
//
// It parses flags and an optional config file, then either runs the alphabet
// self check (--check) or reads raw names from positional args, input files
// or stdin and writes one normalized name per line to stdout. Logs go to
// stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/adsoyad/internal/check"
	"github.com/backmassage/adsoyad/internal/config"
	"github.com/backmassage/adsoyad/internal/display"
	"github.com/backmassage/adsoyad/internal/logging"
	"github.com/backmassage/adsoyad/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Exit codes.
const (
	exitOK      = 0
	exitError   = 1
	exitInvalid = 2 // --strict and at least one invalid name
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "adsoyad: %v\n", err)
		return exitError
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "adsoyad: %v\n", err)
		return exitError
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "adsoyad: %v\n", err)
		return exitError
	}
	defer log.Close()

	// Phase 2: Logger available. All diagnostics go through log from here on.
	if cfg.Verbose {
		display.PrintBanner(os.Stderr, version)
		log.Debug("adsoyad v%s (%s)", version, commit)
	}

	if cfg.CheckOnly {
		parser, err := pipeline.NewParser(&cfg)
		if err != nil {
			log.Error("%v", err)
			return exitError
		}
		if !check.RunCheck(parser.Alphabet(), log) {
			return exitError
		}
		return exitOK
	}

	// Phase 3: Signal handling. Cancel on SIGINT/SIGTERM so the run stops
	// between names instead of mid-line.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Phase 4: Parse every name.
	stats, err := pipeline.Run(ctx, &cfg, log, os.Stdin, os.Stdout)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Interrupted")
		} else {
			log.Error("%v", err)
		}
		return exitError
	}

	return exitStatus(&cfg, stats)
}

// exitStatus maps a completed run to the process exit code.
func exitStatus(cfg *config.Config, stats pipeline.RunStats) int {
	if cfg.Strict && !stats.AllValid() {
		return exitInvalid
	}
	return exitOK
}
