package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/backmassage/adsoyad/internal/alphabet"
	"github.com/backmassage/adsoyad/internal/config"
	"github.com/backmassage/adsoyad/internal/display"
	"github.com/backmassage/adsoyad/internal/logging"
	"github.com/backmassage/adsoyad/internal/naming"
)

// NewParser builds the parser selected by cfg: the alphabet file when set,
// the built-in Turkish rules otherwise.
func NewParser(cfg *config.Config) (*naming.Parser, error) {
	if cfg.AlphabetFile == "" {
		return naming.NewParser(alphabet.Turkish()), nil
	}
	a, err := alphabet.LoadFile(cfg.AlphabetFile)
	if err != nil {
		return nil, err
	}
	return naming.NewParser(a), nil
}

// Run is the top-level batch entry point. It reads every name from cfg,
// parses it, writes one formatted line per name to stdout, and returns
// aggregate stats. The error is non-nil for setup, read or write failures
// and for cancellation; stats cover the names handled before it.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, stdin io.Reader, stdout io.Writer) (RunStats, error) {
	var stats RunStats

	parser, err := NewParser(cfg)
	if err != nil {
		return stats, err
	}
	log.Debug("Alphabet: %s (%s)", parser.Alphabet().Name, parser.Alphabet().Tag)
	if cfg.ReadsStdin() {
		log.Debug("Reading names from stdin")
	}

	opts := display.OptionsFromConfig(cfg)
	err = ReadNames(ctx, cfg, stdin, func(e Entry) error {
		return processName(log, parser, opts, cfg.OnlyValid, e, stdout, &stats)
	})

	logSummary(log, &stats)
	return stats, err
}

// processName handles one raw name: parse -> count -> log rejects -> write.
func processName(
	log *logging.Logger,
	parser *naming.Parser,
	opts display.Options,
	onlyValid bool,
	e Entry,
	stdout io.Writer,
	stats *RunStats,
) error {
	res := parser.Parse(e.Raw)

	stats.Total++
	stats.Rejected += len(res.InvalidChunks())
	if res.IsValid() {
		stats.Valid++
		log.Debug("%s:%d %q -> %q", e.Origin, e.Line, e.Raw, res.String())
	} else {
		stats.Invalid++
		log.Debug("%s:%d %q -> invalid", e.Origin, e.Line, e.Raw)
	}
	for _, chunk := range res.InvalidChunks() {
		log.Reject("%s:%d %q", e.Origin, e.Line, chunk)
	}

	if onlyValid && !res.IsValid() {
		return nil
	}
	line, err := display.FormatResult(res, opts)
	if err != nil {
		return fmt.Errorf("%s:%d: %w", e.Origin, e.Line, err)
	}
	if _, err := fmt.Fprintln(stdout, line); err != nil {
		return err
	}
	return nil
}

func logSummary(log *logging.Logger, stats *RunStats) {
	if stats.Total == 0 {
		log.Warn("No names read")
		return
	}
	if stats.AllValid() {
		log.Success("Done: %s names valid", display.FormatRatio(stats.Valid, stats.Total))
	} else {
		log.Info("Done: %s names valid, %d invalid", display.FormatRatio(stats.Valid, stats.Total), stats.Invalid)
	}
	if stats.Rejected > 0 {
		log.Info("Rejected fragments: %d", stats.Rejected)
	}
}
