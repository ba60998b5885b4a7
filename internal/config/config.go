// Package config holds runtime configuration: defaults, an optional TOML
// config file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// Format selects how parse results are written to stdout.
type Format string

const (
	FormatText Format = "text" // One normalized name per line (default).
	FormatTSV  Format = "tsv"  // raw, first, middle, last, valid, invalid chunks.
	FormatJSON Format = "json" // One JSON object per line.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// StdinInput is the input path meaning "read names from standard input".
const StdinInput = "-"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by an optional config file and finally by [ParseFlags] before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Sources. Names come from positional args; Inputs are files with one
	// name per line. When both are empty, stdin is read.
	Names  []string
	Inputs []string

	// Rule set.
	AlphabetFile string // TOML alphabet definition; empty selects Turkish.

	// Output.
	Format      Format // Default: "text".
	ASCII       bool   // Transliterate output names to ASCII.
	ShowInvalid bool   // Append rejected fragments to text output.
	OnlyValid   bool   // Suppress output lines for invalid names.
	Strict      bool   // Exit non-zero when any name is invalid.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Optional TOML config file (--config).
	CheckOnly  bool      // Run --check self test and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the config file and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		Format:      FormatText,
		ASCII:       false,
		ShowInvalid: false,
		OnlyValid:   false,
		Strict:      false,
		Verbose:     false,
		ColorMode:   ColorAuto,
		CheckOnly:   false,
	}
}

// Validate checks that enum fields hold valid values. When not in CheckOnly
// mode, it also requires at least one name or input.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatTSV, FormatJSON:
		// valid
	default:
		return fmt.Errorf("invalid format %q (use 'text', 'tsv' or 'json')", c.Format)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	for _, in := range c.Inputs {
		if strings.TrimSpace(in) == "" {
			return errors.New("input path must not be empty")
		}
	}
	if c.CheckOnly {
		return nil
	}
	if len(c.Names) == 0 && len(c.Inputs) == 0 {
		return errors.New("no names given (pass names, --input <file>, or pipe names on stdin)")
	}
	return nil
}

// ReadsStdin reports whether any configured input is standard input.
func (c *Config) ReadsStdin() bool {
	for _, in := range c.Inputs {
		if in == StdinInput {
			return true
		}
	}
	return false
}
