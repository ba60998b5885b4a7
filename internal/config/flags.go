package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into input, output, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.
// A --config file is applied between defaults and flags: flags given on the
// command line always win over keys in the file.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (e.g. unknown
// flag, unreadable config file).
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("adsoyad", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(os.Stderr, version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineInputFlags(fs, cfg)
	defineOutputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage(os.Stderr, version)
			os.Exit(0)
		}
		return err
	}

	if negated.showHelp {
		printUsage(os.Stderr, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "adsoyad v"+version)
		os.Exit(0)
	}

	if cfg.ConfigFile != "" {
		if err := LoadFile(cfg, cfg.ConfigFile, setFlags(fs)); err != nil {
			return err
		}
	}

	applyNegatedFlags(cfg, &negated)
	parsePositionalArgs(fs, cfg)
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either override a default (forceColor, noColor) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// flagAliases maps short and negated flag names to the canonical name used
// as a config-file precedence key.
var flagAliases = map[string]string{
	"a":        "alphabet",
	"o":        "format",
	"i":        "input",
	"v":        "verbose",
	"l":        "log",
	"no-color": "color",
}

// setFlags returns the canonical names of every flag given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if canonical, ok := flagAliases[name]; ok {
			name = canonical
		}
		set[name] = true
	})
	return set
}

// defineInputFlags registers -i/--input, -a/--alphabet, --config.
func defineInputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&stringsValue{&cfg.Inputs}, "input", "Read names from file, one per line ('-' = stdin); repeatable")
	fs.Var(&stringsValue{&cfg.Inputs}, "i", "Same as --input")
	fs.StringVar(&cfg.AlphabetFile, "alphabet", "", "Alphabet definition (TOML); default: built-in Turkish")
	fs.StringVar(&cfg.AlphabetFile, "a", "", "Same as --alphabet")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Config file (TOML)")
}

// defineOutputFlags registers -o/--format, --ascii, --show-invalid, --only-valid, --strict.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&formatValue{&cfg.Format}, "format", "Output format: text | tsv | json")
	fs.Var(&formatValue{&cfg.Format}, "o", "Same as --format")
	fs.BoolVar(&cfg.ASCII, "ascii", false, "Transliterate names to ASCII")
	fs.BoolVar(&cfg.ShowInvalid, "show-invalid", false, "Show rejected fragments in text output")
	fs.BoolVar(&cfg.OnlyValid, "only-valid", false, "Print nothing for invalid names")
	fs.BoolVar(&cfg.Strict, "strict", false, "Exit with status 2 if any name is invalid")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --check, --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run the alphabet self check and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs treats every positional arg as one full name. With no
// names and no --input, names are read from stdin (except in CheckOnly mode).
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) {
	cfg.Names = append(cfg.Names, fs.Args()...)
	if cfg.CheckOnly {
		return
	}
	if len(cfg.Names) == 0 && len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{StdinInput}
	}
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "adsoyad v" + version + " - Turkish personal name normalizer"},
		{"", ""},
		{"  adsoyad [OPTIONS] [name ...]", ""},
		{"  adsoyad [OPTIONS] < names.txt", ""},
		{"", ""},
		{"Input", ""},
		{"  -i, --input <file>", "Read names from file, one per line (repeatable)"},
		{"  -a, --alphabet <file>", "Alphabet rules (TOML; default: Turkish)"},
		{"  --config <file>", "Config file (TOML); flags override it"},
		{"", ""},
		{"Output", ""},
		{"  -o, --format <fmt>", "text | tsv | json (default: text)"},
		{"  --ascii", "Transliterate names to ASCII"},
		{"  --show-invalid", "Show rejected fragments (text format)"},
		{"  --only-valid", "Print nothing for invalid names"},
		{"  --strict", "Exit 2 if any name is invalid"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -c, --check", "Self check of the alphabet rules"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use enum types and repeated flags with flag.Var.

type formatValue struct{ p *Format }

func (f *formatValue) String() string {
	if f.p == nil {
		return ""
	}
	return string(*f.p)
}
func (f *formatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "text":
		*f.p = FormatText
	case "tsv":
		*f.p = FormatTSV
	case "json":
		*f.p = FormatJSON
	default:
		return fmt.Errorf("invalid format %q (use 'text', 'tsv' or 'json')", s)
	}
	return nil
}

type stringsValue struct{ p *[]string }

func (s *stringsValue) String() string {
	if s.p == nil {
		return ""
	}
	return strings.Join(*s.p, ",")
}
func (s *stringsValue) Set(v string) error {
	*s.p = append(*s.p, v)
	return nil
}
