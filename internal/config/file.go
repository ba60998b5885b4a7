package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig is the TOML shape of a config file. Pointer fields distinguish
// "not set" from zero values so only keys present in the file override
// defaults.
//
//	alphabet     = "az.toml"
//	format       = "json"
//	ascii        = true
//	show_invalid = true
//	color        = "never"
//	inputs       = ["names.txt"]
type fileConfig struct {
	Alphabet    *string  `toml:"alphabet"`
	Format      *string  `toml:"format"`
	ASCII       *bool    `toml:"ascii"`
	ShowInvalid *bool    `toml:"show_invalid"`
	OnlyValid   *bool    `toml:"only_valid"`
	Strict      *bool    `toml:"strict"`
	Verbose     *bool    `toml:"verbose"`
	Color       *string  `toml:"color"`
	LogFile     *string  `toml:"log_file"`
	Inputs      []string `toml:"inputs"`
}

// LoadFile reads a TOML config file and applies every key it sets to cfg.
// Keys in skip (flag names already given on the command line) are ignored so
// that CLI flags take precedence over the file.
func LoadFile(cfg *Config, path string, skip map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if fc.Alphabet != nil && !skip["alphabet"] {
		cfg.AlphabetFile = *fc.Alphabet
	}
	if fc.Format != nil && !skip["format"] {
		cfg.Format = Format(*fc.Format)
	}
	if fc.ASCII != nil && !skip["ascii"] {
		cfg.ASCII = *fc.ASCII
	}
	if fc.ShowInvalid != nil && !skip["show-invalid"] {
		cfg.ShowInvalid = *fc.ShowInvalid
	}
	if fc.OnlyValid != nil && !skip["only-valid"] {
		cfg.OnlyValid = *fc.OnlyValid
	}
	if fc.Strict != nil && !skip["strict"] {
		cfg.Strict = *fc.Strict
	}
	if fc.Verbose != nil && !skip["verbose"] {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != nil && !skip["color"] {
		cfg.ColorMode = ColorMode(*fc.Color)
	}
	if fc.LogFile != nil && !skip["log"] {
		cfg.LogFile = *fc.LogFile
	}
	if len(fc.Inputs) > 0 && !skip["input"] {
		cfg.Inputs = append([]string(nil), fc.Inputs...)
	}
	return nil
}
