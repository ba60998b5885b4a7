package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/backmassage/adsoyad/internal/config"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Entry is one raw name and where it came from.
type Entry struct {
	Origin string // "arg", "stdin", or the input file path
	Line   int    // 1-based position within Origin
	Raw    string
}

// ReadNames calls fn for every name in cfg: positional names first, then
// each input file (or stdin for "-") line by line, in order. Blank lines are
// skipped; trailing CR and a leading UTF-8 BOM are removed. It stops at the
// first error from fn, from reading, or from ctx.
func ReadNames(ctx context.Context, cfg *config.Config, stdin io.Reader, fn func(Entry) error) error {
	for i, name := range cfg.Names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(Entry{Origin: "arg", Line: i + 1, Raw: name}); err != nil {
			return err
		}
	}

	for _, in := range cfg.Inputs {
		if in == config.StdinInput {
			if err := scanLines(ctx, "stdin", stdin, fn); err != nil {
				return err
			}
			continue
		}
		if err := scanFile(ctx, in, fn); err != nil {
			return err
		}
	}
	return nil
}

func scanFile(ctx context.Context, path string, fn func(Entry) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return scanLines(ctx, path, f, fn)
}

func scanLines(ctx context.Context, origin string, r io.Reader, fn func(Entry) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := fn(Entry{Origin: origin, Line: line, Raw: text}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", origin, err)
	}
	return nil
}
