// SPDX-License-Identifier: MIT
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/strsimnet/internal/logger"
)

const bom = "\ufeff"

// ReadLines splits r into lines.
//
// Errors: ErrLineTooLong, ErrRead (wrapping the reader's error).
func ReadLines(r io.Reader, opts ...Option) ([]string, error) {
	o := gatherOptions(opts)

	sc := bufio.NewScanner(r)
	// the scanner needs room for the newline on top of the line itself
	sc.Buffer(make([]byte, 0, min(o.maxLineBytes+1, 64*1024)), o.maxLineBytes+1)

	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, bom)
		}
		if len(line) > o.maxLineBytes {
			return nil, fmt.Errorf("ReadLines: line %d: %w", len(lines)+1, ErrLineTooLong)
		}
		if o.normalizeNFC {
			line = norm.NFC.String(line)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("ReadLines: line %d: %w", len(lines)+1, ErrLineTooLong)
		}

		return nil, fmt.Errorf("ReadLines: %w: %w", ErrRead, err)
	}

	logger.Debug("input read", "lines", len(lines), "nfc", o.normalizeNFC)

	return lines, nil
}

// Open returns a reader for path. "-" is stdin; closing it is a no-op.
//
// Errors: ErrOpen (wrapping the os error).
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Open(%q): %w: %w", path, ErrOpen, err)
	}

	return f, nil
}

// ReadFile is Open followed by ReadLines.
func ReadFile(path string, opts ...Option) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ReadLines(rc, opts...)
}
