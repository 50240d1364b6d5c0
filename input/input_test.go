// SPDX-License-Identifier: MIT
package input_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strsimnet/input"
)

func TestReadLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty input", "", nil},
		{"single newline", "\n", []string{""}},
		{"no trailing newline", "AA\nAB", []string{"AA", "AB"}},
		{"trailing newline", "AA\nAB\n", []string{"AA", "AB"}},
		{"empty lines kept", "AA\n\nAB\n\n", []string{"AA", "", "AB", ""}},
		{"crlf", "AA\r\nAB\r\n", []string{"AA", "AB"}},
		{"bom", "\ufeffAA\nAB", []string{"AA", "AB"}},
		{"bom only first line", "AA\n\ufeffAB", []string{"AA", "\ufeffAB"}},
		{"spaces preserved", " A \n", []string{" A "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := input.ReadLines(strings.NewReader(tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReadLinesNormalizeNFC(t *testing.T) {
	t.Parallel()

	// "e" + combining acute accent composes to U+00E9.
	in := "caf\u00e9\ncafe\u0301\n"

	raw, err := input.ReadLines(strings.NewReader(in))
	require.NoError(t, err)
	require.NotEqual(t, raw[0], raw[1])

	nfc, err := input.ReadLines(strings.NewReader(in), input.WithNormalizeNFC())
	require.NoError(t, err)
	require.Equal(t, []string{"caf\u00e9", "caf\u00e9"}, nfc)
}

func TestReadLinesMaxLineBytes(t *testing.T) {
	t.Parallel()

	got, err := input.ReadLines(strings.NewReader("abcd\nab\n"), input.WithMaxLineBytes(4))
	require.NoError(t, err)
	require.Equal(t, []string{"abcd", "ab"}, got)

	_, err = input.ReadLines(strings.NewReader("ab\nabcde\n"), input.WithMaxLineBytes(4))
	require.ErrorIs(t, err, input.ErrLineTooLong)

	_, err = input.ReadLines(strings.NewReader(strings.Repeat("x", 100)), input.WithMaxLineBytes(8))
	require.ErrorIs(t, err, input.ErrLineTooLong)

	require.Panics(t, func() { input.WithMaxLineBytes(0) })
}

func TestReadLinesReaderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := input.ReadLines(iotest.ErrReader(boom))
	require.ErrorIs(t, err, input.ErrRead)
	require.ErrorIs(t, err, boom)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "strings.txt")
	require.NoError(t, os.WriteFile(path, []byte("AA\nAB\nXX\n"), 0o600))

	got, err := input.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"AA", "AB", "XX"}, got)

	_, err = input.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, input.ErrOpen)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenStdin(t *testing.T) {
	t.Parallel()

	rc, err := input.Open("-")
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}
