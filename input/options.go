// SPDX-License-Identifier: MIT
package input

import "fmt"

// DefaultMaxLineBytes bounds a single line unless overridden.
const DefaultMaxLineBytes = 1 << 20

// Option configures ReadLines.
type Option func(*Options)

// Options holds the ReadLines configuration.
type Options struct {
	normalizeNFC bool
	maxLineBytes int
}

// WithNormalizeNFC converts every line to Unicode normalization form C.
func WithNormalizeNFC() Option {
	return func(o *Options) { o.normalizeNFC = true }
}

// WithMaxLineBytes sets the longest accepted line in bytes.
// Panics if n < 1.
func WithMaxLineBytes(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("input: WithMaxLineBytes(%d): must be >= 1", n))
	}

	return func(o *Options) { o.maxLineBytes = n }
}

func gatherOptions(opts []Option) Options {
	o := Options{maxLineBytes: DefaultMaxLineBytes}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
