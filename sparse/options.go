// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the matrix builders.
//
// Design goals:
//   - Deterministic results: options change scheduling, never the output.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package sparse

import "runtime"

// MaxAutomatonDistance is the largest edit radius accepted by BuildLevenshtein.
// Building the parametric automaton grows exponentially with the radius.
const MaxAutomatonDistance = 4

// FavorableAutomatonDistance is the largest radius at which BuildLevenshtein
// is expected to beat Build. Every row builds its own DFA and walks the whole
// index before candidates are cut to col < row; from radius 3 on, with
// strings of ordinary word length, that costs more than the pairwise scan
// (see BenchmarkBuildLevenshtein). Radii in (FavorableAutomatonDistance,
// MaxAutomatonDistance] stay accepted for very long or very many strings.
const FavorableAutomatonDistance = 2

const (
	panicWorkersInvalid  = "sparse: WithWorkers: n must be >= 1"
	panicProgressInvalid = "sparse: WithProgress: fn must be non-nil"
)

// ProgressFunc receives the number of finished rows and the total row count.
// It is called once per row, concurrently from worker goroutines, and must
// therefore be safe for concurrent use. It cannot influence the result.
type ProgressFunc func(done, total int)

// Option mutates internal options. Applying the same option twice is harmless;
// the last writer wins.
type Option func(*Options)

// Options stores the effective builder configuration.
type Options struct {
	workers  int          // goroutines evaluating rows; default GOMAXPROCS
	progress ProgressFunc // optional per-row hook
}

// DefaultWorkers returns the worker count used when WithWorkers is absent.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// WithWorkers bounds the number of rows evaluated concurrently.
// Panics when n < 1.
//
// Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithProgress installs a per-row completion hook. Panics when fn is nil.
func WithProgress(fn ProgressFunc) Option {
	if fn == nil {
		panic(panicProgressInvalid)
	}

	return func(o *Options) { o.progress = fn }
}

// gatherOptions resolves opts on top of the documented defaults.
// Nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:  DefaultWorkers(),
		progress: func(int, int) {},
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers < 1 {
		o.workers = 1
	}

	return o
}
