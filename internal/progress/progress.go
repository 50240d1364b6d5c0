// Package progress turns per-row completion callbacks into a handful of log
// lines. It replaces a terminal progress bar: output goes through the logger
// facade, so stdout stays reserved for the serialized network.
package progress

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/strsimnet/internal/logger"
)

// Reporter logs each percentage milestone once. Hook is safe for concurrent use.
type Reporter struct {
	label string
	step  int64
	last  atomic.Int64 // highest milestone logged so far
	start time.Time
}

// New returns a Reporter logging every step percent. Panics if step is not
// in [1, 100].
func New(label string, step int) *Reporter {
	if step < 1 || step > 100 {
		panic(fmt.Sprintf("progress: New(%q, %d): step must be in [1, 100]", label, step))
	}

	return &Reporter{label: label, step: int64(step), start: time.Now()}
}

// Hook records that done of total units are finished. Its signature matches
// sparse.ProgressFunc.
func (r *Reporter) Hook(done, total int) {
	if total <= 0 || done <= 0 {
		return
	}
	pct := int64(done) * 100 / int64(total)
	milestone := pct / r.step * r.step
	if done >= total {
		milestone = 100
	}
	if milestone == 0 {
		return
	}
	for {
		prev := r.last.Load()
		if milestone <= prev {
			return
		}
		if r.last.CompareAndSwap(prev, milestone) {
			break
		}
	}
	logger.Info(r.label,
		"percent", milestone,
		"done", done,
		"total", total,
		"elapsed", time.Since(r.start).Round(time.Millisecond))
}

// Last returns the highest milestone logged, 0 if none.
func (r *Reporter) Last() int { return int(r.last.Load()) }
