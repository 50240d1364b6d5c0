package progress_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strsimnet/internal/logger"
	"github.com/katalvlaran/strsimnet/internal/progress"
	"github.com/katalvlaran/strsimnet/sparse"
)

// percents remembers the "percent" value of every Info record.
type percents struct {
	mu   sync.Mutex
	seen []int64
}

func (p *percents) Info(_ string, keyvals ...any) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		if keyvals[i] == "percent" {
			p.mu.Lock()
			p.seen = append(p.seen, keyvals[i+1].(int64))
			p.mu.Unlock()
		}
	}
}
func (p *percents) Log(string, ...any)   {}
func (p *percents) Debug(string, ...any) {}
func (p *percents) Warn(string, ...any)  {}
func (p *percents) Error(string, ...any) {}
func (p *percents) Fatal(string, ...any) {}

// The logger is process-wide, so these tests run sequentially.

func TestReporterMilestones(t *testing.T) {
	rec := &percents{}
	logger.Init(rec)
	t.Cleanup(func() { logger.Init() })

	r := progress.New("rows", 25)
	for done := 1; done <= 10; done++ {
		r.Hook(done, 10)
	}
	r.Hook(10, 10) // repeated completion is not logged twice

	require.Equal(t, []int64{25, 50, 75, 100}, rec.seen)
	require.Equal(t, 100, r.Last())
}

func TestReporterIgnoresEmptyWork(t *testing.T) {
	rec := &percents{}
	logger.Init(rec)
	t.Cleanup(func() { logger.Init() })

	r := progress.New("rows", 10)
	r.Hook(0, 0)
	r.Hook(0, 5)
	require.Empty(t, rec.seen)
	require.Zero(t, r.Last())
}

func TestReporterWithBuild(t *testing.T) {
	rec := &percents{}
	logger.Init(rec)
	t.Cleanup(func() { logger.Init() })

	strs := []string{"AA", "AB", "XX", "XY", "YY", "QQ"}
	r := progress.New("rows", 50)
	_, err := sparse.Build(strs, 1, 1, func(a, b string) int {
		n := 0
		for i := range a {
			if a[i] != b[i] {
				n++
			}
		}
		return n
	}, sparse.WithWorkers(4), sparse.WithProgress(r.Hook))
	require.NoError(t, err)

	require.Equal(t, 100, r.Last())
	require.NotEmpty(t, rec.seen)
	require.LessOrEqual(t, len(rec.seen), 2)
	require.Contains(t, rec.seen, int64(100))
}

func TestNewPanicsOnBadStep(t *testing.T) {
	require.Panics(t, func() { progress.New("rows", 0) })
	require.Panics(t, func() { progress.New("rows", 101) })
}
