package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yt_notifier/internal/domain"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2026, 8, 28, hour, minute, second, 0, time.UTC)
}

func TestDelayToNextBoundary(t *testing.T) {
	interval := 30 * time.Minute

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"mid first half", at(14, 12, 0), 18 * time.Minute},
		{"mid second half", at(14, 47, 30), 12*time.Minute + 30*time.Second},
		{"just before boundary", at(14, 29, 59), time.Second},
		{"exactly on boundary", at(14, 30, 0), 30 * time.Minute},
		{"top of hour", at(14, 0, 0), 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, delayToNextBoundary(tt.now, interval))
		})
	}
}

func TestRearmDelay_AbsorbsCrawlDuration(t *testing.T) {
	interval := 30 * time.Minute
	floor := time.Minute

	intended := at(14, 30, 0)
	finished := at(14, 31, 30) // crawl ran 90 seconds past the fire

	got := rearmDelay(intended, finished, interval, floor)
	assert.Equal(t, 28*time.Minute+30*time.Second, got)
}

func TestRearmDelay_DriftDoesNotAccumulate(t *testing.T) {
	interval := 30 * time.Minute
	floor := time.Minute

	// two cycles in a row, each finishing late; the second re-arm is
	// computed from the grid, not from the previous delay
	first := rearmDelay(at(14, 30, 0), at(14, 31, 30), interval, floor)
	second := rearmDelay(at(15, 0, 0), at(15, 2, 0), interval, floor)

	assert.Equal(t, 28*time.Minute+30*time.Second, first)
	assert.Equal(t, 28*time.Minute, second)
}

func TestRearmDelay_FloorApplies(t *testing.T) {
	interval := 30 * time.Minute
	floor := time.Minute

	// a cycle that overran the whole interval still waits the floor
	got := rearmDelay(at(14, 30, 0), at(15, 5, 0), interval, floor)
	assert.Equal(t, time.Minute, got)
}

func TestIsBlackout(t *testing.T) {
	assert.True(t, isBlackout(at(0, 0, 0)))
	assert.True(t, isBlackout(at(0, 0, 59)))
	assert.False(t, isBlackout(at(0, 1, 0)))
	assert.False(t, isBlackout(at(12, 0, 0)))
	assert.False(t, isBlackout(at(23, 59, 59)))
}

type countingRunner struct {
	runs atomic.Int32
}

func (r *countingRunner) Run(ctx context.Context) (*domain.CrawlStats, error) {
	r.runs.Add(1)
	return &domain.CrawlStats{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestTick_RunsOutsideBlackout(t *testing.T) {
	runner := &countingRunner{}
	s := NewScheduler(runner, 30*time.Minute, time.Minute, testLogger())
	s.now = func() time.Time { return at(14, 30, 0) }

	s.tick(context.Background())
	require.Equal(t, int32(1), runner.runs.Load())
}

func TestTick_SkipsDuringBlackout(t *testing.T) {
	runner := &countingRunner{}
	s := NewScheduler(runner, 30*time.Minute, time.Minute, testLogger())
	s.now = func() time.Time { return at(0, 0, 10) }

	s.tick(context.Background())
	require.Equal(t, int32(0), runner.runs.Load())
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	runner := &countingRunner{}
	s := NewScheduler(runner, 30*time.Minute, time.Minute, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), runner.runs.Load())
}
