package scheduler

import (
	"context"
	"log/slog"
	"time"

	"yt_notifier/internal/domain"
)

// crawlTimeout bounds one cycle so a hung fetch cannot block the next fire.
const crawlTimeout = 10 * time.Minute

// CrawlRunner runs one crawl cycle.
type CrawlRunner interface {
	Run(ctx context.Context) (*domain.CrawlStats, error)
}

// Scheduler fires crawl cycles on wall-clock boundaries: with a 30 minute
// interval it aims at :00 and :30 of every hour. Each re-arm is computed
// fresh from the intended fire time, so timer drift and crawl duration do
// not accumulate across the day.
type Scheduler struct {
	runner   CrawlRunner
	interval time.Duration
	floor    time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewScheduler(runner CrawlRunner, interval, floor time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		floor:    floor,
		logger:   logger.With("component", "scheduler"),
		now:      time.Now,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	delay := delayToNextBoundary(s.now(), s.interval)
	intended := s.now().Add(delay)

	s.logger.Info("scheduler started",
		"interval", s.interval,
		"first_fire_in", delay,
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-timer.C:
			s.tick(ctx)
			next := rearmDelay(intended, s.now(), s.interval, s.floor)
			intended = intended.Add(s.interval)
			timer.Reset(next)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if isBlackout(s.now()) {
		// The day's delivered set resets at midnight; crawling during the
		// rollover minute would dedupe against the wrong day.
		s.logger.Info("skipping crawl in midnight blackout")
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, crawlTimeout)
	defer cancel()

	if _, err := s.runner.Run(runCtx); err != nil {
		s.logger.Error("crawl failed", "error", err)
	}
}

// delayToNextBoundary returns the wait until the next wall-clock multiple of
// interval within the hour. On an exact boundary it returns a full interval.
func delayToNextBoundary(now time.Time, interval time.Duration) time.Duration {
	sinceHour := time.Duration(now.Minute())*time.Minute +
		time.Duration(now.Second())*time.Second +
		time.Duration(now.Nanosecond())
	return interval - (sinceHour % interval)
}

// rearmDelay computes the wait from the end of one cycle to the next
// intended fire. The crawl's own duration is absorbed, and a floor keeps a
// long cycle from re-firing immediately.
func rearmDelay(intended, finished time.Time, interval, floor time.Duration) time.Duration {
	delay := intended.Add(interval).Sub(finished)
	if delay < floor {
		return floor
	}
	return delay
}

// isBlackout reports whether t falls in the minute after midnight.
func isBlackout(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0
}
