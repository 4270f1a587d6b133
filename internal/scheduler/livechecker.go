package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"yt_notifier/internal/domain"
)

// ScheduleStore reads and settles pending live broadcast schedules.
type ScheduleStore interface {
	ListDue(ctx context.Context, now time.Time) ([]domain.LiveSchedule, error)
	MarkNotified(ctx context.Context, videoID string, at time.Time) error
}

type LiveNotifier interface {
	Send(ctx context.Context, destinationID, text string) error
}

// LiveChecker announces upcoming broadcasts once their scheduled start time
// arrives. It polls on a short fixed interval between crawl cycles, so a
// stream starting at :17 is not announced half an hour late.
type LiveChecker struct {
	schedules   ScheduleStore
	notifier    LiveNotifier
	destination string
	interval    time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

func NewLiveChecker(schedules ScheduleStore, notifier LiveNotifier, destination string, interval time.Duration, logger *slog.Logger) *LiveChecker {
	return &LiveChecker{
		schedules:   schedules,
		notifier:    notifier,
		destination: destination,
		interval:    interval,
		logger:      logger.With("component", "live_checker"),
		now:         time.Now,
	}
}

func (c *LiveChecker) Start(ctx context.Context) error {
	c.logger.Info("live checker started", "interval", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("live checker stopped")
			return ctx.Err()
		case <-ticker.C:
			c.check(ctx)
		}
	}
}

// check announces every due schedule. A schedule is only marked notified
// after its announcement went out; a failed send is retried next tick.
func (c *LiveChecker) check(ctx context.Context) {
	now := c.now()

	due, err := c.schedules.ListDue(ctx, now)
	if err != nil {
		c.logger.Error("failed to list due schedules", "error", err)
		return
	}

	for _, schedule := range due {
		text := fmt.Sprintf("%s is live now!\n%s", schedule.Title, schedule.Link)
		if err := c.notifier.Send(ctx, c.destination, text); err != nil {
			c.logger.Error("failed to announce live stream",
				"video", schedule.VideoID,
				"error", err,
			)
			continue
		}

		if err := c.schedules.MarkNotified(ctx, schedule.VideoID, now); err != nil {
			c.logger.Error("failed to mark schedule notified",
				"video", schedule.VideoID,
				"error", err,
			)
		}
	}
}
