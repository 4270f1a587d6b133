package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"yt_notifier/internal/domain"
)

type LiveScheduleStore struct {
	db *sqlx.DB
}

func NewLiveScheduleStore(db *sqlx.DB) *LiveScheduleStore {
	return &LiveScheduleStore{db: db}
}

// Upsert records an upcoming broadcast. A re-crawl of the same video updates
// its start time and title but never resets an already-sent notification.
func (s *LiveScheduleStore) Upsert(ctx context.Context, sched domain.LiveSchedule) error {
	query := `
		INSERT INTO live_schedules (video_id, title, link, channel_id, start_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (video_id) DO UPDATE SET
			title = EXCLUDED.title,
			start_at = EXCLUDED.start_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		sched.VideoID,
		sched.Title,
		sched.Link,
		sched.ChannelID,
		sched.StartAt,
	)
	return err
}

// ListDue returns schedules whose start time has passed and that have not
// been notified yet.
func (s *LiveScheduleStore) ListDue(ctx context.Context, now time.Time) ([]domain.LiveSchedule, error) {
	query := `
		SELECT video_id, title, link, channel_id, start_at, notified_at
		FROM live_schedules
		WHERE start_at <= $1 AND notified_at IS NULL
		ORDER BY start_at`

	var schedules []domain.LiveSchedule
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &schedules, query, now)
	return schedules, err
}

func (s *LiveScheduleStore) MarkNotified(ctx context.Context, videoID string, at time.Time) error {
	query := `UPDATE live_schedules SET notified_at = $2 WHERE video_id = $1`
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, videoID, at)
	return err
}
