package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"yt_notifier/internal/domain"
)

type DeliveredStore struct {
	db *sqlx.DB
}

func NewDeliveredStore(db *sqlx.DB) *DeliveredStore {
	return &DeliveredStore{db: db}
}

// ListDeliveredToday returns the video IDs already sent during the current
// server-local calendar day. Filtering by sent_at rather than purging at day
// rollover avoids racing a late purge.
func (s *DeliveredStore) ListDeliveredToday(ctx context.Context, kind domain.Kind) ([]string, error) {
	query := `
		SELECT video_id
		FROM delivered_items
		WHERE kind = $1 AND sent_at >= date_trunc('day', now())`

	var ids []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids, query, kind)
	return ids, err
}

// RecordDelivered persists the delivered subset of a crawl cycle. The unique
// (video_id, kind, sent_date) index makes re-recording within the same day a
// no-op.
func (s *DeliveredStore) RecordDelivered(ctx context.Context, items []domain.Item, kind domain.Kind) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now()

	var sb strings.Builder
	sb.WriteString("INSERT INTO delivered_items (video_id, kind, title, link, channel_id, sent_at) VALUES ")
	args := make([]interface{}, 0, len(items)*6)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, item.VideoID, kind, item.Title, item.Link, item.ChannelID, now)
	}
	sb.WriteString(" ON CONFLICT (video_id, kind, sent_date) DO NOTHING")

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}
