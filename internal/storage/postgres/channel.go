package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"yt_notifier/internal/domain"
)

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

func (s *ChannelStore) List(ctx context.Context, kind domain.Kind) ([]domain.TrackedChannel, error) {
	query := `
		SELECT id, channel_id, kind, last_updated, created_at
		FROM tracked_channels
		WHERE kind = $1
		ORDER BY created_at`

	var channels []domain.TrackedChannel
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &channels, query, kind)
	return channels, err
}

func (s *ChannelStore) Add(ctx context.Context, channelID string, kind domain.Kind) error {
	query := `
		INSERT INTO tracked_channels (channel_id, kind)
		VALUES ($1, $2)
		ON CONFLICT (channel_id, kind) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, channelID, kind)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrChannelExists
	}
	return nil
}

func (s *ChannelStore) Remove(ctx context.Context, channelID string, kind domain.Kind) error {
	query := `DELETE FROM tracked_channels WHERE channel_id = $1 AND kind = $2`
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, channelID, kind)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrChannelNotFound
	}
	return nil
}

func (s *ChannelStore) UpdateLastUpdated(ctx context.Context, channelID string, kind domain.Kind, day time.Time) error {
	query := `
		UPDATE tracked_channels
		SET last_updated = $3
		WHERE channel_id = $1 AND kind = $2`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, channelID, kind, day)
	return err
}

// RemoveStale deletes channels whose last yield is older than the cutoff and
// returns their IDs. Channels that never yielded an item are kept.
func (s *ChannelStore) RemoveStale(ctx context.Context, kind domain.Kind, cutoff time.Time) ([]string, error) {
	query := `
		DELETE FROM tracked_channels
		WHERE kind = $1 AND last_updated IS NOT NULL AND last_updated < $2
		RETURNING channel_id`

	var removed []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &removed, query, kind, cutoff)
	return removed, err
}
