package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"yt_notifier/internal/domain"
)

type ChannelStore interface {
	List(ctx context.Context, kind domain.Kind) ([]domain.TrackedChannel, error)
	Add(ctx context.Context, channelID string, kind domain.Kind) error
	Remove(ctx context.Context, channelID string, kind domain.Kind) error
	UpdateLastUpdated(ctx context.Context, channelID string, kind domain.Kind, day time.Time) error
	RemoveStale(ctx context.Context, kind domain.Kind, cutoff time.Time) ([]string, error)
}

type DeliveredStore interface {
	ListDeliveredToday(ctx context.Context, kind domain.Kind) ([]string, error)
	RecordDelivered(ctx context.Context, items []domain.Item, kind domain.Kind) error
}

type AppStateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type LiveScheduleStore interface {
	Upsert(ctx context.Context, schedule domain.LiveSchedule) error
	ListDue(ctx context.Context, now time.Time) ([]domain.LiveSchedule, error)
	MarkNotified(ctx context.Context, videoID string, at time.Time) error
}

type Fetcher interface {
	PageURL(channelID string, kind domain.Kind) string
	FetchChannel(ctx context.Context, channelID string, kind domain.Kind, delivered domain.DeliveredSet) ([]domain.Item, error)
}

type Deliverer interface {
	DeliverLinks(ctx context.Context, items []domain.Item, destination string) error
}

type Notifier interface {
	Send(ctx context.Context, destinationID, text string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
