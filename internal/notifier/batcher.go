package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"yt_notifier/internal/domain"
)

// Sink delivers one text message to a destination channel.
type Sink interface {
	Send(ctx context.Context, destinationID, text string) error
}

// Batcher groups item links into bounded-size messages with a pacing delay
// between them, respecting the destination transport's rate limits.
type Batcher struct {
	sink            Sink
	linksPerMessage int
	messageDelay    time.Duration
	sleep           func(ctx context.Context, d time.Duration) error
	logger          *slog.Logger
}

func NewBatcher(sink Sink, linksPerMessage int, messageDelay time.Duration, logger *slog.Logger) *Batcher {
	return &Batcher{
		sink:            sink,
		linksPerMessage: linksPerMessage,
		messageDelay:    messageDelay,
		sleep:           sleepContext,
		logger:          logger.With("component", "batcher"),
	}
}

// DeliverLinks sends the items' links to destination. Links are deduplicated
// first (upstream may list the same video under multiple sections) with
// original order preserved. Empty input is a no-op.
func (b *Batcher) DeliverLinks(ctx context.Context, items []domain.Item, destination string) error {
	links := uniqueLinks(items)
	if len(links) == 0 {
		return nil
	}

	for i := 0; i < len(links); i += b.linksPerMessage {
		end := min(i+b.linksPerMessage, len(links))

		if err := b.sink.Send(ctx, destination, strings.Join(links[i:end], "\n")); err != nil {
			return fmt.Errorf("send batch: %w", err)
		}

		if end < len(links) {
			if err := b.sleep(ctx, b.messageDelay); err != nil {
				return err
			}
		}
	}

	b.logger.Debug("delivered links",
		"destination", destination,
		"links", len(links),
	)

	return nil
}

func uniqueLinks(items []domain.Item) []string {
	seen := make(map[string]struct{}, len(items))
	links := make([]string, 0, len(items))
	for _, item := range items {
		if item.Link == "" {
			continue
		}
		if _, ok := seen[item.Link]; ok {
			continue
		}
		seen[item.Link] = struct{}{}
		links = append(links, item.Link)
	}
	return links
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
