package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"yt_notifier/internal/config"
	"yt_notifier/internal/domain"
)

const lastCrawlKey = "last_crawl_time"

// CrawlService runs one full crawl cycle: fetch every tracked channel,
// deliver items not yet sent today and persist the delivery proof.
type CrawlService struct {
	fetcher   Fetcher
	channels  ChannelStore
	delivered DeliveredStore
	appState  AppStateStore
	schedules LiveScheduleStore
	txManager TransactionManager
	deliverer Deliverer
	notifier  Notifier
	logger    *slog.Logger
	crawlCfg  config.CrawlConfig
	notifyCfg config.NotifyConfig
	now       func() time.Time
}

func NewCrawlService(
	fetcher Fetcher,
	channels ChannelStore,
	delivered DeliveredStore,
	appState AppStateStore,
	schedules LiveScheduleStore,
	txManager TransactionManager,
	deliverer Deliverer,
	notifier Notifier,
	logger *slog.Logger,
	crawlCfg config.CrawlConfig,
	notifyCfg config.NotifyConfig,
) *CrawlService {
	return &CrawlService{
		fetcher:   fetcher,
		channels:  channels,
		delivered: delivered,
		appState:  appState,
		schedules: schedules,
		txManager: txManager,
		deliverer: deliverer,
		notifier:  notifier,
		logger:    logger.With("component", "crawl"),
		crawlCfg:  crawlCfg,
		notifyCfg: notifyCfg,
		now:       time.Now,
	}
}

type fetchResult struct {
	channel domain.TrackedChannel
	kind    domain.Kind
	items   []domain.Item
	err     error
}

// Run executes one crawl cycle. Cycles fired less than the minimum interval
// after the previous one are suppressed, so a manual trigger cannot stack on
// top of a scheduled run.
func (s *CrawlService) Run(ctx context.Context) (*domain.CrawlStats, error) {
	start := s.now()
	stats := &domain.CrawlStats{}

	recent, err := s.ranRecently(ctx, start)
	if err != nil {
		return nil, err
	}
	if recent {
		stats.Skipped = true
		s.logger.Info("crawl suppressed by minimum interval",
			"min_interval", s.crawlCfg.MinInterval,
		)
		return stats, nil
	}

	s.logger.Info("starting crawl")

	if err := s.removeStaleChannels(ctx, start, stats); err != nil {
		s.logger.Warn("stale channel cleanup failed", "error", err)
	}

	channelsByKind := make(map[domain.Kind][]domain.TrackedChannel)
	for _, kind := range domain.Kinds() {
		list, err := s.channels.List(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("list %s channels: %w", kind, err)
		}
		channelsByKind[kind] = list
	}
	if len(channelsByKind[domain.KindVideos]) == 0 {
		// Video tracking is the primary function; an empty list means the
		// deployment is not set up yet.
		s.logger.Warn("no tracked video channels, aborting cycle")
		if err := s.notifier.Send(ctx, s.notifyCfg.VideoDestination, "No video channels tracked; crawl aborted."); err != nil {
			s.logger.Error("failed to send empty-list notice", "error", err)
		}
		return stats, nil
	}

	deliveredByKind := make(map[domain.Kind]domain.DeliveredSet)
	for _, kind := range domain.Kinds() {
		ids, err := s.delivered.ListDeliveredToday(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("list delivered %s: %w", kind, err)
		}
		deliveredByKind[kind] = domain.NewDeliveredSet(ids)
	}

	results := s.fetchAll(ctx, channelsByKind, deliveredByKind)
	stats.Channels = len(results)

	itemsByKind := make(map[domain.Kind][]domain.Item)
	yieldedByKind := make(map[domain.Kind][]string)
	var failedURLs []string

	for _, res := range results {
		switch {
		case errors.Is(res.err, domain.ErrChannelNotFound):
			s.deregister(ctx, res.channel, stats)
		case res.err != nil:
			stats.Failed++
			failedURLs = append(failedURLs, s.fetcher.PageURL(res.channel.ChannelID, res.channel.Kind))
			s.logger.Error("channel crawl failed",
				"channel", res.channel.ChannelID,
				"kind", res.channel.Kind,
				"error", res.err,
			)
		case len(res.items) > 0:
			itemsByKind[res.kind] = append(itemsByKind[res.kind], res.items...)
			yieldedByKind[res.kind] = append(yieldedByKind[res.kind], res.channel.ChannelID)
		}
	}

	if len(failedURLs) > 0 {
		text := "Crawl failed for:\n" + strings.Join(failedURLs, "\n")
		if err := s.notifier.Send(ctx, s.notifyCfg.VideoDestination, text); err != nil {
			s.logger.Error("failed to report crawl failures", "error", err)
		}
	}

	for _, kind := range domain.Kinds() {
		if len(channelsByKind[kind]) == 0 {
			if err := s.notifier.Send(ctx, s.destinationFor(kind), fmt.Sprintf("No %s channels tracked.", kind)); err != nil {
				s.logger.Error("failed to send empty-list notice", "error", err)
			}
			continue
		}
		if err := s.deliverKind(ctx, kind, itemsByKind[kind], yieldedByKind[kind], start); err != nil {
			return stats, err
		}
	}

	stats.NewVideos = len(itemsByKind[domain.KindVideos])
	stats.NewStreams = len(itemsByKind[domain.KindStreams])

	if err := s.appState.Set(ctx, lastCrawlKey, strconv.FormatInt(start.UnixMilli(), 10)); err != nil {
		return stats, fmt.Errorf("record crawl time: %w", err)
	}

	stats.Duration = time.Since(start)

	s.logger.Info("crawl completed",
		"channels", stats.Channels,
		"failed", stats.Failed,
		"removed", stats.Removed,
		"new_videos", stats.NewVideos,
		"new_streams", stats.NewStreams,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *CrawlService) ranRecently(ctx context.Context, now time.Time) (bool, error) {
	raw, err := s.appState.Get(ctx, lastCrawlKey)
	if err != nil {
		return false, fmt.Errorf("read last crawl time: %w", err)
	}
	if raw == "" {
		return false, nil
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.logger.Warn("ignoring invalid last crawl time", "value", raw)
		return false, nil
	}
	return now.Sub(time.UnixMilli(millis)) < s.crawlCfg.MinInterval, nil
}

func (s *CrawlService) removeStaleChannels(ctx context.Context, now time.Time, stats *domain.CrawlStats) error {
	cutoff := now.AddDate(0, 0, -s.crawlCfg.StaleAfterDays)
	for _, kind := range domain.Kinds() {
		removed, err := s.channels.RemoveStale(ctx, kind, cutoff)
		if err != nil {
			return fmt.Errorf("remove stale %s channels: %w", kind, err)
		}
		if len(removed) == 0 {
			continue
		}
		stats.Removed += len(removed)
		text := fmt.Sprintf("Removed %s channels with no uploads for %d days:\n%s",
			kind, s.crawlCfg.StaleAfterDays, strings.Join(removed, "\n"))
		if err := s.notifier.Send(ctx, s.destinationFor(kind), text); err != nil {
			s.logger.Error("failed to send stale removal notice", "error", err)
		}
	}
	return nil
}

// fetchAll crawls every (channel, kind) pair concurrently. Each goroutine
// writes its own result slot, so slice order stays deterministic and every
// channel settles before processing begins.
func (s *CrawlService) fetchAll(
	ctx context.Context,
	channelsByKind map[domain.Kind][]domain.TrackedChannel,
	deliveredByKind map[domain.Kind]domain.DeliveredSet,
) []fetchResult {
	var targets []domain.TrackedChannel
	for _, kind := range domain.Kinds() {
		targets = append(targets, channelsByKind[kind]...)
	}

	results := make([]fetchResult, len(targets))
	var wg sync.WaitGroup
	for i, ch := range targets {
		wg.Add(1)
		go func(i int, ch domain.TrackedChannel) {
			defer wg.Done()
			items, err := s.fetcher.FetchChannel(ctx, ch.ChannelID, ch.Kind, deliveredByKind[ch.Kind])
			results[i] = fetchResult{channel: ch, kind: ch.Kind, items: items, err: err}
		}(i, ch)
	}
	wg.Wait()

	return results
}

func (s *CrawlService) deregister(ctx context.Context, ch domain.TrackedChannel, stats *domain.CrawlStats) {
	err := s.channels.Remove(ctx, ch.ChannelID, ch.Kind)
	if err != nil && !errors.Is(err, domain.ErrChannelNotFound) {
		s.logger.Error("failed to remove missing channel",
			"channel", ch.ChannelID,
			"kind", ch.Kind,
			"error", err,
		)
		return
	}

	stats.Removed++
	text := fmt.Sprintf("Channel %s no longer exists, removed from %s tracking.", ch.ChannelID, ch.Kind)
	if err := s.notifier.Send(ctx, s.destinationFor(ch.Kind), text); err != nil {
		s.logger.Error("failed to send removal notice", "error", err)
	}
}

// deliverKind sends a kind's new items and records them as delivered in one
// transaction with the per-channel last_updated bump. Links go out before the
// records are written; a crash between the two re-sends rather than silently
// drops, which is the acceptable failure direction here.
func (s *CrawlService) deliverKind(ctx context.Context, kind domain.Kind, items []domain.Item, yielded []string, day time.Time) error {
	dest := s.destinationFor(kind)

	if len(items) == 0 {
		if err := s.notifier.Send(ctx, dest, fmt.Sprintf("No new %s today.", kind)); err != nil {
			return fmt.Errorf("send empty notice: %w", err)
		}
		return nil
	}

	if err := s.deliverer.DeliverLinks(ctx, items, dest); err != nil {
		return fmt.Errorf("deliver %s: %w", kind, err)
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.delivered.RecordDelivered(txCtx, items, kind); err != nil {
			return fmt.Errorf("record delivered %s: %w", kind, err)
		}
		for _, channelID := range yielded {
			if err := s.channels.UpdateLastUpdated(txCtx, channelID, kind, day); err != nil {
				return fmt.Errorf("update last_updated for %s: %w", channelID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if kind == domain.KindStreams {
		s.recordUpcoming(ctx, items)
	}

	return nil
}

func (s *CrawlService) recordUpcoming(ctx context.Context, items []domain.Item) {
	for _, item := range items {
		if item.StreamState != domain.StreamUpcoming {
			continue
		}
		schedule := domain.LiveSchedule{
			VideoID:   item.VideoID,
			Title:     item.Title,
			Link:      item.Link,
			ChannelID: item.ChannelID,
			StartAt:   time.Unix(item.ScheduledStart, 0),
		}
		if err := s.schedules.Upsert(ctx, schedule); err != nil {
			s.logger.Error("failed to record live schedule",
				"video", item.VideoID,
				"error", err,
			)
		}
	}
}

func (s *CrawlService) destinationFor(kind domain.Kind) string {
	if kind == domain.KindStreams {
		return s.notifyCfg.StreamDestination
	}
	return s.notifyCfg.VideoDestination
}
