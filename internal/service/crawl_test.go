package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"yt_notifier/internal/config"
	"yt_notifier/internal/domain"
	"yt_notifier/internal/service/mocks"
)

var crawlTestNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

type CrawlServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	fetcher   *mocks.MockFetcher
	channels  *mocks.MockChannelStore
	delivered *mocks.MockDeliveredStore
	appState  *mocks.MockAppStateStore
	schedules *mocks.MockLiveScheduleStore
	txManager *mocks.MockTransactionManager
	deliverer *mocks.MockDeliverer
	notifier  *mocks.MockNotifier

	service   *CrawlService
	crawlCfg  config.CrawlConfig
	notifyCfg config.NotifyConfig
}

func (s *CrawlServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.channels = mocks.NewMockChannelStore(s.ctrl)
	s.delivered = mocks.NewMockDeliveredStore(s.ctrl)
	s.appState = mocks.NewMockAppStateStore(s.ctrl)
	s.schedules = mocks.NewMockLiveScheduleStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.deliverer = mocks.NewMockDeliverer(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	s.crawlCfg = config.CrawlConfig{
		Interval:       30 * time.Minute,
		MinInterval:    15 * time.Minute,
		StaleAfterDays: 90,
	}
	s.notifyCfg = config.NotifyConfig{
		VideoDestination:  "vid-dest",
		StreamDestination: "str-dest",
		LinksPerMessage:   5,
		MessageDelay:      time.Second,
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewCrawlService(
		s.fetcher,
		s.channels,
		s.delivered,
		s.appState,
		s.schedules,
		s.txManager,
		s.deliverer,
		s.notifier,
		logger,
		s.crawlCfg,
		s.notifyCfg,
	)
	s.service.now = func() time.Time { return crawlTestNow }
}

func (s *CrawlServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCrawlServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CrawlServiceTestSuite))
}

func (s *CrawlServiceTestSuite) expectFreshCycle() {
	s.appState.EXPECT().Get(gomock.Any(), "last_crawl_time").Return("", nil)
	s.channels.EXPECT().RemoveStale(gomock.Any(), domain.KindVideos, gomock.Any()).Return(nil, nil)
	s.channels.EXPECT().RemoveStale(gomock.Any(), domain.KindStreams, gomock.Any()).Return(nil, nil)
}

func tracked(channelID string, kind domain.Kind) domain.TrackedChannel {
	return domain.TrackedChannel{ChannelID: channelID, Kind: kind}
}

func (s *CrawlServiceTestSuite) TestRun_DeliversNewItems() {
	ctx := context.Background()

	videoItems := []domain.Item{
		{VideoID: "vid1", Title: "fresh upload", Link: "https://www.youtube.com/watch?v=vid1", ChannelID: "@alpha"},
	}
	streamItems := []domain.Item{
		{
			VideoID: "live1", Title: "starting soon", Link: "https://www.youtube.com/watch?v=live1",
			ChannelID: "@beta", StreamState: domain.StreamUpcoming, ScheduledStart: 1756400000,
		},
	}

	s.expectFreshCycle()

	s.channels.EXPECT().List(ctx, domain.KindVideos).
		Return([]domain.TrackedChannel{tracked("@alpha", domain.KindVideos)}, nil)
	s.channels.EXPECT().List(ctx, domain.KindStreams).
		Return([]domain.TrackedChannel{tracked("@beta", domain.KindStreams)}, nil)

	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindVideos).Return([]string{"old1"}, nil)
	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindStreams).Return(nil, nil)

	s.fetcher.EXPECT().
		FetchChannel(ctx, "@alpha", domain.KindVideos, domain.NewDeliveredSet([]string{"old1"})).
		Return(videoItems, nil)
	s.fetcher.EXPECT().
		FetchChannel(ctx, "@beta", domain.KindStreams, domain.DeliveredSet{}).
		Return(streamItems, nil)

	s.deliverer.EXPECT().DeliverLinks(ctx, videoItems, "vid-dest").Return(nil)
	s.deliverer.EXPECT().DeliverLinks(ctx, streamItems, "str-dest").Return(nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	s.delivered.EXPECT().RecordDelivered(ctx, videoItems, domain.KindVideos).Return(nil)
	s.delivered.EXPECT().RecordDelivered(ctx, streamItems, domain.KindStreams).Return(nil)

	s.channels.EXPECT().UpdateLastUpdated(ctx, "@alpha", domain.KindVideos, crawlTestNow).Return(nil)
	s.channels.EXPECT().UpdateLastUpdated(ctx, "@beta", domain.KindStreams, crawlTestNow).Return(nil)

	s.schedules.EXPECT().Upsert(ctx, domain.LiveSchedule{
		VideoID:   "live1",
		Title:     "starting soon",
		Link:      "https://www.youtube.com/watch?v=live1",
		ChannelID: "@beta",
		StartAt:   time.Unix(1756400000, 0),
	}).Return(nil)

	s.appState.EXPECT().
		Set(ctx, "last_crawl_time", strconv.FormatInt(crawlTestNow.UnixMilli(), 10)).
		Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(2, stats.Channels)
	s.Equal(1, stats.NewVideos)
	s.Equal(1, stats.NewStreams)
	s.Equal(0, stats.Failed)
	s.False(stats.Skipped)
}

func (s *CrawlServiceTestSuite) TestRun_MinIntervalGuard() {
	ctx := context.Background()

	recent := crawlTestNow.Add(-5 * time.Minute)
	s.appState.EXPECT().Get(ctx, "last_crawl_time").
		Return(strconv.FormatInt(recent.UnixMilli(), 10), nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.True(stats.Skipped)
	s.Equal(0, stats.Channels)
}

func (s *CrawlServiceTestSuite) TestRun_StaleEntryAllowsCrawl() {
	ctx := context.Background()

	old := crawlTestNow.Add(-20 * time.Minute)
	s.appState.EXPECT().Get(ctx, "last_crawl_time").
		Return(strconv.FormatInt(old.UnixMilli(), 10), nil)
	s.channels.EXPECT().RemoveStale(ctx, domain.KindVideos, gomock.Any()).Return(nil, nil)
	s.channels.EXPECT().RemoveStale(ctx, domain.KindStreams, gomock.Any()).Return(nil, nil)
	s.channels.EXPECT().List(ctx, domain.KindVideos).Return(nil, nil)
	s.channels.EXPECT().List(ctx, domain.KindStreams).Return(nil, nil)
	s.notifier.EXPECT().Send(ctx, "vid-dest", "No video channels tracked; crawl aborted.").Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.False(stats.Skipped)
}

func (s *CrawlServiceTestSuite) TestRun_NoVideoChannelsAbortsCycle() {
	ctx := context.Background()

	s.expectFreshCycle()
	s.channels.EXPECT().List(ctx, domain.KindVideos).Return(nil, nil)
	s.channels.EXPECT().List(ctx, domain.KindStreams).
		Return([]domain.TrackedChannel{tracked("@beta", domain.KindStreams)}, nil)
	s.notifier.EXPECT().Send(ctx, "vid-dest", "No video channels tracked; crawl aborted.").Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(0, stats.Channels)
	s.Equal(0, stats.NewVideos)
}

func (s *CrawlServiceTestSuite) TestRun_AggregatesFailures() {
	ctx := context.Background()

	items := []domain.Item{{VideoID: "vid1", Title: "ok", Link: "https://www.youtube.com/watch?v=vid1", ChannelID: "@a"}}

	s.expectFreshCycle()

	s.channels.EXPECT().List(ctx, domain.KindVideos).Return([]domain.TrackedChannel{
		tracked("@a", domain.KindVideos),
		tracked("@b", domain.KindVideos),
		tracked("@c", domain.KindVideos),
	}, nil)
	s.channels.EXPECT().List(ctx, domain.KindStreams).Return(nil, nil)

	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindVideos).Return(nil, nil)
	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindStreams).Return(nil, nil)

	s.fetcher.EXPECT().FetchChannel(ctx, "@a", domain.KindVideos, gomock.Any()).Return(items, nil)
	s.fetcher.EXPECT().FetchChannel(ctx, "@b", domain.KindVideos, gomock.Any()).
		Return(nil, errors.New("unexpected status: 500"))
	s.fetcher.EXPECT().FetchChannel(ctx, "@c", domain.KindVideos, gomock.Any()).Return(nil, nil)

	s.fetcher.EXPECT().PageURL("@b", domain.KindVideos).Return("https://www.youtube.com/@b/videos")

	// one aggregated report naming the failed page, not one message per failure
	s.notifier.EXPECT().
		Send(ctx, "vid-dest", "Crawl failed for:\nhttps://www.youtube.com/@b/videos").
		Return(nil)
	s.notifier.EXPECT().Send(ctx, "str-dest", "No streams channels tracked.").Return(nil)

	s.deliverer.EXPECT().DeliverLinks(ctx, items, "vid-dest").Return(nil)
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.delivered.EXPECT().RecordDelivered(ctx, items, domain.KindVideos).Return(nil)
	s.channels.EXPECT().UpdateLastUpdated(ctx, "@a", domain.KindVideos, crawlTestNow).Return(nil)

	s.appState.EXPECT().Set(ctx, "last_crawl_time", gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(3, stats.Channels)
	s.Equal(1, stats.Failed)
	s.Equal(1, stats.NewVideos)
}

func (s *CrawlServiceTestSuite) TestRun_RemovesMissingChannel() {
	ctx := context.Background()

	s.expectFreshCycle()

	s.channels.EXPECT().List(ctx, domain.KindVideos).Return([]domain.TrackedChannel{
		tracked("@alpha", domain.KindVideos),
		tracked("@gone", domain.KindVideos),
	}, nil)
	s.channels.EXPECT().List(ctx, domain.KindStreams).Return(nil, nil)

	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindVideos).Return(nil, nil)
	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindStreams).Return(nil, nil)

	s.fetcher.EXPECT().FetchChannel(ctx, "@alpha", domain.KindVideos, gomock.Any()).Return(nil, nil)
	s.fetcher.EXPECT().FetchChannel(ctx, "@gone", domain.KindVideos, gomock.Any()).
		Return(nil, domain.ErrChannelNotFound)

	s.channels.EXPECT().Remove(ctx, "@gone", domain.KindVideos).Return(nil)
	s.notifier.EXPECT().
		Send(ctx, "vid-dest", "Channel @gone no longer exists, removed from videos tracking.").
		Return(nil)

	s.notifier.EXPECT().Send(ctx, "vid-dest", "No new videos today.").Return(nil)
	s.notifier.EXPECT().Send(ctx, "str-dest", "No streams channels tracked.").Return(nil)

	s.appState.EXPECT().Set(ctx, "last_crawl_time", gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Removed)
	s.Equal(0, stats.Failed)
}

func (s *CrawlServiceTestSuite) TestRun_NoNewItemsNotices() {
	ctx := context.Background()

	s.expectFreshCycle()

	s.channels.EXPECT().List(ctx, domain.KindVideos).
		Return([]domain.TrackedChannel{tracked("@alpha", domain.KindVideos)}, nil)
	s.channels.EXPECT().List(ctx, domain.KindStreams).
		Return([]domain.TrackedChannel{tracked("@beta", domain.KindStreams)}, nil)

	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindVideos).Return(nil, nil)
	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindStreams).Return(nil, nil)

	s.fetcher.EXPECT().FetchChannel(ctx, "@alpha", domain.KindVideos, gomock.Any()).Return(nil, nil)
	s.fetcher.EXPECT().FetchChannel(ctx, "@beta", domain.KindStreams, gomock.Any()).Return(nil, nil)

	s.notifier.EXPECT().Send(ctx, "vid-dest", "No new videos today.").Return(nil)
	s.notifier.EXPECT().Send(ctx, "str-dest", "No new streams today.").Return(nil)

	s.appState.EXPECT().Set(ctx, "last_crawl_time", gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(0, stats.NewVideos)
	s.Equal(0, stats.NewStreams)
}

func (s *CrawlServiceTestSuite) TestRun_StaleChannelRemovalNotice() {
	ctx := context.Background()

	s.appState.EXPECT().Get(ctx, "last_crawl_time").Return("", nil)
	s.channels.EXPECT().RemoveStale(ctx, domain.KindVideos, crawlTestNow.AddDate(0, 0, -90)).
		Return([]string{"@dead"}, nil)
	s.channels.EXPECT().RemoveStale(ctx, domain.KindStreams, crawlTestNow.AddDate(0, 0, -90)).
		Return(nil, nil)
	s.notifier.EXPECT().
		Send(ctx, "vid-dest", "Removed videos channels with no uploads for 90 days:\n@dead").
		Return(nil)

	s.channels.EXPECT().List(ctx, domain.KindVideos).Return(nil, nil)
	s.channels.EXPECT().List(ctx, domain.KindStreams).Return(nil, nil)
	s.notifier.EXPECT().Send(ctx, "vid-dest", "No video channels tracked; crawl aborted.").Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Removed)
}

func (s *CrawlServiceTestSuite) TestRun_DeliveryErrorStopsCycle() {
	ctx := context.Background()

	items := []domain.Item{{VideoID: "vid1", Title: "ok", Link: "https://www.youtube.com/watch?v=vid1"}}

	s.expectFreshCycle()

	s.channels.EXPECT().List(ctx, domain.KindVideos).
		Return([]domain.TrackedChannel{tracked("@alpha", domain.KindVideos)}, nil)
	s.channels.EXPECT().List(ctx, domain.KindStreams).Return(nil, nil)

	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindVideos).Return(nil, nil)
	s.delivered.EXPECT().ListDeliveredToday(ctx, domain.KindStreams).Return(nil, nil)

	s.fetcher.EXPECT().FetchChannel(ctx, "@alpha", domain.KindVideos, gomock.Any()).Return(items, nil)

	s.deliverer.EXPECT().DeliverLinks(ctx, items, "vid-dest").Return(errors.New("broker down"))

	_, err := s.service.Run(ctx)

	s.Error(err)
	s.Contains(err.Error(), "deliver videos")
	// nothing recorded as delivered, so the next cycle re-sends
}
