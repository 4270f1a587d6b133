package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"yt_notifier/internal/domain"
)

const initialDataMarker = "var ytInitialData ="

// ParseError signals that the upstream page shape changed and the embedded
// data blob could not be located or decoded. The orchestrator treats it as a
// per-channel failure, not a cycle abort.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse channel page: " + e.Reason
}

// Config holds channel page fetcher configuration.
type Config struct {
	BaseURL        string
	UserAgent      string
	AcceptLanguage string
	Timeout        time.Duration
	BatchSize      int
}

// Source fetches a channel's videos or streams page and extracts item
// records from the embedded ytInitialData blob.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	acceptLanguage string
	batchSize      int
	logger         *slog.Logger
	now            func() time.Time
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		acceptLanguage: cfg.AcceptLanguage,
		batchSize:      cfg.BatchSize,
		logger:         logger.With("component", "youtube"),
		now:            time.Now,
	}
}

// tabIndexFor maps a content kind to its slot in the channel page's tab
// array. The positional coupling to upstream markup is deliberately confined
// to this one lookup.
func tabIndexFor(kind domain.Kind) int {
	if kind == domain.KindStreams {
		return 3
	}
	return 1
}

// PageURL returns the channel page address for a kind, e.g.
// https://www.youtube.com/@handle/videos.
func (s *Source) PageURL(channelID string, kind domain.Kind) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, channelID, kind)
}

// FetchChannel retrieves one channel page and returns the items that are
// published today and not in the delivered set. A 404 yields
// domain.ErrChannelNotFound so the caller can deregister the channel.
func (s *Source) FetchChannel(ctx context.Context, channelID string, kind domain.Kind, delivered domain.DeliveredSet) ([]domain.Item, error) {
	pageURL := s.PageURL(channelID, kind)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept-Language", s.acceptLanguage)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrChannelNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	data, err := extractInitialData(body)
	if err != nil {
		return nil, err
	}

	return s.extractItems(data, kind, delivered)
}

// extractInitialData locates the single script block assigning ytInitialData
// and decodes the JSON object it carries.
func extractInitialData(body []byte) (*initialData, error) {
	idx := bytes.Index(body, []byte(initialDataMarker))
	if idx < 0 {
		return nil, &ParseError{Reason: "ytInitialData block not found"}
	}

	rest := body[idx+len(initialDataMarker):]
	end := bytes.Index(rest, []byte("</script>"))
	if end < 0 {
		return nil, &ParseError{Reason: "unterminated script block"}
	}

	blob := bytes.TrimSpace(rest[:end])
	blob = bytes.TrimSuffix(blob, []byte(";"))

	var data initialData
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, &ParseError{Reason: "decode ytInitialData: " + err.Error()}
	}

	return &data, nil
}

func (s *Source) extractItems(data *initialData, kind domain.Kind, delivered domain.DeliveredSet) ([]domain.Item, error) {
	tabs := data.Contents.TwoColumnBrowseResultsRenderer.Tabs
	idx := tabIndexFor(kind)
	if idx >= len(tabs) {
		return nil, &ParseError{Reason: fmt.Sprintf("tab %d for kind %q missing", idx, kind)}
	}

	channelID := canonicalChannelID(data)
	entries := tabs[idx].TabRenderer.Content.RichGridRenderer.Contents

	// Only the most recent batchSize entries are ever inspected; uploads are
	// infrequent enough that nothing is missed across one polling interval.
	if len(entries) > s.batchSize {
		entries = entries[:s.batchSize]
	}

	now := s.now()
	var items []domain.Item

	for _, entry := range entries {
		if entry.RichItemRenderer == nil || entry.RichItemRenderer.Content.VideoRenderer == nil {
			continue
		}

		item, err := buildItem(entry.RichItemRenderer.Content.VideoRenderer, kind)
		if err != nil {
			// One malformed item must never abort the whole channel's batch.
			s.logger.Warn("skipping malformed item",
				"channel", channelID,
				"kind", kind,
				"error", err,
			)
			continue
		}

		if delivered.Contains(item.VideoID) {
			continue
		}

		rawTime := item.PublishedTime
		if item.StreamState == domain.StreamLive && rawTime == "" {
			// A broadcast in progress has no publish time; it always counts
			// as today.
			rawTime = strconv.FormatInt(now.Unix(), 10)
		}
		if !PublishedToday(rawTime, now) {
			continue
		}

		item.ChannelID = channelID
		items = append(items, item)
	}

	return items, nil
}

func canonicalChannelID(data *initialData) string {
	urls := data.Metadata.ChannelMetadataRenderer.OwnerURLs
	if len(urls) == 0 {
		return ""
	}
	parts := strings.Split(strings.TrimRight(urls[0], "/"), "/")
	return parts[len(parts)-1]
}

func buildItem(vr *videoRenderer, kind domain.Kind) (domain.Item, error) {
	if vr.VideoID == "" {
		return domain.Item{}, fmt.Errorf("missing videoId")
	}
	title := vr.Title.text()
	if title == "" {
		return domain.Item{}, fmt.Errorf("missing title for %s", vr.VideoID)
	}

	item := domain.Item{
		VideoID: vr.VideoID,
		Title:   title,
		Link:    "https://www.youtube.com/watch?v=" + vr.VideoID,
	}
	if len(vr.Thumbnail.Thumbnails) > 0 {
		item.Thumbnail = vr.Thumbnail.Thumbnails[0].URL
	}

	if kind == domain.KindVideos {
		item.PublishedTime = vr.PublishedTimeText.text()
		item.Duration = vr.LengthText.text()
		item.ViewCount = vr.ViewCountText.text()
		return item, nil
	}

	switch vr.overlayStyle() {
	case "UPCOMING":
		if vr.UpcomingEventData == nil {
			return domain.Item{}, fmt.Errorf("upcoming stream %s without event data", vr.VideoID)
		}
		start, err := strconv.ParseInt(vr.UpcomingEventData.StartTime, 10, 64)
		if err != nil {
			return domain.Item{}, fmt.Errorf("upcoming stream %s: bad start time %q", vr.VideoID, vr.UpcomingEventData.StartTime)
		}
		item.StreamState = domain.StreamUpcoming
		item.ScheduledStart = start
		item.PublishedTime = vr.UpcomingEventData.StartTime
	case "LIVE":
		item.StreamState = domain.StreamLive
		item.ViewCount = vr.ShortViewCountText.text()
	case "DEFAULT":
		// An ended broadcast carries video-shaped fields.
		item.StreamState = domain.StreamEnded
		item.PublishedTime = vr.PublishedTimeText.text()
		item.Duration = vr.LengthText.text()
		item.ViewCount = vr.ViewCountText.text()
	default:
		return domain.Item{}, fmt.Errorf("stream %s: unknown overlay style", vr.VideoID)
	}

	return item, nil
}
