package domain

import (
	"fmt"
	"time"
)

// Kind is a tracked content category. Videos and streams are crawled and
// deduplicated independently.
type Kind string

const (
	KindVideos  Kind = "videos"
	KindStreams Kind = "streams"
)

func (k Kind) Valid() bool {
	return k == KindVideos || k == KindStreams
}

// Kinds lists all tracked content categories in crawl order.
func Kinds() []Kind {
	return []Kind{KindVideos, KindStreams}
}

// Stream states distinguished by the thumbnail overlay discriminator.
const (
	StreamUpcoming = "upcoming"
	StreamLive     = "live"
	StreamEnded    = "ended"
)

// TrackedChannel is a YouTube channel on the watch list, unique per
// (channel_id, kind). LastUpdated is nil until a crawl yields an item.
type TrackedChannel struct {
	ID          int64      `db:"id"`
	ChannelID   string     `db:"channel_id"`
	Kind        Kind       `db:"kind"`
	LastUpdated *time.Time `db:"last_updated"`
	CreatedAt   time.Time  `db:"created_at"`
}

// LastUpdatedString renders the last-updated date the way list commands
// display it, e.g. "2026/8/28".
func (c TrackedChannel) LastUpdatedString() string {
	if c.LastUpdated == nil {
		return "never"
	}
	return DateString(*c.LastUpdated)
}

// DateString formats a date as YYYY/M/D without zero padding.
func DateString(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// Item is one scraped video or stream entry. Items live only for the
// duration of a crawl cycle; the delivered subset is persisted as
// DeliveredRecord rows.
type Item struct {
	VideoID        string
	Title          string
	Link           string
	Thumbnail      string
	PublishedTime  string
	Duration       string
	ViewCount      string
	ChannelID      string
	StreamState    string // "", "upcoming", "live" or "ended"
	ScheduledStart int64  // epoch seconds, upcoming streams only
}

// DeliveredRecord is the persisted proof that an item was sent, scoped to
// the calendar day of SentAt.
type DeliveredRecord struct {
	VideoID   string    `db:"video_id"`
	Kind      Kind      `db:"kind"`
	Title     string    `db:"title"`
	Link      string    `db:"link"`
	ChannelID string    `db:"channel_id"`
	SentAt    time.Time `db:"sent_at"`
}

// DeliveredSet is the set of video IDs already delivered today, keyed by
// video ID only. Title matching is deliberately not supported.
type DeliveredSet map[string]struct{}

func NewDeliveredSet(ids []string) DeliveredSet {
	set := make(DeliveredSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s DeliveredSet) Contains(videoID string) bool {
	_, ok := s[videoID]
	return ok
}

// LiveSchedule is an upcoming broadcast waiting for its start-time
// notification.
type LiveSchedule struct {
	VideoID    string     `db:"video_id"`
	Title      string     `db:"title"`
	Link       string     `db:"link"`
	ChannelID  string     `db:"channel_id"`
	StartAt    time.Time  `db:"start_at"`
	NotifiedAt *time.Time `db:"notified_at"`
}
