package domain

import "time"

// CrawlStats holds statistics about one crawl cycle.
type CrawlStats struct {
	Channels   int
	Failed     int
	Removed    int
	NewVideos  int
	NewStreams int
	Skipped    bool // true when the minimum-interval guard suppressed the cycle
	Duration   time.Duration
}
