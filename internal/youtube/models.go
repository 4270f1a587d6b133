package youtube

// Typed slice of the ytInitialData bootstrap object embedded in channel
// pages. Only the paths the extractor walks are modelled; everything else is
// ignored by encoding/json.

type initialData struct {
	Contents struct {
		TwoColumnBrowseResultsRenderer struct {
			Tabs []tab `json:"tabs"`
		} `json:"twoColumnBrowseResultsRenderer"`
	} `json:"contents"`
	Metadata struct {
		ChannelMetadataRenderer struct {
			OwnerURLs []string `json:"ownerUrls"`
		} `json:"channelMetadataRenderer"`
	} `json:"metadata"`
}

type tab struct {
	TabRenderer struct {
		Content struct {
			RichGridRenderer struct {
				Contents []gridEntry `json:"contents"`
			} `json:"richGridRenderer"`
		} `json:"content"`
	} `json:"tabRenderer"`
}

type gridEntry struct {
	RichItemRenderer *struct {
		Content struct {
			VideoRenderer *videoRenderer `json:"videoRenderer"`
		} `json:"content"`
	} `json:"richItemRenderer"`
}

type videoRenderer struct {
	VideoID   string   `json:"videoId"`
	Title     textRuns `json:"title"`
	Thumbnail struct {
		Thumbnails []struct {
			URL string `json:"url"`
		} `json:"thumbnails"`
	} `json:"thumbnail"`
	PublishedTimeText  *textRuns `json:"publishedTimeText"`
	LengthText         *textRuns `json:"lengthText"`
	ViewCountText      *textRuns `json:"viewCountText"`
	ShortViewCountText *textRuns `json:"shortViewCountText"`
	ThumbnailOverlays  []overlay `json:"thumbnailOverlays"`
	UpcomingEventData  *struct {
		StartTime string `json:"startTime"`
	} `json:"upcomingEventData"`
}

type overlay struct {
	ThumbnailOverlayTimeStatusRenderer *struct {
		Style string `json:"style"`
	} `json:"thumbnailOverlayTimeStatusRenderer"`
}

// textRuns covers YouTube's two text encodings: {"simpleText": "..."} and
// {"runs": [{"text": "..."}]}.
type textRuns struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (t *textRuns) text() string {
	if t == nil {
		return ""
	}
	if t.SimpleText != "" {
		return t.SimpleText
	}
	if len(t.Runs) > 0 {
		return t.Runs[0].Text
	}
	return ""
}

// overlayStyle returns the time-status overlay style of a stream entry
// (UPCOMING, LIVE or DEFAULT), or "" when no such overlay is present.
func (v *videoRenderer) overlayStyle() string {
	for _, o := range v.ThumbnailOverlays {
		if o.ThumbnailOverlayTimeStatusRenderer != nil {
			return o.ThumbnailOverlayTimeStatusRenderer.Style
		}
	}
	return ""
}
