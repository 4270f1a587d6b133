package youtube

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// relativeUnits maps the unit words YouTube renders in the supported locales
// to an hours-equivalent factor. Unknown units ("days ago", "週前", ...)
// reject the item outright: the pipeline only ever wants same-day uploads.
var relativeUnits = []struct {
	words []string
	hours float64
}{
	{words: []string{"hour", "小時前"}, hours: 1},
	{words: []string{"minute", "分鐘前"}, hours: 1.0 / 60},
	{words: []string{"second", "秒前"}, hours: 1.0 / 3600},
}

var digitsPattern = regexp.MustCompile(`\d+`)

// PublishedToday reports whether a raw publish-time value falls on the same
// calendar day as now. The value is either an absolute epoch-seconds number
// or a relative-time string such as "3 hours ago". The caller's clock is
// passed explicitly; the comparison uses its location.
func PublishedToday(raw string, now time.Time) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return sameDay(time.Unix(secs, 0).In(now.Location()), now)
	}

	for _, unit := range relativeUnits {
		for _, word := range unit.words {
			if !strings.Contains(raw, word) {
				continue
			}
			digits := digitsPattern.FindString(raw)
			if digits == "" {
				return false
			}
			n, err := strconv.Atoi(digits)
			if err != nil {
				return false
			}
			offset := time.Duration(float64(n) * unit.hours * float64(time.Hour))
			return sameDay(now.Add(-offset), now)
		}
	}

	return false
}

func sameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
