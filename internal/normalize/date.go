package normalize

import (
	"strings"
	"time"
)

// Explicit formats tried in order, day before month. First match wins.
var dateFormats = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"2006/01/02",
}

// Fallback formats for cells typed by hand without zero padding.
var looseDateFormats = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate converts a raw date cell into a calendar date. It tries
// the explicit day-first formats, then the loose fallbacks. A cell
// that matches nothing yields the zero time (undated); parsing never
// errors so one bad cell cannot sink a whole snapshot.
func ParseDate(raw string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	for _, layout := range looseDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
