package domain

import (
	"strings"
	"time"
)

// reportDateLayouts lists the date formats seen in scraper output, most
// common first.
var reportDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseReportDate parses a report date. The boolean is false when no known
// layout matches, in which case the zero time is returned.
func ParseReportDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range reportDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// reportDate is a parsed date that orders unparseable values before every
// valid date.
type reportDate struct {
	t  time.Time
	ok bool
}

func parseSortable(s string) reportDate {
	t, ok := ParseReportDate(s)
	return reportDate{t: t, ok: ok}
}

// after reports whether d is strictly later than other.
func (d reportDate) after(other reportDate) bool {
	switch {
	case !d.ok:
		return false
	case !other.ok:
		return true
	default:
		return d.t.After(other.t)
	}
}
