package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeRe = regexp.MustCompile(`(?i)(\d+)\s*(minute|hour|day|week|month|year)s?(?:\s+ago)?`)

// absoluteLayouts are tried in order when the text is not a relative phrase.
var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02/01/2006",
}

// ParseDate resolves posting-date text against now. Relative phrases such as
// "3 days ago" subtract the matching calendar unit; anything else is tried as
// an absolute date. Unparseable input defaults to now.
func ParseDate(raw string, now time.Time) time.Time {
	text := strings.TrimSpace(raw)
	if text == "" {
		return now
	}
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "just now"), lower == "today", lower == "now":
		return now
	case lower == "yesterday":
		return now.AddDate(0, 0, -1)
	}

	if m := relativeRe.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			switch m[2] {
			case "minute":
				return now.Add(-time.Duration(n) * time.Minute)
			case "hour":
				return now.Add(-time.Duration(n) * time.Hour)
			case "day":
				return now.AddDate(0, 0, -n)
			case "week":
				return now.AddDate(0, 0, -7*n)
			case "month":
				return now.AddDate(0, -n, 0)
			case "year":
				return now.AddDate(-n, 0, 0)
			}
		}
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}
	return now
}
