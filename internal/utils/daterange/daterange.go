package daterange

import (
	"fmt"
	"strings"
	"time"
)

// Token is a named relative date range.
type Token string

const (
	Today   Token = "today"
	Week    Token = "week"
	Month   Token = "month"
	Quarter Token = "quarter"
	Year    Token = "year"
)

// Range is a half-open interval [From, To).
type Range struct {
	From time.Time
	To   time.Time
}

// Resolve maps a token to an absolute range relative to now.
// Week starts on Monday; quarter and year are calendar-aligned.
// Bounds are UTC midnights so they compare cleanly against stored
// transaction dates, which are parsed as UTC.
func Resolve(tok Token, now time.Time) (Range, error) {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch Token(strings.ToLower(string(tok))) {
	case Today:
		return Range{From: day, To: day.AddDate(0, 0, 1)}, nil
	case Week:
		offset := int(day.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7
		}
		start := day.AddDate(0, 0, -offset)
		return Range{From: start, To: start.AddDate(0, 0, 7)}, nil
	case Month:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{From: start, To: start.AddDate(0, 1, 0)}, nil
	case Quarter:
		qMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), qMonth, 1, 0, 0, 0, 0, now.Location())
		return Range{From: start, To: start.AddDate(0, 3, 0)}, nil
	case Year:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Range{From: start, To: start.AddDate(1, 0, 0)}, nil
	}
	return Range{}, fmt.Errorf("unknown date range token: %q", tok)
}

// ParseMonth parses a "YYYY-MM" string into the month's range.
func ParseMonth(s string, loc *time.Location) (Range, error) {
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return Range{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Range{From: t, To: t.AddDate(0, 1, 0)}, nil
}
