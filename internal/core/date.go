package core

import (
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date form used everywhere a date is
// stored or compared.
const DateLayout = "2006-01-02"

// MonthLayout is the YYYY-MM prefix used for month bucketing.
const MonthLayout = "2006-01"

// NormalizeDate canonicalizes a calendar date string to YYYY-MM-DD.
// Empty input resolves to today's date in the local zone.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format(DateLayout), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}

// MonthOf returns the YYYY-MM prefix of a canonical date string.
func MonthOf(dateISO string) string {
	if len(dateISO) < len(MonthLayout) {
		return dateISO
	}
	return dateISO[:len(MonthLayout)]
}

// CurrentMonth formats the calendar month of the given instant as YYYY-MM.
func CurrentMonth(now time.Time) string {
	return now.Format(MonthLayout)
}

// InMonth reports whether a canonical date string falls inside the given
// YYYY-MM month.
func InMonth(dateISO, month string) bool {
	return month != "" && strings.HasPrefix(dateISO, month)
}
