package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnparseableDate marks a task date that could not be read as a calendar date.
var ErrUnparseableDate = errors.New("unparseable date")

// dateLayouts are tried before the general parser. The form's date field
// writes the first one; the rest are common hand-edited forms.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"20060102",
}

// ParseDate parses a user-entered task date. Values without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrUnparseableDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	t, err := parseAny(text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrUnparseableDate, s, err)
	}
	return t, nil
}

// parseAny wraps dateparse, which has panicked on some malformed input.
func parseAny(text string) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("date parser failed: %v", r)
		}
	}()
	return dateparse.ParseIn(text, time.UTC)
}

// DayName returns the weekday name ("Monday", ...) for a task date.
func DayName(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}
