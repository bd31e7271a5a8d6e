// Package dateparse parses relative and absolute date strings into UTC
// midnight times.
package dateparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a date input string using the current time as the
// reference point.
//
// Supported formats:
//   - Exact dates: "2026-03-01"
//   - Relative days: "+7d"
//   - Relative weeks: "+2w"
//   - Day names: "monday", "tuesday", etc. (next occurrence)
//   - Keywords: "today", "tomorrow"
func ParseDate(input string) (time.Time, error) {
	return ParseDateFrom(input, time.Now())
}

// ParseDateFrom parses a date input string relative to the given reference
// time. This variant enables deterministic testing with a fixed "now".
func ParseDateFrom(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}

	// Exact date: YYYY-MM-DD
	if t, err := time.Parse("2006-01-02", input); err == nil {
		return t, nil
	}

	// Keywords
	switch input {
	case "today":
		return midnight(now), nil
	case "tomorrow":
		return midnight(now.AddDate(0, 0, 1)), nil
	}

	// Relative offsets: +Nd, +Nw
	if strings.HasPrefix(input, "+") && len(input) >= 3 {
		suffix := input[len(input)-1]
		numStr := input[1 : len(input)-1]
		n, err := strconv.Atoi(numStr)
		if err == nil && n >= 0 {
			switch suffix {
			case 'd':
				return midnight(now.AddDate(0, 0, n)), nil
			case 'w':
				return midnight(now.AddDate(0, 0, n*7)), nil
			default:
				return time.Time{}, fmt.Errorf("unknown relative unit %q in %q (use d or w)", string(suffix), input)
			}
		}
	}

	// Day names: next occurrence of that weekday
	dayMap := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	if target, ok := dayMap[input]; ok {
		daysAhead := (int(target) - int(now.Weekday()) + 7) % 7
		if daysAhead == 0 {
			daysAhead = 7 // always advance to next occurrence
		}
		return midnight(now.AddDate(0, 0, daysAhead)), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", input)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
