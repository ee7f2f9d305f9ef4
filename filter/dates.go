package filter

import (
	"strings"
	"time"
)

// dateLayouts covers the formats the portal emits across its APIs.
var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"20060102",
}

// ParseDate parses a portal date string. The second return is false when
// the string is empty or matches none of the known layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil returns the whole days from now until the given date.
// Negative when the date has passed.
func DaysUntil(date, now time.Time) int {
	date = date.Truncate(24 * time.Hour)
	now = now.Truncate(24 * time.Hour)
	return int(date.Sub(now).Hours() / 24)
}

// Status describes where a program sits in its application window.
type Status string

const (
	// StatusActive means applications are currently accepted.
	StatusActive Status = "active"
	// StatusClosingSoon means active with seven or fewer days left.
	StatusClosingSoon Status = "closing_soon"
	// StatusUpcoming means the application window has not opened yet.
	StatusUpcoming Status = "upcoming"
	// StatusClosed means the deadline has passed.
	StatusClosed Status = "closed"
	// StatusUnknown means the record carries no usable deadline.
	StatusUnknown Status = "unknown"
)

// closingSoonWindow is the deadline proximity that flips an active
// program to closing-soon.
const closingSoonWindow = 7

// StatusOf classifies a program's application window relative to now.
func StatusOf(startDate, endDate string, now time.Time) Status {
	end, haveEnd := ParseDate(endDate)
	if !haveEnd {
		return StatusUnknown
	}

	days := DaysUntil(end, now)
	if days < 0 {
		return StatusClosed
	}
	if days <= closingSoonWindow {
		return StatusClosingSoon
	}
	if start, ok := ParseDate(startDate); ok && DaysUntil(start, now) > 0 {
		return StatusUpcoming
	}
	return StatusActive
}
