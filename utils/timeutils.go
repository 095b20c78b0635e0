package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601FromTime converts a time.Time to ISO8601 format
func Iso8601FromTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Iso8601FromUnixSeconds converts Unix timestamp to ISO8601 format
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// ClockTime formats dataset seconds as a wall-clock face HH:MM:SS.
// Values past 86400 belong to the rolling day and wrap onto the next
// clock face (90000 -> "01:00:00"); negative values are clamped to zero.
func ClockTime(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	s := int64(sec)
	h := s / 3600 % 24
	m := s / 60 % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s%60)
}

// ParseClockTime parses "HH:MM:SS", "HH:MM" or a plain number of seconds
// into dataset seconds. Hours beyond 23 are accepted so rolling-day
// instants ("25:30:00") can be addressed directly.
func ParseClockTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time value")
	}
	if !strings.Contains(s, ":") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid time value %q: %w", s, err)
		}
		return v, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	sec := 0
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("invalid second in %q", s)
		}
	}
	return float64(h*3600 + m*60 + sec), nil
}
