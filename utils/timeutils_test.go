package utils

import (
	"testing"
	"time"
)

func TestIso8601FromUnixSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "epoch",
			input:    0,
			expected: "1970-01-01T00:00:00Z",
		},
		{
			name:     "specific timestamp",
			input:    1696320000, // 2023-10-03 08:00:00 UTC
			expected: "2023-10-03T08:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Iso8601FromUnixSeconds(tt.input)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestIso8601FromTime(t *testing.T) {
	in := time.Date(2025, 11, 18, 7, 30, 0, 0, time.UTC)
	result := Iso8601FromTime(in)
	if result != "2025-11-18T07:30:00Z" {
		t.Errorf("expected 2025-11-18T07:30:00Z, got %s", result)
	}
}

func TestClockTime(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "midnight",
			input:    0,
			expected: "00:00:00",
		},
		{
			name:     "morning",
			input:    7*3600 + 32*60 + 5,
			expected: "07:32:05",
		},
		{
			name:     "last second of day",
			input:    86399,
			expected: "23:59:59",
		},
		{
			name:     "rolling day wraps",
			input:    25.5 * 3600, // 01:30 next day
			expected: "01:30:00",
		},
		{
			name:     "exactly one day",
			input:    86400,
			expected: "00:00:00",
		},
		{
			name:     "fractional seconds truncate",
			input:    61.9,
			expected: "00:01:01",
		},
		{
			name:     "negative clamps to zero",
			input:    -5,
			expected: "00:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClockTime(tt.input)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  float64
		wantError bool
	}{
		{
			name:     "hours and minutes",
			input:    "07:30",
			expected: 27000,
		},
		{
			name:     "full clock face",
			input:    "07:30:15",
			expected: 27015,
		},
		{
			name:     "rolling day hour",
			input:    "25:30:00",
			expected: 91800,
		},
		{
			name:     "plain seconds",
			input:    "18000",
			expected: 18000,
		},
		{
			name:     "fractional seconds",
			input:    "18000.5",
			expected: 18000.5,
		},
		{
			name:     "surrounding whitespace",
			input:    "  06:00:00 ",
			expected: 21600,
		},
		{
			name:      "empty",
			input:     "",
			wantError: true,
		},
		{
			name:      "minute out of range",
			input:     "07:61",
			wantError: true,
		},
		{
			name:      "second out of range",
			input:     "07:00:60",
			wantError: true,
		},
		{
			name:      "not a number",
			input:     "half past seven",
			wantError: true,
		},
		{
			name:      "too many fields",
			input:     "1:2:3:4",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseClockTime(tt.input)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got %v", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestClockTimeRoundTrip(t *testing.T) {
	for _, sec := range []float64{0, 60, 3600, 27015, 86399} {
		parsed, err := ParseClockTime(ClockTime(sec))
		if err != nil {
			t.Fatalf("round trip failed for %v: %v", sec, err)
		}
		if parsed != sec {
			t.Errorf("round trip for %v: expected %v, got %v", sec, sec, parsed)
		}
	}
}
