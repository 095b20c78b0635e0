// Package utils provides internal utility functions for rail-pulse.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Clock-face formatting and parsing for rolling-day dataset seconds
//   - ISO8601 timestamp helpers for snapshot envelopes
//   - Great-circle distance calculation
package utils
