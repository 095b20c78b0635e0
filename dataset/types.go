package dataset

import (
	"encoding/json"
	"fmt"
)

// Waypoint is one (position, time) sample on a train's path. Time is seconds
// since the dataset's reference midnight; services running past midnight
// carry times beyond 86400.
type Waypoint struct {
	Lon  float64
	Lat  float64
	Time float64
}

// MarshalJSON writes the wire form [lng, lat, timeSeconds].
func (w Waypoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{w.Lon, w.Lat, w.Time})
}

// UnmarshalJSON reads the wire form [lng, lat, timeSeconds].
func (w *Waypoint) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("waypoint must be a [lng, lat, seconds] array: %w", err)
	}
	if len(arr) != 3 {
		return fmt.Errorf("waypoint must have 3 elements, got %d", len(arr))
	}
	w.Lon, w.Lat, w.Time = arr[0], arr[1], arr[2]
	return nil
}

// Train is a single service: identity, operator code, origin and destination
// labels, and a time-ordered path. StartTime and EndTime are derived from
// the path during Load and are not part of the wire format.
type Train struct {
	ID       string     `json:"id"`
	Operator string     `json:"op"`
	From     string     `json:"from"`
	To       string     `json:"to"`
	Path     []Waypoint `json:"path"`

	StartTime float64 `json:"-"`
	EndTime   float64 `json:"-"`
}

// ActiveAt reports whether at falls inside the train's journey interval,
// inclusive on both ends.
func (t *Train) ActiveAt(at float64) bool {
	return at >= t.StartTime && at <= t.EndTime
}

// Duration returns the journey length in seconds.
func (t *Train) Duration() float64 {
	return t.EndTime - t.StartTime
}

// Operator is display metadata for a TOC code. Color stays an opaque
// "#RRGGBB" string; decoding it into channels is the renderer's concern.
type Operator struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Meta carries free-form dataset provenance (date, totals, source).
type Meta map[string]any

// Dataset is the loaded, normalized collection: trains in ascending
// StartTime order plus the operator table and metadata. Read-only after
// Load.
type Dataset struct {
	Meta      Meta                `json:"meta"`
	Operators map[string]Operator `json:"operators"`
	Trains    []Train             `json:"trains"`

	byID    map[string]*Train
	minTime float64
	maxTime float64
	skipped []string
}
