package query

import (
	"github.com/theoremus-urban-solutions/rail-pulse/dataset"
)

// Position is an interpolated map coordinate in dataset order: longitude
// first, then latitude.
type Position struct {
	Lon float64
	Lat float64
}

// ActivePosition pairs an active train with its interpolated position and
// whole-journey progress at the query instant.
type ActivePosition struct {
	Train    *dataset.Train
	Position Position
	Progress float64
}

// Engine answers time queries against one dataset.
type Engine struct {
	ds *dataset.Dataset
}

// NewEngine wraps a loaded dataset.
func NewEngine(ds *dataset.Dataset) *Engine {
	return &Engine{ds: ds}
}

// Dataset returns the dataset the engine queries.
func (e *Engine) Dataset() *dataset.Dataset {
	return e.ds
}

// InterpolatePosition returns the train's position at the query instant.
// The second return is false when the instant falls outside the train's
// journey interval; that is an ordinary absence, not a failure.
func (e *Engine) InterpolatePosition(t *dataset.Train, at float64) (Position, bool) {
	if len(t.Path) == 0 {
		return Position{}, false
	}
	if at < t.StartTime || at > t.EndTime {
		return Position{}, false
	}
	if len(t.Path) == 1 {
		return Position{Lon: t.Path[0].Lon, Lat: t.Path[0].Lat}, true
	}

	lo, hi := bracket(t.Path, at)
	wlo, whi := t.Path[lo], t.Path[hi]

	// Equal timestamps mean a stationary segment: the position is pinned to
	// the segment's first waypoint.
	if wlo.Time == whi.Time {
		return Position{Lon: wlo.Lon, Lat: wlo.Lat}, true
	}
	// An instant landing exactly on a waypoint returns its coordinates
	// untouched by interpolation arithmetic.
	if at == wlo.Time {
		return Position{Lon: wlo.Lon, Lat: wlo.Lat}, true
	}
	if at == whi.Time {
		return Position{Lon: whi.Lon, Lat: whi.Lat}, true
	}

	f := (at - wlo.Time) / (whi.Time - wlo.Time)
	return Position{
		Lon: wlo.Lon + (whi.Lon-wlo.Lon)*f,
		Lat: wlo.Lat + (whi.Lat-wlo.Lat)*f,
	}, true
}

// bracket finds the adjacent waypoint pair enclosing at. The path must be
// time-sorted with at least two entries, and at must lie within the path's
// overall time span.
func bracket(path []dataset.Waypoint, at float64) (lo, hi int) {
	lo, hi = 0, len(path)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if path[mid].Time <= at {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, hi
}

// Progress returns the fraction of the train's journey elapsed at the query
// instant, clamped to [0, 1]. The end check runs first so a zero-duration
// journey reports 1 at its single instant.
func (e *Engine) Progress(t *dataset.Train, at float64) float64 {
	if at >= t.EndTime {
		return 1
	}
	if at <= t.StartTime {
		return 0
	}
	return (at - t.StartTime) / (t.EndTime - t.StartTime)
}

// StationaryAt reports whether the train is dwelling at the query instant:
// the enclosing segment covers zero distance or zero duration, so the
// position is pinned to a single point.
func (e *Engine) StationaryAt(t *dataset.Train, at float64) bool {
	if len(t.Path) == 0 || at < t.StartTime || at > t.EndTime {
		return false
	}
	if len(t.Path) == 1 {
		return true
	}
	lo, hi := bracket(t.Path, at)
	wlo, whi := t.Path[lo], t.Path[hi]
	return wlo.Time == whi.Time || (wlo.Lon == whi.Lon && wlo.Lat == whi.Lat)
}

// CountActive returns how many trains' journey intervals contain the query
// instant. Bounds are inclusive at both ends.
func (e *Engine) CountActive(at float64) int {
	n := 0
	for i := range e.ds.Trains {
		if e.ds.Trains[i].ActiveAt(at) {
			n++
		}
	}
	return n
}

// ActivePositions returns every train active at the query instant together
// with its interpolated position, in dataset order (ascending start time).
// A non-empty operator restricts the result to that operator's trains; a
// code matching nothing yields an empty result rather than an error.
func (e *Engine) ActivePositions(at float64, operator string) []ActivePosition {
	out := make([]ActivePosition, 0)
	for i := range e.ds.Trains {
		tr := &e.ds.Trains[i]
		if operator != "" && tr.Operator != operator {
			continue
		}
		if !tr.ActiveAt(at) {
			continue
		}
		pos, ok := e.InterpolatePosition(tr, at)
		if !ok {
			continue
		}
		out = append(out, ActivePosition{Train: tr, Position: pos, Progress: e.Progress(tr, at)})
	}
	return out
}
