package feed

import (
	"time"

	"github.com/theoremus-urban-solutions/rail-pulse/dataset"
)

// DefaultCodespace prefixes every SIRI reference when no codespace is
// configured.
const DefaultCodespace = "RAILPULSE"

// Options configure the snapshot builders.
type Options struct {
	// Codespace prefixes LineRef, VehicleRef and journey refs.
	Codespace string
	// DataFrame is the YYYY-MM-DD service date stamped into
	// FramedVehicleJourneyRef. Defaults to the dataset meta date.
	DataFrame string
	// Anchor is the wall instant of dataset second zero. Defaults to
	// midnight UTC of the dataset meta date, falling back to the Unix
	// epoch so snapshots stay deterministic without a date.
	Anchor time.Time
	// ValidFor bounds how long a snapshot claims validity.
	ValidFor time.Duration
}

// fill resolves defaults against the dataset being served.
func (o *Options) fill(ds *dataset.Dataset) {
	if o.Codespace == "" {
		o.Codespace = DefaultCodespace
	}
	var metaDate string
	if ds != nil {
		if d, ok := ds.Meta["date"].(string); ok {
			metaDate = d
		}
	}
	if o.DataFrame == "" {
		o.DataFrame = metaDate
	}
	if o.Anchor.IsZero() {
		if day, err := time.Parse("2006-01-02", metaDate); err == nil {
			o.Anchor = day
		} else {
			o.Anchor = time.Unix(0, 0).UTC()
		}
	}
	if o.ValidFor <= 0 {
		o.ValidFor = time.Second
	}
}

// wallTime maps a dataset second onto the anchored wall clock.
func (o *Options) wallTime(at float64) time.Time {
	return o.Anchor.Add(time.Duration(at * float64(time.Second)))
}
