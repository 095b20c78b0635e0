package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
)

// LoadOptions controls how Load treats records that fail structural checks.
type LoadOptions struct {
	// SkipMalformed drops malformed train records instead of aborting the
	// load. Dropped ids are reported through Dataset.Skipped and logged.
	SkipMalformed bool
}

// Decode reads the wire format without normalizing. Most callers want Load.
func Decode(r io.Reader) (*Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &d, nil
}

// Load decodes and normalizes a dataset. Loading the same input twice yields
// datasets with identical query results; a reload replaces the previous
// dataset wholesale, never merges into it.
func Load(r io.Reader, opts LoadOptions) (*Dataset, error) {
	d, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if err := d.normalize(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// New normalizes an in-memory collection. Producers that assemble datasets
// programmatically use this instead of Load.
func New(meta Meta, operators map[string]Operator, trains []Train, opts LoadOptions) (*Dataset, error) {
	d := &Dataset{Meta: meta, Operators: operators, Trains: trains}
	if err := d.normalize(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile opens path and loads it.
func LoadFile(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Load(f, opts)
}

// Encode writes the compact wire format consumed by Load.
func Encode(w io.Writer, d *Dataset) error {
	return json.NewEncoder(w).Encode(d)
}

// EncodeIndent writes an indented copy for inspection.
func EncodeIndent(w io.Writer, d *Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func (d *Dataset) normalize(opts LoadOptions) error {
	if d.Operators == nil {
		d.Operators = map[string]Operator{}
	}
	if d.Meta == nil {
		d.Meta = Meta{}
	}

	kept := make([]Train, 0, len(d.Trains))
	for i := range d.Trains {
		tr := d.Trains[i]
		if len(tr.Path) == 0 {
			malformed := &MalformedEntityError{Index: i, TrainID: tr.ID, Reason: "empty path"}
			if !opts.SkipMalformed {
				return malformed
			}
			d.skipped = append(d.skipped, tr.ID)
			log.Printf("[dataset] skipping %v", malformed)
			continue
		}
		if !sort.SliceIsSorted(tr.Path, func(a, b int) bool { return tr.Path[a].Time < tr.Path[b].Time }) {
			sort.SliceStable(tr.Path, func(a, b int) bool { return tr.Path[a].Time < tr.Path[b].Time })
		}
		tr.StartTime = tr.Path[0].Time
		tr.EndTime = tr.Path[len(tr.Path)-1].Time
		kept = append(kept, tr)
	}
	d.Trains = kept

	// Equal start times keep their input order.
	sort.SliceStable(d.Trains, func(a, b int) bool {
		return d.Trains[a].StartTime < d.Trains[b].StartTime
	})

	d.byID = make(map[string]*Train, len(d.Trains))
	for i := range d.Trains {
		d.byID[d.Trains[i].ID] = &d.Trains[i]
	}

	d.minTime, d.maxTime = 0, 0
	if len(d.Trains) > 0 {
		d.minTime = d.Trains[0].StartTime
		d.maxTime = d.Trains[0].EndTime
		for i := range d.Trains {
			if d.Trains[i].EndTime > d.maxTime {
				d.maxTime = d.Trains[i].EndTime
			}
		}
	}
	return nil
}
