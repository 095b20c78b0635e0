package feed

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/rail-pulse/internal/metrics"
	"github.com/theoremus-urban-solutions/rail-pulse/query"
)

// SnapshotCache memoizes rendered snapshot bytes. Instants are quantized
// so a frame loop asking many times within one quantum gets the same
// bytes back instead of a rebuild.
type SnapshotCache struct {
	mu      sync.Mutex
	quantum float64
	entries map[string][]byte
	metrics *metrics.Collector
}

// NewSnapshotCache builds a cache with the given quantum in dataset
// seconds; non-positive quanta fall back to one second.
func NewSnapshotCache(quantum float64, m *metrics.Collector) *SnapshotCache {
	if quantum <= 0 {
		quantum = 1
	}
	return &SnapshotCache{quantum: quantum, entries: map[string][]byte{}, metrics: m}
}

func (sc *SnapshotCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

// Get returns the cached bytes for (kind, format, operator) at the
// quantized instant, invoking build on a miss and storing its result.
func (sc *SnapshotCache) Get(kind, format string, at float64, operator string, build func() ([]byte, error)) ([]byte, error) {
	q := math.Floor(at/sc.quantum) * sc.quantum
	key := sc.memoKey(kind, format, strconv.FormatFloat(q, 'f', -1, 64), operator)

	sc.mu.Lock()
	buf, ok := sc.entries[key]
	sc.mu.Unlock()
	if ok {
		sc.record("hit")
		return buf, nil
	}
	sc.record("miss")

	buf, err := build()
	if err != nil {
		return nil, err
	}
	sc.mu.Lock()
	sc.entries[key] = buf
	sc.mu.Unlock()
	return buf, nil
}

func (sc *SnapshotCache) record(result string) {
	if sc.metrics != nil {
		sc.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}

// Len returns how many snapshots are cached.
func (sc *SnapshotCache) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.entries)
}

// Reset drops every cached snapshot, e.g. after a seek far away from the
// cached instants.
func (sc *SnapshotCache) Reset() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.entries = map[string][]byte{}
}

// Cache bundles both builders behind the snapshot cache. Callers ask for
// bytes in a format and the cache decides whether to rebuild.
type Cache struct {
	gtfsrt  *GTFSRT
	siri    *SIRIVM
	snaps   *SnapshotCache
	metrics *metrics.Collector
}

// NewCache wires the builders and the snapshot cache over one engine.
func NewCache(engine *query.Engine, opts Options, quantum float64, m *metrics.Collector) *Cache {
	return &Cache{
		gtfsrt:  NewGTFSRT(engine, opts),
		siri:    NewSIRIVM(engine, opts),
		snaps:   NewSnapshotCache(quantum, m),
		metrics: m,
	}
}

// GetVehiclePositions returns a GTFS-RT VehiclePositions snapshot in the
// requested format: "pb" for binary protobuf, "json" (or empty) for the
// protobuf JSON mapping.
func (c *Cache) GetVehiclePositions(format string, at float64, operator string) ([]byte, error) {
	switch format {
	case "pb", "json", "":
	default:
		return nil, fmt.Errorf("unknown vehicle positions format %q", format)
	}
	return c.snaps.Get("vp", format, at, operator, func() ([]byte, error) {
		started := time.Now()
		var buf []byte
		var err error
		if format == "pb" {
			buf, err = c.gtfsrt.Marshal(at, operator)
		} else {
			buf, err = c.gtfsrt.MarshalJSON(at, operator)
		}
		if err != nil {
			return nil, err
		}
		c.observe("gtfsrt-"+formatLabel(format), started)
		return buf, nil
	})
}

// GetVehicleMonitoring returns a SIRI-VM delivery as JSON.
func (c *Cache) GetVehicleMonitoring(at float64, operator string) ([]byte, error) {
	return c.snaps.Get("vm", "json", at, operator, func() ([]byte, error) {
		started := time.Now()
		buf, err := c.siri.Marshal(at, operator)
		if err != nil {
			return nil, err
		}
		c.observe("siri-vm", started)
		return buf, nil
	})
}

// Reset drops all cached snapshots.
func (c *Cache) Reset() {
	c.snaps.Reset()
}

func (c *Cache) observe(format string, started time.Time) {
	if c.metrics != nil {
		c.metrics.SnapshotsTotal.WithLabelValues(format).Inc()
		c.metrics.SnapshotDuration.Observe(time.Since(started).Seconds())
	}
}

func formatLabel(format string) string {
	if format == "" {
		return "json"
	}
	return format
}
