// Package metrics owns the Prometheus registry and every instrument the
// playback loop and snapshot builders record into.
package metrics

import (
	"errors"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the instruments behind one private registry so a test
// can build as many collectors as it likes without default-registry
// collisions.
type Collector struct {
	reg *prometheus.Registry

	DatasetTrains prometheus.Gauge
	ActiveTrains  prometheus.Gauge
	ClockSeconds  prometheus.Gauge
	PlaybackSpeed prometheus.Gauge

	FramesTotal     prometheus.Counter
	StatsTicksTotal prometheus.Counter
	SnapshotsTotal  *prometheus.CounterVec
	CacheLookups    *prometheus.CounterVec

	FrameDuration    prometheus.Histogram
	SnapshotDuration prometheus.Histogram
}

// NewCollector builds and registers every instrument.
func NewCollector() *Collector {
	c := &Collector{reg: prometheus.NewRegistry()}

	c.DatasetTrains = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "railpulse_dataset_trains",
		Help: "Trains in the loaded dataset.",
	})
	c.ActiveTrains = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "railpulse_active_trains",
		Help: "Trains active at the current playback instant.",
	})
	c.ClockSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "railpulse_clock_seconds",
		Help: "Playback clock position in seconds from the service-day origin.",
	})
	c.PlaybackSpeed = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "railpulse_playback_speed",
		Help: "Playback speed multiplier relative to wall time.",
	})

	c.FramesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "railpulse_frames_total",
		Help: "Position frames computed by the playback loop.",
	})
	c.StatsTicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "railpulse_stats_ticks_total",
		Help: "Statistics ticks emitted by the playback loop.",
	})
	c.SnapshotsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "railpulse_snapshots_total",
		Help: "Feed snapshots built, by output format.",
	}, []string{"format"})
	c.CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "railpulse_snapshot_cache_lookups_total",
		Help: "Snapshot cache lookups, by result.",
	}, []string{"result"})

	c.FrameDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "railpulse_frame_duration_seconds",
		Help:    "Wall time spent computing one position frame.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15),
	})
	c.SnapshotDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "railpulse_snapshot_duration_seconds",
		Help:    "Wall time spent building one feed snapshot.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 15),
	})

	c.reg.MustRegister(
		c.DatasetTrains, c.ActiveTrains, c.ClockSeconds, c.PlaybackSpeed,
		c.FramesTotal, c.StatsTicksTotal, c.SnapshotsTotal, c.CacheLookups,
		c.FrameDuration, c.SnapshotDuration,
	)
	return c
}

// Handler exposes the collector's registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing /metrics on addr and returns it so
// the caller can shut it down.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[metrics] server error: %v", err)
		}
	}()
	return srv
}
