package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/theoremus-urban-solutions/rail-pulse/dataset"
	"github.com/theoremus-urban-solutions/rail-pulse/internal/metrics"
	"github.com/theoremus-urban-solutions/rail-pulse/query"
	"github.com/theoremus-urban-solutions/rail-pulse/utils"
)

func testEngine(t *testing.T) *query.Engine {
	t.Helper()
	trains := []dataset.Train{
		{ID: "GW1", Operator: "GW", Path: []dataset.Waypoint{
			{Lon: 0, Lat: 0, Time: 0}, {Lon: 10, Lat: 10, Time: 1000},
		}},
		{ID: "SR1", Operator: "SR", Path: []dataset.Waypoint{
			{Lon: 5, Lat: 5, Time: 200}, {Lon: 6, Lat: 6, Time: 800},
		}},
		{ID: "GW2", Operator: "GW", Path: []dataset.Waypoint{
			{Lon: 1, Lat: 1, Time: 2000}, {Lon: 2, Lat: 2, Time: 3000},
		}},
	}
	ds, err := dataset.New(dataset.Meta{}, nil, trains, dataset.LoadOptions{})
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return query.NewEngine(ds)
}

func TestPlayerFrameDispatch(t *testing.T) {
	t0 := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	eng := testEngine(t)
	clock := NewClock(eng.Dataset().TimeBounds())
	clock.seekAt(500, t0)

	var gotAt float64
	var gotIDs []string
	p := NewPlayer(eng, clock, Options{
		OnFrame: func(at float64, positions []query.ActivePosition) {
			gotAt = at
			gotIDs = gotIDs[:0]
			for _, ap := range positions {
				gotIDs = append(gotIDs, ap.Train.ID)
			}
		},
	})

	p.frame(t0)
	if gotAt != 500 {
		t.Errorf("expected frame at t=500, got %v", gotAt)
	}
	if len(gotIDs) != 2 || gotIDs[0] != "GW1" || gotIDs[1] != "SR1" {
		t.Errorf("expected [GW1 SR1], got %v", gotIDs)
	}

	// The clock has not been touched, so a later wall instant advances it.
	p.frame(t0.Add(1500 * time.Second))
	if gotAt != 2000 {
		t.Errorf("expected frame at t=2000, got %v", gotAt)
	}
	if len(gotIDs) != 1 || gotIDs[0] != "GW2" {
		t.Errorf("expected [GW2], got %v", gotIDs)
	}
}

func TestPlayerFrameOperatorFilter(t *testing.T) {
	t0 := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	eng := testEngine(t)
	clock := NewClock(eng.Dataset().TimeBounds())
	clock.seekAt(500, t0)

	var gotIDs []string
	p := NewPlayer(eng, clock, Options{
		Operator: "SR",
		OnFrame: func(at float64, positions []query.ActivePosition) {
			for _, ap := range positions {
				gotIDs = append(gotIDs, ap.Train.ID)
			}
		},
	})

	p.frame(t0)
	if len(gotIDs) != 1 || gotIDs[0] != "SR1" {
		t.Errorf("expected [SR1], got %v", gotIDs)
	}
}

func TestPlayerStats(t *testing.T) {
	t0 := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	eng := testEngine(t)
	clock := NewClock(eng.Dataset().TimeBounds())
	clock.seekAt(500, t0)
	clock.SetSpeed(1)

	var got Stats
	p := NewPlayer(eng, clock, Options{
		OnStats: func(s Stats) { got = s },
	})

	p.stats(t0)
	if got.At != 500 {
		t.Errorf("expected stats at t=500, got %v", got.At)
	}
	if got.Clock != utils.ClockTime(500) {
		t.Errorf("expected clock %q, got %q", utils.ClockTime(500), got.Clock)
	}
	if got.Active != 2 {
		t.Errorf("expected 2 active, got %d", got.Active)
	}
	if got.Total != 3 {
		t.Errorf("expected 3 total, got %d", got.Total)
	}
	if got.Speed != 1 {
		t.Errorf("expected speed 1, got %v", got.Speed)
	}
}

func TestPlayerMetrics(t *testing.T) {
	t0 := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	eng := testEngine(t)
	clock := NewClock(eng.Dataset().TimeBounds())
	clock.seekAt(500, t0)

	col := metrics.NewCollector()
	p := NewPlayer(eng, clock, Options{Metrics: col})

	p.frame(t0)
	p.frame(t0)
	p.stats(t0)

	if got := testutil.ToFloat64(col.FramesTotal); got != 2 {
		t.Errorf("expected 2 frames counted, got %v", got)
	}
	if got := testutil.ToFloat64(col.ActiveTrains); got != 2 {
		t.Errorf("expected active gauge 2, got %v", got)
	}
	if got := testutil.ToFloat64(col.ClockSeconds); got != 500 {
		t.Errorf("expected clock gauge 500, got %v", got)
	}
	if got := testutil.ToFloat64(col.StatsTicksTotal); got != 1 {
		t.Errorf("expected 1 stats tick, got %v", got)
	}
}

func TestPlayerNilCallbacks(t *testing.T) {
	t0 := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	eng := testEngine(t)
	clock := NewClock(eng.Dataset().TimeBounds())

	p := NewPlayer(eng, clock, Options{})
	p.frame(t0)
	p.stats(t0)
}

func TestPlayerRunStopsOnCancel(t *testing.T) {
	eng := testEngine(t)
	clock := NewClock(eng.Dataset().TimeBounds())
	p := NewPlayer(eng, clock, Options{FrameRate: 200, StatsRate: 50})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("player did not stop after cancel")
	}
}
