package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/rail-pulse/internal/metrics"
)

func TestSnapshotCacheQuantizesInstants(t *testing.T) {
	sc := NewSnapshotCache(1, nil)
	builds := 0
	build := func() ([]byte, error) {
		builds++
		return []byte("snapshot"), nil
	}

	for _, at := range []float64{10.2, 10.9, 10.0} {
		if _, err := sc.Get("vp", "json", at, "", build); err != nil {
			t.Fatalf("get at %v: %v", at, err)
		}
	}
	if builds != 1 {
		t.Errorf("expected one build for one quantum, got %d", builds)
	}

	if _, err := sc.Get("vp", "json", 11.0, "", build); err != nil {
		t.Fatalf("get: %v", err)
	}
	if builds != 2 {
		t.Errorf("expected a rebuild in the next quantum, got %d builds", builds)
	}
	if sc.Len() != 2 {
		t.Errorf("expected 2 cached snapshots, got %d", sc.Len())
	}
}

func TestSnapshotCacheSeparatesKeys(t *testing.T) {
	sc := NewSnapshotCache(1, nil)
	builds := 0
	build := func() ([]byte, error) {
		builds++
		return []byte("x"), nil
	}

	keys := []struct{ kind, format, operator string }{
		{"vp", "pb", ""},
		{"vp", "json", ""},
		{"vm", "json", ""},
		{"vp", "pb", "GW"},
	}
	for _, k := range keys {
		if _, err := sc.Get(k.kind, k.format, 100, k.operator, build); err != nil {
			t.Fatalf("get %v: %v", k, err)
		}
	}
	if builds != len(keys) {
		t.Errorf("expected %d distinct builds, got %d", len(keys), builds)
	}
}

func TestSnapshotCacheReset(t *testing.T) {
	sc := NewSnapshotCache(1, nil)
	builds := 0
	build := func() ([]byte, error) {
		builds++
		return []byte("x"), nil
	}

	sc.Get("vp", "json", 5, "", build)
	sc.Reset()
	if sc.Len() != 0 {
		t.Errorf("expected an empty cache after reset, got %d entries", sc.Len())
	}
	sc.Get("vp", "json", 5, "", build)
	if builds != 2 {
		t.Errorf("expected a rebuild after reset, got %d builds", builds)
	}
}

func TestSnapshotCacheBuildErrorNotCached(t *testing.T) {
	sc := NewSnapshotCache(1, nil)
	boom := errors.New("boom")
	calls := 0

	_, err := sc.Get("vp", "json", 5, "", func() ([]byte, error) {
		calls++
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the build error, got %v", err)
	}

	buf, err := sc.Get("vp", "json", 5, "", func() ([]byte, error) {
		calls++
		return []byte("ok"), nil
	})
	if err != nil || string(buf) != "ok" {
		t.Fatalf("expected a successful rebuild, got %q, %v", buf, err)
	}
	if calls != 2 {
		t.Errorf("expected 2 build calls, got %d", calls)
	}
}

func TestSnapshotCacheMetrics(t *testing.T) {
	col := metrics.NewCollector()
	sc := NewSnapshotCache(1, col)
	build := func() ([]byte, error) { return []byte("x"), nil }

	sc.Get("vp", "json", 5, "", build)
	sc.Get("vp", "json", 5, "", build)
	sc.Get("vp", "json", 7, "", build)

	if got := testutil.ToFloat64(col.CacheLookups.WithLabelValues("miss")); got != 2 {
		t.Errorf("expected 2 misses, got %v", got)
	}
	if got := testutil.ToFloat64(col.CacheLookups.WithLabelValues("hit")); got != 1 {
		t.Errorf("expected 1 hit, got %v", got)
	}
}

func TestCacheVehiclePositions(t *testing.T) {
	c := NewCache(feedEngine(t), Options{}, 1, nil)

	buf, err := c.GetVehiclePositions("pb", 29000, "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(buf, &fm); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(fm.Entity) != 2 {
		t.Errorf("expected 2 entities, got %d", len(fm.Entity))
	}

	again, err := c.GetVehiclePositions("pb", 29000.4, "")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if !bytes.Equal(buf, again) {
		t.Error("expected identical bytes from the same quantum")
	}

	if _, err := c.GetVehiclePositions("xml", 29000, ""); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestCacheVehicleMonitoring(t *testing.T) {
	col := metrics.NewCollector()
	c := NewCache(feedEngine(t), Options{}, 1, col)

	buf, err := c.GetVehicleMonitoring(29000, "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var res SiriResponse
	if err := json.Unmarshal(buf, &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(res.Siri.ServiceDelivery.VehicleMonitoringDelivery) != 1 {
		t.Fatal("expected one delivery")
	}
	if got := testutil.ToFloat64(col.SnapshotsTotal.WithLabelValues("siri-vm")); got != 1 {
		t.Errorf("expected 1 snapshot counted, got %v", got)
	}

	c.GetVehicleMonitoring(29000.9, "")
	if got := testutil.ToFloat64(col.SnapshotsTotal.WithLabelValues("siri-vm")); got != 1 {
		t.Errorf("expected the cached call not to count a snapshot, got %v", got)
	}
}
