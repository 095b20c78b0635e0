package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
dataset:
  path: /var/lib/rail-pulse/day.json
  skipMalformed: true
playback:
  speed: 120
  loop: true
  operator: GW
snapshot:
  codespace: NR
  cacheQuantumSeconds: 0.5
metrics:
  enabled: true
  addr: ":9100"
`)
	t.Setenv("RAIL_PULSE_CONFIG", path)
	if err := LoadAppConfig(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if Config.Dataset.Path != "/var/lib/rail-pulse/day.json" {
		t.Errorf("expected dataset path from file, got %q", Config.Dataset.Path)
	}
	if !Config.Dataset.SkipMalformed {
		t.Error("expected skipMalformed true")
	}
	if Config.Playback.Speed != 120 {
		t.Errorf("expected speed 120, got %v", Config.Playback.Speed)
	}
	if !Config.Playback.Loop || Config.Playback.Operator != "GW" {
		t.Errorf("expected loop+operator from file, got %+v", Config.Playback)
	}
	if Config.Snapshot.Codespace != "NR" || Config.Snapshot.CacheQuantumSeconds != 0.5 {
		t.Errorf("unexpected snapshot config %+v", Config.Snapshot)
	}
	if !Config.Metrics.Enabled || Config.Metrics.Addr != ":9100" {
		t.Errorf("unexpected metrics config %+v", Config.Metrics)
	}
	// Unset sections still get defaults.
	if Config.Playback.FrameRateHz != 60 || Config.Playback.StatsRateHz != 4 {
		t.Errorf("expected default rates, got %+v", Config.Playback)
	}
	if Config.Snapshot.ValidForMS != 1000 {
		t.Errorf("expected default validity, got %d", Config.Snapshot.ValidForMS)
	}
}

func TestLoadAppConfigDefaults(t *testing.T) {
	t.Setenv("RAIL_PULSE_CONFIG", "")
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
	if err := LoadAppConfig(); err != nil {
		t.Fatalf("load without file: %v", err)
	}
	if Config.Dataset.Path != "data/trains.json" {
		t.Errorf("expected default dataset path, got %q", Config.Dataset.Path)
	}
	if Config.Playback.FrameRateHz != 60 || Config.Playback.StatsRateHz != 4 || Config.Playback.Speed != 60 {
		t.Errorf("unexpected playback defaults %+v", Config.Playback)
	}
	if Config.Snapshot.CacheQuantumSeconds != 1 {
		t.Errorf("expected quantum 1, got %v", Config.Snapshot.CacheQuantumSeconds)
	}
	if Config.Metrics.Addr != ":9090" {
		t.Errorf("expected default metrics addr, got %q", Config.Metrics.Addr)
	}
	if Config.Metrics.Enabled {
		t.Error("metrics should default to disabled")
	}
}

func TestLoadAppConfigExplicitPathMissing(t *testing.T) {
	t.Setenv("RAIL_PULSE_CONFIG", filepath.Join(t.TempDir(), "absent.yml"))
	if err := LoadAppConfig(); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadAppConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative speed", "playback:\n  speed: -5\n"},
		{"negative quantum", "snapshot:\n  cacheQuantumSeconds: -1\n"},
		{"malformed yaml", "dataset: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RAIL_PULSE_CONFIG", writeConfig(t, tt.content))
			if err := LoadAppConfig(); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}
