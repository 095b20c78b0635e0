package config

// DatasetConfig locates the dataset file and sets load behaviour
type DatasetConfig struct {
	Path          string `yaml:"path"`
	SkipMalformed bool   `yaml:"skipMalformed"`
}

// PlaybackConfig tunes the playback loop
type PlaybackConfig struct {
	FrameRateHz float64 `yaml:"frameRateHz" validate:"gte=0"`
	StatsRateHz float64 `yaml:"statsRateHz" validate:"gte=0"`
	Speed       float64 `yaml:"speed" validate:"gte=0"`
	Loop        bool    `yaml:"loop"`
	Operator    string  `yaml:"operator"`
}

// SnapshotConfig tunes feed snapshot rendering and caching
type SnapshotConfig struct {
	Codespace           string  `yaml:"codespace"`
	CacheQuantumSeconds float64 `yaml:"cacheQuantumSeconds" validate:"gte=0"`
	ValidForMS          int     `yaml:"validForMS" validate:"gte=0"`
}

// MetricsConfig controls the Prometheus listener
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Playback PlaybackConfig `yaml:"playback"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}
