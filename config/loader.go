package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. An
// explicit RAIL_PULSE_CONFIG path must exist; otherwise the usual
// locations are tried and an absent file leaves the defaults in place.
func LoadAppConfig() error {
	_ = godotenv.Load()
	if p := os.Getenv("RAIL_PULSE_CONFIG"); p != "" {
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		return loadAppConfig(data)
	}
	for _, p := range []string{"config.yml", "configs/config.yml"} {
		data, err := os.ReadFile(p)
		if err == nil {
			return loadAppConfig(data)
		}
	}
	Config = AppConfig{}
	applyDefaults(&Config)
	return nil
}

func loadAppConfig(data []byte) error {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "data/trains.json"
	}
	if cfg.Playback.FrameRateHz == 0 {
		cfg.Playback.FrameRateHz = 60
	}
	if cfg.Playback.StatsRateHz == 0 {
		cfg.Playback.StatsRateHz = 4
	}
	if cfg.Playback.Speed == 0 {
		cfg.Playback.Speed = 60
	}
	if cfg.Snapshot.CacheQuantumSeconds == 0 {
		cfg.Snapshot.CacheQuantumSeconds = 1
	}
	if cfg.Snapshot.ValidForMS == 0 {
		cfg.Snapshot.ValidForMS = 1000
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9090"
	}
}
