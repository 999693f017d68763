package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml.
type Config struct {
	TickMS       int    `yaml:"tick_ms"`        // wall ms per simulated ms; 0 runs unpaced (batch mode)
	AgingEveryMS int64  `yaml:"aging_every_ms"` // ready residency that earns one aging credit
	AgingStep    int    `yaml:"aging_step"`     // priority levels gained per credit
	CSVPath      string `yaml:"csv"`            // mirror events to this CSV file when set
	Trace        bool   `yaml:"trace"`          // per-process OpenTelemetry spans
	LogLevel     string `yaml:"log_level"`      // slog level for diagnostics; "info" by default
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		TickMS:       1,
		AgingEveryMS: 100,
		AgingStep:    1,
		LogLevel:     "info",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps; tick_ms 0 is the documented batch mode, negatives are not
	if cfg.TickMS < 0 {
		cfg.TickMS = 0
	}
	if cfg.AgingEveryMS <= 0 {
		cfg.AgingEveryMS = 100
	}
	if cfg.AgingStep <= 0 {
		cfg.AgingStep = 1
	}

	return cfg
}
