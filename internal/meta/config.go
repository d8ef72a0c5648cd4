package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ApplicationConfig is a top-level block for application-level meta configuration.
type ApplicationConfig struct {
	SentryDSN string `yaml:"sentry_dsn"`
}

// MetricsConfig is a top-level block for metrics configuration.
type MetricsConfig struct {
	Statsd *struct {
		Address    string  `yaml:"addr"`
		SampleRate float64 `yaml:"sample_rate"`
	} `yaml:"statsd"`
}

// ReportingConfig is a top-level block for timing report configuration.
type ReportingConfig struct {
	Tag string `yaml:"tag"`
}

// Config describes all companion binary configuration options.
type Config struct {
	Application *ApplicationConfig `yaml:"application"`
	Metrics     *MetricsConfig     `yaml:"metrics"`
	Reporting   *ReportingConfig   `yaml:"reporting"`
}

// ParseConfig parses a Config struct instance from a file specified as a path on disk.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: error reading config: err=%v", err)
	}

	var cfg *Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: error parsing config: err=%v", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate the contents of the configuration. Returns an error if validation failed; nil otherwise.
func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config: empty configuration")
	}

	/* Metrics */

	// Users can omit the metrics block entirely to disable metrics reporting.
	if c.Metrics != nil && c.Metrics.Statsd != nil {
		if c.Metrics.Statsd.Address == "" {
			return fmt.Errorf("config: missing metrics statsd address")
		}

		if c.Metrics.Statsd.SampleRate < 0 || c.Metrics.Statsd.SampleRate > 1 {
			return fmt.Errorf("config: statsd sample rate must be in range [0.0, 1.0]")
		}
	}

	return nil
}
