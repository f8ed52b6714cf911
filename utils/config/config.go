package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

const FileName = "config.yaml"

type HTTP struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED"`
	Addr    string `yaml:"addr" env:"ADDR"`
}

// ListenAddr returns the address to serve the API on, and false when the API is
// disabled.
func (h HTTP) ListenAddr() (string, bool) {
	if !h.Enabled {
		return "", false
	}
	return h.Addr, true
}

type FlightLoop struct {
	// negative counts frames, positive counts seconds
	Interval float32 `yaml:"interval" env:"FLIGHT_LOOP_INTERVAL"`
}

type Config struct {
	LogLevel      string     `yaml:"log_level" env:"LOG_LEVEL"`
	HTTP          HTTP       `yaml:"http" envPrefix:"HTTP_"`
	FlightLoop    FlightLoop `yaml:"flight_loop"`
	Watch         []string   `yaml:"watch" env:"WATCH" envSeparator:","`
	Precision     int        `yaml:"precision" env:"PRECISION"`
	DispatchQueue int        `yaml:"dispatch_queue" env:"DISPATCH_QUEUE"`
}

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "XA_DATAREFS_"

func Default() *Config {
	return &Config{
		LogLevel:      "info",
		HTTP:          HTTP{Enabled: true, Addr: "127.0.0.1:8086"},
		FlightLoop:    FlightLoop{Interval: -1},
		Precision:     -1,
		DispatchQueue: 64,
	}
}

// Load applies defaults, then the yaml file at path, then environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.HTTP.Enabled && c.HTTP.Addr == "" {
		return errors.New("http.addr is required when http is enabled")
	}
	if c.FlightLoop.Interval == 0 {
		return errors.New("flight_loop.interval must not be 0")
	}
	if c.Precision < -1 {
		return fmt.Errorf("invalid precision %d", c.Precision)
	}
	if c.DispatchQueue <= 0 {
		return fmt.Errorf("invalid dispatch_queue %d", c.DispatchQueue)
	}
	return nil
}
