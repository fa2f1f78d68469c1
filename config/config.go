// Package config loads run settings with priority env > file > defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings of one run.
type Config struct {
	// DataDir holds day<N>[_test|_test_b].txt input files.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Day selects the input file.
	Day int `json:"day" yaml:"day"`

	// CacheDir is the badger directory for memoized results. Empty disables
	// the cache.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`

	// Workers bounds how many instances are solved concurrently.
	Workers int `json:"workers" yaml:"workers"`

	// ProgressEvery is the counter-search iteration interval between progress
	// reports. 0 disables them.
	ProgressEvery int `json:"progress_every" yaml:"progress_every"`

	// CapacityHint pre-sizes each counter search's visited set.
	CapacityHint int `json:"capacity_hint" yaml:"capacity_hint"`

	// Timeout bounds each instance search. 0 means no limit.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string `json:"metrics_addr" yaml:"metrics_addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:       "data/inputs",
		Day:           10,
		Workers:       runtime.NumCPU(),
		ProgressEvery: 20000,
		CapacityHint:  1 << 16,
	}
}

// Load merges defaults, the optional file at path and the environment, then
// validates the result. A path that does not exist is ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("TOGGLEPATH_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TOGGLEPATH_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("TOGGLEPATH_WORKERS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Workers = i
		}
	}
	if v := os.Getenv("TOGGLEPATH_PROGRESS_EVERY"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.ProgressEvery = i
		}
	}
	if v := os.Getenv("TOGGLEPATH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("TOGGLEPATH_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
}

// Validate checks ranges. Errors wrap ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.DataDir == "":
		return fmt.Errorf("%w: data_dir must be set", ErrInvalid)
	case c.Day < 1 || c.Day > 25:
		return fmt.Errorf("%w: day must be in 1..25", ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1", ErrInvalid)
	case c.ProgressEvery < 0:
		return fmt.Errorf("%w: progress_every must be >= 0", ErrInvalid)
	case c.CapacityHint < 0:
		return fmt.Errorf("%w: capacity_hint must be >= 0", ErrInvalid)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must be >= 0", ErrInvalid)
	}

	return nil
}
