package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/cooling"
	"github.com/katalvlaran/annealtsp/kernel"
	"github.com/katalvlaran/annealtsp/tsp"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full annealtsp configuration.
type Config struct {
	Instance      InstanceConfig      `yaml:"instance" json:"instance"`
	Anneal        AnnealConfig        `yaml:"anneal" json:"anneal"`
	Schedule      cooling.Spec        `yaml:"schedule" json:"schedule"`
	Kernel        kernel.Spec         `yaml:"kernel" json:"kernel"`
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`
	Archive       ArchiveConfig       `yaml:"archive" json:"archive"`
}

// InstanceConfig selects the cities: a point file, or a random grid sample.
type InstanceConfig struct {
	// Points is a .csv, .json or .yaml point file; it wins over Cities.
	Points string `yaml:"points,omitempty" json:"points,omitempty"`
	Cities int    `yaml:"cities" json:"cities" validate:"gte=0"`
	// Lower and Upper bound the sample grid; Upper 0 means Cities.
	Lower int   `yaml:"lower" json:"lower"`
	Upper int   `yaml:"upper" json:"upper"`
	Seed  int64 `yaml:"seed" json:"seed"`
}

// AnnealConfig mirrors anneal.Options plus chain settings.
type AnnealConfig struct {
	Iterations  int    `yaml:"iterations" json:"iterations" validate:"gte=1"`
	EarlyStop   bool   `yaml:"early_stop" json:"early_stop"`
	StopAfter   int    `yaml:"stop_after" json:"stop_after" validate:"gte=0"`
	Seed        int64  `yaml:"seed" json:"seed"`
	WarmStart   string `yaml:"warm_start" json:"warm_start" validate:"omitempty,oneof=identity nearest_neighbor"`
	Polish      bool   `yaml:"polish" json:"polish"`
	Chains      int    `yaml:"chains" json:"chains" validate:"gte=1"`
	Parallelism int    `yaml:"parallelism" json:"parallelism" validate:"gte=0"`
}

// ObservabilityConfig controls logging, metrics and tracing.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level" json:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" json:"log_format" validate:"oneof=text json"`
	// MetricsAddr, when set, serves /metrics on this address.
	MetricsAddr string `yaml:"metrics_addr,omitempty" json:"metrics_addr,omitempty" validate:"omitempty,hostname_port"`
	Tracing     bool   `yaml:"tracing" json:"tracing"`
}

// ArchiveConfig controls the SQLite run archive.
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path" json:"path"`
}

// Default returns the built-in configuration: a 50-city random instance,
// DefaultOptions-equivalent annealing, reversion kernel, one chain.
func Default() Config {
	return Config{
		Instance: InstanceConfig{Cities: 50},
		Anneal: AnnealConfig{
			Iterations: anneal.DefaultIterations,
			EarlyStop:  true,
			StopAfter:  anneal.DefaultStopAfter,
			WarmStart:  string(tsp.WarmStartIdentity),
			Chains:     1,
		},
		// Parameters stay zero so cooling.Build applies the defaults of
		// whichever kind the file selects.
		Schedule: cooling.Spec{Kind: cooling.KindExponential},
		Kernel: kernel.Spec{Name: kernel.NameReversion},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
		Archive: ArchiveConfig{Path: "annealtsp.db"},
	}
}

// Load merges defaults, the file at path (optional; a missing file is not an
// error) and ANNEAL_* environment overrides, then validates.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
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
	// Try YAML first, then JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

func loadEnv(cfg *Config) error {
	var err error
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" && err == nil {
			var i int
			if i, err = strconv.Atoi(v); err != nil {
				err = fmt.Errorf("%s=%q: %v: %w", key, v, err, ErrInvalidConfig)
				return
			}
			*dst = i
		}
	}

	setInt("ANNEAL_ITERATIONS", &cfg.Anneal.Iterations)
	setInt("ANNEAL_STOP_AFTER", &cfg.Anneal.StopAfter)
	setInt("ANNEAL_CHAINS", &cfg.Anneal.Chains)
	if v := os.Getenv("ANNEAL_SEED"); v != "" && err == nil {
		s, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("ANNEAL_SEED=%q: %v: %w", v, perr, ErrInvalidConfig)
		}
		cfg.Anneal.Seed = s
	}
	if v := os.Getenv("ANNEAL_EARLY_STOP"); v != "" && err == nil {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return fmt.Errorf("ANNEAL_EARLY_STOP=%q: %v: %w", v, perr, ErrInvalidConfig)
		}
		cfg.Anneal.EarlyStop = b
	}
	if v := os.Getenv("ANNEAL_KERNEL"); v != "" {
		cfg.Kernel = kernel.Spec{Name: v}
	}
	if v := os.Getenv("ANNEAL_LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("ANNEAL_METRICS_ADDR"); v != "" {
		cfg.Observability.MetricsAddr = v
	}
	if v := os.Getenv("ANNEAL_ARCHIVE_PATH"); v != "" {
		cfg.Archive.Path = v
		cfg.Archive.Enabled = true
	}

	return err
}

// Validate checks struct tags, then the cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Instance.Points == "" && c.Instance.Cities < 2 {
		return fmt.Errorf("%w: instance needs points or cities >= 2", ErrInvalidConfig)
	}
	if c.Instance.Upper != 0 && c.Instance.Upper < c.Instance.Lower {
		return fmt.Errorf("%w: instance upper %d < lower %d", ErrInvalidConfig, c.Instance.Upper, c.Instance.Lower)
	}
	if c.Anneal.EarlyStop && c.Anneal.StopAfter < 1 {
		return fmt.Errorf("%w: stop_after must be >= 1 with early_stop", ErrInvalidConfig)
	}
	if c.Archive.Enabled && c.Archive.Path == "" {
		return fmt.Errorf("%w: archive enabled without path", ErrInvalidConfig)
	}
	if c.Kernel.Name == kernel.NameMixing && len(c.Kernel.Members) == 0 {
		return fmt.Errorf("%w: mixing kernel needs members", ErrInvalidConfig)
	}

	return nil
}

// SampleBounds returns the grid bounds for random instances.
func (c InstanceConfig) SampleBounds() (int, int) {
	upper := c.Upper
	if upper == 0 {
		upper = c.Cities
	}

	return c.Lower, upper
}

// Options builds anneal.Options from the configuration.
func (c Config) Options(logger *slog.Logger) (anneal.Options, error) {
	sched, err := cooling.Build(c.Schedule)
	if err != nil {
		return anneal.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	ws, err := tsp.ParseWarmStart(c.Anneal.WarmStart)
	if err != nil {
		return anneal.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return anneal.Options{
		Iterations: c.Anneal.Iterations,
		EarlyStop:  c.Anneal.EarlyStop,
		StopAfter:  c.Anneal.StopAfter,
		Seed:       c.Anneal.Seed,
		Schedule:   sched,
		WarmStart:  ws,
		Polish:     c.Anneal.Polish,
		Logger:     logger,
	}, nil
}

// SlogLevel maps LogLevel onto slog.
func (c ObservabilityConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
