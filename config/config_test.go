package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/config"
	"github.com/katalvlaran/annealtsp/cooling"
	"github.com/katalvlaran/annealtsp/kernel"
	"github.com/katalvlaran/annealtsp/tsp"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	def := anneal.DefaultOptions()
	assert.Equal(t, def.Iterations, opts.Iterations)
	assert.Equal(t, def.EarlyStop, opts.EarlyStop)
	assert.Equal(t, def.StopAfter, opts.StopAfter)
	assert.Equal(t, def.Schedule, opts.Schedule)
	assert.Equal(t, tsp.WarmStartIdentity, opts.WarmStart)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "anneal.yaml", `
instance:
  cities: 30
  seed: 4
anneal:
  iterations: 5000
  early_stop: true
  stop_after: 200
  seed: 12
  warm_start: nearest_neighbor
  chains: 3
schedule:
  kind: logarithmic
  t0: 10
kernel:
  name: mixing
  members:
    - {name: reversion, weight: 0.6}
    - {name: insertion, weight: 0.4}
observability:
  log_level: debug
  log_format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Instance.Cities)
	assert.Equal(t, 5000, cfg.Anneal.Iterations)
	assert.Equal(t, 3, cfg.Anneal.Chains)
	assert.Equal(t, kernel.NameMixing, cfg.Kernel.Name)
	require.Len(t, cfg.Kernel.Members, 2)
	assert.Equal(t, 0.6, cfg.Kernel.Members[0].Weight)
	assert.Equal(t, slog.LevelDebug, cfg.Observability.SlogLevel())

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, cooling.Logarithmic{T0: 10, K0: cooling.DefaultLogarithmicK0}, opts.Schedule)
	assert.Equal(t, tsp.WarmStartNearestNeighbor, opts.WarmStart)
	assert.Equal(t, int64(12), opts.Seed)

	_, err = kernel.Build(cfg.Kernel, opts.Seed)
	require.NoError(t, err)
}

func TestLoad_JSONFallback(t *testing.T) {
	path := writeFile(t, "anneal.conf", `{"anneal": {"iterations": 777, "early_stop": false, "chains": 2}}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 777, cfg.Anneal.Iterations)
	assert.False(t, cfg.Anneal.EarlyStop)
	assert.Equal(t, 2, cfg.Anneal.Chains)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "anneal.yaml", "anneal:\n  iterations: 100\n")
	t.Setenv("ANNEAL_ITERATIONS", "4242")
	t.Setenv("ANNEAL_STOP_AFTER", "55")
	t.Setenv("ANNEAL_SEED", "-9")
	t.Setenv("ANNEAL_CHAINS", "4")
	t.Setenv("ANNEAL_EARLY_STOP", "1")
	t.Setenv("ANNEAL_KERNEL", "swap")
	t.Setenv("ANNEAL_LOG_LEVEL", "WARN")
	t.Setenv("ANNEAL_METRICS_ADDR", "localhost:9090")
	t.Setenv("ANNEAL_ARCHIVE_PATH", filepath.Join(t.TempDir(), "a.db"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4242, cfg.Anneal.Iterations)
	assert.Equal(t, 55, cfg.Anneal.StopAfter)
	assert.Equal(t, int64(-9), cfg.Anneal.Seed)
	assert.Equal(t, 4, cfg.Anneal.Chains)
	assert.True(t, cfg.Anneal.EarlyStop)
	assert.Equal(t, kernel.Spec{Name: kernel.NameSwap}, cfg.Kernel)
	assert.Equal(t, slog.LevelWarn, cfg.Observability.SlogLevel())
	assert.Equal(t, "localhost:9090", cfg.Observability.MetricsAddr)
	assert.True(t, cfg.Archive.Enabled)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("ANNEAL_ITERATIONS", "lots")
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*config.Config){
		"iterations":       func(c *config.Config) { c.Anneal.Iterations = 0 },
		"chains":           func(c *config.Config) { c.Anneal.Chains = 0 },
		"stop_after":       func(c *config.Config) { c.Anneal.StopAfter = 0 },
		"warm_start":       func(c *config.Config) { c.Anneal.WarmStart = "greedy" },
		"kernel":           func(c *config.Config) { c.Kernel.Name = "or_opt" },
		"mixing members":   func(c *config.Config) { c.Kernel = kernel.Spec{Name: kernel.NameMixing} },
		"member name":      func(c *config.Config) { c.Kernel = kernel.Spec{Name: kernel.NameMixing, Members: []kernel.Spec{{Name: "x"}}} },
		"schedule kind":    func(c *config.Config) { c.Schedule.Kind = "linear" },
		"schedule rho":     func(c *config.Config) { c.Schedule.Rho = 1.5 },
		"log level":        func(c *config.Config) { c.Observability.LogLevel = "chatty" },
		"log format":       func(c *config.Config) { c.Observability.LogFormat = "xml" },
		"cities":           func(c *config.Config) { c.Instance.Cities = 1 },
		"bounds":           func(c *config.Config) { c.Instance.Lower, c.Instance.Upper = 10, 5 },
		"archive path":     func(c *config.Config) { c.Archive = config.ArchiveConfig{Enabled: true} },
		"negative workers": func(c *config.Config) { c.Anneal.Parallelism = -1 },
	}
	for name, mutate := range cases {
		cfg := config.Default()
		mutate(&cfg)
		require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, name)
	}
}

func TestSampleBounds(t *testing.T) {
	lo, hi := config.InstanceConfig{Cities: 20}.SampleBounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 20, hi)

	lo, hi = config.InstanceConfig{Cities: 20, Lower: -5, Upper: 5}.SampleBounds()
	assert.Equal(t, -5, lo)
	assert.Equal(t, 5, hi)
}

func TestLoad_ScheduleKindUsesItsDefaults(t *testing.T) {
	path := writeFile(t, "anneal.yaml", "schedule:\n  kind: logarithmic\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, cooling.DefaultLogarithmic(), opts.Schedule)

	path = writeFile(t, "rho.yaml", "schedule:\n  rho: 0.5\n")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	opts, err = cfg.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, cooling.Exponential{T0: cooling.DefaultExponentialT0, Rho: 0.5}, opts.Schedule)
}

func TestLoad_EarlyStopEnv(t *testing.T) {
	cases := map[string]bool{"TRUE": true, "t": true, "0": false, "False": false}
	for v, want := range cases {
		t.Run(v, func(t *testing.T) {
			t.Setenv("ANNEAL_EARLY_STOP", v)
			cfg, err := config.Load("")
			require.NoError(t, err)
			assert.Equal(t, want, cfg.Anneal.EarlyStop)
		})
	}

	for _, v := range []string{"yes", "on", "junk"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("ANNEAL_EARLY_STOP", v)
			_, err := config.Load("")
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
