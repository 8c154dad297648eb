package archive_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/archive"
	"github.com/katalvlaran/annealtsp/cooling"
	"github.com/katalvlaran/annealtsp/instance"
	"github.com/katalvlaran/annealtsp/kernel"
	"github.com/katalvlaran/annealtsp/tsp"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func openStore(t *testing.T) *archive.Store {
	t.Helper()
	s, err := archive.Open(context.Background(), filepath.Join(t.TempDir(), "runs", "archive.db"), quiet())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_SaveGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)

	saved, err := s.Save(ctx, archive.Record{
		Cities: 4, Kernel: "{name: swap}", Schedule: "{kind: exponential}", Seed: 3,
		Iterations: 100, Accepted: 40, Reason: "exhausted", BestCost: 4, Route: []int{0, 1, 2, 3},
	})
	require.NoError(t, err)
	_, err = uuid.Parse(saved.ID)
	require.NoError(t, err)
	require.False(t, saved.CreatedAt.IsZero())

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, []int{0, 1, 2, 3}, got.Route)
	assert.Equal(t, 4.0, got.BestCost)
	assert.Equal(t, "exhausted", got.Reason)
	assert.Equal(t, int64(3), got.Seed)
	assert.Equal(t, 40, got.Accepted)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, archive.ErrNotFound)
}

func TestStore_ListNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.Save(ctx, archive.Record{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Cities:    i + 3,
			Route:     tsp.Identity(i + 3).Cities(),
		})
		require.NoError(t, err)
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, rec := range all {
		require.Equal(t, 7-i, rec.Cities)
	}

	two, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	require.Equal(t, 7, two[0].Cities)
}

func TestStore_Reopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "archive.db")

	s, err := archive.Open(ctx, path, quiet())
	require.NoError(t, err)
	rec, err := s.Save(ctx, archive.Record{Cities: 3, Route: []int{0, 2, 1}})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = archive.Open(ctx, path, quiet())
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1}, got.Route)
}

func TestNewRecord(t *testing.T) {
	t.Parallel()
	d, err := instance.Euclidean(instance.UnitSquare())
	require.NoError(t, err)
	opts := anneal.DefaultOptions()
	opts.Iterations = 200
	opts.Seed = 9
	opts.Logger = quiet()
	e, err := anneal.NewEngine(d, kernel.NewReversion(9), opts)
	require.NoError(t, err)
	res, err := e.Run(context.Background())
	require.NoError(t, err)

	rec := archive.NewRecord(e, res)
	assert.Equal(t, 4, rec.Cities)
	assert.Equal(t, int64(9), rec.Seed)
	assert.Equal(t, res.Cost, rec.BestCost)
	assert.Equal(t, "exhausted", rec.Reason)
	assert.True(t, strings.HasPrefix(rec.Kernel, "{"), rec.Kernel)
	assert.Contains(t, rec.Kernel, "name: reversion")
	assert.Contains(t, rec.Schedule, "kind: exponential")

	s := openStore(t)
	saved, err := s.Save(context.Background(), rec)
	require.NoError(t, err)
	got, err := s.Get(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Route, got.Route)
}

func TestLabels_Custom(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "custom", archive.ScheduleLabel(cooling.Func(func(int) float64 { return 1 })))
	assert.Equal(t, "custom", archive.KernelLabel(customKernel{}))
}

type customKernel struct{}

func (customKernel) Sample(r tsp.Route) (tsp.Route, error) { return r, nil }

func TestSpecLabel(t *testing.T) {
	t.Parallel()
	label := archive.SpecLabel(kernel.Spec{Name: kernel.NameMixing, Members: []kernel.Spec{
		{Name: kernel.NameSwap, Weight: 0.5},
		{Name: kernel.NameReversion, Weight: 0.5},
	}})
	assert.True(t, strings.HasPrefix(label, "{"), label)
	assert.Contains(t, label, "name: mixing")
	assert.Contains(t, label, "name: swap")
}
