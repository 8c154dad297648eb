package anneal_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/instance"
	"github.com/katalvlaran/annealtsp/matrix"
)

// quietLogger discards engine logs.
func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// baseOptions is DefaultOptions with a silent logger.
func baseOptions() anneal.Options {
	opts := anneal.DefaultOptions()
	opts.Logger = quietLogger()

	return opts
}

func unitSquare(t *testing.T) *matrix.Distance {
	t.Helper()
	d, err := instance.Euclidean(instance.UnitSquare())
	require.NoError(t, err)

	return d
}

// circle places n cities on the unit circle in index order; the optimal
// tour is the identity cycle.
func circle(t *testing.T, n int) *matrix.Distance {
	t.Helper()
	pts := make([]instance.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = instance.Point{X: math.Cos(a), Y: math.Sin(a)}
	}
	d, err := instance.Euclidean(pts)
	require.NoError(t, err)

	return d
}

func randomInstance(t *testing.T, n int, seed int64) *matrix.Distance {
	t.Helper()
	pts, err := instance.SampleDefault(n, seed)
	require.NoError(t, err)
	d, err := instance.Euclidean(pts)
	require.NoError(t, err)

	return d
}

// recorder keeps every step of a run.
type recorder struct{ steps []anneal.Step }

func (r *recorder) OnStep(s anneal.Step) { r.steps = append(r.steps, s) }
