package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/kernel"
	"github.com/katalvlaran/annealtsp/tsp"
)

func TestBuild_Variants(t *testing.T) {
	t.Parallel()
	for _, name := range []string{
		kernel.NameSwap, kernel.NameReversion, kernel.NameInsertion, kernel.NameRandomWalk,
	} {
		k, err := kernel.Build(kernel.Spec{Name: name}, 4)
		require.NoError(t, err)
		require.Equal(t, name, kernel.NameOf(k))
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()
	_, err := kernel.Build(kernel.Spec{Name: "three_opt"}, 1)
	require.ErrorIs(t, err, kernel.ErrUnknownKernel)
	require.ErrorIs(t, err, tsp.ErrValidation)

	_, err = kernel.Build(kernel.Spec{Name: kernel.NameMixing}, 1)
	require.ErrorIs(t, err, tsp.ErrValidation)

	_, err = kernel.Build(kernel.Spec{Name: kernel.NameMixing, Members: []kernel.Spec{{Name: "nope"}}}, 1)
	require.ErrorIs(t, err, kernel.ErrUnknownKernel)
}

func TestBuild_SeedInheritance(t *testing.T) {
	t.Parallel()
	k, err := kernel.Build(kernel.Spec{Name: kernel.NameSwap}, 17)
	require.NoError(t, err)
	require.Equal(t, int64(17), k.(*kernel.Swap).Seed())

	k, err = kernel.Build(kernel.Spec{Name: kernel.NameSwap, Seed: 5}, 17)
	require.NoError(t, err)
	require.Equal(t, int64(5), k.(*kernel.Swap).Seed())

	k, err = kernel.Build(kernel.Spec{Name: kernel.NameMixing, Members: []kernel.Spec{
		{Name: kernel.NameSwap, Weight: 1},
		{Name: kernel.NameReversion, Weight: 1},
	}}, 17)
	require.NoError(t, err)
	ks := k.(*kernel.Mixing).Kernels()
	require.Equal(t, tsp.DeriveSeed(17, 1), ks[0].(*kernel.Swap).Seed())
	require.Equal(t, tsp.DeriveSeed(17, 2), ks[1].(*kernel.Reversion).Seed())
}

func TestDescribe_RoundTrip(t *testing.T) {
	t.Parallel()
	spec := kernel.Spec{Name: kernel.NameMixing, Members: []kernel.Spec{
		{Name: kernel.NameSwap, Weight: 0.2},
		{Name: kernel.NameReversion, Weight: 0.5},
		{Name: kernel.NameInsertion, Weight: 0.3},
	}}
	first, err := kernel.Build(spec, 23)
	require.NoError(t, err)

	desc, err := kernel.Describe(first)
	require.NoError(t, err)
	require.Equal(t, kernel.NameMixing, desc.Name)
	require.Len(t, desc.Members, 3)
	require.Equal(t, kernel.NameReversion, desc.Members[0].Name)
	require.InDelta(t, 0.5, desc.Members[0].Weight, 1e-12)

	second, err := kernel.Build(desc, 0)
	require.NoError(t, err)

	ra, rb := tsp.Identity(10), tsp.Identity(10)
	for i := 0; i < 200; i++ {
		ra, err = first.Sample(ra)
		require.NoError(t, err)
		rb, err = second.Sample(rb)
		require.NoError(t, err)
		require.True(t, ra.Equal(rb), "rebuilt kernel diverged at %d", i)
	}
}

func TestDescribe_Foreign(t *testing.T) {
	t.Parallel()
	_, err := kernel.Describe(fixedKernel{})
	require.ErrorIs(t, err, tsp.ErrNotImplemented)

	mx, err := kernel.NewMixing([]kernel.Weighted{{P: 1, K: fixedKernel{}}}, 1)
	require.NoError(t, err)
	_, err = kernel.Describe(mx)
	require.ErrorIs(t, err, tsp.ErrNotImplemented)
}
