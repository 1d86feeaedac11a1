package optimizers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbocado/PAGNNs/optimizers"
)

func TestGradientDescent(t *testing.T) {
	opt := optimizers.GradientDescent()
	assert.Equal(t, "gradient-descent", opt.TypeString())

	params := []float64{1, -2, 0}
	grads := []float64{0.5, -1, 0}

	err := opt.Run(nil, len(params), func(i int) float64 {
		return grads[i]
	}, func(i int, addend float64) {
		params[i] += addend
	}, 0.1)
	require.NoError(t, err)

	assert.InDelta(t, 0.95, params[0], 1e-12)
	assert.InDelta(t, -1.9, params[1], 1e-12)
	assert.Zero(t, params[2])
}

func TestGradientDescentSaveLoadNoOp(t *testing.T) {
	opt := optimizers.GradientDescent()
	assert.NoError(t, opt.Save(nil, t.TempDir()))
	assert.NoError(t, opt.Load(nil, t.TempDir()))
}

// runQuadratic minimizes f(x) = x² starting from x = 3.
func runQuadratic(t *testing.T, run func(size int, grad func(int) float64, add func(int, float64)) error, steps int) float64 {
	t.Helper()

	x := []float64{3}
	for s := 0; s < steps; s++ {
		err := run(1, func(i int) float64 {
			return 2 * x[i]
		}, func(i int, addend float64) {
			x[i] += addend
		})
		require.NoError(t, err)
	}

	return x[0]
}

func TestMomentumConverges(t *testing.T) {
	opt := optimizers.Momentum()
	assert.Equal(t, "momentum", opt.TypeString())

	x := runQuadratic(t, func(size int, grad func(int) float64, add func(int, float64)) error {
		return opt.Run(nil, size, grad, add, 0.05)
	}, 200)

	assert.Less(t, math.Abs(x), 0.01)
}

func TestAdamConverges(t *testing.T) {
	opt := optimizers.Adam()
	assert.Equal(t, "adam", opt.TypeString())

	x := runQuadratic(t, func(size int, grad func(int) float64, add func(int, float64)) error {
		return opt.Run(nil, size, grad, add, 0.1)
	}, 200)

	assert.Less(t, math.Abs(x), 0.01)
}

func TestMomentumSaveLoad(t *testing.T) {
	opt := optimizers.Momentum().SetBeta(0.8)
	runQuadratic(t, func(size int, grad func(int) float64, add func(int, float64)) error {
		return opt.Run(nil, size, grad, add, 0.05)
	}, 5)

	dir := t.TempDir()
	require.NoError(t, opt.Save(nil, dir))

	loaded := optimizers.Momentum()
	require.NoError(t, loaded.Load(nil, dir))
	assert.Equal(t, opt, loaded)
}

func TestAdamSaveLoad(t *testing.T) {
	opt := optimizers.Adam().Betas(0.8, 0.99)
	runQuadratic(t, func(size int, grad func(int) float64, add func(int, float64)) error {
		return opt.Run(nil, size, grad, add, 0.1)
	}, 5)

	dir := t.TempDir()
	require.NoError(t, opt.Save(nil, dir))

	loaded := optimizers.Adam()
	require.NoError(t, loaded.Load(nil, dir))
	assert.Equal(t, opt, loaded)
}

func TestAdamLoadMissingFile(t *testing.T) {
	assert.Error(t, optimizers.Adam().Load(nil, t.TempDir()))
}
