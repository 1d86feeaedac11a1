package pagnn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pagnn "github.com/verbocado/PAGNNs"
	"github.com/verbocado/PAGNNs/activations"
	"github.com/verbocado/PAGNNs/costfuncs"

	// install the remaining defaults used by Finalize
	_ "github.com/verbocado/PAGNNs/hyperparams"
	_ "github.com/verbocado/PAGNNs/initializers"
	_ "github.com/verbocado/PAGNNs/optimizers"
)

// layeredNet builds a 2 -> 3 -> 1 layered network with the identity activation, so that its
// forward pass is exactly the matrix product of the embedded layers.
func layeredNet(t *testing.T) *pagnn.Network {
	t.Helper()

	net := pagnn.New(2, 1).
		Structure(pagnn.Layered(3)).
		WithActivation(activations.Identity())
	require.NoError(t, net.Finalize(costfuncs.MSE()))

	return net
}

// setLayeredParams writes the two layer matrices into the synaptic matrix, zeroes the biases,
// and keeps the output self-edge at 1.
func setLayeredParams(t *testing.T, net *pagnn.Network, w1 [2][3]float64, w2 [3]float64) {
	t.Helper()

	n := net.TotalNeurons()
	ps := make([]float64, net.NumParams())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			ps[i*n+(2+j)] = w1[i][j]
		}
	}
	for j := 0; j < 3; j++ {
		ps[(2+j)*n+5] = w2[j]
	}
	ps[5*n+5] = 1

	require.NoError(t, net.SetParams(ps))
}

func TestForwardMatchesLayeredFeedForward(t *testing.T) {
	net := layeredNet(t)
	require.Equal(t, 6, net.TotalNeurons())
	require.Equal(t, 2, net.StepsPerForward())

	w1 := [2][3]float64{
		{0.5, -1, 2},
		{1.5, 0.25, -0.75},
	}
	w2 := [3]float64{2, -0.5, 1}
	setLayeredParams(t, net, w1, w2)

	inputs := [][]float64{
		{1, 0},
		{0, 1},
		{0.3, -0.7},
		{-2, 1.5},
	}

	for _, x := range inputs {
		outs, err := net.Forward(x)
		require.NoError(t, err)
		require.Len(t, outs, 1)

		var expected float64
		for j := 0; j < 3; j++ {
			hidden := x[0]*w1[0][j] + x[1]*w1[1][j]
			expected += hidden * w2[j]
		}

		assert.InDelta(t, expected, outs[0], 1e-12)
	}
}

func TestForwardSizeMismatch(t *testing.T) {
	net := layeredNet(t)

	_, err := net.Forward([]float64{1, 2, 3})
	require.Error(t, err)

	var mismatch pagnn.SizeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Expected)
	assert.Equal(t, 3, mismatch.Got)
}

func TestForwardBeforeFinalize(t *testing.T) {
	net := pagnn.New(2, 1)

	_, err := net.Forward([]float64{1, 2})
	assert.ErrorIs(t, err, pagnn.ErrNetNotFinalized)

	assert.Error(t, net.LoadInput([]float64{1, 2}))
	assert.Error(t, net.Step())
	assert.Nil(t, net.Output())
}

func TestPanicErrors(t *testing.T) {
	net := pagnn.New(2, 1).PanicErrors()

	assert.Panics(t, func() {
		net.LoadInput([]float64{1, 2})
	})
}

func TestRetainState(t *testing.T) {
	net := pagnn.New(1, 1).
		Structure(pagnn.Layered(2)).
		WithActivation(activations.Tanh()).
		RetainState(true)
	require.NoError(t, net.Finalize(costfuncs.MSE()))
	require.True(t, net.Retains())

	_, err := net.Forward([]float64{1})
	require.NoError(t, err)

	state := net.CurrentState()
	require.Len(t, state, 4)

	// loading only overwrites the input neurons; the rest of the state survives
	require.NoError(t, net.LoadInput([]float64{0.5}))
	after := net.CurrentState()
	assert.Equal(t, 0.5, after[0])
	assert.Equal(t, state[1:], after[1:])

	net.ResetState()
	for _, v := range net.CurrentState() {
		assert.Zero(t, v)
	}
}

func TestLoadInputZeroesStateWithoutRetain(t *testing.T) {
	net := layeredNet(t)

	_, err := net.Forward([]float64{1, 1})
	require.NoError(t, err)

	require.NoError(t, net.LoadInput([]float64{0, 0}))
	for _, v := range net.CurrentState() {
		assert.Zero(t, v)
	}
}

func TestCorrectKeepsMask(t *testing.T) {
	net := layeredNet(t)

	for i := 0; i < 20; i++ {
		_, _, err := net.Correct([]float64{1, -1}, []float64{0.5}, false)
		require.NoError(t, err)
	}

	n := net.TotalNeurons()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !net.MaskAt(i, j) {
				assert.Zerof(t, net.WeightAt(i, j), "synapse (%d, %d) is outside the structure", i, j)
			}
		}
	}
}

func TestCorrectReducesCost(t *testing.T) {
	net := layeredNet(t)

	first, _, err := net.Correct([]float64{1, -1}, []float64{0.5}, false)
	require.NoError(t, err)

	var last float64
	for i := 0; i < 200; i++ {
		last, _, err = net.Correct([]float64{1, -1}, []float64{0.5}, false)
		require.NoError(t, err)
	}

	assert.Less(t, last, first)
	assert.Equal(t, 201, net.Iter())
}
