package activations_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verbocado/PAGNNs/activations"
)

func TestIdentity(t *testing.T) {
	a := activations.Identity()
	assert.Equal(t, "identity", a.TypeString())
	assert.Equal(t, -2.5, a.Apply(-2.5))
	assert.Equal(t, 1.0, a.Deriv(-2.5))
}

func TestTanh(t *testing.T) {
	a := activations.Tanh()
	assert.Equal(t, "tanh", a.TypeString())
	assert.Equal(t, math.Tanh(0.7), a.Apply(0.7))
	assert.InDelta(t, 1-math.Pow(math.Tanh(0.7), 2), a.Deriv(0.7), 1e-12)
	assert.Equal(t, 1.0, a.Deriv(0))
}

func TestLogistic(t *testing.T) {
	a := activations.Logistic()
	assert.Equal(t, "logistic", a.TypeString())
	assert.Equal(t, 0.5, a.Apply(0))
	assert.InDelta(t, 0.25, a.Deriv(0), 1e-12)
	assert.Less(t, a.Apply(-10), 0.001)
	assert.Greater(t, a.Apply(10), 0.999)
}

func TestReLU(t *testing.T) {
	a := activations.ReLU()
	assert.Equal(t, "relu", a.TypeString())
	assert.Equal(t, 0.0, a.Apply(-3))
	assert.Equal(t, 3.0, a.Apply(3))
	assert.Equal(t, 0.0, a.Deriv(-3))
	assert.Equal(t, 1.0, a.Deriv(3))
}

func TestLeakyReLU(t *testing.T) {
	a := activations.LeakyReLU()
	assert.Equal(t, "leaky-relu", a.TypeString())
	assert.InDelta(t, -0.03, a.Apply(-3), 1e-12)
	assert.Equal(t, 3.0, a.Apply(3))
	assert.Equal(t, 0.01, a.Deriv(-3))
	assert.Equal(t, 1.0, a.Deriv(3))

	steep := activations.LeakyReLU().Slope(0.2)
	assert.InDelta(t, -0.6, steep.Apply(-3), 1e-12)
	assert.Equal(t, 0.2, steep.Deriv(-3))
}
