package pagnn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pagnn "github.com/verbocado/PAGNNs"
	"github.com/verbocado/PAGNNs/activations"
	"github.com/verbocado/PAGNNs/costfuncs"
)

func TestRegisterActivation(t *testing.T) {
	f := func() pagnn.Activation { return activations.Identity() }

	require.NoError(t, pagnn.RegisterActivation("registry-test-activation", f))
	assert.ErrorIs(t, pagnn.RegisterActivation("registry-test-activation", f), pagnn.ErrRegisterTaken)
	assert.ErrorIs(t, pagnn.RegisterActivation("", f), pagnn.ErrRegisterTaken)
	assert.ErrorIs(t, pagnn.RegisterActivation("registry-test-nil", nil), pagnn.ErrRegisterNilReturn)
}

func TestRegisterCostFunction(t *testing.T) {
	f := func() pagnn.CostFunction { return costfuncs.MSE() }

	require.NoError(t, pagnn.RegisterCostFunction("registry-test-cost", f))
	assert.ErrorIs(t, pagnn.RegisterCostFunction("registry-test-cost", f), pagnn.ErrRegisterTaken)
	assert.ErrorIs(t, pagnn.RegisterCostFunction("registry-test-cost-nil", nil), pagnn.ErrRegisterNilReturn)
}

func TestSubpackagesRegisterThemselves(t *testing.T) {
	// the blank imports in this package's tests are enough for Load to find everything a saved
	// network can name
	assert.ErrorIs(t, pagnn.RegisterActivation("tanh", func() pagnn.Activation { return activations.Tanh() }),
		pagnn.ErrRegisterTaken)
	assert.ErrorIs(t, pagnn.RegisterCostFunction("mse", func() pagnn.CostFunction { return costfuncs.MSE() }),
		pagnn.ErrRegisterTaken)
}
