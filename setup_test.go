package pagnn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pagnn "github.com/verbocado/PAGNNs"
	"github.com/verbocado/PAGNNs/costfuncs"
	"github.com/verbocado/PAGNNs/hyperparams"
)

func costFn(t *testing.T) pagnn.CostFunction {
	t.Helper()
	return costfuncs.MSE()
}

func TestNewRejectsBadSizes(t *testing.T) {
	assert.Error(t, pagnn.New(0, 1).Error())
	assert.Error(t, pagnn.New(1, 0).Error())
	assert.Error(t, pagnn.New(-2, 3).Error())
	assert.NoError(t, pagnn.New(1, 1).Error())
}

func TestChainedErrorsAccumulate(t *testing.T) {
	net := pagnn.New(2, 1).
		ExtraNeurons(-1).
		Steps(0) // never reached; the first error sticks

	require.Error(t, net.Error())
	assert.Contains(t, net.Error().Error(), "extra neurons")
	assert.ErrorIs(t, net.Finalize(costFn(t)), net.Error())
}

func TestNilComponentErrors(t *testing.T) {
	var nilArg pagnn.NilArgError

	assert.ErrorAs(t, pagnn.New(1, 1).Structure(nil).Error(), &nilArg)
	assert.ErrorAs(t, pagnn.New(1, 1).WithActivation(nil).Error(), &nilArg)
	assert.ErrorAs(t, pagnn.New(1, 1).Opt(nil).Error(), &nilArg)
	assert.ErrorAs(t, pagnn.New(1, 1).Init(nil).Error(), &nilArg)
	assert.ErrorAs(t, pagnn.New(1, 1).Pen(nil).Error(), &nilArg)
	assert.ErrorAs(t, pagnn.New(1, 1).AddHP("x", nil).Error(), &nilArg)
}

func TestFinalizePanicsOnNilCost(t *testing.T) {
	assert.Panics(t, func() {
		pagnn.New(1, 1).Finalize(nil)
	})
}

func TestFinalizeTwice(t *testing.T) {
	net := pagnn.New(1, 1)
	require.NoError(t, net.Finalize(costFn(t)))
	assert.ErrorIs(t, net.Finalize(costFn(t)), pagnn.ErrNetFinalized)
}

func TestConfigureAfterFinalize(t *testing.T) {
	net := pagnn.New(1, 1)
	require.NoError(t, net.Finalize(costFn(t)))

	net.ExtraNeurons(3)
	assert.ErrorIs(t, net.Error(), pagnn.ErrNetFinalized)
}

func TestAddHP(t *testing.T) {
	net := pagnn.New(1, 1).AddHP("warmup", hyperparams.Constant(5))
	require.NoError(t, net.Error())
	assert.Equal(t, 5.0, net.HP("warmup").Value(0))
	assert.Nil(t, net.HP("missing"))

	net.AddHP("warmup", hyperparams.Constant(3))
	assert.Error(t, net.Error())
}

func TestAddHPRejectsUnsaveableNames(t *testing.T) {
	// names end up space-delimited in main.txt and as directory names, so these would save but
	// never load
	for _, name := range []string{"", "learning rate", "a\tb", "a\nb", "hp/rate", `hp\rate`} {
		net := pagnn.New(1, 1).AddHP(name, hyperparams.Constant(0.1))
		assert.Errorf(t, net.Error(), "name %q", name)
	}

	assert.NoError(t, pagnn.New(1, 1).AddHP("learning-rate", hyperparams.Constant(0.1)).Error())
}

func TestDefaultsFillIn(t *testing.T) {
	net := pagnn.New(3, 2)
	require.NoError(t, net.Finalize(costFn(t)))

	// dense structure, 1 step, no extra neurons
	assert.Equal(t, 5, net.TotalNeurons())
	assert.Equal(t, 1, net.StepsPerForward())
	assert.Equal(t, 3, net.InputSize())
	assert.Equal(t, 2, net.OutputSize())
	assert.NotNil(t, net.HP(pagnn.RateKey))
}

func TestUnfinalizedSizes(t *testing.T) {
	net := pagnn.New(3, 2)
	assert.Equal(t, -1, net.InputSize())
	assert.Equal(t, -1, net.OutputSize())
	assert.Equal(t, -1, net.TotalNeurons())
	assert.Equal(t, -1, net.NumSynapses())
	assert.Equal(t, -1, net.NumParams())
}

func TestNumSynapses(t *testing.T) {
	net := pagnn.New(2, 1).Structure(pagnn.Layered(3))
	require.NoError(t, net.Finalize(costFn(t)))

	// 2*3 input block, 3*1 output block, 1 output self-edge
	assert.Equal(t, 10, net.NumSynapses())
}
