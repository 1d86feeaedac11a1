package hyperparams_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbocado/PAGNNs/hyperparams"
)

func TestConstant(t *testing.T) {
	c := hyperparams.Constant(0.05)
	assert.Equal(t, "constant", c.TypeString())
	assert.Equal(t, 0.05, c.Value(0))
	assert.Equal(t, 0.05, c.Value(1000000))
}

func TestConstantSaveLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, hyperparams.Constant(0.125).Save(nil, dir))

	loaded := hyperparams.Constant(0)
	require.NoError(t, loaded.Load(dir))
	assert.Equal(t, 0.125, loaded.Value(42))
}

func TestStepDecay(t *testing.T) {
	s := hyperparams.StepDecay(1, 0.5, 10)
	assert.Equal(t, "step-decay", s.TypeString())

	assert.Equal(t, 1.0, s.Value(0))
	assert.Equal(t, 1.0, s.Value(9))
	assert.Equal(t, 0.5, s.Value(10))
	assert.Equal(t, 0.25, s.Value(20))
	assert.Equal(t, 1.0, s.Value(-5))
}

func TestStepDecayBadPeriod(t *testing.T) {
	// a period below 1 is clamped rather than dividing by zero
	s := hyperparams.StepDecay(1, 0.5, 0)
	assert.Equal(t, 0.5, s.Value(1))
}

func TestStepDecaySaveLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, hyperparams.StepDecay(0.1, 0.9, 100).Save(nil, dir))

	loaded := hyperparams.StepDecay(0, 0, 1)
	require.NoError(t, loaded.Load(dir))
	assert.Equal(t, 0.1, loaded.Value(0))
	assert.InDelta(t, 0.09, loaded.Value(100), 1e-12)
}
