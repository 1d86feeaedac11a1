package pagnn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pagnn "github.com/verbocado/PAGNNs"
	"github.com/verbocado/PAGNNs/activations"
	"github.com/verbocado/PAGNNs/costfuncs"
	"github.com/verbocado/PAGNNs/hyperparams"
	"github.com/verbocado/PAGNNs/optimizers"
)

// linearDataset samples y = 2x on [0, 1].
func linearDataset() [][][]float64 {
	var d [][][]float64
	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		d = append(d, [][]float64{{x}, {2 * x}})
	}

	return d
}

func TestTrainLearnsLinearRegression(t *testing.T) {
	net := pagnn.New(1, 1).
		WithActivation(activations.Identity()).
		Opt(optimizers.SGD()).
		AddHP(pagnn.RateKey, hyperparams.Constant(0.1))
	require.NoError(t, net.Finalize(costfuncs.MSE()))

	data, err := pagnn.Data(linearDataset(), 1)
	require.NoError(t, err)

	require.NoError(t, net.Train(pagnn.TrainArgs{
		TrainData:    data,
		RunCondition: pagnn.TrainUntil(2000),
	}))

	outs, err := net.Forward([]float64{0.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, outs[0], 0.05)

	cost, _, err := net.Test(data, nil)
	require.NoError(t, err)
	assert.Less(t, cost, 1e-3)
}

func TestTrainWithBatches(t *testing.T) {
	net := pagnn.New(1, 1).
		WithActivation(activations.Identity()).
		Opt(optimizers.SGD()).
		AddHP(pagnn.RateKey, hyperparams.Constant(0.1))
	require.NoError(t, net.Finalize(costfuncs.MSE()))

	data, err := pagnn.Data(linearDataset(), 4)
	require.NoError(t, err)

	require.NoError(t, net.Train(pagnn.TrainArgs{
		TrainData:    data,
		RunCondition: pagnn.TrainUntil(2000),
	}))

	outs, err := net.Forward([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, outs[0], 0.1)
}

func TestTrainReportsStatusAndTests(t *testing.T) {
	net := pagnn.New(1, 1).WithActivation(activations.Identity())
	require.NoError(t, net.Finalize(costfuncs.MSE()))

	data, err := pagnn.Data(linearDataset(), 1)
	require.NoError(t, err)

	var statuses, tests int
	var lastIteration int

	require.NoError(t, net.Train(pagnn.TrainArgs{
		TrainData:    data,
		TestData:     data,
		ShouldTest:   pagnn.Every(50),
		SendStatus:   pagnn.Every(25),
		RunCondition: pagnn.TrainUntil(100),
		Update: func(r pagnn.Result) {
			if r.IsTest {
				tests++
			} else {
				statuses++
			}
			lastIteration = r.Iteration
		},
	}))

	assert.Equal(t, 4, statuses) // iterations 25, 50, 75, 100; 0 is skipped
	assert.Equal(t, 3, tests)    // iterations 0, 50, 100
	assert.Equal(t, 100, lastIteration)
	assert.Equal(t, 100, net.Iter())
}

func TestTrainArgValidation(t *testing.T) {
	net := pagnn.New(1, 1)
	require.NoError(t, net.Finalize(costfuncs.MSE()))

	data, err := pagnn.Data(linearDataset(), 1)
	require.NoError(t, err)

	assert.Error(t, net.Train(pagnn.TrainArgs{RunCondition: pagnn.TrainUntil(1)}))
	assert.Error(t, net.Train(pagnn.TrainArgs{TrainData: data}))
	assert.Error(t, net.Train(pagnn.TrainArgs{
		TrainData:    data,
		ShouldTest:   pagnn.Every(10),
		RunCondition: pagnn.TrainUntil(1),
	}))

	unfinalized := pagnn.New(1, 1)
	assert.ErrorIs(t, unfinalized.Train(pagnn.TrainArgs{
		TrainData:    data,
		RunCondition: pagnn.TrainUntil(1),
	}), pagnn.ErrNetNotFinalized)
}

func TestDatumFits(t *testing.T) {
	net := pagnn.New(2, 1)
	require.NoError(t, net.Finalize(costfuncs.MSE()))

	assert.True(t, pagnn.Datum{Inputs: []float64{1, 2}, Outputs: []float64{3}}.Fits(net))
	assert.False(t, pagnn.Datum{Inputs: []float64{1}, Outputs: []float64{3}}.Fits(net))
	assert.False(t, pagnn.Datum{Inputs: []float64{1, 2}}.Fits(net))

	retains := pagnn.New(2, 1).RetainState(true)
	require.NoError(t, retains.Finalize(costfuncs.MSE()))

	// empty outputs mark insignificant steps of a sequence
	assert.True(t, pagnn.Datum{Inputs: []float64{1, 2}}.Fits(retains))
}

func TestDataSupplier(t *testing.T) {
	dataset := linearDataset()

	data, err := pagnn.Data(dataset, 4)
	require.NoError(t, err)

	// wraps around the dataset
	for iter := 0; iter < 2*len(dataset); iter++ {
		d, err := data.Get(iter)
		require.NoError(t, err)
		assert.Equal(t, dataset[iter%len(dataset)][0], d.Inputs)
		assert.Equal(t, dataset[iter%len(dataset)][1], d.Outputs)
	}

	assert.False(t, data.BatchEnded(0))
	assert.True(t, data.BatchEnded(3))
	assert.False(t, data.DoneTesting(len(dataset)-1))
	assert.True(t, data.DoneTesting(len(dataset)))

	_, err = pagnn.Data(nil, 1)
	assert.Error(t, err)
	_, err = pagnn.Data(dataset, 0)
	assert.Error(t, err)
	_, err = pagnn.Data([][][]float64{{{1}}}, 1)
	assert.Error(t, err)
}

func TestTestCountsCorrect(t *testing.T) {
	net := pagnn.New(1, 2).WithActivation(activations.Identity())
	require.NoError(t, net.Finalize(costfuncs.MSE()))

	// fix the outputs at (2x, x) so the first is always the highest
	n := net.TotalNeurons()
	ps := make([]float64, net.NumParams())
	ps[0*n+1] = 2
	ps[0*n+2] = 1
	require.NoError(t, net.SetParams(ps))

	cost, correct, err := net.Test(mustData(t, [][][]float64{
		{{1}, []float64{1, 0}},
		{{2}, []float64{1, 0}},
		{{3}, []float64{0, 1}},
	}, 1), pagnn.CorrectHighest)
	require.NoError(t, err)

	assert.Greater(t, cost, 0.0)
	assert.InDelta(t, 2.0/3, correct, 1e-12)
}

func TestTrainXORCostDecreases(t *testing.T) {
	xor := [][][]float64{
		{{0, 0}, {0}},
		{{0, 1}, {1}},
		{{1, 0}, {1}},
		{{1, 1}, {0}},
	}

	net := pagnn.New(2, 1).
		Structure(pagnn.Layered(4)).
		WithActivation(activations.Tanh()).
		Opt(optimizers.Adam()).
		AddHP(pagnn.RateKey, hyperparams.Constant(0.05))
	require.NoError(t, net.Finalize(costfuncs.MSE()))

	data := mustData(t, xor, 4)

	before, _, err := net.Test(data, nil)
	require.NoError(t, err)

	require.NoError(t, net.Train(pagnn.TrainArgs{
		TrainData:    data,
		RunCondition: pagnn.TrainUntil(2000),
	}))

	after, _, err := net.Test(data, nil)
	require.NoError(t, err)
	assert.Less(t, after, before)
}

func TestTrainRetainedSequences(t *testing.T) {
	net := pagnn.New(1, 1).
		WithActivation(activations.Tanh()).
		RetainState(true)
	require.NoError(t, net.Finalize(costfuncs.MSE()))

	// two-step sequences: the first step's output doesn't matter
	sequence := [][][]float64{
		{{1}, nil},
		{{0}, {1}},
		{{-1}, nil},
		{{0}, {0}},
	}

	require.NoError(t, net.Train(pagnn.TrainArgs{
		TrainData:    mustData(t, sequence, 1),
		RunCondition: pagnn.TrainUntil(40),
		ResetEvery:   2,
	}))

	// state is cleared once training finishes
	for _, v := range net.CurrentState() {
		assert.Zero(t, v)
	}
}

func mustData(t *testing.T, dataset [][][]float64, batchSize int) pagnn.DataSupplier {
	t.Helper()

	data, err := pagnn.Data(dataset, batchSize)
	require.NoError(t, err)
	return data
}
