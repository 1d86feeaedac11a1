package pagnn

import (
	"gonum.org/v1/gonum/mat"
)

// Network is the main structure that is used to learn to map input to output functions. All
// neurons -- input, extra, and output alike -- live in a single square synaptic weight matrix;
// the Network's state is a vector with one entry per neuron.
type Network struct {
	// weights is the synaptic matrix. weights.At(i, j) is the synapse from neuron i to neuron j.
	weights *mat.Dense

	// biases holds one bias per neuron, added at every propagation step.
	biases *mat.VecDense

	// mask marks which synapses exist; entries of weights outside the mask are zero and stay
	// zero through training.
	mask *mat.Dense

	// state is the current value of every neuron.
	state *mat.VecDense

	inputNeurons  int
	extraNeurons  int
	outputNeurons int
	totalNeurons  int

	// stepsPerForward is the number of propagation steps run by Forward.
	stepsPerForward int

	// retainState determines whether LoadInput keeps the previous state (giving the network
	// memory between forward passes) or zeroes it.
	retainState bool

	structure Structure

	act  Activation
	cf   CostFunction
	opt  Optimizer
	init Initializer
	pen  Penalty

	hyperParams map[string]HyperParameter

	// caches written by Forward and consumed by getDeltas. states[t] is the state after t
	// steps; preacts[t-1] is the pre-activation that produced states[t].
	states  []*mat.VecDense
	preacts []*mat.VecDense

	gradWeights *mat.Dense
	gradBiases  *mat.VecDense

	// changes to the weights that have been delayed until the end of the batch
	pendingWeights *mat.Dense
	pendingBiases  *mat.VecDense

	// Whether or not there are changes to weights that have not been applied yet
	hasSavedChanges bool

	// used to keep track of the current iteration during training. Also incremented by Correct.
	iter int

	// longIter corresponds to the iteration of the network as a whole, not just within the
	// current training run.
	longIter int

	// whether or not the network should panic when it encounters an error
	panicErrors bool

	err error

	stat status
}

type status int8

const (
	initialized status = iota
	finalized
	evaluated
	deltas
	adjusted
)

// setError sets the Network's stored error to the error provided. If net.panicErrors is true,
// setError will additionally panic the error it is given.
func (net *Network) setError(e error) {
	net.err = e
	if net.panicErrors {
		panic(e)
	}
}
