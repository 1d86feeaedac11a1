package pagnn

import (
	"fmt"
)

// String returns a short description of the Network for error messages and logs.
func (net *Network) String() string {
	if net == nil {
		return "<nil>"
	} else if net.stat < finalized {
		return fmt.Sprintf("<PAGNN (unfinalized), in: %d, out: %d>", net.inputNeurons, net.outputNeurons)
	}

	return fmt.Sprintf("<PAGNN %q, neurons: %d (%d in, %d extra, %d out), steps: %d>",
		net.structure.TypeString(), net.totalNeurons, net.inputNeurons, net.extraNeurons,
		net.outputNeurons, net.stepsPerForward)
}

// Error returns any errors encountered while configuring the Network, particularly while
// chaining construction methods. Only the first error is kept.
func (net *Network) Error() error {
	return net.err
}

// InputSize returns the number of input neurons -- the expected number of values given to
// LoadInput and Forward. If the Network has not been finalized yet, InputSize will return -1.
func (net *Network) InputSize() int {
	if net.stat < finalized {
		return -1
	}

	return net.inputNeurons
}

// OutputSize returns the number of output neurons. If the Network has not been finalized yet,
// OutputSize will return -1.
func (net *Network) OutputSize() int {
	if net.stat < finalized {
		return -1
	}

	return net.outputNeurons
}

// TotalNeurons returns the total number of neurons in the Network: inputs, extras, and outputs.
// If the Network has not been finalized yet, TotalNeurons will return -1.
func (net *Network) TotalNeurons() int {
	if net.stat < finalized {
		return -1
	}

	return net.totalNeurons
}

// StepsPerForward returns the number of propagation steps run by each call to Forward.
func (net *Network) StepsPerForward() int {
	return net.stepsPerForward
}

// Retains returns whether the Network keeps its state between forward passes.
func (net *Network) Retains() bool {
	return net.retainState
}

// NumSynapses returns the number of synapses allowed by the Network's structure mask, including
// the output self-edges that Finalize always forces in. Returns -1 before the mask exists.
func (net *Network) NumSynapses() int {
	if net.mask == nil {
		return -1
	}

	count := 0
	n := net.totalNeurons
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if net.mask.At(i, j) != 0 {
				count++
			}
		}
	}

	return count
}

// AvgFanIn returns the average number of incoming synapses per neuron, used by fan-based
// Initializers.
func (net *Network) AvgFanIn() float64 {
	if net.mask == nil {
		return 0
	}

	return float64(net.NumSynapses()) / float64(net.totalNeurons)
}

// AvgFanOut returns the average number of outgoing synapses per neuron. For a square synaptic
// matrix this equals AvgFanIn; both are provided for clarity at call sites.
func (net *Network) AvgFanOut() float64 {
	return net.AvgFanIn()
}

// CurrentState returns a copy of the Network's state vector, one value per neuron. CurrentState
// returns nil if the Network has not been finalized yet.
func (net *Network) CurrentState() []float64 {
	if net.stat < finalized {
		return nil
	}

	s := make([]float64, net.totalNeurons)
	for i := range s {
		s[i] = net.state.AtVec(i)
	}

	return s
}

// ResetState zeroes the Network's state vector. For Networks with RetainState, this is the
// boundary between sequences; for others it is a no-op in effect, since LoadInput zeroes the
// state anyway.
func (net *Network) ResetState() {
	if net.stat < finalized {
		return
	}

	net.state.Zero()
	net.states = nil
	net.preacts = nil
	net.stat = finalized
}

// Iter returns the Network's iteration within the current training run.
func (net *Network) Iter() int {
	return net.iter
}

// LongIter returns the iteration of the Network as a whole, across training runs. This is the
// value given to HyperParameters.
func (net *Network) LongIter() int {
	return net.longIter
}

// ResetIter resets the Network's tracked number of long-term iterations to the provided value.
// This could be done to bring HyperParameters that are dependent upon iterations back to an
// earlier state. The given value will usually be zero. ResetIter will return ErrNegativeIter if
// the iteration given is less than zero.
func (net *Network) ResetIter(iter int) error {
	if iter < 0 {
		return ErrNegativeIter
	}

	net.longIter = iter
	return nil
}

// ChangeCost changes the CostFunction of the Network, after it has been finalized. This allows
// different CostFunctions for training and final model evaluation. If cf is nil, ChangeCost will
// panic with type NilArgError.
func (net *Network) ChangeCost(cf CostFunction) *Network {
	if cf == nil {
		panic(NilArgError{"CostFunction"})
	}

	net.cf = cf
	return net
}

// MaskAt returns whether the synapse from neuron i to neuron j is allowed by the Network's
// structure.
func (net *Network) MaskAt(i, j int) bool {
	if net.mask == nil {
		return false
	}

	return net.mask.At(i, j) != 0
}

// WeightAt returns the weight of the synapse from neuron i to neuron j.
func (net *Network) WeightAt(i, j int) float64 {
	if net.weights == nil {
		return 0
	}

	return net.weights.At(i, j)
}

// BiasAt returns the bias of neuron i.
func (net *Network) BiasAt(i int) float64 {
	if net.biases == nil {
		return 0
	}

	return net.biases.AtVec(i)
}
