package pagnn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LoadInput writes the given values into the input neurons of the state vector. Unless the
// Network retains state, the rest of the state is zeroed first. There are two error conditions:
//	(0) If the Network has not been finalized: ErrNetNotFinalized,
//	(1) If the number of inputs doesn't match InputSize(): type SizeMismatchError,
// If PanicErrors() has been called, error conditions will be panicked, not returned.
func (net *Network) LoadInput(inputs []float64) error {
	if net.stat < finalized {
		if net.panicErrors {
			panic(ErrNetNotFinalized)
		}

		return ErrNetNotFinalized
	}

	if len(inputs) != net.inputNeurons {
		err := SizeMismatchError{net.inputNeurons, len(inputs), "inputs"}
		if net.panicErrors {
			panic(err)
		}

		return err
	}

	if !net.retainState {
		net.state.Zero()
	}

	for i, v := range inputs {
		net.state.SetVec(i, v)
	}

	// start a fresh backpropagation window at the loaded state
	s0 := mat.NewVecDense(net.totalNeurons, nil)
	s0.CopyVec(net.state)
	net.states = append(net.states[:0], s0)
	net.preacts = net.preacts[:0]

	net.stat = finalized
	return nil
}

// Step runs one synaptic propagation: every neuron's new value is the activation of the weighted
// sum of the values of the neurons feeding it, plus its bias. Step returns ErrNetNotFinalized if
// the Network has not been finalized.
func (net *Network) Step() error {
	if net.stat < finalized {
		if net.panicErrors {
			panic(ErrNetNotFinalized)
		}

		return ErrNetNotFinalized
	}

	n := net.totalNeurons

	z := mat.NewVecDense(n, nil)
	z.MulVec(net.weights.T(), net.state)
	z.AddVec(z, net.biases)

	s := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetVec(i, net.act.Apply(z.AtVec(i)))
	}

	net.state = s
	net.preacts = append(net.preacts, z)

	stored := mat.NewVecDense(n, nil)
	stored.CopyVec(s)
	net.states = append(net.states, stored)

	return nil
}

// Output returns a copy of the values of the output neurons -- the last OutputSize() entries of
// the state. Output returns nil if the Network has not been finalized yet.
func (net *Network) Output() []float64 {
	if net.stat < finalized {
		return nil
	}

	outs := make([]float64, net.outputNeurons)
	for i := range outs {
		outs[i] = net.state.AtVec(net.totalNeurons - net.outputNeurons + i)
	}

	return outs
}

// Forward loads the given inputs and runs StepsPerForward() propagation steps, returning a copy
// of the resulting output values. The error conditions are those of LoadInput.
func (net *Network) Forward(inputs []float64) ([]float64, error) {
	if err := net.LoadInput(inputs); err != nil {
		return nil, err
	}

	for t := 0; t < net.stepsPerForward; t++ {
		if err := net.Step(); err != nil {
			return nil, err
		}
	}

	net.stat = evaluated
	return net.Output(), nil
}

// getDeltas backpropagates the CostFunction's derivatives through the recorded propagation
// steps, accumulating weight and bias gradients. Gradients of synapses outside of the structure
// mask are discarded.
func (net *Network) getDeltas(targets []float64) error {
	if net.stat < evaluated {
		return ErrNotEvaluated
	} else if net.stat >= deltas {
		return nil
	}

	if len(targets) != net.outputNeurons {
		return SizeMismatchError{net.outputNeurons, len(targets), "targets"}
	}

	n := net.totalNeurons

	derivs := net.cf.Derivs(net.Output(), targets)
	deltaState := mat.NewVecDense(n, nil)
	for i, d := range derivs {
		deltaState.SetVec(n-net.outputNeurons+i, d)
	}

	deltaPre := mat.NewVecDense(n, nil)
	for t := len(net.preacts); t >= 1; t-- {
		z := net.preacts[t-1]
		for i := 0; i < n; i++ {
			deltaPre.SetVec(i, deltaState.AtVec(i)*net.act.Deriv(z.AtVec(i)))
		}

		net.gradBiases.AddVec(net.gradBiases, deltaPre)
		net.gradWeights.RankOne(net.gradWeights, 1, net.states[t-1], deltaPre)

		deltaState.MulVec(net.weights, deltaPre)
	}

	net.gradWeights.MulElem(net.gradWeights, net.mask)

	if net.pen != nil {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if net.mask.At(i, j) != 0 {
					net.gradWeights.Set(i, j, net.gradWeights.At(i, j)+net.pen.Deriv(net.weights.At(i, j)))
				}
			}
		}
	}

	net.stat = deltas
	return nil
}

// adjust hands the accumulated gradients to the Optimizer. If saveChanges is true, the suggested
// changes are stored and not applied until AddWeights is called; this is how mini-batches are
// accumulated.
func (net *Network) adjust(saveChanges bool) error {
	if net.stat < deltas {
		return ErrNoDeltas
	}

	n := net.totalNeurons
	wsize := n * n

	targetWeights := net.weights
	targetBiases := net.biases
	if saveChanges {
		targetWeights = net.pendingWeights
		targetBiases = net.pendingBiases
	}

	grad := func(index int) float64 {
		if index < wsize {
			return net.gradWeights.At(index/n, index%n)
		}

		return net.gradBiases.AtVec(index - wsize)
	}

	add := func(index int, addend float64) {
		if index < wsize {
			r, c := index/n, index%n
			targetWeights.Set(r, c, targetWeights.At(r, c)+addend)
		} else {
			i := index - wsize
			targetBiases.SetVec(i, targetBiases.AtVec(i)+addend)
		}
	}

	rate := net.hyperParams[RateKey].Value(net.longIter)

	if err := net.opt.Run(net, wsize+n, grad, add, rate); err != nil {
		return errors.Wrapf(err, "Optimizer run failed\n")
	}

	net.gradWeights.Zero()
	net.gradBiases.Zero()

	if saveChanges {
		net.hasSavedChanges = true
	}

	net.stat = adjusted
	return nil
}

// AddWeights updates the weights in the network with any previously saved changes. Only runs if
// there are changes that have not been applied.
func (net *Network) AddWeights() error {
	if !net.hasSavedChanges {
		return nil
	}

	net.weights.Add(net.weights, net.pendingWeights)
	net.weights.MulElem(net.weights, net.mask)
	net.biases.AddVec(net.biases, net.pendingBiases)

	net.pendingWeights.Zero()
	net.pendingBiases.Zero()

	net.hasSavedChanges = false
	net.stat = finalized
	return nil
}
