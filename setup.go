package pagnn

import (
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// RateKey is the name of the HyperParameter used as the learning rate during training.
const RateKey = "learning-rate"

// New returns an unfinalized Network with the given numbers of input and output neurons.
// Configuration methods can be chained onto New; errors they encounter accumulate on the Network
// and are reported by Finalize (or panicked, if PanicErrors has been called).
func New(inputs, outputs int) *Network {
	net := &Network{
		inputNeurons:  inputs,
		outputNeurons: outputs,
		hyperParams:   make(map[string]HyperParameter),
	}

	if inputs < 1 {
		net.setError(errors.Errorf("Network must have at least 1 input neuron (%d)", inputs))
	} else if outputs < 1 {
		net.setError(errors.Errorf("Network must have at least 1 output neuron (%d)", outputs))
	}

	return net
}

// PanicErrors sets the Network to panic on errors instead of storing or returning them,
// returning the same Network.
func (net *Network) PanicErrors() *Network {
	net.panicErrors = true
	return net
}

// ExtraNeurons sets the number of latent neurons -- neurons that are neither input nor output
// -- in the Network. Structures that imply their own count (e.g. Layered) do not need this.
func (net *Network) ExtraNeurons(count int) *Network {
	if net.err != nil {
		return net
	} else if net.stat >= finalized {
		net.setError(ErrNetFinalized)
		return net
	}

	if count < 0 {
		net.setError(errors.Errorf("Network cannot have a negative number of extra neurons (%d)", count))
		return net
	}

	net.extraNeurons = count
	return net
}

// Steps sets the number of propagation steps run per forward pass, overriding the Structure's
// default.
func (net *Network) Steps(steps int) *Network {
	if net.err != nil {
		return net
	} else if net.stat >= finalized {
		net.setError(ErrNetFinalized)
		return net
	}

	if steps < 1 {
		net.setError(errors.Errorf("Network must run at least 1 step per forward pass (%d)", steps))
		return net
	}

	net.stepsPerForward = steps
	return net
}

// RetainState sets whether the Network keeps its state between forward passes. With retain set,
// LoadInput overwrites only the input neurons, and the rest of the state persists -- the
// "persistent" in PAGNN. ResetState clears it explicitly.
func (net *Network) RetainState(retain bool) *Network {
	net.retainState = retain
	return net
}

// Structure sets the Structure determining which synapses exist. If unset, the Network defaults
// to Dense().
func (net *Network) Structure(s Structure) *Network {
	if net.err != nil {
		return net
	} else if net.stat >= finalized {
		net.setError(ErrNetFinalized)
		return net
	}

	if s == nil {
		net.setError(NilArgError{"Structure"})
		return net
	}

	net.structure = s
	return net
}

// WithActivation sets the Activation applied after every propagation step. If unset, the
// default (installed by the activations subpackage) is used.
func (net *Network) WithActivation(a Activation) *Network {
	if net.err != nil {
		return net
	} else if net.stat >= finalized {
		net.setError(ErrNetFinalized)
		return net
	}

	if a == nil {
		net.setError(NilArgError{"Activation"})
		return net
	}

	net.act = a
	return net
}

// Opt sets the Optimizer used to adjust weights during training.
func (net *Network) Opt(opt Optimizer) *Network {
	if net.err != nil {
		return net
	}

	if opt == nil {
		net.setError(NilArgError{"Optimizer"})
		return net
	}

	net.opt = opt
	return net
}

// Init sets the Initializer used to fill the synaptic weights at Finalize.
func (net *Network) Init(init Initializer) *Network {
	if net.err != nil {
		return net
	} else if net.stat >= finalized {
		net.setError(ErrNetFinalized)
		return net
	}

	if init == nil {
		net.setError(NilArgError{"Initializer"})
		return net
	}

	net.init = init
	return net
}

// Pen sets a Penalty (regularization) applied to the weight gradients during training.
func (net *Network) Pen(pen Penalty) *Network {
	if net.err != nil {
		return net
	}

	if pen == nil {
		net.setError(NilArgError{"Penalty"})
		return net
	}

	net.pen = pen
	return net
}

// AddHP attaches a named HyperParameter to the Network. The name RateKey ("learning-rate") is
// required for training; others are available to Optimizers. Names cannot contain whitespace or
// path separators, since they are written into the saved network.
func (net *Network) AddHP(name string, hp HyperParameter) *Network {
	if net.err != nil {
		return net
	}

	if hp == nil {
		net.setError(NilArgError{"HyperParameter"})
		return net
	} else if name == "" {
		net.setError(errors.Errorf(`HyperParameter name cannot be ""`))
		return net
	} else if strings.ContainsAny(name, " \t\n/\\") {
		// names become part of the save format: one space-delimited line per
		// HyperParameter, and a directory per name
		net.setError(errors.Errorf("HyperParameter name %q contains illegal characters", name))
		return net
	} else if net.hyperParams[name] != nil {
		net.setError(errors.Errorf("HyperParameter name %q is already taken", name))
		return net
	}

	net.hyperParams[name] = hp
	return net
}

// HP returns the HyperParameter attached under the given name, or nil if there is none.
func (net *Network) HP(name string) HyperParameter {
	return net.hyperParams[name]
}

// Finalize validates the Network's configuration, allocates its synaptic matrix, state, and
// gradient buffers, initializes the weights, and sets the CostFunction. After Finalize, the
// architecture is fixed; only the weights change. If cf is nil, Finalize panics with type
// NilArgError.
func (net *Network) Finalize(cf CostFunction) error {
	if cf == nil {
		panic(NilArgError{"CostFunction"})
	}

	if net.err != nil {
		return net.err
	} else if net.stat >= finalized {
		if net.panicErrors {
			panic(ErrNetFinalized)
		}
		return ErrNetFinalized
	}

	if net.structure == nil {
		net.structure = Dense()
	}

	// structures like Layered imply their own number of extra neurons
	if sizer, ok := net.structure.(extraSizer); ok {
		implied := sizer.extraNeurons()
		if net.extraNeurons != 0 && net.extraNeurons != implied {
			err := errors.Errorf("Structure %q implies %d extra neurons, but %d were requested",
				net.structure.TypeString(), implied, net.extraNeurons)
			net.setError(err)
			return err
		}

		net.extraNeurons = implied
	}

	net.totalNeurons = net.inputNeurons + net.extraNeurons + net.outputNeurons
	n := net.totalNeurons

	if net.stepsPerForward == 0 {
		net.stepsPerForward = net.structure.Steps(net.inputNeurons, net.extraNeurons, net.outputNeurons)
	}

	if net.act == nil {
		if defaultActivation == nil {
			err := errors.Errorf("Network has no Activation and no default is installed (import the activations subpackage)")
			net.setError(err)
			return err
		}
		net.act = defaultActivation()
	}

	if net.opt == nil {
		if defaultOptimizer == nil {
			err := errors.Errorf("Network has no Optimizer and no default is installed (import the optimizers subpackage)")
			net.setError(err)
			return err
		}
		net.opt = defaultOptimizer()
	}

	if net.init == nil {
		if defaultInitializer == nil {
			err := errors.Errorf("Network has no Initializer and no default is installed (import the initializers subpackage)")
			net.setError(err)
			return err
		}
		net.init = defaultInitializer()
	}

	if net.hyperParams[RateKey] == nil {
		if defaultRate == nil {
			err := errors.Errorf("Network has no %q HyperParameter and no default is installed (import the hyperparams subpackage)", RateKey)
			net.setError(err)
			return err
		}
		net.hyperParams[RateKey] = defaultRate()
	}

	net.mask = net.structure.Mask(net.inputNeurons, net.extraNeurons, net.outputNeurons)

	// output self-edges are always present: they keep computed outputs alive across trailing
	// steps
	for i := n - net.outputNeurons; i < n; i++ {
		net.mask.Set(i, i, 1)
	}

	net.weights = mat.NewDense(n, n, nil)
	net.biases = mat.NewVecDense(n, nil)
	net.state = mat.NewVecDense(n, nil)
	net.gradWeights = mat.NewDense(n, n, nil)
	net.gradBiases = mat.NewVecDense(n, nil)
	net.pendingWeights = mat.NewDense(n, n, nil)
	net.pendingBiases = mat.NewVecDense(n, nil)

	net.initWeights()

	net.cf = cf
	net.stat = finalized
	return nil
}

// initWeights fills the masked entries of the weight matrix from the Initializer, then seeds the
// output self-edges with weight 1. Biases start at zero.
func (net *Network) initWeights() {
	n := net.totalNeurons

	ws := make([]float64, net.NumSynapses())
	net.init.Set(net, ws)

	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if net.mask.At(i, j) != 0 {
				net.weights.Set(i, j, ws[k])
				k++
			}
		}
	}

	for i := n - net.outputNeurons; i < n; i++ {
		net.weights.Set(i, i, 1)
	}
}
