package pagnn

// Activation is the nonlinearity applied to every neuron after each propagation step. Activations
// are applied elementwise and must be differentiable almost everywhere.
type Activation interface {
	// TypeString returns the string corresponding to the type of the Activation. For example:
	// the Activation "Tanh" should return "tanh", or something to that effect.
	TypeString() string

	// Apply returns the activation of a single pre-activation value.
	Apply(float64) float64

	// Deriv returns the derivative of the activation with respect to its pre-activation input.
	Deriv(float64) float64
}

// CostFunction determines the cost of a set of outputs, given their targets, and provides the
// derivatives used to seed backpropagation.
type CostFunction interface {
	// TypeString returns the string corresponding to the type of the CostFunction.
	TypeString() string

	// Cost returns the total cost of the outputs, given the targets. It can be assumed that both
	// slices have the same length and contain no NaNs or Infs.
	Cost(outs, targets []float64) float64

	// Derivs returns the derivative of the cost with respect to each output. The returned slice
	// has the same length as outs. Derivs will only be called after Cost, so parts of the
	// calculation may be reused.
	Derivs(outs, targets []float64) []float64
}

// Optimizer is called to suggest changes to each parameter of the Network, given: the number of
// parameters, the gradient at each parameter, a function to add to each parameter, and a
// learning-rate. Weights are indexed before biases; masked-out synapses report a gradient of zero.
type Optimizer interface {
	Run(net *Network, size int, grad func(int) float64, add func(int, float64), learningRate float64) error

	// TypeString returns the string corresponding to the type of the Optimizer. For example: the
	// Optimizer "Adam" should return "adam", or something to that effect.
	TypeString() string

	// Save and Load store and recover any accumulated internal state (e.g. momentum), given a path
	// to a directory. Stateless Optimizers may do nothing for both.
	Save(net *Network, dirPath string) error
	Load(net *Network, dirPath string) error
}

// HyperParameter provides a value that may change as training progresses, indexed by the
// Network's long-term iteration count.
type HyperParameter interface {
	// TypeString returns the string corresponding to the type of the HyperParameter.
	TypeString() string

	// Value returns the value of the HyperParameter at the given iteration.
	Value(iter int) float64

	Save(net *Network, dirPath string) error
	Load(dirPath string) error
}

// Initializer dictates how the synaptic weights of a Network are set at Finalize, given a blank
// slice with one entry per synapse allowed by the structure.
type Initializer interface {
	Set(net *Network, ws []float64)
}

// Penalty adds a regularization term to the gradient of each weight. The returned value is the
// derivative of the penalty with respect to the weight, and is added to the weight's gradient
// before the Optimizer runs. Biases are not penalized.
type Penalty interface {
	TypeString() string
	Deriv(weight float64) float64
}
