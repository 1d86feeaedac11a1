package activations

type relu int8

// ReLU returns the rectified linear activation: max(0, z).
func ReLU() relu {
	return relu(0)
}

func (r relu) TypeString() string {
	return "relu"
}

func (r relu) Apply(z float64) float64 {
	if z < 0 {
		return 0
	}

	return z
}

func (r relu) Deriv(z float64) float64 {
	if z < 0 {
		return 0
	}

	return 1
}

type leakyReLU struct {
	Alpha float64
}

const defaultLeakyAlpha float64 = 0.01

// LeakyReLU returns a rectified linear activation with a small slope for negative values, to
// avoid dead neurons. The slope can be changed with Slope.
func LeakyReLU() *leakyReLU {
	return &leakyReLU{defaultLeakyAlpha}
}

// Slope sets the negative-side slope of the activation, returning the same Activation.
func (l *leakyReLU) Slope(alpha float64) *leakyReLU {
	l.Alpha = alpha
	return l
}

func (l *leakyReLU) TypeString() string {
	return "leaky-relu"
}

func (l *leakyReLU) Apply(z float64) float64 {
	if z < 0 {
		return l.Alpha * z
	}

	return z
}

func (l *leakyReLU) Deriv(z float64) float64 {
	if z < 0 {
		return l.Alpha
	}

	return 1
}
