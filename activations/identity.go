package activations

type identity int8

// Identity returns the identity activation, which leaves pre-activation values untouched. This
// is the default Activation: the plain graph propagation has no nonlinearity.
func Identity() identity {
	return identity(0)
}

func (i identity) TypeString() string {
	return "identity"
}

func (i identity) Apply(z float64) float64 {
	return z
}

func (i identity) Deriv(z float64) float64 {
	return 1
}
