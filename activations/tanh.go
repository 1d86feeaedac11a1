package activations

import (
	"math"
)

type tanh int8

// Tanh returns the hyperbolic tangent activation, squashing values to (-1, 1).
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Apply(z float64) float64 {
	return math.Tanh(z)
}

func (t tanh) Deriv(z float64) float64 {
	v := math.Tanh(z)
	return 1 - v*v
}
