package activations

import (
	"math"
)

type logistic int8

// Logistic returns the logistic (sigmoid) activation, squashing values to (0, 1).
func Logistic() logistic {
	return logistic(0)
}

func (l logistic) TypeString() string {
	return "logistic"
}

func (l logistic) Apply(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func (l logistic) Deriv(z float64) float64 {
	v := l.Apply(z)
	return v * (1 - v)
}
