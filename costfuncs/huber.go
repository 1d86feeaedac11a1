package costfuncs

import (
	"math"
)

type huber struct {
	delta float64
}

const defaultHuberDelta float64 = 1

// Huber returns the Huber cost function, which implements pagnn.CostFunction. The transition
// point between squared and absolute error defaults to 1 and can be set with Delta.
func Huber() *huber {
	return &huber{defaultHuberDelta}
}

// Delta sets the bounds of the transition between squared error and absolute error, returning
// the same CostFunction.
func (h *huber) Delta(delta float64) *huber {
	h.delta = delta
	return h
}

func (h *huber) TypeString() string {
	return "huber"
}

func (h *huber) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		d := math.Abs(outs[i] - targets[i])
		if d <= h.delta {
			sum += 0.5 * d * d
		} else {
			sum += h.delta*d - 0.5*h.delta*h.delta
		}
	}

	return sum / float64(len(outs))
}

func (h *huber) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		d := outs[i] - targets[i]
		if d >= -h.delta && d <= h.delta {
			ds[i] = d / float64(len(outs))
		} else {
			ds[i] = h.delta * math.Copysign(1, d) / float64(len(outs))
		}
	}

	return ds
}
