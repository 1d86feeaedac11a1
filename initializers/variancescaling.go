package initializers

import (
	"math"
	"math/rand"

	pagnn "github.com/verbocado/PAGNNs"
)

type varianceScaling struct {
	// either: "in", "out", "avg"
	mode   string
	factor float64
}

const defaultVarianceMode string = "avg"

// VarianceScaling returns the variance scaling initializer, which has 3 modes and a
// user-defined scaling factor. The three modes can be set by In, Out, and Avg. It defaults to
// Avg. The fan counts come from the Network's structure mask, so sparser networks get
// proportionally larger weights.
func VarianceScaling() *varianceScaling {
	return &varianceScaling{defaultVarianceMode, defaultValue["varscl-factor"]}
}

// Factor sets the scaling factor to be used for the Initializer. The default factor can be set
// by SetDefault("varscl-factor").
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// In sets the scaling to be based on the average number of incoming synapses per neuron.
func (v *varianceScaling) In() *varianceScaling {
	v.mode = "in"
	return v
}

// Out sets the scaling to be based on the average number of outgoing synapses per neuron.
func (v *varianceScaling) Out() *varianceScaling {
	v.mode = "out"
	return v
}

// Avg sets the scaling to be based on the average of the two fan counts.
func (v *varianceScaling) Avg() *varianceScaling {
	v.mode = "avg"
	return v
}

// Set is the implementation of pagnn.Initializer.
func (v *varianceScaling) Set(net *pagnn.Network, ws []float64) {
	var scale float64
	if v.mode == "in" {
		scale = net.AvgFanIn()
	} else if v.mode == "out" {
		scale = net.AvgFanOut()
	} else { // must be "avg"
		scale = (net.AvgFanIn() + net.AvgFanOut()) / 2
	}

	if scale <= 0 {
		scale = 1
	}

	sd := math.Sqrt(v.factor / scale)
	for i := range ws {
		ws[i] = rand.NormFloat64() * sd
	}
}
