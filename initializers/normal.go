package initializers

import (
	"math/rand"

	pagnn "github.com/verbocado/PAGNNs"
)

type normal struct {
	mean, sd float64
}

// Normal returns an Initializer that draws each weight from a Gaussian with the given defaults
// ("normal-mean" and "normal-sd"), which can be changed by Params or package-wide by SetDefault.
func Normal() *normal {
	return &normal{defaultValue["normal-mean"], defaultValue["normal-sd"]}
}

// Params sets the mean and standard deviation of the distribution, returning the same
// Initializer.
func (n *normal) Params(mean, sd float64) *normal {
	n.mean = mean
	n.sd = sd
	return n
}

func (n *normal) Set(net *pagnn.Network, ws []float64) {
	for i := range ws {
		ws[i] = rand.NormFloat64()*n.sd + n.mean
	}
}
