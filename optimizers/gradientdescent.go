package optimizers

import (
	pagnn "github.com/verbocado/PAGNNs"
)

type gradientdescent int8

// GradientDescent returns the plain stochastic gradient descent optimizer, which implements
// pagnn.Optimizer. This is the default Optimizer.
func GradientDescent() gradientdescent {
	return gradientdescent(0)
}

// SGD is a proxy for GradientDescent
func SGD() gradientdescent {
	return GradientDescent()
}

func (g gradientdescent) TypeString() string {
	return "gradient-descent"
}

func (g gradientdescent) Run(net *pagnn.Network, size int, grad func(int) float64, add func(int, float64), learningRate float64) error {
	for i := 0; i < size; i++ {
		add(i, -1*learningRate*grad(i))
	}

	return nil
}

// GradientDescent carries no state between iterations, so there is nothing to save or load.
func (g gradientdescent) Save(net *pagnn.Network, dirPath string) error {
	return nil
}

func (g gradientdescent) Load(net *pagnn.Network, dirPath string) error {
	return nil
}
