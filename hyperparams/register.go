package hyperparams

import (
	pagnn "github.com/verbocado/PAGNNs"
)

const defaultLearningRate float64 = 0.01

func init() {
	list := map[string]func() pagnn.HyperParameter{
		Constant(0).TypeString():        func() pagnn.HyperParameter { return Constant(0) },
		StepDecay(0, 0, 1).TypeString(): func() pagnn.HyperParameter { return StepDecay(0, 0, 1) },
	}

	for s, f := range list {
		if err := pagnn.RegisterHyperParameter(s, f); err != nil {
			panic(err.Error())
		}
	}

	pagnn.SetDefaultRate(func() pagnn.HyperParameter { return Constant(defaultLearningRate) })
}
