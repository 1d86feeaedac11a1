package costfuncs

import (
	pagnn "github.com/verbocado/PAGNNs"
)

func init() {
	list := map[string]func() pagnn.CostFunction{
		MSE().TypeString():          func() pagnn.CostFunction { return MSE() },
		CrossEntropy().TypeString(): func() pagnn.CostFunction { return CrossEntropy() },
		Huber().TypeString():        func() pagnn.CostFunction { return Huber() },
		Abs().TypeString():          func() pagnn.CostFunction { return Abs() },
	}

	for s, f := range list {
		if err := pagnn.RegisterCostFunction(s, f); err != nil {
			panic(err.Error())
		}
	}
}
