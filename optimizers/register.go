package optimizers

import (
	pagnn "github.com/verbocado/PAGNNs"
)

func init() {
	list := map[string]func() pagnn.Optimizer{
		GradientDescent().TypeString(): func() pagnn.Optimizer { return GradientDescent() },
		Momentum().TypeString():        func() pagnn.Optimizer { return Momentum() },
		Adam().TypeString():            func() pagnn.Optimizer { return Adam() },
	}

	for s, f := range list {
		if err := pagnn.RegisterOptimizer(s, f); err != nil {
			panic(err.Error())
		}
	}

	pagnn.SetDefaultOptimizer(func() pagnn.Optimizer { return GradientDescent() })
}
