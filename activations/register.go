package activations

import (
	pagnn "github.com/verbocado/PAGNNs"
)

func init() {
	list := map[string]func() pagnn.Activation{
		Identity().TypeString():  func() pagnn.Activation { return Identity() },
		Tanh().TypeString():      func() pagnn.Activation { return Tanh() },
		Logistic().TypeString():  func() pagnn.Activation { return Logistic() },
		ReLU().TypeString():      func() pagnn.Activation { return ReLU() },
		LeakyReLU().TypeString(): func() pagnn.Activation { return LeakyReLU() },
	}

	for s, f := range list {
		if err := pagnn.RegisterActivation(s, f); err != nil {
			panic(err.Error())
		}
	}

	pagnn.SetDefaultActivation(func() pagnn.Activation { return Identity() })
}
