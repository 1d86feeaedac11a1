package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	pagnn "github.com/verbocado/PAGNNs"
	"github.com/verbocado/PAGNNs/activations"
	"github.com/verbocado/PAGNNs/costfuncs"
	"github.com/verbocado/PAGNNs/datasets"
	"github.com/verbocado/PAGNNs/hyperparams"
	"github.com/verbocado/PAGNNs/optimizers"
)

func activationByName(name string) (pagnn.Activation, error) {
	switch name {
	case "identity":
		return activations.Identity(), nil
	case "tanh":
		return activations.Tanh(), nil
	case "logistic", "sigmoid":
		return activations.Logistic(), nil
	case "relu":
		return activations.ReLU(), nil
	case "leaky-relu":
		return activations.LeakyReLU(), nil
	}
	return nil, errors.Errorf("Unknown activation %q", name)
}

func costByName(name string) (pagnn.CostFunction, error) {
	switch name {
	case "mse", "l2":
		return costfuncs.MSE(), nil
	case "abs", "l1":
		return costfuncs.Abs(), nil
	case "huber":
		return costfuncs.Huber(), nil
	case "cross-entropy":
		return costfuncs.CrossEntropy(), nil
	}
	return nil, errors.Errorf("Unknown cost function %q", name)
}

func optimizerByName(name string) (pagnn.Optimizer, error) {
	switch name {
	case "gradient-descent", "sgd":
		return optimizers.GradientDescent(), nil
	case "momentum":
		return optimizers.Momentum(), nil
	case "adam":
		return optimizers.Adam(), nil
	}
	return nil, errors.Errorf("Unknown optimizer %q", name)
}

// buildNetwork constructs an unfinalized network from the viper configuration.
func buildNetwork(inputs, outputs int) (*pagnn.Network, error) {
	net := pagnn.New(inputs, outputs)

	switch s := viper.GetString("structure"); s {
	case "dense", "":
		net.Structure(pagnn.Dense())
	case "layered":
		hidden := viper.GetIntSlice("hidden")
		if len(hidden) == 0 {
			return nil, errors.Errorf("Layered structure requires --hidden")
		}
		net.Structure(pagnn.Layered(hidden...))
	case "sparse":
		net.Structure(pagnn.Sparse(viper.GetFloat64("density")))
	default:
		return nil, errors.Errorf("Unknown structure %q", s)
	}

	if extra := viper.GetInt("extra-neurons"); extra > 0 {
		net.ExtraNeurons(extra)
	}
	if steps := viper.GetInt("steps"); steps > 0 {
		net.Steps(steps)
	}
	net.RetainState(viper.GetBool("retain-state"))

	act, err := activationByName(viper.GetString("activation"))
	if err != nil {
		return nil, err
	}
	opt, err := optimizerByName(viper.GetString("optimizer"))
	if err != nil {
		return nil, err
	}

	net.WithActivation(act).Opt(opt)
	net.AddHP(pagnn.RateKey, hyperparams.Constant(viper.GetFloat64("rate")))

	if net.Error() != nil {
		return nil, net.Error()
	}
	return net, nil
}

// loadDataset fetches the configured task's dataset and returns it along with whether the
// task is a classification problem.
func loadDataset() ([][][]float64, bool, error) {
	root := viper.GetString("data")
	switch task := viper.GetString("task"); task {
	case "linear":
		ds, err := datasets.LinearRegression(root)
		return ds, false, err
	case "multivariate":
		ds, err := datasets.MultivariateLinearRegression(root)
		return ds, false, err
	case "classification":
		ds, err := datasets.NonLinearClassification(root, viper.GetInt("classes"))
		return ds, true, err
	default:
		return nil, false, errors.Errorf("Unknown task %q", task)
	}
}

func normalize(ds [][][]float64) {
	switch viper.GetString("normalize") {
	case "minmax":
		datasets.MinMax(ds)
	case "zscore":
		datasets.ZScore(ds)
	}
}
