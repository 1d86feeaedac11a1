package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pagnn "github.com/verbocado/PAGNNs"
	"github.com/verbocado/PAGNNs/evolve"
)

func evolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Search for network weights with an evolutionary strategy instead of backprop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvolve()
		},
	}

	fs := cmd.Flags()
	fs.String("task", "linear", "dataset task (linear, multivariate, classification)")
	fs.String("data", "datasets", "root directory holding the dataset folders")
	fs.Int("classes", 2, "number of classes for classification tasks")
	fs.String("normalize", "none", "input normalization (none, minmax, zscore)")

	fs.String("structure", "dense", "network structure (dense, layered, sparse)")
	fs.IntSlice("hidden", nil, "hidden layer sizes for the layered structure")
	fs.Float64("density", 0.5, "connection density for the sparse structure")
	fs.Int("extra-neurons", 0, "number of extra neurons beyond inputs and outputs")
	fs.Int("steps", 0, "steps per forward pass (0 uses the structure's default)")
	fs.Bool("retain-state", false, "keep neuron state between forward passes")

	fs.String("activation", "tanh", "activation function")
	fs.String("cost", "mse", "cost function (mse, abs, huber, cross-entropy)")
	fs.String("optimizer", "gradient-descent", "optimizer stored with the network")
	fs.Float64("rate", 0.01, "learning rate stored with the network")

	fs.String("strategy", evolve.StrategyEvolutionary, "search strategy (evolutionary, random)")
	fs.Int("population", 100, "population size")
	fs.Int("generations", 10, "number of generations")
	fs.Float64("weight-prob", 1e-4, "per-weight mutation probability")
	fs.Float64("bias-prob", 1e-2, "per-bias mutation probability")
	fs.Float64("max-magnitude", 0.5, "largest absolute value of a mutation")
	fs.Float64("random-frac", 0.1, "fraction of each generation replaced with fresh genomes")
	fs.String("out", "", "directory to save the best network to")

	return cmd
}

func runEvolve() error {
	ds, classification, err := loadDataset()
	if err != nil {
		return errors.Wrapf(err, "Failed to load dataset\n")
	}
	normalize(ds)

	cf, err := costByName(viper.GetString("cost"))
	if err != nil {
		return err
	}

	gen := func() (*pagnn.Network, error) {
		net, err := buildNetwork(len(ds[0][0]), len(ds[0][1]))
		if err != nil {
			return nil, err
		}
		if err := net.Finalize(cf); err != nil {
			return nil, err
		}
		return net, nil
	}

	var isCorrect func([]float64, []float64) bool
	if classification {
		isCorrect = pagnn.CorrectHighest
	}

	eval := func(net *pagnn.Network) (float64, error) {
		data, err := pagnn.Data(ds, 1)
		if err != nil {
			return 0, err
		}

		cost, _, err := net.Test(data, isCorrect)
		if err != nil {
			return 0, err
		}

		// higher is better
		return -cost, nil
	}

	cfg := evolve.Config{
		PopulationSize: viper.GetInt("population"),
		Generations:    viper.GetInt("generations"),
		Strategy:       viper.GetString("strategy"),
		WeightProb:     viper.GetFloat64("weight-prob"),
		BiasProb:       viper.GetFloat64("bias-prob"),
		MaxMagnitude:   viper.GetFloat64("max-magnitude"),
		RandomFraction: viper.GetFloat64("random-frac"),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	best, err := evolve.Run(ctx, logger, cfg, gen, eval)
	if err != nil {
		return errors.Wrapf(err, "Evolution failed\n")
	}

	logger.Info().
		Str("id", best.ID.String()).
		Float64("score", best.Score).
		Msg("search finished")

	if out := viper.GetString("out"); out != "" {
		if err := best.Net.Save(out, true); err != nil {
			return errors.Wrapf(err, "Failed to save network to %s\n", out)
		}
		logger.Info().Str("dir", out).Msg("network saved")
	}

	return nil
}
