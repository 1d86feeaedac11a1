package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pagnn "github.com/verbocado/PAGNNs"
)

func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a saved network on a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval()
		},
	}

	fs := cmd.Flags()
	fs.String("model", "", "directory the network was saved to")
	fs.String("task", "linear", "dataset task (linear, multivariate, classification)")
	fs.String("data", "datasets", "root directory holding the dataset folders")
	fs.Int("classes", 2, "number of classes for classification tasks")
	fs.String("normalize", "none", "input normalization (none, minmax, zscore)")

	return cmd
}

func runEval() error {
	dir := viper.GetString("model")
	if dir == "" {
		return errors.Errorf("--model is required")
	}

	net, err := pagnn.Load(dir)
	if err != nil {
		return errors.Wrapf(err, "Failed to load network from %s\n", dir)
	}

	logger.Info().
		Int("neurons", net.TotalNeurons()).
		Int("synapses", net.NumSynapses()).
		Msg("network loaded")

	ds, classification, err := loadDataset()
	if err != nil {
		return errors.Wrapf(err, "Failed to load dataset\n")
	}
	normalize(ds)

	data, err := pagnn.Data(ds, 1)
	if err != nil {
		return errors.Wrapf(err, "Failed to wrap dataset\n")
	}

	var isCorrect func([]float64, []float64) bool
	if classification {
		isCorrect = pagnn.CorrectHighest
	}

	cost, correct, err := net.Test(data, isCorrect)
	if err != nil {
		return errors.Wrapf(err, "Testing failed\n")
	}

	logger.Info().Float64("cost", cost).Float64("correct", correct).Msg("evaluation")
	return nil
}
