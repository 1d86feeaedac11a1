package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pagnn "github.com/verbocado/PAGNNs"
	"github.com/verbocado/PAGNNs/datasets"
)

func trainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a network on one of the bundled dataset formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain()
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
	fs.String("optimizer", "adam", "optimizer (gradient-descent, momentum, adam)")
	fs.Float64("rate", 0.01, "learning rate")

	fs.Int("iterations", 10000, "number of training iterations")
	fs.Int("batch-size", 1, "mini-batch size")
	fs.Float64("test-frac", 0.2, "fraction of the dataset held out for testing")
	fs.Int("status-every", 500, "iterations between status updates")
	fs.String("out", "", "directory to save the trained network to")

	return cmd
}

func runTrain() error {
	ds, classification, err := loadDataset()
	if err != nil {
		return errors.Wrapf(err, "Failed to load dataset\n")
	}
	normalize(ds)

	trainSet, testSet := ds, [][][]float64(nil)
	if frac := viper.GetFloat64("test-frac"); frac > 0 {
		trainSet, testSet = datasets.Split(ds, 1-frac)
	}

	logger.Info().
		Int("train", len(trainSet)).
		Int("test", len(testSet)).
		Str("task", viper.GetString("task")).
		Msg("dataset loaded")

	net, err := buildNetwork(len(trainSet[0][0]), len(trainSet[0][1]))
	if err != nil {
		return errors.Wrapf(err, "Failed to construct network\n")
	}

	cf, err := costByName(viper.GetString("cost"))
	if err != nil {
		return err
	}
	if err := net.Finalize(cf); err != nil {
		return errors.Wrapf(err, "Failed to finalize network\n")
	}

	logger.Info().
		Int("neurons", net.TotalNeurons()).
		Int("synapses", net.NumSynapses()).
		Int("steps", net.StepsPerForward()).
		Msg("network finalized")

	trainData, err := pagnn.Data(trainSet, viper.GetInt("batch-size"))
	if err != nil {
		return errors.Wrapf(err, "Failed to wrap training data\n")
	}

	args := pagnn.TrainArgs{
		TrainData:    trainData,
		SendStatus:   pagnn.Every(viper.GetInt("status-every")),
		RunCondition: pagnn.TrainUntil(viper.GetInt("iterations")),
		Update:       logResult,
	}

	if classification {
		args.IsCorrect = pagnn.CorrectHighest
	}

	if len(testSet) > 0 {
		testData, err := pagnn.Data(testSet, 1)
		if err != nil {
			return errors.Wrapf(err, "Failed to wrap test data\n")
		}
		args.TestData = testData
		args.ShouldTest = pagnn.Every(viper.GetInt("status-every"))
	}

	if err := net.Train(args); err != nil {
		return errors.Wrapf(err, "Training failed\n")
	}

	if len(testSet) > 0 {
		cost, correct, err := net.Test(args.TestData, args.IsCorrect)
		if err != nil {
			return errors.Wrapf(err, "Final test failed\n")
		}
		logger.Info().Float64("cost", cost).Float64("correct", correct).Msg("final test")
	}

	if out := viper.GetString("out"); out != "" {
		if err := net.Save(out, true); err != nil {
			return errors.Wrapf(err, "Failed to save network to %s\n", out)
		}
		logger.Info().Str("dir", out).Msg("network saved")
	}

	return nil
}

func logResult(r pagnn.Result) {
	ev := logger.Info().
		Int("iteration", r.Iteration).
		Float64("cost", r.Cost).
		Float64("correct", r.Correct)
	if r.IsTest {
		ev.Msg("test")
	} else {
		ev.Msg("status")
	}
}
