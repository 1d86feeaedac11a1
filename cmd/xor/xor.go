package main

import (
	pagnn "github.com/verbocado/PAGNNs"
	"github.com/verbocado/PAGNNs/activations"
	"github.com/verbocado/PAGNNs/costfuncs"
	"github.com/verbocado/PAGNNs/hyperparams"
	"github.com/verbocado/PAGNNs/optimizers"

	// installs the default Initializer
	_ "github.com/verbocado/PAGNNs/initializers"

	"fmt"
)

const (
	statusFrequency int = 100
	testFrequency   int = 100

	// main hyperparameters
	hiddenSize    int     = 4
	learningRate  float64 = 0.05
	batchSize     int     = 4
	maxIterations int     = 5000

	// where to save/load the network
	path string = "xor-save"
)

func setup() *pagnn.Network {
	fmt.Println("Setting up network...")

	net := pagnn.New(2, 1).
		Structure(pagnn.Layered(hiddenSize)).
		WithActivation(activations.Tanh()).
		Opt(optimizers.Adam()).
		AddHP(pagnn.RateKey, hyperparams.Constant(learningRate))

	if err := net.Finalize(costfuncs.MSE()); err != nil {
		panic(err.Error())
	}

	fmt.Println("Done!")
	return net
}

func train(net *pagnn.Network, dataset [][][]float64) {
	trainData, err := pagnn.Data(dataset, batchSize)
	if err != nil {
		panic(err.Error())
	}

	testData, err := pagnn.Data(dataset, 1)
	if err != nil {
		panic(err.Error())
	}

	args := pagnn.TrainArgs{
		TrainData:    trainData,
		TestData:     testData,
		ShouldTest:   pagnn.Every(testFrequency),
		SendStatus:   pagnn.Every(statusFrequency),
		RunCondition: pagnn.TrainUntil(maxIterations),
		IsCorrect:    pagnn.CorrectRound,
		Update: func(r pagnn.Result) {
			kind := "status"
			if r.IsTest {
				kind = "test"
			}
			fmt.Printf("%d, %s, %v, %v\n", r.Iteration, kind, r.Cost, r.Correct)
		},
	}

	fmt.Println("Starting training...")
	fmt.Println("Iteration, Kind, Cost, Fraction Correct")
	if err := net.Train(args); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done training!")
}

func test(net *pagnn.Network, dataset [][][]float64) {
	testData, err := pagnn.Data(dataset, 1)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("Testing...")
	cost, correct, err := net.Test(testData, pagnn.CorrectRound)
	if err != nil {
		panic(err.Error())
	}
	fmt.Printf("Cost: %v, Fraction Correct: %v\n", cost, correct)
}

func save(net *pagnn.Network) {
	fmt.Println("Saving...")
	if err := net.Save(path, true); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")
}

func load() *pagnn.Network {
	fmt.Println("Loading...")
	net, err := pagnn.Load(path)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")

	return net
}

func main() {
	dataset := [][][]float64{
		{{0, 0}, {0}},
		{{0, 1}, {1}},
		{{1, 0}, {1}},
		{{1, 1}, {0}},
	}

	net := setup()

	train(net, dataset)
	test(net, dataset)
	save(net)
	net = load()
	test(net, dataset)
}
