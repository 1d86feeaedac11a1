package pagnn

import (
	"github.com/pkg/errors"
)

// Correct adjusts the weights in the network, according to the provided inputs and targets. If
// saveChanges is true, the adjustments will not be implemented immediately, and will instead
// wait until AddWeights is called.
func (net *Network) Correct(inputs, targets []float64, saveChanges bool) (cost float64, outs []float64, err error) {
	if outs, err = net.Forward(inputs); err != nil {
		err = errors.Wrapf(err, "Getting outputs failed\n")
		return
	}

	if err = net.getDeltas(targets); err != nil {
		err = errors.Wrapf(err, "Getting deltas failed\n")
		return
	}

	if err = net.adjust(saveChanges); err != nil {
		err = errors.Wrapf(err, "Adjusting weights failed\n")
		return
	}

	cost = net.cf.Cost(outs, targets)
	net.iter++
	net.longIter++
	return
}

// Datum is a simple wrapper used to send training samples to the Network.
type Datum struct {
	// Inputs is the input of the network. It must have the same size as that of the network's
	// inputs.
	Inputs []float64

	// Outputs is the expected output of the network, given the input.
	//
	// For Networks that retain state, providing nil (or length 0) can be used to signify that
	// the outputs at this step are not significant.
	Outputs []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the Network, allowing
// it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() &&
		((len(d.Outputs) == 0 && net.retainState) || len(d.Outputs) == net.OutputSize())
}

// DataSupplier is the primary method of providing datasets to the Network, either for training
// or testing.
type DataSupplier interface {
	// Get returns the next piece of data, given the current iteration.
	Get(int) (Datum, error)

	// BatchEnded returns whether or not the most recent batch has ended, given the current
	// iteration. To not use batching, BatchEnded should always return true (effective
	// mini-batch size of 1).
	//
	// BatchEnded will be called after the last Datum in the batch has been retrieved. It will
	// not be called if the DataSupplier is being used for testing.
	BatchEnded(int) bool

	// DoneTesting indicates whether or not the testing process has finished. This will only be
	// called if the DataSupplier is actually used for providing testing data.
	DoneTesting(int) bool
}

// Result is a wrapper for sending back the progress of the training or testing.
type Result struct {
	// The iteration the result is being sent before
	Iteration int

	// Average cost, from the Network's CostFunction
	Cost float64

	// The fraction correct, as per IsCorrect() from TrainArgs
	// 0 → 1
	Correct float64

	// The result is either from a test or a status update
	IsTest bool
}

type TrainArgs struct {
	TrainData DataSupplier

	// TestData is the source of cross-validation data while training. This can be nil if
	// ShouldTest is also nil.
	TestData DataSupplier

	// ShouldTest indicates whether or not testing should be done before the current iteration.
	ShouldTest func(int) bool

	// SendStatus indicates whether or not to send back general information about the status of
	// the training since the last time 'true' was returned. SendStatus can be left nil to
	// represent an unconditional false.
	//
	// 'true' will be ignored on iteration 0.
	SendStatus func(int) bool

	// RunCondition will be called at each successive iteration to determine if training should
	// continue. Training will stop if 'false' is returned.
	RunCondition func(int) bool

	// IsCorrect returns whether or not the network outputs are correct, given the target
	// outputs. In order, it is given: outputs; targets.
	//
	// The length of both provided slices is guaranteed to be equal.
	IsCorrect func([]float64, []float64) bool

	// ResetEvery gives the number of iterations between state resets for Networks that retain
	// state, marking sequence boundaries in the training data. Zero means the state is never
	// reset. Ignored for Networks that do not retain state.
	ResetEvery int

	// Update is how testing and status updates are returned. If ShouldTest and SendStatus are
	// both nil, then Update can also be left nil.
	Update func(Result)
}

// Train runs the main training loop on the Network, according to the provided arguments.
func (net *Network) Train(args TrainArgs) error {
	// handle error cases and set defaults
	{
		if net.stat < finalized {
			return ErrNetNotFinalized
		}

		if args.Update == nil {
			args.Update = func(r Result) {}
		}

		if args.TrainData == nil {
			return errors.Errorf("TrainData is nil")
		}

		if args.TestData == nil {
			if args.ShouldTest != nil {
				return errors.Errorf("TestData is nil but ShouldTest is not")
			}
			args.ShouldTest = func(i int) bool { return false }
		} else if args.ShouldTest == nil {
			args.ShouldTest = func(i int) bool { return false }
		}

		if args.SendStatus == nil {
			args.SendStatus = func(i int) bool { return false }
		}

		if args.RunCondition == nil {
			return errors.Errorf("RunCondition is nil")
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(a, b []float64) bool { return false }
		}
	}

	net.iter = 0

	var statusCost, statusCorrect float64
	var statusSize int

	for {
		if args.SendStatus(net.iter) && net.iter != 0 && statusSize != 0 {
			args.Update(Result{
				Iteration: net.iter,
				Cost:      statusCost / float64(statusSize),
				Correct:   statusCorrect / float64(statusSize),
				IsTest:    false,
			})

			statusCost, statusCorrect = 0, 0
			statusSize = 0
		}

		if args.ShouldTest(net.iter) {
			cost, correct, err := net.Test(args.TestData, args.IsCorrect)
			if err != nil {
				return errors.Wrapf(err, "Testing on iteration %d failed\n", net.iter)
			}

			args.Update(Result{
				Iteration: net.iter,
				Cost:      cost,
				Correct:   correct,
				IsTest:    true,
			})
		}

		if !args.RunCondition(net.iter) {
			break
		}

		if net.retainState && args.ResetEvery > 0 && net.iter%args.ResetEvery == 0 {
			net.ResetState()
		}

		d, err := args.TrainData.Get(net.iter)
		if err != nil {
			return errors.Wrapf(err, "Failed to get training data on iteration %d\n", net.iter)
		} else if !d.Fits(net) {
			return errors.Errorf("Training data for iteration %d does not fit Network", net.iter)
		}

		outs, err := net.Forward(d.Inputs)
		if err != nil {
			return errors.Wrapf(err, "Failed to get Network outputs on iteration %d\n", net.iter)
		}

		var cost float64
		var correct bool

		endBatch := args.TrainData.BatchEnded(net.iter)

		if len(d.Outputs) != 0 {
			cost = net.cf.Cost(outs, d.Outputs)
			correct = args.IsCorrect(outs, d.Outputs)

			if err := net.getDeltas(d.Outputs); err != nil {
				return errors.Wrapf(err, "Failed to get network deltas on iteration %d\n", net.iter)
			}

			saveChanges := net.hasSavedChanges || !endBatch
			if err = net.adjust(saveChanges); err != nil {
				return errors.Wrapf(err, "Failed to adjust network on iteration %d\n", net.iter)
			}

			if endBatch && net.hasSavedChanges {
				net.AddWeights()
			}

			statusCost += cost
			if correct {
				statusCorrect += 1.0
			}
			statusSize++
		}

		net.iter++
		net.longIter++
	}

	// finish up before returning
	if net.hasSavedChanges {
		net.AddWeights()
	}

	if net.retainState {
		net.ResetState()
	}

	return nil
}

// Test evaluates the Network on the provided data without adjusting any weights, returning the
// average cost and the fraction of samples for which isCorrect returned true.
func (net *Network) Test(data DataSupplier, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if net.stat < finalized {
		return 0, 0, ErrNetNotFinalized
	}

	if isCorrect == nil {
		isCorrect = func(a, b []float64) bool { return false }
	}

	var avgCost, avgCorrect float64
	var testSize int

	if net.retainState {
		defer net.ResetState()
	}

	for !data.DoneTesting(testSize) {
		d, err := data.Get(testSize)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get test sample %d\n", testSize)
		} else if !d.Fits(net) {
			return 0, 0, errors.Errorf("Test sample %d does not fit Network dimensions", testSize)
		}

		testSize++

		outs, err := net.Forward(d.Inputs)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get Network outputs with test sample %d\n", testSize)
		}

		if len(d.Outputs) == 0 {
			continue
		}

		avgCost += net.cf.Cost(outs, d.Outputs)
		if isCorrect(outs, d.Outputs) {
			avgCorrect += 1
		}
	}

	if testSize != 0 {
		avgCost /= float64(testSize)
		avgCorrect /= float64(testSize)
	}

	return avgCost, avgCorrect, nil
}

type internalSupplier struct {
	get         func(int) (Datum, error)
	batchEnded  func(int) bool
	doneTesting func(int) bool
}

func (s internalSupplier) Get(iter int) (Datum, error) {
	return s.get(iter)
}

func (s internalSupplier) BatchEnded(iter int) bool {
	return s.batchEnded(iter)
}

func (s internalSupplier) DoneTesting(iter int) bool {
	return s.doneTesting(iter)
}

// Data converts a 3D dataset of float64 to a DataSupplier, which can be used for training or
// testing. dataset indexing is: [data index][inputs, outputs][values]
//
// N.B.: Data does not check if the data fit a certain network; that will be done during
// training/testing.
func Data(dataset [][][]float64, batchSize int) (DataSupplier, error) {
	d := dataset
	if len(d) == 0 {
		return nil, errors.Errorf("dataset has no data (len == 0)")
	} else if batchSize < 1 {
		return nil, errors.Errorf("batch size must be >= 1 (%d)", batchSize)
	}

	// check we won't get indexes out of bounds
	for i := range d {
		if len(d[i]) < 2 {
			return nil, errors.Errorf("dataset lacks required data at index %d (len([%d]) < 2)", i, i)
		}
	}

	is := internalSupplier{
		get: func(iter int) (Datum, error) {
			i := iter % len(d)
			return Datum{d[i][0], d[i][1]}, nil
		},
		batchEnded:  EndEvery(batchSize),
		doneTesting: func(iter int) bool { return iter >= len(d) },
	}

	return is, nil
}
