package pagnn

import (
	"math"
	"sort"
)

// CorrectRound reports whether each output, rounded to the nearest integer after being squashed
// to (0, 1), matches its target. It satisfies TrainArgs.IsCorrect for binary tasks. Assumes
// len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		// rounds to 0 if a number is < 0.5, 1 if > 0.5. Tanh reduces the value to (0, 1)
		if math.Round(0.5*(1+math.Tanh(outs[i]-0.5))) != targets[i] {
			return false
		}
	}

	return true
}

// for use in CorrectHighest()
type sortable struct {
	values  []float64
	indexes []int
}

func (s sortable) Len() int {
	return len(s.values)
}
func (s sortable) Less(i, j int) bool {
	return s.values[i] > s.values[j]
}
func (s sortable) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.indexes[i], s.indexes[j] = s.indexes[j], s.indexes[i]
}

// CorrectHighest reports whether the largest value in outs is at the same index as the largest
// value in targets. It satisfies TrainArgs.IsCorrect for one-hot classification.
func CorrectHighest(outs, targets []float64) bool {
	indexes := make([]int, len(outs))
	for i := range indexes {
		indexes[i] = i
	}

	copyOfIndexes := make([]int, len(outs))
	copy(copyOfIndexes, indexes)

	o := sortable{append([]float64{}, outs...), indexes}
	t := sortable{append([]float64{}, targets...), copyOfIndexes}

	sort.Sort(o)
	sort.Sort(t)

	return o.indexes[0] == t.indexes[0]
}

// TrainUntil returns a function satisfying TrainArgs.RunCondition that allows training until the
// given number of iterations have run.
func TrainUntil(maxIterations int) func(int) bool {
	return func(iteration int) bool {
		return iteration < maxIterations
	}
}

// Every returns a function that is true once every 'frequency' iterations, satisfying
// TrainArgs.SendStatus and TrainArgs.ShouldTest.
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}

// EndEvery returns a function that is true on the last iteration of every consecutive group of
// 'frequency' iterations, satisfying DataSupplier.BatchEnded.
func EndEvery(frequency int) func(int) bool {
	if frequency == 1 {
		return func(iteration int) bool {
			return true
		}
	}

	return func(iteration int) bool {
		return (iteration+1)%frequency == 0
	}
}
