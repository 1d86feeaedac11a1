// Package datasets loads the CSV datasets that the PAGNN examples train on, and provides the
// usual preparation helpers: column selection, normalization, one-hot targets, and shuffled
// train/test splitting. Datasets are represented the way the training loop consumes them:
// indexed [sample][inputs, outputs][values].
package datasets

import (
	"encoding/csv"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// LoadCSV reads a dataset from a CSV file, taking inputs and targets from the given column
// indexes. If header is true, the first row is skipped. Every remaining cell in a used column
// must parse as a float.
func LoadCSV(path string, inputCols, targetCols []int, header bool) ([][][]float64, error) {
	if len(inputCols) == 0 {
		return nil, errors.Errorf("No input columns given")
	} else if len(targetCols) == 0 {
		return nil, errors.Errorf("No target columns given")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't open dataset file %q\n", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't parse dataset file %q\n", path)
	}

	if header && len(rows) > 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("Dataset file %q has no data rows", path)
	}

	dataset := make([][][]float64, 0, len(rows))
	for rowIdx, row := range rows {
		sample := [][]float64{
			make([]float64, len(inputCols)),
			make([]float64, len(targetCols)),
		}

		for i, col := range inputCols {
			if sample[0][i], err = cell(row, col); err != nil {
				return nil, errors.Wrapf(err, "Row %d of %q\n", rowIdx, path)
			}
		}
		for i, col := range targetCols {
			if sample[1][i], err = cell(row, col); err != nil {
				return nil, errors.Wrapf(err, "Row %d of %q\n", rowIdx, path)
			}
		}

		dataset = append(dataset, sample)
	}

	return dataset, nil
}

func cell(row []string, col int) (float64, error) {
	if col < 0 || col >= len(row) {
		return 0, errors.Errorf("column %d is out of range (row has %d)", col, len(row))
	}

	v, err := strconv.ParseFloat(row[col], 64)
	if err != nil {
		return 0, errors.Errorf("column %d (%q) is not a number", col, row[col])
	}

	return v, nil
}

// MinMax rescales each input column of the dataset to [0, 1] in place. Constant columns are
// left alone.
func MinMax(dataset [][][]float64) {
	if len(dataset) == 0 {
		return
	}

	for col := range dataset[0][0] {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, sample := range dataset {
			v := sample[0][col]
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}

		if hi == lo {
			continue
		}

		for _, sample := range dataset {
			sample[0][col] = (sample[0][col] - lo) / (hi - lo)
		}
	}
}

// ZScore standardizes each input column of the dataset to zero mean and unit variance in place.
// Constant columns are left alone.
func ZScore(dataset [][][]float64) {
	if len(dataset) == 0 {
		return
	}

	n := float64(len(dataset))
	for col := range dataset[0][0] {
		var mean float64
		for _, sample := range dataset {
			mean += sample[0][col]
		}
		mean /= n

		var variance float64
		for _, sample := range dataset {
			d := sample[0][col] - mean
			variance += d * d
		}
		variance /= n

		if variance == 0 {
			continue
		}

		sd := math.Sqrt(variance)
		for _, sample := range dataset {
			sample[0][col] = (sample[0][col] - mean) / sd
		}
	}
}

// OneHot expands single-column class-index targets into one-hot vectors of the given width. A
// target outside [0, classes) is an error.
func OneHot(dataset [][][]float64, classes int) error {
	if classes < 2 {
		return errors.Errorf("Need at least 2 classes (%d)", classes)
	}

	for i, sample := range dataset {
		if len(sample[1]) != 1 {
			return errors.Errorf("Sample %d does not have a single target column (%d)", i, len(sample[1]))
		}

		class := int(sample[1][0])
		if float64(class) != sample[1][0] || class < 0 || class >= classes {
			return errors.Errorf("Sample %d has an invalid class %v", i, sample[1][0])
		}

		hot := make([]float64, classes)
		hot[class] = 1
		sample[1] = hot
		dataset[i] = sample
	}

	return nil
}

// Split shuffles a copy of the dataset and divides it, putting the given fraction of samples in
// the first returned dataset and the rest in the second.
func Split(dataset [][][]float64, frac float64) (train, test [][][]float64) {
	shuffled := make([][][]float64, len(dataset))
	copy(shuffled, dataset)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := int(frac * float64(len(shuffled)))
	if cut < 0 {
		cut = 0
	} else if cut > len(shuffled) {
		cut = len(shuffled)
	}

	return shuffled[:cut], shuffled[cut:]
}

// The showcased datasets live under datasets/<name>/data.csv relative to some root directory,
// with a header row; inputs occupy every column except the last, which is the target.

// LinearRegression loads the single-feature linear regression dataset from root.
func LinearRegression(root string) ([][][]float64, error) {
	return lastColumnTarget(filepath.Join(root, "linear_regression", "data.csv"))
}

// MultivariateLinearRegression loads the multi-feature linear regression dataset from root.
func MultivariateLinearRegression(root string) ([][][]float64, error) {
	return lastColumnTarget(filepath.Join(root, "multivariate_linear_regression", "data.csv"))
}

// NonLinearClassification loads the non-linear classification dataset from root, expanding the
// class column into one-hot targets.
func NonLinearClassification(root string, classes int) ([][][]float64, error) {
	dataset, err := lastColumnTarget(filepath.Join(root, "non_linear_classification", "data.csv"))
	if err != nil {
		return nil, err
	}

	if err = OneHot(dataset, classes); err != nil {
		return nil, errors.Wrapf(err, "Couldn't expand class targets\n")
	}

	return dataset, nil
}

func lastColumnTarget(path string) ([][][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't open dataset file %q\n", path)
	}

	r := csv.NewReader(f)
	first, err := r.Read()
	f.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't read dataset file %q\n", path)
	}

	if len(first) < 2 {
		return nil, errors.Errorf("Dataset file %q needs at least 2 columns (%d)", path, len(first))
	}

	inputCols := make([]int, len(first)-1)
	for i := range inputCols {
		inputCols[i] = i
	}

	return LoadCSV(path, inputCols, []int{len(first) - 1}, true)
}
