package optimizers

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	pagnn "github.com/verbocado/PAGNNs"
)

type adam struct {
	Beta1, Beta2 float64
	Epsilon      float64

	// first and second moment estimates, and the number of updates so far
	M, V []float64
	T    int
}

const adam_file string = "adam.json"

const (
	defaultAdamBeta1   float64 = 0.9
	defaultAdamBeta2   float64 = 0.999
	defaultAdamEpsilon float64 = 1e-8
)

// Adam returns the Adam optimizer, which implements pagnn.Optimizer. The decay rates default to
// the usual 0.9 and 0.999 and can be set with Betas.
func Adam() *adam {
	return &adam{
		Beta1:   defaultAdamBeta1,
		Beta2:   defaultAdamBeta2,
		Epsilon: defaultAdamEpsilon,
	}
}

// Betas sets the decay rates of the first and second moment estimates, returning the same
// Optimizer.
func (a *adam) Betas(beta1, beta2 float64) *adam {
	a.Beta1 = beta1
	a.Beta2 = beta2
	return a
}

func (a *adam) TypeString() string {
	return "adam"
}

func (a *adam) Run(net *pagnn.Network, size int, grad func(int) float64, add func(int, float64), learningRate float64) error {
	if len(a.M) != size {
		a.M = make([]float64, size)
		a.V = make([]float64, size)
		a.T = 0
	}

	a.T++

	c1 := 1 - math.Pow(a.Beta1, float64(a.T))
	c2 := 1 - math.Pow(a.Beta2, float64(a.T))

	for i := 0; i < size; i++ {
		g := grad(i)

		a.M[i] = a.Beta1*a.M[i] + (1-a.Beta1)*g
		a.V[i] = a.Beta2*a.V[i] + (1-a.Beta2)*g*g

		mHat := a.M[i] / c1
		vHat := a.V[i] / c2

		add(i, -1*learningRate*mHat/(math.Sqrt(vHat)+a.Epsilon))
	}

	return nil
}

// Save encodes the moment estimates via JSON into adam.json.
func (a *adam) Save(net *pagnn.Network, dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Errorf("Failed to create directory %q", dirPath)
	}

	f, err := os.Create(filepath.Join(dirPath, adam_file))
	if err != nil {
		return errors.Errorf("Failed to create file %q in %q", adam_file, dirPath)
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	if err = enc.Encode(a); err != nil {
		return errors.Wrapf(err, "Failed to encode JSON to file %q\n", adam_file)
	}

	return nil
}

// Load decodes the moment estimates from adam.json.
func (a *adam) Load(net *pagnn.Network, dirPath string) error {
	f, err := os.Open(filepath.Join(dirPath, adam_file))
	if err != nil {
		return errors.Errorf("Failed to open file %q in %q", adam_file, dirPath)
	}

	defer f.Close()

	dec := json.NewDecoder(f)
	if err = dec.Decode(a); err != nil {
		return errors.Wrapf(err, "Failed to decode JSON from file %q\n", adam_file)
	}

	return nil
}
