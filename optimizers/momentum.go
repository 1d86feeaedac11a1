package optimizers

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	pagnn "github.com/verbocado/PAGNNs"
)

type momentum struct {
	Beta     float64
	Velocity []float64
}

const momentum_file string = "momentum.json"
const defaultMomentumBeta float64 = 0.9

// Momentum returns a gradient descent optimizer with momentum, which implements
// pagnn.Optimizer. The decay rate of the velocity defaults to 0.9 and can be set with Beta.
func Momentum() *momentum {
	return &momentum{Beta: defaultMomentumBeta}
}

// SetBeta sets the decay rate of the accumulated velocity, returning the same Optimizer.
func (m *momentum) SetBeta(beta float64) *momentum {
	m.Beta = beta
	return m
}

func (m *momentum) TypeString() string {
	return "momentum"
}

func (m *momentum) Run(net *pagnn.Network, size int, grad func(int) float64, add func(int, float64), learningRate float64) error {
	if len(m.Velocity) != size {
		m.Velocity = make([]float64, size)
	}

	for i := 0; i < size; i++ {
		m.Velocity[i] = m.Beta*m.Velocity[i] + grad(i)
		add(i, -1*learningRate*m.Velocity[i])
	}

	return nil
}

// Save encodes the accumulated velocity via JSON into momentum.json.
func (m *momentum) Save(net *pagnn.Network, dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Errorf("Failed to create directory %q", dirPath)
	}

	f, err := os.Create(filepath.Join(dirPath, momentum_file))
	if err != nil {
		return errors.Errorf("Failed to create file %q in %q", momentum_file, dirPath)
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	if err = enc.Encode(m); err != nil {
		return errors.Wrapf(err, "Failed to encode JSON to file %q\n", momentum_file)
	}

	return nil
}

// Load decodes the accumulated velocity from momentum.json.
func (m *momentum) Load(net *pagnn.Network, dirPath string) error {
	f, err := os.Open(filepath.Join(dirPath, momentum_file))
	if err != nil {
		return errors.Errorf("Failed to open file %q in %q", momentum_file, dirPath)
	}

	defer f.Close()

	dec := json.NewDecoder(f)
	if err = dec.Decode(m); err != nil {
		return errors.Wrapf(err, "Failed to decode JSON from file %q\n", momentum_file)
	}

	return nil
}
