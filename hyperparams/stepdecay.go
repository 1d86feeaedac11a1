package hyperparams

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	pagnn "github.com/verbocado/PAGNNs"
)

type stepDecay struct {
	Initial float64
	Factor  float64
	Period  int
}

const stepdecay_file string = "step-decay.json"

// StepDecay returns a HyperParameter whose value starts at 'initial' and is multiplied by
// 'factor' once every 'period' iterations. A factor below 1 gives the usual decaying
// learning-rate schedule.
func StepDecay(initial, factor float64, period int) *stepDecay {
	if period < 1 {
		period = 1
	}

	return &stepDecay{initial, factor, period}
}

func (s *stepDecay) TypeString() string {
	return "step-decay"
}

func (s *stepDecay) Value(iter int) float64 {
	if iter < 0 {
		iter = 0
	}

	return s.Initial * math.Pow(s.Factor, float64(iter/s.Period))
}

func (s *stepDecay) Save(net *pagnn.Network, dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Errorf("Failed to create directory %q", dirPath)
	}

	f, err := os.Create(filepath.Join(dirPath, stepdecay_file))
	if err != nil {
		return errors.Errorf("Failed to create file %q in %q", stepdecay_file, dirPath)
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	if err = enc.Encode(s); err != nil {
		return errors.Errorf("Failed to encode JSON to file %q in %q", stepdecay_file, dirPath)
	}

	return nil
}

func (s *stepDecay) Load(dirPath string) error {
	f, err := os.Open(filepath.Join(dirPath, stepdecay_file))
	if err != nil {
		return errors.Errorf("Failed to open file %q in %q", stepdecay_file, dirPath)
	}

	defer f.Close()

	dec := json.NewDecoder(f)
	if err = dec.Decode(s); err != nil {
		return errors.Wrapf(err, "Failed to decode JSON from file %q in %q\n", stepdecay_file, dirPath)
	}

	return nil
}
