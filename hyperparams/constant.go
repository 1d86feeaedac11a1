package hyperparams

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	pagnn "github.com/verbocado/PAGNNs"
)

type constant float64

const constant_file string = "constant.json"

// Constant returns a HyperParameter with the given fixed value, regardless of iteration.
func Constant(value float64) *constant {
	c := constant(value)
	return &c
}

func (c *constant) TypeString() string {
	return "constant"
}

func (c *constant) Value(iter int) float64 {
	return float64(*c)
}

func (c *constant) Save(net *pagnn.Network, dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Errorf("Failed to create directory %q", dirPath)
	}

	f, err := os.Create(filepath.Join(dirPath, constant_file))
	if err != nil {
		return errors.Errorf("Failed to create file %q in %q", constant_file, dirPath)
	}

	defer f.Close()

	v := float64(*c)

	enc := json.NewEncoder(f)
	if err = enc.Encode(v); err != nil {
		return errors.Errorf("Failed to encode JSON to file %q in %q", constant_file, dirPath)
	}

	return nil
}

func (c *constant) Load(dirPath string) error {
	f, err := os.Open(filepath.Join(dirPath, constant_file))
	if err != nil {
		return errors.Errorf("Failed to open file %q in %q", constant_file, dirPath)
	}

	defer f.Close()

	var v float64

	dec := json.NewDecoder(f)
	if err = dec.Decode(&v); err != nil {
		return errors.Wrapf(err, "Failed to decode JSON from file %q in %q\n", constant_file, dirPath)
	}

	*c = constant(v)

	return nil
}
