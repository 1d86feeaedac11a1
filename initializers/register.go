package initializers

import (
	"math"

	"github.com/pkg/errors"
	pagnn "github.com/verbocado/PAGNNs"
)

var defaultValue map[string]float64

func init() {
	defaultValue = map[string]float64{
		"uniform-lower": -0.5,
		"uniform-upper": 0.5,
		"normal-mean":   0,
		"normal-sd":     0.1,
		"varscl-factor": 1,
	}

	pagnn.SetDefaultInitializer(func() pagnn.Initializer { return Uniform() })
}

// SetDefault sets the default values for certain Initializers. The values that can be set are:
// "uniform-lower", "uniform-upper", "normal-mean", "normal-sd", and "varscl-factor".
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}
