package pagnn

import (
	"github.com/pkg/errors"
)

// The registries map TypeStrings to constructors so that Load can reconstruct a Network's
// components by name. Subpackages register their types in init(), so importing a subpackage is
// enough to make its types loadable.
var (
	activationTypes     = make(map[string]func() Activation)
	costFunctionTypes   = make(map[string]func() CostFunction)
	optimizerTypes      = make(map[string]func() Optimizer)
	hyperParameterTypes = make(map[string]func() HyperParameter)
)

// RegisterActivation adds an Activation constructor to the registry under the given name,
// usually the TypeString of the constructed value. Registering an empty name or a name that has
// been registered before returns ErrRegisterTaken; a nil constructor returns
// ErrRegisterNilReturn.
func RegisterActivation(name string, f func() Activation) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if name == "" || activationTypes[name] != nil {
		return ErrRegisterTaken
	}

	activationTypes[name] = f
	return nil
}

// RegisterCostFunction adds a CostFunction constructor to the registry under the given name. The
// error conditions are the same as for RegisterActivation.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if name == "" || costFunctionTypes[name] != nil {
		return ErrRegisterTaken
	}

	costFunctionTypes[name] = f
	return nil
}

// RegisterOptimizer adds an Optimizer constructor to the registry under the given name. The
// error conditions are the same as for RegisterActivation.
func RegisterOptimizer(name string, f func() Optimizer) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if name == "" || optimizerTypes[name] != nil {
		return ErrRegisterTaken
	}

	optimizerTypes[name] = f
	return nil
}

// RegisterHyperParameter adds a HyperParameter constructor to the registry under the given name.
// The error conditions are the same as for RegisterActivation.
func RegisterHyperParameter(name string, f func() HyperParameter) error {
	if f == nil {
		return ErrRegisterNilReturn
	} else if name == "" || hyperParameterTypes[name] != nil {
		return ErrRegisterTaken
	}

	hyperParameterTypes[name] = f
	return nil
}

func activationFromString(name string) (Activation, error) {
	f := activationTypes[name]
	if f == nil {
		return nil, errors.Wrapf(ErrRegisterWrongType, "no Activation registered with name %q", name)
	}

	return f(), nil
}

func costFunctionFromString(name string) (CostFunction, error) {
	f := costFunctionTypes[name]
	if f == nil {
		return nil, errors.Wrapf(ErrRegisterWrongType, "no CostFunction registered with name %q", name)
	}

	return f(), nil
}

func optimizerFromString(name string) (Optimizer, error) {
	f := optimizerTypes[name]
	if f == nil {
		return nil, errors.Wrapf(ErrRegisterWrongType, "no Optimizer registered with name %q", name)
	}

	return f(), nil
}

func hyperParameterFromString(name string) (HyperParameter, error) {
	f := hyperParameterTypes[name]
	if f == nil {
		return nil, errors.Wrapf(ErrRegisterWrongType, "no HyperParameter registered with name %q", name)
	}

	return f(), nil
}

// Defaults used by Finalize when the Network was not given the component explicitly. They are
// installed by subpackage init() functions, so e.g. importing the optimizers subpackage is
// enough for networks to default to gradient descent.
var (
	defaultActivation  func() Activation
	defaultOptimizer   func() Optimizer
	defaultInitializer func() Initializer
	defaultRate        func() HyperParameter
)

// SetDefaultActivation sets the Activation given to Networks that were not configured with one.
func SetDefaultActivation(f func() Activation) {
	defaultActivation = f
}

// SetDefaultOptimizer sets the Optimizer given to Networks that were not configured with one.
func SetDefaultOptimizer(f func() Optimizer) {
	defaultOptimizer = f
}

// SetDefaultInitializer sets the Initializer given to Networks that were not configured with
// one.
func SetDefaultInitializer(f func() Initializer) {
	defaultInitializer = f
}

// SetDefaultRate sets the learning-rate HyperParameter given to Networks that were not
// configured with one.
func SetDefaultRate(f func() HyperParameter) {
	defaultRate = f
}
