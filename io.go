package pagnn

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// main_file should not collide with any component directory
const main_file string = "main"
const weights_file string = "weights.json"

// jsonNetwork is the payload of the weights file: the full synaptic matrix, the biases, and the
// structure mask, all in row-major order.
type jsonNetwork struct {
	Weights [][]float64
	Biases  []float64
	Mask    [][]float64
}

func (net *Network) printMain(dirPath string) error {
	f, err := os.Create(filepath.Join(dirPath, main_file+".txt"))
	if err != nil {
		return errors.Wrapf(err, "Couldn't create file %s in %s\n", main_file, dirPath)
	}

	defer f.Close()

	fmt.Fprintf(f, "%d %d %d\n", net.inputNeurons, net.extraNeurons, net.outputNeurons)
	fmt.Fprintf(f, "%d\n", net.stepsPerForward)
	fmt.Fprintf(f, "%v\n", net.retainState)
	fmt.Fprintf(f, "%d\n", net.longIter)
	fmt.Fprintf(f, "%s\n", net.structure.TypeString())
	fmt.Fprintf(f, "%s\n", net.act.TypeString())
	fmt.Fprintf(f, "%s\n", net.cf.TypeString())
	fmt.Fprintf(f, "%s\n", net.opt.TypeString())

	fmt.Fprintf(f, "%d\n", len(net.hyperParams))
	for name, hp := range net.hyperParams {
		fmt.Fprintf(f, "%s %s\n", name, hp.TypeString())
	}

	return nil
}

func (net *Network) printWeights(dirPath string) error {
	f, err := os.Create(filepath.Join(dirPath, weights_file))
	if err != nil {
		return errors.Wrapf(err, "Couldn't create file %s in %s\n", weights_file, dirPath)
	}

	defer f.Close()

	n := net.totalNeurons
	j := jsonNetwork{
		Weights: make([][]float64, n),
		Biases:  make([]float64, n),
		Mask:    make([][]float64, n),
	}

	for i := 0; i < n; i++ {
		j.Weights[i] = make([]float64, n)
		j.Mask[i] = make([]float64, n)
		for c := 0; c < n; c++ {
			j.Weights[i][c] = net.weights.At(i, c)
			j.Mask[i][c] = net.mask.At(i, c)
		}
		j.Biases[i] = net.biases.AtVec(i)
	}

	enc := json.NewEncoder(f)
	if err = enc.Encode(j); err != nil {
		return errors.Wrapf(err, "Failed to encode JSON to file %s\n", weights_file)
	}

	return nil
}

// Save writes the network to the specified path, creating a directory to contain it (with
// permissions 0700). If 'overwrite' is false and the directory already exists, Save will return
// an error.
func (net *Network) Save(dirPath string, overwrite bool) error {
	if net.stat < finalized {
		return ErrNetNotFinalized
	}

	// check if the folder already exists
	if _, err := os.Stat(dirPath); err == nil {
		if !overwrite {
			return errors.Errorf("Can't save network, folder already exists, and overwrite is not enabled")
		}

		if err = os.RemoveAll(dirPath); err != nil {
			return errors.Errorf("Can't save network, couldn't remove pre-existing folder to overwrite")
		}
	}

	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make directory to save network\n")
	}

	if err := net.printMain(dirPath); err != nil {
		return errors.Wrapf(err, "Can't save network, failed to write main file\n")
	}

	if err := net.printWeights(dirPath); err != nil {
		return errors.Wrapf(err, "Can't save network, failed to write weights\n")
	}

	if err := net.opt.Save(net, filepath.Join(dirPath, "opt")); err != nil {
		return errors.Wrapf(err, "Can't save network, failed to save Optimizer\n")
	}

	for name, hp := range net.hyperParams {
		if err := hp.Save(net, filepath.Join(dirPath, "hp", name)); err != nil {
			return errors.Wrapf(err, "Can't save network, failed to save HyperParameter %q\n", name)
		}
	}

	return nil
}

// loadedStructure stands in for the original Structure of a Network recovered from file; only
// the TypeString survives saving, which is all a finalized Network needs.
type loadedStructure struct {
	typ string
}

func (ls loadedStructure) TypeString() string {
	return ls.typ
}

func (ls loadedStructure) Mask(inputs, extra, outputs int) *mat.Dense {
	return nil
}

func (ls loadedStructure) Steps(inputs, extra, outputs int) int {
	return 0
}

// Load recovers a Network from a directory previously written by Save. The provided path should
// be to the containing folder, the same as it would have been to Save the network. Every
// component named in the save must have been registered; importing the subpackages that provided
// them is enough.
func Load(dirPath string) (*Network, error) {
	if _, err := os.Stat(dirPath); err != nil {
		return nil, errors.Errorf("Can't load network, containing directory does not exist")
	}

	main, err := os.Open(filepath.Join(dirPath, main_file+".txt"))
	if err != nil {
		return nil, errors.Errorf("Can't load network, main file does not exist")
	}
	defer main.Close()

	formatErr := errors.Errorf("Can't load network, main file is incompatible")
	sc := bufio.NewScanner(main)

	net := new(Network)
	net.hyperParams = make(map[string]HyperParameter)

	// neuron counts
	{
		if !sc.Scan() {
			return nil, formatErr
		}

		counts := strings.Split(sc.Text(), " ")
		if len(counts) != 3 {
			return nil, formatErr
		}

		if net.inputNeurons, err = strconv.Atoi(counts[0]); err != nil {
			return nil, formatErr
		}
		if net.extraNeurons, err = strconv.Atoi(counts[1]); err != nil {
			return nil, formatErr
		}
		if net.outputNeurons, err = strconv.Atoi(counts[2]); err != nil {
			return nil, formatErr
		}

		net.totalNeurons = net.inputNeurons + net.extraNeurons + net.outputNeurons
		if net.inputNeurons < 1 || net.outputNeurons < 1 || net.extraNeurons < 0 {
			return nil, formatErr
		}
	}

	// steps, retain, longIter
	{
		if !sc.Scan() {
			return nil, formatErr
		}
		if net.stepsPerForward, err = strconv.Atoi(sc.Text()); err != nil || net.stepsPerForward < 1 {
			return nil, formatErr
		}

		if !sc.Scan() {
			return nil, formatErr
		}
		if net.retainState, err = strconv.ParseBool(sc.Text()); err != nil {
			return nil, formatErr
		}

		if !sc.Scan() {
			return nil, formatErr
		}
		if net.longIter, err = strconv.Atoi(sc.Text()); err != nil || net.longIter < 0 {
			return nil, formatErr
		}
	}

	// components, by registered TypeString
	{
		if !sc.Scan() {
			return nil, formatErr
		}
		net.structure = loadedStructure{sc.Text()}

		if !sc.Scan() {
			return nil, formatErr
		}
		if net.act, err = activationFromString(sc.Text()); err != nil {
			return nil, errors.Wrapf(err, "Can't load network\n")
		}

		if !sc.Scan() {
			return nil, formatErr
		}
		if net.cf, err = costFunctionFromString(sc.Text()); err != nil {
			return nil, errors.Wrapf(err, "Can't load network\n")
		}

		if !sc.Scan() {
			return nil, formatErr
		}
		if net.opt, err = optimizerFromString(sc.Text()); err != nil {
			return nil, errors.Wrapf(err, "Can't load network\n")
		}
	}

	// hyperparameters
	{
		if !sc.Scan() {
			return nil, formatErr
		}

		numHPs, err := strconv.Atoi(sc.Text())
		if err != nil || numHPs < 0 {
			return nil, formatErr
		}

		for i := 0; i < numHPs; i++ {
			if !sc.Scan() {
				return nil, formatErr
			}

			parts := strings.SplitN(sc.Text(), " ", 2)
			if len(parts) != 2 {
				return nil, formatErr
			}

			hp, err := hyperParameterFromString(parts[1])
			if err != nil {
				return nil, errors.Wrapf(err, "Can't load network\n")
			}

			if err = hp.Load(filepath.Join(dirPath, "hp", parts[0])); err != nil {
				return nil, errors.Wrapf(err, "Can't load network, failed to load HyperParameter %q\n", parts[0])
			}

			net.hyperParams[parts[0]] = hp
		}
	}

	if err = net.loadWeights(dirPath); err != nil {
		return nil, errors.Wrapf(err, "Can't load network, failed to load weights\n")
	}

	n := net.totalNeurons
	net.state = mat.NewVecDense(n, nil)
	net.gradWeights = mat.NewDense(n, n, nil)
	net.gradBiases = mat.NewVecDense(n, nil)
	net.pendingWeights = mat.NewDense(n, n, nil)
	net.pendingBiases = mat.NewVecDense(n, nil)
	net.stat = finalized

	if err = net.opt.Load(net, filepath.Join(dirPath, "opt")); err != nil {
		return nil, errors.Wrapf(err, "Can't load network, failed to load Optimizer\n")
	}

	return net, nil
}

func (net *Network) loadWeights(dirPath string) error {
	f, err := os.Open(filepath.Join(dirPath, weights_file))
	if err != nil {
		return errors.Errorf("could not open file %q", weights_file)
	}

	defer f.Close()

	var j jsonNetwork
	dec := json.NewDecoder(f)
	if err = dec.Decode(&j); err != nil {
		return errors.Wrapf(err, "failed to decode JSON from file %q\n", weights_file)
	}

	n := net.totalNeurons
	if len(j.Weights) != n || len(j.Biases) != n || len(j.Mask) != n {
		return errors.Errorf("weight dimensions do not match neuron counts (%d, %d, %d != %d)",
			len(j.Weights), len(j.Biases), len(j.Mask), n)
	}

	net.weights = mat.NewDense(n, n, nil)
	net.biases = mat.NewVecDense(n, nil)
	net.mask = mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		if len(j.Weights[i]) != n || len(j.Mask[i]) != n {
			return errors.Errorf("weight row %d has wrong length", i)
		}

		for c := 0; c < n; c++ {
			net.weights.Set(i, c, j.Weights[i][c])
			net.mask.Set(i, c, j.Mask[i][c])
		}
		net.biases.SetVec(i, j.Biases[i])
	}

	return nil
}
