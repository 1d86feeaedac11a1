package pagnn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Structure determines which synapses exist in a Network. The mask it produces is fixed at
// Finalize; training never creates synapses outside of it.
type Structure interface {
	// TypeString returns the string corresponding to the type of the Structure.
	TypeString() string

	// Mask returns an n×n matrix (n = inputs + extra + outputs) with a 1 at (i, j) for every
	// allowed synapse from neuron i to neuron j, and a 0 everywhere else.
	Mask(inputs, extra, outputs int) *mat.Dense

	// Steps returns the default number of propagation steps needed for a signal to travel from
	// the input neurons to the output neurons.
	Steps(inputs, extra, outputs int) int
}

// structures that imply a particular number of extra neurons additionally satisfy extraSizer,
// which Finalize uses for validation.
type extraSizer interface {
	extraNeurons() int
}

type dense int8

// Dense returns a Structure in which every neuron may connect to every other neuron, including
// itself. This is the default Structure, and the most general: the latent graph is fully
// recurrent, and a single step carries input to output.
func Dense() dense {
	return dense(0)
}

func (d dense) TypeString() string {
	return "dense"
}

func (d dense) Mask(inputs, extra, outputs int) *mat.Dense {
	n := inputs + extra + outputs
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, 1)
		}
	}

	return m
}

func (d dense) Steps(inputs, extra, outputs int) int {
	return 1
}

type layered struct {
	hidden []int
}

// Layered returns a Structure that embeds a classic feed-forward network into the synaptic
// matrix: each layer's weights occupy a block above the diagonal, connecting it to the next
// layer, and output neurons are given self-edges so that computed outputs survive any trailing
// steps. The number of extra neurons is implied by the hidden layer sizes.
func Layered(hidden ...int) *layered {
	return &layered{hidden}
}

func (l *layered) TypeString() string {
	return "layered"
}

func (l *layered) extraNeurons() int {
	total := 0
	for _, units := range l.hidden {
		total += units
	}

	return total
}

func (l *layered) Mask(inputs, extra, outputs int) *mat.Dense {
	n := inputs + extra + outputs
	m := mat.NewDense(n, n, nil)

	// place a (prev × units) block for each layer transition, directly after the block of
	// neurons feeding it
	idx := 0
	prev := inputs
	for _, units := range append(append([]int{}, l.hidden...), outputs) {
		for i := idx; i < idx+prev; i++ {
			for j := idx + prev; j < idx+prev+units; j++ {
				m.Set(i, j, 1)
			}
		}

		idx += prev
		prev = units
	}

	// output neurons keep their values across steps
	for i := n - outputs; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

func (l *layered) Steps(inputs, extra, outputs int) int {
	return len(l.hidden) + 1
}

type sparse struct {
	density float64
	hops    int
}

// Sparse returns a Structure in which each synapse exists independently with the given
// probability. Output self-edges are always present. The default number of propagation steps is
// 2, and can be changed with Hops.
func Sparse(density float64) *sparse {
	return &sparse{density: density, hops: 2}
}

func (s *sparse) TypeString() string {
	return "sparse"
}

// Hops sets the default number of propagation steps for the Structure, returning the same
// Structure.
func (s *sparse) Hops(hops int) *sparse {
	s.hops = hops
	return s
}

func (s *sparse) Mask(inputs, extra, outputs int) *mat.Dense {
	n := inputs + extra + outputs
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rand.Float64() < s.density {
				m.Set(i, j, 1)
			}
		}
	}

	for i := n - outputs; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

func (s *sparse) Steps(inputs, extra, outputs int) int {
	return s.hops
}
