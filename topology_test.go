package pagnn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pagnn "github.com/verbocado/PAGNNs"
)

func TestDenseMask(t *testing.T) {
	d := pagnn.Dense()
	assert.Equal(t, "dense", d.TypeString())
	assert.Equal(t, 1, d.Steps(2, 3, 1))

	m := d.Mask(2, 3, 1)
	rows, cols := m.Dims()
	require.Equal(t, 6, rows)
	require.Equal(t, 6, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, 1.0, m.At(i, j))
		}
	}
}

func TestLayeredMask(t *testing.T) {
	l := pagnn.Layered(2)
	assert.Equal(t, "layered", l.TypeString())
	assert.Equal(t, 2, l.Steps(1, 2, 1))

	// neurons: 0 input, 1-2 hidden, 3 output
	m := l.Mask(1, 2, 1)
	rows, cols := m.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 4, cols)

	allowed := map[[2]int]bool{
		{0, 1}: true, {0, 2}: true, // input -> hidden
		{1, 3}: true, {2, 3}: true, // hidden -> output
		{3, 3}: true, // output self-edge
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			expected := 0.0
			if allowed[[2]int{i, j}] {
				expected = 1.0
			}
			assert.Equalf(t, expected, m.At(i, j), "synapse (%d, %d)", i, j)
		}
	}
}

func TestLayeredImpliesExtraNeurons(t *testing.T) {
	net := pagnn.New(2, 1).Structure(pagnn.Layered(4, 3))
	require.NoError(t, net.Finalize(costFn(t)))

	assert.Equal(t, 10, net.TotalNeurons())
	assert.Equal(t, 3, net.StepsPerForward())
}

func TestLayeredRejectsConflictingExtraNeurons(t *testing.T) {
	net := pagnn.New(2, 1).Structure(pagnn.Layered(4)).ExtraNeurons(7)
	assert.Error(t, net.Finalize(costFn(t)))
}

func TestSparseMask(t *testing.T) {
	s := pagnn.Sparse(0.3)
	assert.Equal(t, "sparse", s.TypeString())
	assert.Equal(t, 2, s.Steps(2, 4, 2))
	assert.Equal(t, 5, s.Hops(5).Steps(2, 4, 2))

	m := pagnn.Sparse(0.3).Mask(2, 4, 2)
	rows, cols := m.Dims()
	require.Equal(t, 8, rows)
	require.Equal(t, 8, cols)

	// self-edges for the output neurons are unconditional
	assert.Equal(t, 1.0, m.At(6, 6))
	assert.Equal(t, 1.0, m.At(7, 7))

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			assert.True(t, v == 0 || v == 1)
		}
	}
}

func TestSparseZeroDensity(t *testing.T) {
	m := pagnn.Sparse(0).Mask(2, 2, 1)

	count := 0
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if m.At(i, j) != 0 {
				count++
			}
		}
	}

	// only the output self-edge
	assert.Equal(t, 1, count)
	assert.Equal(t, 1.0, m.At(4, 4))
}
