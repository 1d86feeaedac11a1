package pagnn

// NumParams returns the total number of adjustable parameters in the Network: every entry of the
// synaptic matrix (masked or not), followed by every bias. Returns -1 if the Network has not
// been finalized.
func (net *Network) NumParams() int {
	if net.stat < finalized {
		return -1
	}

	return net.totalNeurons*net.totalNeurons + net.totalNeurons
}

// Params returns a copy of the Network's parameters as a flat slice: the synaptic matrix in
// row-major order, followed by the biases. The layout matches SetParams and the index space
// given to Optimizers. Params returns nil if the Network has not been finalized.
func (net *Network) Params() []float64 {
	if net.stat < finalized {
		return nil
	}

	n := net.totalNeurons
	ps := make([]float64, net.NumParams())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ps[i*n+j] = net.weights.At(i, j)
		}
	}
	for i := 0; i < n; i++ {
		ps[n*n+i] = net.biases.AtVec(i)
	}

	return ps
}

// SetParams overwrites the Network's parameters from a flat slice with the layout of Params.
// Entries for synapses outside of the structure mask are ignored; those synapses stay zero.
// SetParams returns ErrNetNotFinalized if the Network is not finalized, and a SizeMismatchError
// if the slice has the wrong length.
func (net *Network) SetParams(ps []float64) error {
	if net.stat < finalized {
		if net.panicErrors {
			panic(ErrNetNotFinalized)
		}

		return ErrNetNotFinalized
	}

	if len(ps) != net.NumParams() {
		err := SizeMismatchError{net.NumParams(), len(ps), "params"}
		if net.panicErrors {
			panic(err)
		}

		return err
	}

	n := net.totalNeurons
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if net.mask.At(i, j) != 0 {
				net.weights.Set(i, j, ps[i*n+j])
			}
		}
	}
	for i := 0; i < n; i++ {
		net.biases.SetVec(i, ps[n*n+i])
	}

	return nil
}
