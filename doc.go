// Package pagnn implements Persistent Artificial Graph-based Neural Networks.
//
// A PAGNN makes no structural distinction between input, latent and output
// neurons: the entire network lives in one square synaptic weight matrix, and
// inference is repeated propagation of a state vector through that matrix.
// Input data is loaded directly into the first entries of the state, and
// outputs are read from the last entries after some number of steps. Because
// the state is a first-class value, it can be retained between forward passes,
// which gives the network memory without any dedicated recurrent machinery.
//
// Creating Networks
//
// The center of everything is the Network:
//
//	net := pagnn.New(2, 1).
//		Structure(pagnn.Layered(3)).
//		WithActivation(activations.Tanh()).
//		Opt(optimizers.GradientDescent()).
//		AddHP("learning-rate", hyperparams.Constant(0.5))
//
//	if err := net.Finalize(costfuncs.MSE()); err != nil {
//		return err
//	}
//
// Configuration methods accumulate errors on the Network rather than
// returning them; Finalize reports the first one. Activations, cost
// functions, optimizers, learning-rate schedules and initializers all live in
// subpackages, and importing a subpackage registers its types so that saved
// networks can be reconstructed by Load. Defaults (identity activation,
// gradient descent, uniform initialization) are installed by the same
// imports.
//
// Structures
//
// Dense() connects every neuron to every neuron, Layered(sizes...) embeds a
// classic feed-forward network in the graph, and Sparse(density) drops
// synapses at random. The number of propagation steps per forward pass
// defaults to whatever the structure needs to carry a signal from inputs to
// outputs, and can be overridden with Steps().
//
// Training and Testing
//
// Training uses the TrainArgs struct as a stand-in for optional arguments:
//
//	err := net.Train(pagnn.TrainArgs{
//		TrainData:    data,
//		RunCondition: pagnn.TrainUntil(3000),
//		Update:       func(r pagnn.Result) { ... },
//	})
//
// Gradients are computed by backpropagation through the propagation steps,
// and synapses absent from the structure stay absent through training.
// Gradient-free evolutionary search over whole networks is provided by the
// evolve subpackage.
//
// Saving and Loading
//
// Save writes a directory containing the network description and weights;
// Load reads it back:
//
//	err := net.Save("my-network", true)
//	net, err := pagnn.Load("my-network")
//
// A loaded Network produces exactly the same outputs as the one saved.
package pagnn
