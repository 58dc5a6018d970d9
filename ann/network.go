package ann

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/annet-ml/annet/kernels"
)

// Architecture bounds. The output size is fixed at one scalar unit.
const (
	MinInputSize  = 1
	MaxInputSize  = 10
	MinHiddenSize = 2
	MaxHiddenSize = 20
)

// Network holds the weights, biases and activation caches of one
// input→hidden→output topology. All buffers are allocated exactly once by
// New and keep their sizes for the lifetime of the instance; replacing a
// network means constructing a new one.
//
// The zero value is not usable; Infer returns ErrNotInitialized and
// ExtractWeights is a no-op until the network comes from New.
type Network struct {
	inputSize  int
	hiddenSize int
	act        Activation

	weightsIH []float32 // inputSize × hiddenSize, row-major by hidden unit
	weightsHO []float32 // hiddenSize
	biasH     []float32
	biasO     float32

	// Caches written by the most recent forward pass.
	hidden []float32
	output float32

	// Per-sample scratch, sized at construction so training never
	// allocates.
	preAct  []float32
	deltaH  []float32
	gradHO  []float32
	gradRow []float32

	initialized bool
}

// New constructs a network with variance-scaled random weights and zeroed
// biases. Weights are drawn from rng using Xavier/Glorot uniform
// initialization: for a connection between layers of size nIn and nOut the
// value is (2u-1)*sqrt(6/(nIn+nOut)) with u uniform in [0, 1).
//
// The stream's state advances; constructing two networks from the same
// stream yields different weights. Seed a fresh stream per attempt for
// reproducible runs.
func New(inputSize, hiddenSize int, act Activation, rng *Rand) (*Network, error) {
	if inputSize < MinInputSize || inputSize > MaxInputSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidInputSize, inputSize, MinInputSize, MaxInputSize)
	}
	if hiddenSize < MinHiddenSize || hiddenSize > MaxHiddenSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidHiddenSize, hiddenSize, MinHiddenSize, MaxHiddenSize)
	}
	if !act.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidActivation, int(act))
	}

	n := &Network{
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		act:        act,
		weightsIH:  make([]float32, inputSize*hiddenSize),
		weightsHO:  make([]float32, hiddenSize),
		biasH:      make([]float32, hiddenSize),
		hidden:     make([]float32, hiddenSize),
		preAct:     make([]float32, hiddenSize),
		deltaH:     make([]float32, hiddenSize),
		gradHO:     make([]float32, hiddenSize),
		gradRow:    make([]float32, inputSize),
	}

	for i := range n.weightsIH {
		n.weightsIH[i] = xavier(rng, inputSize, hiddenSize)
	}
	for i := range n.weightsHO {
		n.weightsHO[i] = xavier(rng, hiddenSize, 1)
	}
	// Biases stay zero.

	n.initialized = true
	return n, nil
}

// xavier draws one Xavier/Glorot uniform weight for a connection between
// layers of size nIn and nOut.
func xavier(rng *Rand, nIn, nOut int) float32 {
	limit := math32.Sqrt(6 / float32(nIn+nOut))
	return (rng.Float32()*2 - 1) * limit
}

// InputSize returns the number of input units.
func (n *Network) InputSize() int { return n.inputSize }

// HiddenSize returns the number of hidden units.
func (n *Network) HiddenSize() int { return n.hiddenSize }

// Activation returns the hidden-layer activation chosen at construction.
func (n *Network) Activation() Activation { return n.act }

// weightRow returns the input-side weight row feeding hidden unit h.
func (n *Network) weightRow(h int) []float32 {
	return n.weightsIH[h*n.inputSize : (h+1)*n.inputSize]
}

// forward computes one forward pass, caching hidden and output activations.
// input must hold inputSize elements.
func (n *Network) forward(input []float32) {
	for h := 0; h < n.hiddenSize; h++ {
		n.preAct[h] = kernels.Dot(input, n.weightRow(h)) + n.biasH[h]
	}
	n.act.forward(n.preAct, n.hidden)

	// The output unit is always logistic, whatever the hidden layer uses.
	z := kernels.Dot(n.hidden, n.weightsHO) + n.biasO
	n.output = kernels.Logistic(z)
}

// backward computes gradients for the sample the last forward pass saw and
// applies them in place via the update kernel. Standard single-hidden-layer
// backpropagation, one sample at a time.
func (n *Network) backward(input []float32, target, lr float32) {
	diff := n.output - target
	deltaO := diff * kernels.LogisticDerivative(n.output)

	for h := 0; h < n.hiddenSize; h++ {
		n.deltaH[h] = deltaO * n.weightsHO[h] * n.act.derivative(n.hidden[h])
	}

	// Hidden→output parameters.
	for h := 0; h < n.hiddenSize; h++ {
		n.gradHO[h] = deltaO * n.hidden[h]
	}
	kernels.UpdateWeights(n.weightsHO, n.gradHO, lr)
	n.biasO -= lr * deltaO

	// Input→hidden parameters.
	for h := 0; h < n.hiddenSize; h++ {
		for i := 0; i < n.inputSize; i++ {
			n.gradRow[i] = n.deltaH[h] * input[i]
		}
		kernels.UpdateWeights(n.weightRow(h), n.gradRow, lr)
		n.biasH[h] -= lr * n.deltaH[h]
	}
}

// Infer runs a forward pass over one input vector and returns the scalar
// output activation, which is strictly within (0, 1).
//
// Returns ErrNotInitialized for a network not built by New and
// ErrDimensionMismatch when the input length differs from InputSize.
func (n *Network) Infer(input []float32) (float32, error) {
	if !n.initialized {
		return 0, ErrNotInitialized
	}
	if len(input) != n.inputSize {
		return 0, fmt.Errorf("%w: got %d inputs, want %d", ErrDimensionMismatch, len(input), n.inputSize)
	}

	n.forward(input)
	return n.output, nil
}

// ExtractWeights copies the live weights into the caller's buffers:
// ihDst receives the inputSize×hiddenSize input→hidden weights and hoDst
// the hiddenSize hidden→output weights. Either destination may be nil to
// skip that copy. On an uninitialized network both buffers are left
// untouched.
func (n *Network) ExtractWeights(ihDst, hoDst []float32) {
	if !n.initialized {
		return
	}
	if ihDst != nil {
		copy(ihDst, n.weightsIH)
	}
	if hoDst != nil {
		copy(hoDst, n.weightsHO)
	}
}
