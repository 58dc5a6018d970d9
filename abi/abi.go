// Package abi exposes the flat-buffer call surface of the annet core: four
// synchronous operations over a single package-level network, with failures
// reported through reserved negative sentinel values instead of errors.
//
// This is the boundary a host caller binds to. It deliberately keeps the
// historical single-network semantics: the package holds one current
// network and one advancing random stream, shared by every call. The
// package is not safe for concurrent use; concurrent training or inference
// against it will race.
//
// Library code should use the ann package directly, which offers explicit
// network instances and typed errors.
package abi

import (
	"github.com/annet-ml/annet/ann"
)

// Sentinel return values. A sentinel never collides with a legitimate
// result: inference output is a logistic activation strictly within (0, 1)
// and training loss is non-negative.
const (
	SentinelInvalidInputSize  = -1
	SentinelInvalidHiddenSize = -2
	SentinelInvalidActivation = -3
	SentinelInvalidRowCount   = -4
	// SentinelInvalidLossHistory is returned by TrainV2 for a non-nil loss
	// history buffer with fewer than one slot per epoch.
	SentinelInvalidLossHistory = -5
	// SentinelNotReady is returned by Run for an untrained network or an
	// input-length mismatch. It shares the value of SentinelInvalidInputSize.
	SentinelNotReady = -1
)

// fixedHiddenSize is the hidden-layer width of the fixed-architecture
// training variant.
const fixedHiddenSize = 6

var (
	network *ann.Network
	rng     = ann.NewRand(ann.DefaultSeed)
)

// Reset discards the current network and reseeds the random stream.
// Callers that need reproducible training seed per attempt.
func Reset(seed uint32) {
	network = nil
	rng.Seed(seed)
}

// Train trains a fresh fixed-architecture network (6 hidden units, logistic
// activation, learning rate 0.01, 300 epochs) on a rows×inputSize sample
// matrix and returns the final epoch's mean squared error.
//
// This variant performs no parameter validation; a size the core cannot
// construct from yields -1.
func Train(inputs, outputs []float32, rows, inputSize int) float32 {
	net, err := ann.New(inputSize, fixedHiddenSize, ann.Logistic, rng)
	if err != nil {
		return SentinelInvalidInputSize
	}

	loss, err := net.Train(inputs, outputs, rows, ann.TrainOptions{})
	if err != nil {
		return SentinelInvalidInputSize
	}

	network = net
	return loss
}

// TrainV2 trains a fresh network with a configurable hidden-layer width and
// activation (0 logistic, 1 relu, 2 tanh approximation). Parameters are
// validated before anything else happens; on violation the matching
// sentinel is returned and the previously trained network, if any, is left
// untouched.
//
// lossHistory may be nil; when supplied it must hold one slot per epoch
// (300), is rejected with SentinelInvalidLossHistory when shorter, and is
// always fully populated on success, even when training stops early.
func TrainV2(inputs, outputs []float32, rows, inputSize, hiddenSize, activation int, lossHistory []float32) float32 {
	if inputSize < ann.MinInputSize || inputSize > ann.MaxInputSize {
		return SentinelInvalidInputSize
	}
	if hiddenSize < ann.MinHiddenSize || hiddenSize > ann.MaxHiddenSize {
		return SentinelInvalidHiddenSize
	}
	if activation < 0 || activation > 2 {
		return SentinelInvalidActivation
	}
	if rows < 1 {
		return SentinelInvalidRowCount
	}
	if lossHistory != nil && len(lossHistory) < ann.DefaultEpochs {
		return SentinelInvalidLossHistory
	}

	net, err := ann.New(inputSize, hiddenSize, ann.ActivationFromCode(activation), rng)
	if err != nil {
		return SentinelInvalidInputSize
	}

	loss, err := net.Train(inputs, outputs, rows, ann.TrainOptions{LossHistory: lossHistory})
	if err != nil {
		return SentinelInvalidInputSize
	}

	network = net
	return loss
}

// Run performs inference on the current network and returns the predicted
// scalar, which is strictly within (0, 1). It returns -1 when no network
// has been trained yet or when the input length does not match the trained
// input size.
func Run(input []float32) float32 {
	if network == nil {
		return SentinelNotReady
	}

	out, err := network.Infer(input)
	if err != nil {
		return SentinelNotReady
	}
	return out
}

// GetWeights copies the current network's weights into the caller's
// buffers: ihDst receives the inputSize×hiddenSize input→hidden weights,
// hoDst the hiddenSize hidden→output weights. Either destination may be nil
// to skip that copy. Before any successful training this is a silent no-op
// and both buffers are left unmodified.
func GetWeights(ihDst, hoDst []float32) {
	if network == nil {
		return
	}
	network.ExtractWeights(ihDst, hoDst)
}
