package ann

import "github.com/annet-ml/annet/kernels"

// Activation selects the hidden-layer activation function. The set is
// closed: each variant pairs a forward transform with the matching
// derivative, both taken from the kernels package. The output unit always
// uses the logistic function regardless of this choice.
type Activation int

const (
	// Logistic is 1/(1+exp(-x)) with clamped tails.
	Logistic Activation = iota
	// ReLU is max(0, x).
	ReLU
	// TanhApprox is the rational approximation x*(27+x²)/(27+9x²) with
	// inputs clamped to [-5, 5].
	TanhApprox
)

// ActivationFromCode maps an integer activation code (0, 1, 2) to its
// Activation. Codes outside the set deliberately fall back to Logistic
// rather than failing; validation of caller-supplied codes happens at the
// call boundary, not here.
func ActivationFromCode(code int) Activation {
	switch code {
	case 1:
		return ReLU
	case 2:
		return TanhApprox
	default:
		return Logistic
	}
}

// Valid reports whether a is one of the three defined variants.
func (a Activation) Valid() bool {
	return a == Logistic || a == ReLU || a == TanhApprox
}

func (a Activation) String() string {
	switch a {
	case Logistic:
		return "logistic"
	case ReLU:
		return "relu"
	case TanhApprox:
		return "tanh-approx"
	default:
		return "unknown"
	}
}

// forward applies the activation over a pre-activation buffer, writing out.
func (a Activation) forward(in, out []float32) {
	switch a {
	case ReLU:
		kernels.ReLUForward(in, out)
	case TanhApprox:
		kernels.TanhApproxForward(in, out)
	default:
		n := min(len(in), len(out))
		for i := 0; i < n; i++ {
			out[i] = kernels.Logistic(in[i])
		}
	}
}

// derivative evaluates the activation's derivative from the already-computed
// forward output y, never from the raw pre-activation.
func (a Activation) derivative(y float32) float32 {
	switch a {
	case ReLU:
		if y > 0 {
			return 1
		}
		return 0
	case TanhApprox:
		return 1 - y*y
	default:
		return kernels.LogisticDerivative(y)
	}
}
