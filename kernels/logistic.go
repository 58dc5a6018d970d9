package kernels

import "github.com/chewxy/math32"

// Logistic computes the logistic (sigmoid) function 1/(1 + exp(-x)).
//
// Inputs at or beyond ±10 short-circuit to exactly 0 and 1. The clamp is a
// stability and performance shortcut, not a mathematically exact boundary:
// the true function is ~4.5e-5 away from its limit there, which is below
// the resolution the network cares about.
func Logistic(x float32) float32 {
	if x <= -10 {
		return 0
	}
	if x >= 10 {
		return 1
	}

	return 1 / (1 + math32.Exp(-x))
}

// LogisticDerivative computes the derivative of the logistic function from
// an already-computed logistic output y: y*(1-y). The pre-activation value
// is never recomputed.
func LogisticDerivative(y float32) float32 {
	return y * (1 - y)
}
