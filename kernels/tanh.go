package kernels

import "github.com/annet-ml/annet/lane"

// Clamp bounds for the rational tanh approximation. Inputs outside this
// range produce the same output as the bound itself.
const tanhClamp = 5.0

// TanhApproxForward applies a rational tanh approximation to each element
// of in, writing the result to out:
//
//	y = x*(27 + x²) / (27 + 9x²)   with x clamped to [-5, 5]
//
// This is an approximation, not the exact hyperbolic tangent. At the clamp
// boundary the output magnitude is ≈1.032, slightly outside tanh's true
// range (-1, 1). The backward pass is derived from this exact forward
// shape, so the formula must not be replaced with an exact tanh.
func TanhApproxForward(in, out []float32) {
	n := min(len(in), len(out))
	if n == 0 {
		return
	}

	w := lane.MaxLanes[float32]()
	lo := lane.Set[float32](-tanhClamp)
	hi := lane.Set[float32](tanhClamp)
	c27 := lane.Set[float32](27)
	c9 := lane.Set[float32](9)

	i := 0
	for ; i+w <= n; i += w {
		x := lane.Max(lane.Min(lane.Load(in[i:]), hi), lo)
		xSq := lane.Mul(x, x)
		num := lane.Mul(x, lane.Add(c27, xSq))
		den := lane.Add(c27, lane.Mul(c9, xSq))
		lane.Store(lane.Div(num, den), out[i:])
	}
	for ; i < n; i++ {
		x := in[i]
		if x < -tanhClamp {
			x = -tanhClamp
		}
		if x > tanhClamp {
			x = tanhClamp
		}
		xSq := x * x
		out[i] = x * (27 + xSq) / (27 + 9*xSq)
	}
}

// TanhApproxBackward propagates gradients through the tanh approximation:
// gradIn[i] = gradOut[i] * (1 - y[i]²), where y is the forward output
// (inheriting its approximation error).
func TanhApproxBackward(y, gradOut, gradIn []float32) {
	n := min(len(y), min(len(gradOut), len(gradIn)))
	if n == 0 {
		return
	}

	w := lane.MaxLanes[float32]()
	one := lane.Set[float32](1)

	i := 0
	for ; i+w <= n; i += w {
		vy := lane.Load(y[i:])
		deriv := lane.Sub(one, lane.Mul(vy, vy))
		lane.Store(lane.Mul(lane.Load(gradOut[i:]), deriv), gradIn[i:])
	}
	for ; i < n; i++ {
		gradIn[i] = gradOut[i] * (1 - y[i]*y[i])
	}
}
