package kernels

import "github.com/annet-ml/annet/lane"

// Dot computes the dot product of two float32 slices.
// The result is the sum of element-wise products: Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty; a single-element input is
// multiplied directly without entering the lane path.
//
// Accumulation runs in two independent lane-group partial sums over blocks
// of 2×MaxLanes elements, then one combined pass over any remaining full
// lane group, then a scalar tail. This changes summation order relative to
// a naive left-to-right sum.
func Dot(a, b []float32) float32 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	if n == 1 {
		return a[0] * b[0]
	}

	w := lane.MaxLanes[float32]()

	// Two accumulators to break the dependency chain.
	sum0 := lane.Zero[float32]()
	sum1 := lane.Zero[float32]()

	i := 0
	for ; i+2*w <= n; i += 2 * w {
		sum0 = lane.MulAdd(lane.Load(a[i:]), lane.Load(b[i:]), sum0)
		sum1 = lane.MulAdd(lane.Load(a[i+w:]), lane.Load(b[i+w:]), sum1)
	}

	acc := lane.Add(sum0, sum1)

	// Remaining full lane group.
	for ; i+w <= n; i += w {
		acc = lane.MulAdd(lane.Load(a[i:]), lane.Load(b[i:]), acc)
	}

	sum := lane.ReduceSum(acc)

	// Scalar tail.
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}
