package kernels

import "github.com/annet-ml/annet/lane"

// UpdateWeights performs an in-place gradient-descent step:
//
//	weights[i] -= lr * gradients[i]
//
// for every index covered by both slices. The operation is elementwise, so
// the lane and scalar paths produce identical results.
func UpdateWeights(weights, gradients []float32, lr float32) {
	n := min(len(weights), len(gradients))
	if n == 0 {
		return
	}

	w := lane.MaxLanes[float32]()
	vlr := lane.Set(lr)

	i := 0
	for ; i+2*w <= n; i += 2 * w {
		w0 := lane.Sub(lane.Load(weights[i:]), lane.Mul(vlr, lane.Load(gradients[i:])))
		w1 := lane.Sub(lane.Load(weights[i+w:]), lane.Mul(vlr, lane.Load(gradients[i+w:])))
		lane.Store(w0, weights[i:])
		lane.Store(w1, weights[i+w:])
	}
	for ; i+w <= n; i += w {
		lane.Store(lane.Sub(lane.Load(weights[i:]), lane.Mul(vlr, lane.Load(gradients[i:]))), weights[i:])
	}
	for ; i < n; i++ {
		weights[i] -= lr * gradients[i]
	}
}
