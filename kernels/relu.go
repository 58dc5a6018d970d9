package kernels

import "github.com/annet-ml/annet/lane"

// ReLUForward applies max(0, x) to each element of in, writing the result
// to out. Caller must ensure len(out) >= len(in); extra out capacity is
// left untouched.
func ReLUForward(in, out []float32) {
	n := min(len(in), len(out))
	if n == 0 {
		return
	}

	w := lane.MaxLanes[float32]()
	zero := lane.Zero[float32]()

	i := 0
	for ; i+2*w <= n; i += 2 * w {
		lane.Store(lane.Max(lane.Load(in[i:]), zero), out[i:])
		lane.Store(lane.Max(lane.Load(in[i+w:]), zero), out[i+w:])
	}
	for ; i+w <= n; i += w {
		lane.Store(lane.Max(lane.Load(in[i:]), zero), out[i:])
	}
	for ; i < n; i++ {
		if in[i] > 0 {
			out[i] = in[i]
		} else {
			out[i] = 0
		}
	}
}

// ReLUBackward propagates gradients through ReLU: gradIn[i] is gradOut[i]
// where in[i] > 0 and zero elsewhere. in holds the values the forward pass
// saw (pre-activation).
func ReLUBackward(in, gradOut, gradIn []float32) {
	n := min(len(in), min(len(gradOut), len(gradIn)))
	if n == 0 {
		return
	}

	w := lane.MaxLanes[float32]()
	zero := lane.Zero[float32]()

	i := 0
	for ; i+2*w <= n; i += 2 * w {
		m0 := lane.Gt(lane.Load(in[i:]), zero)
		m1 := lane.Gt(lane.Load(in[i+w:]), zero)
		lane.Store(lane.IfThenElseZero(m0, lane.Load(gradOut[i:])), gradIn[i:])
		lane.Store(lane.IfThenElseZero(m1, lane.Load(gradOut[i+w:])), gradIn[i+w:])
	}
	for ; i+w <= n; i += w {
		m := lane.Gt(lane.Load(in[i:]), zero)
		lane.Store(lane.IfThenElseZero(m, lane.Load(gradOut[i:])), gradIn[i:])
	}
	for ; i < n; i++ {
		if in[i] > 0 {
			gradIn[i] = gradOut[i]
		} else {
			gradIn[i] = 0
		}
	}
}
