// Package lane provides a portable widened-lane vector abstraction for the
// annet compute kernels.
//
// A Vec[T] holds up to MaxLanes[T]() elements and supports elementwise
// arithmetic. Kernels process the bulk of a buffer in full lane groups and
// fall back to a scalar loop for any remainder, so results are independent
// of the detected lane width up to floating-point summation order.
//
// The lane width is fixed once at init from the host CPU (see dispatch_*.go)
// and can be forced to scalar mode with the LANE_NO_SIMD environment
// variable.
package lane

// Float constrains the element types supported by Vec.
type Float interface {
	float32 | float64
}

// Vec is a short vector of floating-point lanes. The zero value is an empty
// vector; use Load, Set or Zero to construct one with the current lane count.
type Vec[T Float] struct {
	data []T
}

// NumLanes returns the number of lanes held by this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the vector's lanes as a slice. The slice aliases the vector's
// storage; callers must not grow it.
func (v Vec[T]) Data() []T {
	return v.data
}

// MaxLanes returns the number of lanes of type T in a full vector with the
// current dispatch width.
//
// For example, with a 128-bit width:
//   - float32: 4
//   - float64: 2
func MaxLanes[T Float]() int {
	var zero T
	if _, ok := any(zero).(float64); ok {
		return currentWidth / 8
	}
	return currentWidth / 4
}
