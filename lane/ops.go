package lane

// This file provides the portable implementations of all lane operations.
// They are written against the generic Vec representation and serve every
// dispatch level; the dispatch level only changes the lane count.

// Load fills a vector from the front of src. A slice shorter than MaxLanes
// yields a short vector rather than zero-padded lanes.
func Load[T Float](src []T) Vec[T] {
	n := MaxLanes[T]()
	if len(src) < n {
		n = len(src)
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store copies lanes to the front of dst, stopping at whichever of the two
// runs out first.
func Store[T Float](v Vec[T], dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Set broadcasts value across every lane of a full-width vector.
func Set[T Float](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero returns a full-width vector with every lane zeroed.
func Zero[T Float]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// Add sums two vectors lane by lane. The result is as wide as the narrower
// operand.
func Add[T Float](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub subtracts b from a lane by lane.
func Sub[T Float](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul multiplies two vectors lane by lane.
func Mul[T Float](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div divides a by b lane by lane. Division by a zero lane follows IEEE 754.
func Div[T Float](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Min computes the element-wise minimum.
func Min[T Float](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max computes the element-wise maximum.
func Max[T Float](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MulAdd computes a*b + c per lane (fused multiply-add shape).
func MulAdd[T Float](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}

// ReduceSum returns the horizontal sum of all lanes.
func ReduceSum[T Float](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// Mask holds a per-lane boolean produced by a comparison.
type Mask[T Float] struct {
	bits []bool
}

// Gt compares a > b per lane.
func Gt[T Float](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IfThenElseZero returns yes where the mask is set and zero elsewhere.
func IfThenElseZero[T Float](m Mask[T], yes Vec[T]) Vec[T] {
	n := min(len(m.bits), len(yes.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if m.bits[i] {
			result[i] = yes.data[i]
		}
	}
	return Vec[T]{data: result}
}
