// Package kernels provides the vectorized primitive operations the annet
// network is built from: dot product, activation forward/backward transforms
// and the in-place gradient-descent weight update.
//
// # Algorithm shape
//
// Every buffer kernel follows the same widened-lane pattern:
//  1. Process blocks of 2×MaxLanes elements (unrolled, independent lanes)
//  2. Process any remaining full lane group
//  3. Handle tail elements with scalar code
//
// The scalar tail is numerically consistent with the lane path; only the
// summation order of reductions differs from a naive left-to-right loop, so
// reduction results should be compared with a relative tolerance (~1e-5)
// rather than bit-exactly.
//
// # Example
//
//	a := []float32{1, 2, 3, 4, 5, 6, 7, 8}
//	b := []float32{8, 7, 6, 5, 4, 3, 2, 1}
//	result := kernels.Dot(a, b)  // 120.0
package kernels
