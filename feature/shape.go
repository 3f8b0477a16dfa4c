// SPDX-License-Identifier: MIT

// Package feature: decomposition of the stored matrix.
//
// The queries below are exact inverses of FromShapeParameters and
// FromScaleOrientation up to rounding and atan2 wrap-around. For matrices set
// through FromMatrix they still return finite, well-defined numbers, but a
// reflected or degenerate matrix does not round-trip as shape parameters.
package feature

import "math"

// ComputeScaleX returns the Euclidean norm of the first matrix column.
func (k Keypoint) ComputeScaleX() float64 {
	return math.Sqrt(k.A11*k.A11 + k.A21*k.A21)
}

// ComputeScaleY returns the Euclidean norm of the second matrix column.
func (k Keypoint) ComputeScaleY() float64 {
	return math.Sqrt(k.A12*k.A12 + k.A22*k.A22)
}

// ComputeScale returns the mean of the two axis scales, a single isotropic
// scale for display and compatibility.
func (k Keypoint) ComputeScale() float64 {
	return (k.ComputeScaleX() + k.ComputeScaleY()) / 2
}

// ComputeOrientation returns the angle of the first matrix column in
// [−π, π]; −π occurs for a negative A11 with A21 == −0.
func (k Keypoint) ComputeOrientation() float64 {
	return math.Atan2(k.A21, k.A11)
}

// ComputeShear returns the angle of the second column relative to the
// orientation. The result is not wrapped and may lie anywhere in [−2π, 2π].
func (k Keypoint) ComputeShear() float64 {
	return math.Atan2(-k.A12, k.A22) - k.ComputeOrientation()
}

// Shape returns all four shape parameters at once.
// Complexity: O(1).
func (k Keypoint) Shape() ShapeParameters {
	return ShapeParameters{
		ScaleX:      k.ComputeScaleX(),
		ScaleY:      k.ComputeScaleY(),
		Orientation: k.ComputeOrientation(),
		Shear:       k.ComputeShear(),
	}
}

// Keypoint re-composes the parameters into a keypoint at (x, y) through
// FromShapeParameters and therefore fails on negative scales.
func (p ShapeParameters) Keypoint(x, y, weight float64, constraintPointID int) (Keypoint, error) {
	return FromShapeParameters(x, y, weight, constraintPointID, p.ScaleX, p.ScaleY, p.Orientation, p.Shear)
}
