// SPDX-License-Identifier: MIT

// Package feature: domain types.
// This file contains ONLY the value types and their defaults; constructors,
// decomposition and rescale live in dedicated files.
package feature

// UnsetConstraintPointID marks a keypoint that is not tied to any external
// constraint point.
const UnsetConstraintPointID = -1

// Default shape of a keypoint built without explicit shape parameters.
const (
	// DefaultWeight is the weight assigned by NewKeypoint.
	DefaultWeight = 1.0

	// DefaultScale is the isotropic scale of the default (identity) matrix.
	DefaultScale = 1.0

	// DefaultOrientation is the orientation of the default (identity) matrix.
	DefaultOrientation = 0.0
)

// Keypoint is one detected feature point and its local affine shape.
//
// All fields are exported and may be written directly by the owner; no
// invariant is re-checked after construction. Rescale and RescaleXY are the
// only mutators provided by this package.
type Keypoint struct {
	X, Y float64 // image coordinates of the center

	Weight            float64 // opaque, never interpreted here
	ConstraintPointID int     // opaque, UnsetConstraintPointID when absent

	// Affine transform, row-major: [[A11 A12] [A21 A22]].
	A11, A12 float64
	A21, A22 float64
}

// ShapeParameters is the scale/orientation/shear decomposition of a
// Keypoint matrix. Angles are in radians.
type ShapeParameters struct {
	ScaleX      float64
	ScaleY      float64
	Orientation float64
	Shear       float64
}
