// SPDX-License-Identifier: MIT

package feature

import (
	"fmt"
	"math"
)

// NewKeypoint returns the default keypoint: position (0,0), weight 1, no
// constraint point and the identity matrix (scale 1, orientation 0).
func NewKeypoint() Keypoint {
	return FromPosition(0, 0, DefaultWeight)
}

// FromPosition returns an identity-shaped keypoint at (x, y) with the given
// weight and no constraint point.
func FromPosition(x, y, weight float64) Keypoint {
	return FromConstraint(x, y, weight, UnsetConstraintPointID)
}

// FromConstraint returns an identity-shaped keypoint at (x, y) that refers to
// the external constraint point constraintPointID.
func FromConstraint(x, y, weight float64, constraintPointID int) Keypoint {
	return FromMatrix(x, y, weight, constraintPointID, 1, 0, 0, 1)
}

// FromScaleOrientation builds an isotropic rotation-scale keypoint:
//
//	| s·cos(θ)  −s·sin(θ) |
//	| s·sin(θ)   s·cos(θ) |
//
// Errors:
//   - ErrInvalidArgument if scale < 0 or NaN. No value is returned then.
//
// Complexity: O(1).
func FromScaleOrientation(x, y, weight float64, constraintPointID int, scale, orientation float64) (Keypoint, error) {
	// Stage 1 (Validate)
	if err := validateNonNegative("FromScaleOrientation", "scale", scale); err != nil {
		return Keypoint{}, err
	}

	// Stage 2 (Execute)
	sin, cos := math.Sincos(orientation)
	sc, ss := scale*cos, scale*sin

	return FromMatrix(x, y, weight, constraintPointID, sc, -ss, ss, sc), nil
}

// FromMatrix stores the four matrix entries verbatim. It performs no
// validation and cannot fail: degenerate and reflected matrices are allowed.
// Every other constructor funnels through here.
func FromMatrix(x, y, weight float64, constraintPointID int, a11, a12, a21, a22 float64) Keypoint {
	return Keypoint{
		X:                 x,
		Y:                 y,
		Weight:            weight,
		ConstraintPointID: constraintPointID,
		A11:               a11,
		A12:               a12,
		A21:               a21,
		A22:               a22,
	}
}

// FromShapeParameters builds an anisotropic, sheared keypoint:
//
//	| sx·cos(θ)  −sy·sin(θ+φ) |
//	| sx·sin(θ)   sy·cos(θ+φ) |
//
// With scaleX == scaleY and shear == 0 it equals FromScaleOrientation.
//
// Errors:
//   - ErrInvalidArgument if scaleX or scaleY is < 0 or NaN.
//
// Complexity: O(1).
func FromShapeParameters(x, y, weight float64, constraintPointID int, scaleX, scaleY, orientation, shear float64) (Keypoint, error) {
	const tag = "FromShapeParameters"
	// Stage 1 (Validate): x first, then y.
	if err := validateNonNegative(tag, "scale_x", scaleX); err != nil {
		return Keypoint{}, err
	}
	if err := validateNonNegative(tag, "scale_y", scaleY); err != nil {
		return Keypoint{}, err
	}

	// Stage 2 (Execute): first column from θ, second from θ+φ.
	sinO, cosO := math.Sincos(orientation)
	sinOS, cosOS := math.Sincos(orientation + shear)

	return FromMatrix(x, y, weight, constraintPointID,
		scaleX*cosO, -scaleY*sinOS,
		scaleX*sinO, scaleY*cosOS,
	), nil
}

// HasConstraint reports whether the keypoint refers to a constraint point.
func (k Keypoint) HasConstraint() bool {
	return k.ConstraintPointID != UnsetConstraintPointID
}

// String implements fmt.Stringer for easy debugging.
func (k Keypoint) String() string {
	return fmt.Sprintf("Keypoint{(%g, %g) w=%g id=%d [[%g, %g], [%g, %g]]}",
		k.X, k.Y, k.Weight, k.ConstraintPointID, k.A11, k.A12, k.A21, k.A22)
}
