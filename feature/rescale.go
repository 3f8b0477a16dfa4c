// SPDX-License-Identifier: MIT

package feature

// Rescale scales position and shape uniformly by scale.
// It behaves as RescaleXY(scale, scale).
func (k *Keypoint) Rescale(scale float64) error {
	return k.rescale("Rescale", scale, scale)
}

// RescaleXY multiplies X and the first matrix column by scaleX, Y and the
// second matrix column by scaleY. Orientation of the x-axis is preserved
// while the support region stretches anisotropically, which is what a
// resolution change of the underlying image does.
//
// Errors:
//   - ErrInvalidArgument if scaleX <= 0 or scaleY <= 0 (or NaN).
//     The receiver is left unmodified.
//
// Complexity: O(1).
func (k *Keypoint) RescaleXY(scaleX, scaleY float64) error {
	return k.rescale("RescaleXY", scaleX, scaleY)
}

// Rescaled is the non-mutating form of RescaleXY: it returns a rescaled copy
// and leaves k untouched.
func (k Keypoint) Rescaled(scaleX, scaleY float64) (Keypoint, error) {
	if err := k.rescale("Rescaled", scaleX, scaleY); err != nil {
		return Keypoint{}, err
	}

	return k, nil
}

// rescale is the shared kernel; tag names the public entry point in errors.
func (k *Keypoint) rescale(tag string, scaleX, scaleY float64) error {
	// Stage 1 (Validate): both factors before touching any field.
	if err := validatePositive(tag, "scale_x", scaleX); err != nil {
		return err
	}
	if err := validatePositive(tag, "scale_y", scaleY); err != nil {
		return err
	}

	// Stage 2 (Execute)
	k.X *= scaleX
	k.Y *= scaleY
	k.A11 *= scaleX
	k.A21 *= scaleX
	k.A12 *= scaleY
	k.A22 *= scaleY

	return nil
}
