// Package feature describes a detected image keypoint together with the local
// affine shape of its support region.
//
// 🚀 What is a Keypoint?
//
//	A Keypoint is a small value type produced by feature detectors and
//	consumed by descriptor and matching stages of a reconstruction pipeline:
//	  • X, Y                image position of the keypoint center
//	  • Weight              caller-defined scalar (e.g. detection confidence)
//	  • ConstraintPointID   opaque reference to an external constraint point
//	  • A11, A12, A21, A22  2×2 affine transform mapping the canonical unit
//	                        neighborhood onto the elliptical support region
//
// ✨ Key features:
//   - construction from intuitive shape parameters (scale, orientation, shear)
//   - construction from four raw matrix entries (no validation)
//   - decomposition of any stored matrix back into scale, orientation, shear
//   - atomic in-place or copy-returning anisotropic rescale
//
// ⚙️ Usage:
//
//	import "github.com/medidai/colmap/feature"
//
//	kp, err := feature.FromShapeParameters(10, 20, 1, feature.UnsetConstraintPointID,
//		2, 3, math.Pi/6, 0.1)
//	if err != nil {
//		// errors.Is(err, feature.ErrInvalidArgument)
//	}
//	_ = kp.RescaleXY(0.5, 0.5) // e.g. moving one pyramid level up
//	s := kp.Shape()           // ScaleX, ScaleY, Orientation, Shear
//
// Matrix layout:
//
//	| A11  A12 |   = | sx·cos(θ)   −sy·sin(θ+φ) |
//	| A21  A22 |     | sx·sin(θ)    sy·cos(θ+φ) |
//
// The first column carries the x-extent and the orientation θ, the second
// column the y-extent rotated by θ plus the shear φ.
//
// Concurrency:
//
//	Keypoint is a plain value without internal locking. Readers are always
//	safe; concurrent Rescale calls on one shared value must be serialized by
//	the owner.
package feature
