// Package colmap is the Go home of the keypoint geometry used by the
// feature-extraction and matching stages of a 3D-reconstruction pipeline.
//
// 🚀 What is inside?
//
//   - feature: Keypoint with position, weight, constraint reference and the
//     2×2 affine shape of the support region; compose from
//     scale/orientation/shear, decompose, rescale
//   - cmd/kpshape: small CLI around feature for inspecting shapes
//   - internal/cli: cobra command tree and output formatting of kpshape
//   - internal/logger: zap logger used by the CLI only
//
// ✨ Why a separate value type?
//
//   - Pure math – no I/O, no locks, no hidden state
//   - Explicit errors – invalid scales return feature.ErrInvalidArgument
//   - Permissive raw path – any 2×2 matrix can be stored and decomposed
//
//	go get github.com/medidai/colmap/feature
package colmap
