// SPDX-License-Identifier: MIT
// Package feature_test contains shared fixtures for keypoint tests.

package feature_test

import (
	"math"
	"testing"

	"github.com/medidai/colmap/feature"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for round-trip checks.
const tol = 1e-9

// requireMatrix asserts the four matrix entries within tol.
func requireMatrix(t *testing.T, k feature.Keypoint, a11, a12, a21, a22 float64) {
	t.Helper()
	require.InDelta(t, a11, k.A11, tol, "a11")
	require.InDelta(t, a12, k.A12, tol, "a12")
	require.InDelta(t, a21, k.A21, tol, "a21")
	require.InDelta(t, a22, k.A22, tol, "a22")
}

// mustShape builds a keypoint via FromShapeParameters or fails the test.
func mustShape(t *testing.T, sx, sy, orientation, shear float64) feature.Keypoint {
	t.Helper()
	k, err := feature.FromShapeParameters(0, 0, 1, feature.UnsetConstraintPointID, sx, sy, orientation, shear)
	require.NoError(t, err)

	return k
}

// angleDiff returns a−b wrapped into (−π, π].
func angleDiff(a, b float64) float64 {
	d := math.Remainder(a-b, 2*math.Pi)
	if d <= -math.Pi {
		d += 2 * math.Pi
	}

	return d
}

// requireAngle asserts two angles agree modulo 2π within tol.
func requireAngle(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, 0, angleDiff(want, got), tol, msgAndArgs...)
}
