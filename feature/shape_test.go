// SPDX-License-Identifier: MIT

package feature_test

import (
	"math"
	"testing"

	"github.com/medidai/colmap/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip_Isotropic recovers scale and orientation over [−π, π].
func TestRoundTrip_Isotropic(t *testing.T) {
	t.Parallel()

	scales := []float64{1e-3, 0.5, 1, 2, 17.25, 1e4}
	const steps = 24
	for _, s := range scales {
		for i := 0; i <= steps; i++ {
			o := -math.Pi + 2*math.Pi*float64(i)/steps
			k, err := feature.FromScaleOrientation(0, 0, 1, -1, s, o)
			require.NoError(t, err)
			require.InDelta(t, s, k.ComputeScale(), tol*s, "scale s=%v o=%v", s, o)
			require.InDelta(t, s, k.ComputeScaleX(), tol*s)
			require.InDelta(t, s, k.ComputeScaleY(), tol*s)
			requireAngle(t, o, k.ComputeOrientation(), "orientation s=%v o=%v", s, o)
			require.InDelta(t, 0, k.ComputeShear(), tol, "isotropic has no shear")
		}
	}
}

// TestRoundTrip_AnisotropicShear recovers all four parameters while
// orientation+shear stays away from the atan2 branch cut.
func TestRoundTrip_AnisotropicShear(t *testing.T) {
	t.Parallel()

	for _, sx := range []float64{0.5, 1, 3.25} {
		for _, sy := range []float64{0.1, 2} {
			for _, o := range []float64{-2.5, -1, 0, 0.4, 2} {
				for _, sh := range []float64{-0.5, 0, 0.3} {
					k := mustShape(t, sx, sy, o, sh)
					got := k.Shape()
					require.InDelta(t, sx, got.ScaleX, tol)
					require.InDelta(t, sy, got.ScaleY, tol)
					require.InDelta(t, o, got.Orientation, tol)
					require.InDelta(t, sh, got.Shear, tol, "sx=%v sy=%v o=%v sh=%v", sx, sy, o, sh)
				}
			}
		}
	}
}

// TestComputeScale_IsMean checks exact equality, no tolerance.
func TestComputeScale_IsMean(t *testing.T) {
	t.Parallel()

	ks := []feature.Keypoint{
		feature.NewKeypoint(),
		feature.FromMatrix(0, 0, 1, -1, 0.3, -7, 11, 0.001),
		feature.FromMatrix(0, 0, 1, -1, -1, 0, 0, 1),
		mustShape(t, 2, 5, 1.1, -0.2),
	}
	for _, k := range ks {
		assert.Equal(t, (k.ComputeScaleX()+k.ComputeScaleY())/2, k.ComputeScale(), "%v", k)
	}
}

// TestDecompose_RawMatrices checks that non-canonical matrices still produce
// finite values with non-negative scales.
func TestDecompose_RawMatrices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		k    feature.Keypoint
		want feature.ShapeParameters
	}{
		{
			name: "zero matrix",
			k:    feature.FromMatrix(0, 0, 1, -1, 0, 0, 0, 0),
			want: feature.ShapeParameters{},
		},
		{
			name: "x reflection",
			k:    feature.FromMatrix(0, 0, 1, -1, -1, 0, 0, 1),
			want: feature.ShapeParameters{ScaleX: 1, ScaleY: 1, Orientation: math.Pi, Shear: -math.Pi},
		},
		{
			name: "y reflection",
			k:    feature.FromMatrix(0, 0, 1, -1, 2, 0, 0, -3),
			want: feature.ShapeParameters{ScaleX: 2, ScaleY: 3, Orientation: 0, Shear: -math.Pi},
		},
		{
			name: "axis shear",
			k:    feature.FromMatrix(0, 0, 1, -1, 1, -1, 0, 1),
			want: feature.ShapeParameters{ScaleX: 1, ScaleY: math.Sqrt2, Orientation: 0, Shear: math.Pi / 4},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.k.Shape()
			for _, v := range []float64{got.ScaleX, got.ScaleY, got.Orientation, got.Shear} {
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			}
			require.GreaterOrEqual(t, got.ScaleX, 0.0)
			require.GreaterOrEqual(t, got.ScaleY, 0.0)
			require.InDelta(t, tc.want.ScaleX, got.ScaleX, tol)
			require.InDelta(t, tc.want.ScaleY, got.ScaleY, tol)
			require.InDelta(t, tc.want.Orientation, got.Orientation, tol)
			require.InDelta(t, tc.want.Shear, got.Shear, tol)
		})
	}
}

// TestShapeParameters_Keypoint re-composes a decomposition.
func TestShapeParameters_Keypoint(t *testing.T) {
	t.Parallel()

	orig, err := feature.FromShapeParameters(5, 6, 0.9, 12, 1.5, 0.75, -0.6, 0.2)
	require.NoError(t, err)

	back, err := orig.Shape().Keypoint(orig.X, orig.Y, orig.Weight, orig.ConstraintPointID)
	require.NoError(t, err)
	requireMatrix(t, back, orig.A11, orig.A12, orig.A21, orig.A22)
	assert.Equal(t, 12, back.ConstraintPointID)

	_, err = feature.ShapeParameters{ScaleX: -1}.Keypoint(0, 0, 1, -1)
	require.ErrorIs(t, err, feature.ErrInvalidArgument)
}

// TestComputeOrientation_ClosedRange checks both ends of [−π, π] are reachable
// and that the shear stays within [−2π, 2π].
func TestComputeOrientation_ClosedRange(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)
	lower := feature.FromMatrix(0, 0, 1, -1, -1, 0, negZero, 1)
	assert.Equal(t, -math.Pi, lower.ComputeOrientation())

	upper := feature.FromMatrix(0, 0, 1, -1, -1, 0, 0, 1)
	assert.Equal(t, math.Pi, upper.ComputeOrientation())

	// second column at +π, first column at −π
	widest := feature.FromMatrix(0, 0, 1, -1, -1, negZero, negZero, -1)
	assert.Equal(t, 2*math.Pi, widest.ComputeShear())

	for _, k := range []feature.Keypoint{lower, upper, widest} {
		o, sh := k.ComputeOrientation(), k.ComputeShear()
		assert.True(t, o >= -math.Pi && o <= math.Pi, "orientation %v", o)
		assert.True(t, sh >= -2*math.Pi && sh <= 2*math.Pi, "shear %v", sh)
	}
}
