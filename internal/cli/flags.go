package cli

import (
	"github.com/spf13/cobra"

	"github.com/medidai/colmap/feature"
)

// positionFlags are the non-shape keypoint fields shared by every command.
type positionFlags struct {
	X, Y       float64
	Weight     float64
	Constraint int
}

func addPositionFlags(cmd *cobra.Command, p *positionFlags) {
	cmd.Flags().Float64Var(&p.X, "x", 0, "keypoint x coordinate")
	cmd.Flags().Float64Var(&p.Y, "y", 0, "keypoint y coordinate")
	cmd.Flags().Float64Var(&p.Weight, "weight", feature.DefaultWeight, "keypoint weight")
	cmd.Flags().IntVar(&p.Constraint, "constraint", feature.UnsetConstraintPointID, "constraint point id (-1 = unset)")
}

// matrixFlags are the four raw affine entries, defaulting to identity.
type matrixFlags struct {
	A11, A12, A21, A22 float64
}

func addMatrixFlags(cmd *cobra.Command, m *matrixFlags) {
	cmd.Flags().Float64Var(&m.A11, "a11", 1, "affine entry (row 1, col 1)")
	cmd.Flags().Float64Var(&m.A12, "a12", 0, "affine entry (row 1, col 2)")
	cmd.Flags().Float64Var(&m.A21, "a21", 0, "affine entry (row 2, col 1)")
	cmd.Flags().Float64Var(&m.A22, "a22", 1, "affine entry (row 2, col 2)")
}

// keypoint builds a raw keypoint from the parsed flags.
func (m matrixFlags) keypoint(p positionFlags) feature.Keypoint {
	return feature.FromMatrix(p.X, p.Y, p.Weight, p.Constraint, m.A11, m.A12, m.A21, m.A22)
}
