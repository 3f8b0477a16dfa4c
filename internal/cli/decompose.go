package cli

import (
	"github.com/spf13/cobra"
)

// NewDecomposeCommand creates the decompose command.
func NewDecomposeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		pos positionFlags
		mat matrixFlags
	)

	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Recover scale, orientation and shear from raw matrix entries",
		Long: `Decompose a raw 2x2 keypoint matrix into shape parameters.

Any matrix is accepted. Reflected or degenerate matrices still produce
finite values, but they do not round-trip through compose.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompose(rootOpts, pos, mat, cmd)
		},
	}

	addPositionFlags(cmd, &pos)
	addMatrixFlags(cmd, &mat)

	return cmd
}

func runDecompose(opts *RootOptions, pos positionFlags, mat matrixFlags, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	log := newLogger(opts, cmd)
	defer log.Sync()

	kp := mat.keypoint(pos)
	log.Debug("decomposing keypoint", "keypoint", kp.String())

	return formatter.Success(newKeypointResult(kp))
}
