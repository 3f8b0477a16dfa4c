package cli

import (
	"github.com/spf13/cobra"
)

// NewRescaleCommand creates the rescale command.
func NewRescaleCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		pos    positionFlags
		mat    matrixFlags
		sx, sy float64
	)

	cmd := &cobra.Command{
		Use:   "rescale",
		Short: "Rescale a keypoint to a new image resolution",
		Long: `Multiply x and the first matrix column by --sx, y and the second
matrix column by --sy. Both factors must be > 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRescale(rootOpts, pos, mat, sx, sy, cmd)
		},
	}

	addPositionFlags(cmd, &pos)
	addMatrixFlags(cmd, &mat)
	cmd.Flags().Float64Var(&sx, "sx", 1, "factor for x and the first column")
	cmd.Flags().Float64Var(&sy, "sy", 1, "factor for y and the second column")

	return cmd
}

func runRescale(opts *RootOptions, pos positionFlags, mat matrixFlags, sx, sy float64, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	log := newLogger(opts, cmd)
	defer log.Sync()

	kp := mat.keypoint(pos)
	if err := kp.RescaleXY(sx, sy); err != nil {
		log.Debug("rescale rejected", "error", err)
		return outputKeypointError(formatter, err)
	}
	log.Debug("rescaled keypoint", "sx", sx, "sy", sy)

	return formatter.Success(newKeypointResult(kp))
}
