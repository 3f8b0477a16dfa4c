package cli

import (
	"github.com/spf13/cobra"

	"github.com/medidai/colmap/feature"
)

// shapeFlags are the intuitive shape parameters of compose.
type shapeFlags struct {
	ScaleX, ScaleY     float64
	Orientation, Shear float64
}

// NewComposeCommand creates the compose command.
func NewComposeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		pos   positionFlags
		shape shapeFlags
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build a keypoint matrix from scale, orientation and shear",
		Long: `Build the affine matrix of a keypoint from shape parameters:

  a11 =  scale_x * cos(orientation)
  a12 = -scale_y * sin(orientation + shear)
  a21 =  scale_x * sin(orientation)
  a22 =  scale_y * cos(orientation + shear)

Scales must be >= 0. Angles are in radians.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(rootOpts, pos, shape, cmd)
		},
	}

	addPositionFlags(cmd, &pos)
	cmd.Flags().Float64Var(&shape.ScaleX, "scale-x", feature.DefaultScale, "scale along the first axis")
	cmd.Flags().Float64Var(&shape.ScaleY, "scale-y", feature.DefaultScale, "scale along the second axis")
	cmd.Flags().Float64Var(&shape.Orientation, "orientation", feature.DefaultOrientation, "orientation in radians")
	cmd.Flags().Float64Var(&shape.Shear, "shear", 0, "shear in radians")

	return cmd
}

func runCompose(opts *RootOptions, pos positionFlags, shape shapeFlags, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	log := newLogger(opts, cmd)
	defer log.Sync()

	log.Debug("composing keypoint",
		"scale_x", shape.ScaleX, "scale_y", shape.ScaleY,
		"orientation", shape.Orientation, "shear", shape.Shear)

	kp, err := feature.FromShapeParameters(pos.X, pos.Y, pos.Weight, pos.Constraint,
		shape.ScaleX, shape.ScaleY, shape.Orientation, shape.Shear)
	if err != nil {
		log.Debug("compose rejected", "error", err)
		return outputKeypointError(formatter, err)
	}

	return formatter.Success(newKeypointResult(kp))
}
