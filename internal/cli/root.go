package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medidai/colmap/feature"
	"github.com/medidai/colmap/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the kpshape CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kpshape",
		Short: "kpshape - affine keypoint shape calculator",
		Long: `Compose and decompose the 2x2 affine shape of image keypoints.

Builds keypoints from scale, orientation and shear, recovers those
parameters from raw matrix entries, and applies anisotropic rescaling.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFormat(opts.Format)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")

	// Add subcommands
	cmd.AddCommand(NewComposeCommand(opts))
	cmd.AddCommand(NewDecomposeCommand(opts))
	cmd.AddCommand(NewRescaleCommand(opts))

	return cmd
}

// validateFormat checks if the format is one of the allowed values.
func validateFormat(format string) error {
	for _, f := range ValidFormats {
		if f == format {
			return nil
		}
	}
	return WrapExitError(ExitCommandError,
		fmt.Sprintf("invalid format %q: must be one of %v", format, ValidFormats), nil)
}

// newFormatter binds the output formatter to the command's stdout.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// newLogger returns a debug logger on the command's stderr in verbose mode
// and a no-op logger otherwise.
func newLogger(opts *RootOptions, cmd *cobra.Command) *logger.Logger {
	if !opts.Verbose {
		return logger.NewNop()
	}
	return logger.New(cmd.ErrOrStderr(), "debug").With("cmd", cmd.Name())
}

// outputKeypointError reports a failed construction or rescale and maps it
// to an exit code: invalid arguments are command errors.
func outputKeypointError(formatter *OutputFormatter, err error) error {
	code, exit := ErrCodeGeneric, ExitFailure
	if errors.Is(err, feature.ErrInvalidArgument) {
		code, exit = ErrCodeInvalidArgument, ExitCommandError
	}
	if werr := formatter.Error(code, err.Error()); werr != nil {
		return WrapExitError(ExitFailure, "writing error report", errors.Join(err, werr))
	}
	exitErr := WrapExitError(exit, code, err)
	exitErr.Reported = true
	return exitErr
}
