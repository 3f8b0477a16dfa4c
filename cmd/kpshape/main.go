// Command kpshape composes, decomposes and rescales affine keypoint shapes.
//
//	kpshape compose --x 10 --y 20 --scale-x 2 --scale-y 3 --orientation 0.5
//	kpshape decompose --a11 1 --a12 -1 --a21 0 --a22 1 --format json
//	kpshape rescale --x 100 --y 50 --sx 0.5 --sy 0.5
package main

import (
	"fmt"
	"os"

	"github.com/medidai/colmap/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Failures already written to stdout are not repeated.
		if !cli.WasReported(err) {
			fmt.Fprintln(os.Stderr, "kpshape:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
