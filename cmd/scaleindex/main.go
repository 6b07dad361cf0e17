// SPDX-License-Identifier: MIT

// Command scaleindex prints and queries the scale-path index of a wavelet
// scattering network.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/katalvlaran/scatspectra/internal/cli"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), cli.NewRootCommand(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
