// SPDX-License-Identifier: MIT
// Package: kolamgen
package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Populated by -ldflags at build time; the defaults cover `go run`.
var (
	version = "dev"
	commit  = "unknown"
)

func versionString() string {
	return fmt.Sprintf("%s (%s, %s)", version, commit, runtime.Version())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(*cobra.Command, []string) {
		fmt.Println("kolamgen " + versionString())
	},
}
