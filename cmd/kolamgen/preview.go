// SPDX-License-Identifier: MIT
// Package: kolamgen
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolamlab/kolam/compose"
	"github.com/kolamlab/kolam/render"
)

var (
	previewConfig string
	previewSeed   int64
	previewCols   int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a design as styled unicode in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(previewConfig)
		if err != nil {
			return fail(err)
		}
		if cmd.Flags().Changed("seed") {
			s.Compose.Seed = previewSeed
		}

		k, err := compose.Generate(s.Compose)
		if err != nil {
			return fail(err)
		}

		fmt.Println(render.Preview(k, render.WithPreviewCols(previewCols)))
		fmt.Println(summarize(k))
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewConfig, "config", "c", "", "TOML config file")
	previewCmd.Flags().Int64Var(&previewSeed, "seed", 0, "override the config seed")
	previewCmd.Flags().IntVar(&previewCols, "cols", 64, "preview width in characters")
}
