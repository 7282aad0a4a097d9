// SPDX-License-Identifier: MIT
// Package: kolamgen
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolamlab/kolam/compose"
	"github.com/kolamlab/kolam/render"
)

var (
	generateConfig string
	generateOut    string
	generateSeed   int64
	generateNoDots bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one design and write it as SVG",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(generateConfig)
		if err != nil {
			return fail(err)
		}
		if cmd.Flags().Changed("seed") {
			s.Compose.Seed = generateSeed
		}

		k, err := compose.Generate(s.Compose)
		if err != nil {
			return fail(err)
		}

		var opts []render.Option
		if generateNoDots {
			opts = append(opts, render.WithoutDots())
		}
		f, err := os.Create(generateOut)
		if err != nil {
			return fail(err)
		}
		defer f.Close()
		if err := render.SVG(f, k, opts...); err != nil {
			return fail(err)
		}

		fmt.Println(okStyle.Render("wrote ") + generateOut)
		fmt.Println(summarize(k))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "TOML config file (defaults apply when omitted)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "kolam.svg", "output SVG file")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "override the config seed")
	generateCmd.Flags().BoolVar(&generateNoDots, "no-dots", false, "hide the dot lattice")
}
