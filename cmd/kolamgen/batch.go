// SPDX-License-Identifier: MIT
// Package: kolamgen
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolamlab/kolam/batch"
)

var (
	batchConfig  string
	batchCount   int
	batchDir     string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate many designs concurrently with derived seeds",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(batchConfig)
		if err != nil {
			return fail(err)
		}
		count := s.Output.Count
		if cmd.Flags().Changed("count") {
			count = batchCount
		}
		dir := s.Output.Dir
		if cmd.Flags().Changed("dir") {
			dir = batchDir
		}

		m, err := batch.Run(cmd.Context(), batch.Request{
			Config:  s.Compose,
			Count:   count,
			Dir:     dir,
			Workers: batchWorkers,
		})
		if err != nil {
			return fail(err)
		}

		fmt.Println(headStyle.Render(fmt.Sprintf("run %s", m.RunID)))
		for _, it := range m.Items {
			if it.Err != "" {
				fmt.Printf("  %s seed %d: %s\n",
					errStyle.Render(fmt.Sprintf("%03d", it.Index)), it.Seed, it.Err)
				continue
			}
			fmt.Printf("  %s %s %s\n",
				okStyle.Render(fmt.Sprintf("%03d", it.Index)), it.File,
				dimStyle.Render(fmt.Sprintf("(%d paths, %d segments)", it.Paths, it.Segments)))
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("%d/%d succeeded → %s", m.Succeeded, m.Requested, dir)))
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "", "TOML config file")
	batchCmd.Flags().IntVarP(&batchCount, "count", "n", 0, "number of designs (overrides config)")
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "output directory (overrides config)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "worker pool size (0 = default)")
}
