// SPDX-License-Identifier: MIT
// Package: kolamgen
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kolamlab/kolam/compose"
	"github.com/kolamlab/kolam/config"
)

// Output styles.
var (
	headStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("222"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

var rootCmd = &cobra.Command{
	Use:           "kolamgen",
	Short:         "kolamgen - deterministic kolam design generator",
	Version:       versionString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `kolamgen builds traditional kolam designs: continuous loops woven
around a dot lattice with rotational, reflective, or dihedral symmetry.
Designs are pure functions of their configuration and seed, so every run
is reproducible.`,
}

func init() {
	rootCmd.AddCommand(generateCmd, previewCmd, batchCmd, versionCmd)
}

// loadSettings resolves the --config flag shared by the design commands.
func loadSettings(path string) (*config.Settings, error) {
	if path == "" {
		return config.Load(nil)
	}
	return config.LoadFile(path)
}

// fail prints a styled error to stderr and returns it for cobra.
func fail(err error) error {
	fmt.Fprintln(os.Stderr, errStyle.Render("error: ")+err.Error())
	return err
}

// summarize prints the one-line design report used by generate and batch.
func summarize(k *compose.Kolam) string {
	st := k.Stats()
	return fmt.Sprintf("%s %s",
		headStyle.Render(fmt.Sprintf("%s %s-%d", k.Meta.Pattern, k.Meta.SymmetryKind, k.Meta.SymmetryOrder)),
		dimStyle.Render(fmt.Sprintf("(%d paths, %d segments, seed %d, id %s)",
			st.Paths, st.Segments, k.Meta.Seed, k.Meta.ID)))
}
