/*
kolamgen generates traditional kolam dot-grid designs.

A kolam is drawn as one or more continuous loops woven around a lattice of
dots with strong rotational or reflective symmetry. kolamgen builds designs
deterministically from a seed, previews them in the terminal, and exports
them as SVG, singly or in parallel batches.

Usage:

	kolamgen <command> [flags]

Common commands:

	kolamgen generate --config kolam.toml --out design.svg
	kolamgen preview  --config kolam.toml
	kolamgen batch    --config kolam.toml --count 16 --dir designs/
	kolamgen version

See 'kolamgen help <command>' for details on a specific command.
*/
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
