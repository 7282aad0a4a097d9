// SPDX-License-Identifier: MIT
// Package: kolam/config
//
// Package config loads generation requests from TOML files and resolves
// them into compose.Config values plus output settings. The file format
// mirrors the pipeline's input contract:
//
//	[grid]
//	kind    = "square"      # square | triangular | radial
//	rows    = 4             # rings for radial
//	cols    = 4             # spokes for radial
//	spacing = 1.0
//
//	[symmetry]
//	order = 4
//	kind  = "dihedral"      # rotational | reflective | dihedral
//
//	[pattern]
//	type       = "geometric" # geometric | floral | diamond | spiral | custom
//	complexity = "simple"    # simple | medium | complex
//	seed       = 42
//	[pattern.weights]        # custom only; must sum to 1
//	geometric = 0.5
//	floral    = 0.5
//
//	[output]
//	dir   = "designs"
//	count = 1
//
// Defaults fill absent fields; deep semantic validation (weights, orders,
// dimensions) stays with the compose pipeline so there is exactly one
// authority per rule. Load rejects only what TOML cannot express or what
// would be nonsense in every pipeline (empty output directory, count < 1).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kolamlab/kolam/compose"
	"github.com/kolamlab/kolam/grid"
	"github.com/kolamlab/kolam/pattern"
	"github.com/kolamlab/kolam/symmetry"
)

// ErrBadFile indicates an unreadable or syntactically invalid config file.
var ErrBadFile = errors.New("config: invalid config file")

// Defaults for absent fields.
const (
	defaultLattice    = grid.Square
	defaultRows       = 5
	defaultCols       = 5
	defaultSpacing    = 1.0
	defaultOrder      = 4
	defaultSymmetry   = symmetry.Rotational
	defaultPattern    = pattern.Geometric
	defaultComplexity = pattern.Simple
	defaultOutputDir  = "designs"
	defaultCount      = 1
)

// File is the on-disk TOML shape.
type File struct {
	Grid     GridSection     `toml:"grid"`
	Symmetry SymmetrySection `toml:"symmetry"`
	Pattern  PatternSection  `toml:"pattern"`
	Output   OutputSection   `toml:"output"`
}

type GridSection struct {
	Kind    string  `toml:"kind"`
	Rows    int     `toml:"rows"`
	Cols    int     `toml:"cols"`
	Spacing float64 `toml:"spacing"`
}

type SymmetrySection struct {
	Order int    `toml:"order"`
	Kind  string `toml:"kind"`
}

type PatternSection struct {
	Type       string             `toml:"type"`
	Complexity string             `toml:"complexity"`
	Seed       int64              `toml:"seed"`
	Weights    map[string]float64 `toml:"weights"`
}

// OutputSection configures the batch/CLI collaborators, not the pipeline.
type OutputSection struct {
	Dir   string `toml:"dir"`
	Count int    `toml:"count"`
}

// Settings is the resolved result of a config file.
type Settings struct {
	Compose compose.Config
	Output  OutputSection
}

// LoadFile reads and resolves a TOML config file.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %v: %w", err, ErrBadFile)
	}
	return Load(data)
}

// Load resolves TOML config content.
func Load(data []byte) (*Settings, error) {
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("Load: %v: %w", err, ErrBadFile)
	}
	f.applyDefaults()
	if err := f.check(); err != nil {
		return nil, err
	}
	return &Settings{Compose: f.composeConfig(), Output: f.Output}, nil
}

// applyDefaults fills absent fields so a minimal file still generates.
func (f *File) applyDefaults() {
	if f.Grid.Kind == "" {
		f.Grid.Kind = string(defaultLattice)
	}
	if f.Grid.Rows == 0 {
		f.Grid.Rows = defaultRows
	}
	if f.Grid.Cols == 0 {
		f.Grid.Cols = defaultCols
	}
	if f.Grid.Spacing == 0 {
		f.Grid.Spacing = defaultSpacing
	}
	if f.Symmetry.Order == 0 {
		f.Symmetry.Order = defaultOrder
	}
	if f.Symmetry.Kind == "" {
		f.Symmetry.Kind = string(defaultSymmetry)
	}
	if f.Pattern.Type == "" {
		f.Pattern.Type = string(defaultPattern)
	}
	if f.Pattern.Complexity == "" {
		f.Pattern.Complexity = string(defaultComplexity)
	}
	if f.Output.Dir == "" {
		f.Output.Dir = defaultOutputDir
	}
	if f.Output.Count == 0 {
		f.Output.Count = defaultCount
	}
}

// check rejects output settings no pipeline could use.
func (f *File) check() error {
	if f.Output.Count < 1 {
		return fmt.Errorf("Load: output count %d (must be ≥ 1): %w",
			f.Output.Count, ErrBadFile)
	}
	return nil
}

// composeConfig maps the file shape onto the pipeline contract.
func (f *File) composeConfig() compose.Config {
	var weights map[pattern.Type]float64
	if len(f.Pattern.Weights) > 0 {
		weights = make(map[pattern.Type]float64, len(f.Pattern.Weights))
		for name, w := range f.Pattern.Weights {
			weights[pattern.Type(name)] = w
		}
	}
	return compose.Config{
		Grid: grid.Spec{
			Kind:    grid.Lattice(f.Grid.Kind),
			Rows:    f.Grid.Rows,
			Cols:    f.Grid.Cols,
			Spacing: f.Grid.Spacing,
		},
		SymmetryOrder: f.Symmetry.Order,
		SymmetryKind:  symmetry.Kind(f.Symmetry.Kind),
		Pattern:       pattern.Type(f.Pattern.Type),
		Complexity:    pattern.Complexity(f.Pattern.Complexity),
		Seed:          f.Pattern.Seed,
		Weights:       weights,
	}
}
