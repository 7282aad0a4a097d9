// SPDX-License-Identifier: MIT
// Package: kolam/render

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamlab/kolam/compose"
	"github.com/kolamlab/kolam/grid"
	"github.com/kolamlab/kolam/pattern"
	"github.com/kolamlab/kolam/symmetry"
)

func testKolam(t *testing.T) *compose.Kolam {
	t.Helper()
	k, err := compose.Generate(compose.Config{
		Grid:          grid.Spec{Kind: grid.Square, Rows: 4, Cols: 4, Spacing: 1},
		SymmetryOrder: 4,
		SymmetryKind:  symmetry.Rotational,
		Pattern:       pattern.Geometric,
		Complexity:    pattern.Simple,
		Seed:          42,
	})
	require.NoError(t, err)
	return k
}

func TestSVG_Structure(t *testing.T) {
	k := testKolam(t)

	var b strings.Builder
	require.NoError(t, SVG(&b, k))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, len(k.Dots), strings.Count(out, "<circle "))
	assert.Equal(t, len(k.Paths), strings.Count(out, "<path "))
	// Closed geometric paths emit straight commands and a closing Z.
	assert.Contains(t, out, " L ")
	assert.Contains(t, out, " Z\"")
}

func TestSVG_Options(t *testing.T) {
	k := testKolam(t)

	var b strings.Builder
	require.NoError(t, SVG(&b, k, WithoutDots(), WithPalette([]string{"#ffffff"})))
	out := b.String()

	assert.Zero(t, strings.Count(out, "<circle "))
	assert.Contains(t, out, "stroke=\"#ffffff\"")
}

func TestSVG_CurvedSegmentsEmitQ(t *testing.T) {
	k := testKolam(t)
	k2, err := compose.Generate(compose.Config{
		Grid:          k.Grid,
		SymmetryOrder: 4,
		SymmetryKind:  symmetry.Rotational,
		Pattern:       pattern.Floral,
		Complexity:    pattern.Simple,
		Seed:          42,
	})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, SVG(&b, k2))
	assert.Contains(t, b.String(), " Q ")
}

func TestSVG_Deterministic(t *testing.T) {
	k := testKolam(t)

	var a, b strings.Builder
	require.NoError(t, SVG(&a, k))
	require.NoError(t, SVG(&b, k))
	assert.Equal(t, a.String(), b.String())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { WithStrokeWidth(0) })
	assert.Panics(t, func() { WithScale(-1) })
	assert.Panics(t, func() { WithPalette(nil) })
	assert.Panics(t, func() { WithPreviewCols(2) })
}

func TestPreview(t *testing.T) {
	k := testKolam(t)

	out := Preview(k, WithPreviewCols(48))
	require.NotEmpty(t, out)
	assert.Contains(t, out, string(glyphDot))
	assert.Contains(t, out, string(glyphStroke))

	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 4)
}
