// SPDX-License-Identifier: MIT
// Package: kolam/render
//
// preview.go - the styled terminal preview.
//
// The preview rasterizes the design onto a character canvas: dots render as
// "●", stroke samples as "·", empty floor as space. Cells are two columns
// wide per plane unit step to compensate for terminal glyph aspect ratio.
// Styling goes through lipgloss so the output degrades gracefully on
// non-color terminals.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kolamlab/kolam/compose"
	"github.com/kolamlab/kolam/curve"
	"github.com/kolamlab/kolam/grid"
)

// Preview glyph and style set.
var (
	dotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("222")).Bold(true)
	strokeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const (
	glyphDot    = '●'
	glyphStroke = '·'
	glyphEmpty  = ' '
)

// Preview renders the design as a styled unicode block suitable for
// direct terminal output.
func Preview(k *compose.Kolam, opts ...Option) string {
	cfg := resolve(opts)

	min, max := grid.Bounds(k.Grid, cfg.margin*k.Grid.Spacing)
	spanX, spanY := max.X-min.X, max.Y-min.Y
	cols := cfg.cols
	// Halve the row count: terminal cells are roughly twice as tall as wide.
	rows := int(float64(cols) * spanY / spanX / 2)
	if rows < 4 {
		rows = 4
	}

	canvas := make([][]rune, rows)
	for r := range canvas {
		canvas[r] = make([]rune, cols)
		for c := range canvas[r] {
			canvas[r][c] = glyphEmpty
		}
	}

	plot := func(p curve.Point, g rune) {
		c := int(float64(cols-1) * (p.X - min.X) / spanX)
		r := int(float64(rows-1) * (max.Y - p.Y) / spanY)
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return
		}
		// Dots win over strokes.
		if canvas[r][c] != glyphDot {
			canvas[r][c] = g
		}
	}

	for _, p := range k.Paths {
		for _, s := range p.Segments {
			for _, pt := range sampleSegment(s) {
				plot(pt, glyphStroke)
			}
		}
	}
	for _, d := range k.Dots {
		plot(d.Pos, glyphDot)
	}

	var b strings.Builder
	for _, row := range canvas {
		for _, g := range row {
			switch g {
			case glyphDot:
				b.WriteString(dotStyle.Render(string(g)))
			case glyphStroke:
				b.WriteString(strokeStyle.Render(string(g)))
			default:
				b.WriteRune(g)
			}
		}
		b.WriteByte('\n')
	}
	return frameStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// previewSamples is the number of evenly spaced points plotted per segment.
const previewSamples = 12

// sampleSegment walks a segment's flattened polyline at previewSamples
// evenly spaced points.
func sampleSegment(s curve.Segment) []curve.Point {
	poly := s.Flatten()
	pts := make([]curve.Point, 0, previewSamples)
	for i := 0; i < previewSamples; i++ {
		t := float64(i) / float64(previewSamples-1)
		pts = append(pts, polylineAt(poly, t))
	}
	return pts
}

// polylineAt evaluates a polyline at normalized arc parameter t.
func polylineAt(poly []curve.Point, t float64) curve.Point {
	if len(poly) == 1 {
		return poly[0]
	}
	total := 0.0
	for i := 0; i+1 < len(poly); i++ {
		total += poly[i].Dist(poly[i+1])
	}
	if total < curve.Epsilon {
		return poly[0]
	}
	target := t * total
	for i := 0; i+1 < len(poly); i++ {
		step := poly[i].Dist(poly[i+1])
		if target <= step || i+2 == len(poly) {
			if step < curve.Epsilon {
				return poly[i]
			}
			f := target / step
			if f > 1 {
				f = 1
			}
			return poly[i].Add(poly[i+1].Sub(poly[i]).Scale(f))
		}
		target -= step
	}
	return poly[len(poly)-1]
}
