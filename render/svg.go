// SPDX-License-Identifier: MIT
// Package: kolam/render
//
// svg.go - the SVG document writer.
//
// Output layout: one <svg> with a viewBox derived from the grid bounds plus
// the overshoot margin, a background rect, optional dot circles, and one
// <path> element per curve path. Straight segments emit L commands, curved
// segments emit Q commands through their control point, closed paths end
// with Z. Coordinates are flipped so +Y points up as in the plane model.
package render

import (
	"fmt"
	"io"

	"github.com/kolamlab/kolam/compose"
	"github.com/kolamlab/kolam/curve"
	"github.com/kolamlab/kolam/grid"
)

const svgBackground = "#8b5a2b" // ochre floor

// SVG writes the design as a standalone SVG document.
func SVG(w io.Writer, k *compose.Kolam, opts ...Option) error {
	cfg := resolve(opts)

	min, max := grid.Bounds(k.Grid, cfg.margin*k.Grid.Spacing)
	width := (max.X - min.X) * cfg.scale
	height := (max.Y - min.Y) * cfg.scale

	// Map plane coordinates to SVG pixels, flipping Y.
	px := func(p curve.Point) (float64, float64) {
		return (p.X - min.X) * cfg.scale, (max.Y - p.Y) * cfg.scale
	}

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		width, height, width, height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", svgBackground); err != nil {
		return err
	}

	if !cfg.hideDots {
		for _, d := range k.Dots {
			x, y := px(d.Pos)
			if _, err := fmt.Fprintf(w,
				"  <circle cx=\"%.3f\" cy=\"%.3f\" r=\"%.3f\" fill=\"%s\"/>\n",
				x, y, cfg.dotRadius*cfg.scale, cfg.palette[0]); err != nil {
				return err
			}
		}
	}

	for pi, p := range k.Paths {
		color := cfg.palette[pi%len(cfg.palette)]
		if _, err := fmt.Fprintf(w,
			"  <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%.3f\" stroke-linecap=\"round\"/>\n",
			pathData(p, px), color, cfg.strokeWidth*cfg.scale); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

// pathData renders one curve path as an SVG path data string.
func pathData(p curve.Path, px func(curve.Point) (float64, float64)) string {
	if p.Len() == 0 {
		return ""
	}
	sx, sy := px(p.Start())
	d := fmt.Sprintf("M %.3f %.3f", sx, sy)
	for _, s := range p.Segments {
		tx, ty := px(s.To)
		if s.Kind == curve.Line {
			d += fmt.Sprintf(" L %.3f %.3f", tx, ty)
			continue
		}
		cx, cy := px(s.Ctrl)
		d += fmt.Sprintf(" Q %.3f %.3f %.3f %.3f", cx, cy, tx, ty)
	}
	if p.Closed {
		d += " Z"
	}
	return d
}
