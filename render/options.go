// SPDX-License-Identifier: MIT
// Package: kolam/render
//
// options.go - functional options shared by the SVG writer and the preview.
//
// Contract (strict):
//   - Options are functional (type Option func(*renderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the renderers themselves never panic.
//   - No hidden globals; everything flows through renderConfig.
package render

// Rendering defaults. Stroke width and dot radius are in the same plane
// units as the design coordinates.
const (
	defaultStrokeWidth = 0.08
	defaultDotRadius   = 0.09
	defaultScale       = 40.0
	defaultMargin      = 1.5
	defaultCols        = 64
)

// defaultPalette cycles per path; traditional kolam chalk-on-ochre hues.
var defaultPalette = []string{
	"#f8f4e6", // chalk white
	"#e5b84b", // turmeric
	"#c0544c", // brick
	"#6b8f71", // leaf
	"#7a6ea8", // violet
}

// renderConfig is the resolved option set. Lowercase and immutable after
// option application.
type renderConfig struct {
	strokeWidth float64
	dotRadius   float64
	scale       float64
	margin      float64
	palette     []string
	hideDots    bool
	cols        int
}

func defaultConfig() renderConfig {
	return renderConfig{
		strokeWidth: defaultStrokeWidth,
		dotRadius:   defaultDotRadius,
		scale:       defaultScale,
		margin:      defaultMargin,
		palette:     defaultPalette,
		cols:        defaultCols,
	}
}

// Option customizes a renderer by mutating a renderConfig before any
// output is produced. Applying N options costs O(N).
type Option func(*renderConfig)

// WithStrokeWidth sets the stroke width in plane units. Panics on
// non-positive values to surface programmer error early.
func WithStrokeWidth(w float64) Option {
	if w <= 0 {
		panic("render: WithStrokeWidth(non-positive)")
	}
	return func(c *renderConfig) { c.strokeWidth = w }
}

// WithPalette replaces the per-path color cycle. Panics on an empty list.
func WithPalette(colors []string) Option {
	if len(colors) == 0 {
		panic("render: WithPalette(empty)")
	}
	return func(c *renderConfig) { c.palette = colors }
}

// WithScale sets the plane-unit to pixel scale of the SVG viewport.
// Panics on non-positive values.
func WithScale(s float64) Option {
	if s <= 0 {
		panic("render: WithScale(non-positive)")
	}
	return func(c *renderConfig) { c.scale = s }
}

// WithoutDots hides the dot lattice, leaving only the strokes.
func WithoutDots() Option {
	return func(c *renderConfig) { c.hideDots = true }
}

// WithPreviewCols sets the character width of the terminal preview.
// Panics on widths too narrow to show anything.
func WithPreviewCols(cols int) Option {
	if cols < 8 {
		panic("render: WithPreviewCols(too narrow)")
	}
	return func(c *renderConfig) { c.cols = cols }
}

func resolve(opts []Option) renderConfig {
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}
	return c
}
