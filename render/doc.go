// SPDX-License-Identifier: MIT
// Package: kolam/render
//
// Package render turns a frozen design into human-visible output: an SVG
// document for files and a styled unicode preview for terminals. Both
// consumers are read-only; rendering never mutates the design.
//
// The SVG writer is a thin emitter: dots become circles, straight segments
// become line commands, curved segments become quadratic bezier commands,
// and each path takes the next color of a fixed palette so strokes remain
// distinguishable. Stroke width, palette, and dot visibility are functional
// options.
package render
