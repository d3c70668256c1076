// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Depth is the layer a DrawOp belongs to. Layers are drawn back to front
// in the order Background, Glyph, Overlay.
type Depth uint8

const (
	DepthBackground Depth = iota // default and per-cell backgrounds
	DepthGlyph                   // cell glyphs
	DepthOverlay                 // subset tint
)

// Value returns the layer depth used by depth-buffered backends.
func (d Depth) Value() float32 {
	switch d {
	case DepthBackground:
		return 0.1
	case DepthGlyph:
		return 0.2
	case DepthOverlay:
		return 0.3
	default:
		return 0
	}
}

// String returns the layer name.
func (d Depth) String() string {
	switch d {
	case DepthBackground:
		return "Background"
	case DepthGlyph:
		return "Glyph"
	case DepthOverlay:
		return "Overlay"
	default:
		return "Unknown"
	}
}
