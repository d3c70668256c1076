// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"image"
	"slices"
)

// View is an immutable snapshot of an atlas at an integer size multiple.
//
// The rectangle table is a private copy taken when the view is created, so
// later changes to the atlas do not affect it. The image is shared with the
// atlas; a view never owns pixel data.
type View struct {
	name     string
	img      image.Image
	cellSize image.Point
	multiple int
	rects    []image.Rectangle
	solid    int
}

// View returns a snapshot of the atlas whose destination cell size is the
// atlas cell size times multiple. A multiple below 1 is treated as 1.
func (a *Atlas) View(multiple int) *View {
	if multiple < 1 {
		multiple = 1
	}
	return &View{
		name:     a.Name,
		img:      a.img,
		cellSize: image.Pt(a.cellWidth*multiple, a.cellHeight*multiple),
		multiple: multiple,
		rects:    slices.Clone(a.rects),
		solid:    SolidGlyph,
	}
}

// WithSolidGlyph returns a copy of the view that uses glyph index i for
// background and tint quads.
func (v *View) WithSolidGlyph(i int) *View {
	c := *v
	c.solid = i
	return &c
}

// Name returns the name of the atlas the view was taken from.
func (v *View) Name() string { return v.name }

// Image returns the shared glyph image.
func (v *View) Image() image.Image { return v.img }

// CellSize returns the destination size of one cell in pixels.
func (v *View) CellSize() image.Point { return v.cellSize }

// Multiple returns the size multiple the view was created with.
func (v *View) Multiple() int { return v.multiple }

// GlyphCount returns the number of addressable glyphs.
func (v *View) GlyphCount() int { return len(v.rects) }

// MaxGlyph returns the highest valid glyph index, -1 for an empty table.
func (v *View) MaxGlyph() int { return len(v.rects) - 1 }

// Rect returns the source rectangle of glyph index i.
func (v *View) Rect(i int) (image.Rectangle, error) {
	if i < 0 || i >= len(v.rects) {
		return image.Rectangle{}, &GlyphIndexError{Index: i, Count: len(v.rects)}
	}
	return v.rects[i], nil
}

// Rects returns a copy of the rectangle table.
func (v *View) Rects() []image.Rectangle {
	return slices.Clone(v.rects)
}

// SolidGlyph returns the glyph index used for solid quads.
func (v *View) SolidGlyph() int { return v.solid }

// SolidRect returns the source rectangle of the solid glyph.
// ok is false when the atlas has no glyph at that index.
func (v *View) SolidRect() (r image.Rectangle, ok bool) {
	if v.solid < 0 || v.solid >= len(v.rects) {
		return image.Rectangle{}, false
	}
	return v.rects[v.solid], true
}
