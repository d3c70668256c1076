// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/font"
)

// Cell is the character, colors and visibility of one grid position.
// The renderer treats cells as read-only data.
type Cell struct {
	Visible    bool
	Foreground glyphgrid.Color
	Background glyphgrid.Color
	Glyph      int
	Flip       glyphgrid.Flip
}

// NewCell returns a visible cell.
func NewCell(glyph int, fg, bg glyphgrid.Color) Cell {
	return Cell{Visible: true, Foreground: fg, Background: bg, Glyph: glyph}
}

// Style is the appearance shared by every cell of a source.
type Style struct {
	// Font is the atlas view glyphs are drawn from.
	Font *font.View

	// DefaultForeground is the color new cells are printed with.
	DefaultForeground glyphgrid.Color

	// DefaultBackground is painted once under the whole surface. Cells whose
	// background equals it get no background quad of their own.
	DefaultBackground glyphgrid.Color

	// Tint is composited over all cell content.
	Tint glyphgrid.Color
}

// DefaultStyle returns white on black with no tint.
func DefaultStyle(view *font.View) Style {
	return Style{
		Font:              view,
		DefaultForeground: glyphgrid.White,
		DefaultBackground: glyphgrid.Black,
		Tint:              glyphgrid.Transparent,
	}
}

// Source is an addressable collection of cells with linear indexing
// index = row*Width() + col.
type Source interface {
	Width() int
	Height() int
	At(index int) Cell
	Style() Style
}
