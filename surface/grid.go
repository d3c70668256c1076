// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/font"
)

// Grid is a fixed-size, row-major array of cells.
type Grid struct {
	width   int
	height  int
	cells   []Cell
	style   Style
	version uint64
}

// Ensure Grid implements Source.
var _ Source = (*Grid)(nil)

// NewGrid creates a grid of blank cells using DefaultStyle(view).
// Negative dimensions are treated as zero.
func NewGrid(width, height int, view *font.View) *Grid {
	width, height = max(width, 0), max(height, 0)
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		style:  DefaultStyle(view),
	}
	g.Clear()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the cell rectangle (0, 0, width, height).
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.width, g.height) }

// Len returns width * height.
func (g *Grid) Len() int { return len(g.cells) }

// Style returns the grid style.
func (g *Grid) Style() Style { return g.style }

// Version increases on every mutation. Caches compare it to detect changes.
func (g *Grid) Version() uint64 { return g.version }

// Index returns the linear index of (x, y).
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at linear index i.
func (g *Grid) At(i int) Cell { return g.cells[i] }

// Cell returns the cell at (x, y). ok is false outside the grid.
func (g *Grid) Cell(x, y int) (c Cell, ok bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.Index(x, y)], true
}

// SetCell replaces the cell at (x, y). It reports whether (x, y) was inside
// the grid.
func (g *Grid) SetCell(x, y int, c Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.Index(x, y)] = c
	g.version++
	return true
}

// SetGlyph changes the glyph at (x, y), keeping colors.
func (g *Grid) SetGlyph(x, y, glyph int) bool {
	c, ok := g.Cell(x, y)
	if !ok {
		return false
	}
	c.Glyph = glyph
	return g.SetCell(x, y, c)
}

// SetForeground changes the foreground color at (x, y).
func (g *Grid) SetForeground(x, y int, fg glyphgrid.Color) bool {
	c, ok := g.Cell(x, y)
	if !ok {
		return false
	}
	c.Foreground = fg
	return g.SetCell(x, y, c)
}

// SetBackground changes the background color at (x, y).
func (g *Grid) SetBackground(x, y int, bg glyphgrid.Color) bool {
	c, ok := g.Cell(x, y)
	if !ok {
		return false
	}
	c.Background = bg
	return g.SetCell(x, y, c)
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	if len(g.cells) == 0 {
		return
	}
	g.cells[0] = c
	for filled := 1; filled < len(g.cells); filled *= 2 {
		copy(g.cells[filled:], g.cells[:filled])
	}
	g.version++
}

// Clear resets every cell to a visible blank in the default colors.
func (g *Grid) Clear() {
	g.Fill(NewCell(0, g.style.DefaultForeground, g.style.DefaultBackground))
}

// Print writes text starting at (x, y) in the given colors and returns the
// number of cells written. Text is clipped at the right edge, not wrapped.
// Runes are mapped to glyph indices through code page 437; runes outside it
// are printed as '?'.
func (g *Grid) Print(x, y int, text string, fg, bg glyphgrid.Color) int {
	if y < 0 || y >= g.height {
		return 0
	}
	n := 0
	for _, r := range text {
		if x >= g.width {
			break
		}
		if x >= 0 {
			glyph, ok := font.GlyphIndex(r)
			if !ok {
				glyph = '?'
			}
			g.cells[g.Index(x, y)] = NewCell(glyph, fg, bg)
			n++
		}
		x++
	}
	if n > 0 {
		g.version++
	}
	return n
}

// Resize changes the grid dimensions, keeping the overlapping cells and
// filling new ones with blanks.
func (g *Grid) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == g.width && height == g.height {
		return
	}
	cells := make([]Cell, width*height)
	blank := NewCell(0, g.style.DefaultForeground, g.style.DefaultBackground)
	for y := range height {
		for x := range width {
			if x < g.width && y < g.height {
				cells[y*width+x] = g.cells[g.Index(x, y)]
			} else {
				cells[y*width+x] = blank
			}
		}
	}
	g.width, g.height, g.cells = width, height, cells
	g.version++
}

// SetFont changes the font view.
func (g *Grid) SetFont(view *font.View) {
	g.style.Font = view
	g.version++
}

// SetDefaults changes the default colors. Existing cells keep their colors.
func (g *Grid) SetDefaults(fg, bg glyphgrid.Color) {
	g.style.DefaultForeground = fg
	g.style.DefaultBackground = bg
	g.version++
}

// SetTint changes the overlay tint.
func (g *Grid) SetTint(c glyphgrid.Color) {
	g.style.Tint = c
	g.version++
}
