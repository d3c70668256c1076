// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/font"
)

// Subset is a render-ready snapshot of a rectangular window of a Source.
//
// Rects and cells are stored in row-major order of the window. Rect i is
// the destination of cell i in subset-local pixel space, so the subset can
// be placed anywhere by the renderer transform. A Subset never changes after
// NewSubset returns; build a new one when the window or the source changes.
type Subset struct {
	area     image.Rectangle
	absolute image.Rectangle
	rects    []image.Rectangle
	cells    []Cell
	style    Style
}

// NewSubset validates area against the bounds of src and snapshots the
// cells inside it. The area is given in cells.
//
// An area that does not lie inside the source fails with an
// *AreaOutOfBoundsError naming the violated edge. A source without a font
// view fails with ErrNoFont.
func NewSubset(src Source, area image.Rectangle) (*Subset, error) {
	if err := checkArea(area, src.Width(), src.Height()); err != nil {
		return nil, err
	}
	style := src.Style()
	if style.Font == nil {
		return nil, ErrNoFont
	}

	cell := style.Font.CellSize()
	w, h := area.Dx(), area.Dy()
	s := &Subset{
		area:     area,
		absolute: image.Rect(0, 0, w*cell.X, h*cell.Y),
		rects:    make([]image.Rectangle, 0, w*h),
		cells:    make([]Cell, 0, w*h),
		style:    style,
	}

	width := src.Width()
	for ly := range h {
		row := (area.Min.Y + ly) * width
		for lx := range w {
			at := image.Pt(lx*cell.X, ly*cell.Y)
			s.rects = append(s.rects, image.Rectangle{Min: at, Max: at.Add(cell)})
			s.cells = append(s.cells, src.At(row+area.Min.X+lx))
		}
	}
	return s, nil
}

// MustSubset is like NewSubset but panics on error.
// Intended for layouts known to be valid at compile time.
func MustSubset(src Source, area image.Rectangle) *Subset {
	s, err := NewSubset(src, area)
	if err != nil {
		panic(err)
	}
	return s
}

func checkArea(area image.Rectangle, width, height int) error {
	fail := func(e Edge) error {
		return &AreaOutOfBoundsError{Edge: e, Area: area, Width: width, Height: height}
	}
	switch {
	case area.Dx() < 0 || area.Dy() < 0:
		return fail(EdgeInverted)
	case area.Dx() > width:
		return fail(EdgeTooWide)
	case area.Dy() > height:
		return fail(EdgeTooTall)
	case area.Min.X < 0:
		return fail(EdgeLeft)
	case area.Min.Y < 0:
		return fail(EdgeTop)
	case area.Max.X > width:
		return fail(EdgeRight)
	case area.Max.Y > height:
		return fail(EdgeBottom)
	}
	return nil
}

// Area returns the window in source cell coordinates.
func (s *Subset) Area() image.Rectangle { return s.area }

// AbsoluteArea returns (0, 0, width*cellWidth, height*cellHeight).
func (s *Subset) AbsoluteArea() image.Rectangle { return s.absolute }

// Width returns the window width in cells.
func (s *Subset) Width() int { return s.area.Dx() }

// Height returns the window height in cells.
func (s *Subset) Height() int { return s.area.Dy() }

// Len returns the number of cells in the window.
func (s *Subset) Len() int { return len(s.cells) }

// Rect returns the destination rectangle of cell i.
func (s *Subset) Rect(i int) image.Rectangle { return s.rects[i] }

// Cell returns the snapshot of cell i.
func (s *Subset) Cell(i int) Cell { return s.cells[i] }

// Rects returns a copy of the destination rectangles.
func (s *Subset) Rects() []image.Rectangle {
	out := make([]image.Rectangle, len(s.rects))
	copy(out, s.rects)
	return out
}

// Cells returns a copy of the cell snapshot.
func (s *Subset) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Style returns the style captured at construction.
func (s *Subset) Style() Style { return s.style }

// Font returns the font view captured at construction.
func (s *Subset) Font() *font.View { return s.style.Font }

// CellSize returns the pixel size of one cell.
func (s *Subset) CellSize() image.Point { return s.style.Font.CellSize() }

// DefaultForeground returns the default foreground color.
func (s *Subset) DefaultForeground() glyphgrid.Color { return s.style.DefaultForeground }

// DefaultBackground returns the color painted under the whole subset.
func (s *Subset) DefaultBackground() glyphgrid.Color { return s.style.DefaultBackground }

// Tint returns the overlay color.
func (s *Subset) Tint() glyphgrid.Color { return s.style.Tint }
