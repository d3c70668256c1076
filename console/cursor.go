// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package console

import (
	"image"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/surface"
)

// Cursor is a write position on a grid with the colors it prints in.
type Cursor struct {
	Position   image.Point
	Foreground glyphgrid.Color
	Background glyphgrid.Color
}

// Print writes text at the cursor, wrapping at the right edge and stopping
// at the bottom. '\n' moves to the start of the next line.
func (c *Cursor) Print(g *surface.Grid, text string) {
	for _, r := range text {
		if c.Position.Y >= g.Height() {
			return
		}
		if r == '\n' {
			c.Newline(g)
			continue
		}
		g.Print(c.Position.X, c.Position.Y, string(r), c.Foreground, c.Background)
		c.advance(g)
	}
}

// Newline moves to the start of the next line.
func (c *Cursor) Newline(g *surface.Grid) {
	c.Position = image.Pt(0, min(c.Position.Y+1, g.Height()))
}

// Backspace moves one cell back, wrapping to the previous line, and blanks
// that cell.
func (c *Cursor) Backspace(g *surface.Grid) {
	switch {
	case c.Position.X > 0:
		c.Position.X--
	case c.Position.Y > 0:
		c.Position = image.Pt(g.Width()-1, c.Position.Y-1)
	default:
		return
	}
	g.SetCell(c.Position.X, c.Position.Y, surface.NewCell(0, c.Foreground, c.Background))
}

// Move shifts the cursor by (dx, dy), clamped to the grid.
func (c *Cursor) Move(g *surface.Grid, dx, dy int) {
	c.Position = clampPoint(c.Position.Add(image.Pt(dx, dy)), g.Width()-1, g.Height()-1)
}

func (c *Cursor) advance(g *surface.Grid) {
	c.Position.X++
	if c.Position.X >= g.Width() {
		c.Newline(g)
	}
}

func clampPoint(p image.Point, maxX, maxY int) image.Point {
	return image.Pt(max(0, min(p.X, maxX)), max(0, min(p.Y, maxY)))
}
