// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package console

import (
	"image"

	"github.com/gogpu/glyphgrid/render"
	"github.com/gogpu/glyphgrid/surface"
)

// Renderable is a surface that can draw itself.
type Renderable interface {
	Render(r *render.Renderer) error
}

// Static renders a grid whose content is fixed for long stretches.
//
// The subset covering the whole grid is built by NewStatic and rebuilt only
// by SetGrid with a different grid or by Refresh. Edits made to the grid in
// between are not shown until then.
type Static struct {
	grid   *surface.Grid
	pos    image.Point
	pixel  bool
	sub    *surface.Subset
	builds int
}

// Ensure Static is only Renderable.
var _ Renderable = (*Static)(nil)

// NewStatic snapshots grid for rendering at pos, in pixels when pixel is
// set and in cells otherwise.
func NewStatic(grid *surface.Grid, pos image.Point, pixel bool) (*Static, error) {
	s := &Static{grid: grid, pos: pos, pixel: pixel}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the wrapped grid.
func (s *Static) Grid() *surface.Grid { return s.grid }

// SetGrid wraps a different grid. Passing the current grid is a no-op.
func (s *Static) SetGrid(g *surface.Grid) error {
	if g == s.grid {
		return nil
	}
	prev := s.grid
	s.grid = g
	if err := s.Refresh(); err != nil {
		s.grid = prev
		return err
	}
	return nil
}

// Refresh rebuilds the snapshot from the current grid content. Use it after
// a font or size change of the grid.
func (s *Static) Refresh() error {
	if s.grid == nil {
		return ErrNilGrid
	}
	sub, err := surface.NewSubset(s.grid, s.grid.Bounds())
	if err != nil {
		return err
	}
	s.sub = sub
	s.builds++
	return nil
}

// Position returns the placement and whether it is in pixels.
func (s *Static) Position() (pos image.Point, pixel bool) { return s.pos, s.pixel }

// SetPosition moves the surface. The snapshot is kept.
func (s *Static) SetPosition(pos image.Point, pixel bool) {
	s.pos, s.pixel = pos, pixel
}

// Subset returns the cached snapshot.
func (s *Static) Subset() *surface.Subset { return s.sub }

// Builds returns how many snapshots have been built.
func (s *Static) Builds() int { return s.builds }

// Render draws the cached snapshot.
func (s *Static) Render(r *render.Renderer) error {
	return r.Render(s.sub, s.pos, s.pixel)
}
