// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"log/slog"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/font"
	"github.com/gogpu/glyphgrid/surface"
)

// Stats counts renderer work since creation or the last ResetStats.
type Stats struct {
	Batches             int // batches submitted
	Draws               int // DrawOps issued
	TransformRecomputes int // TransformFunc calls
	SkippedGlyphs       int // glyphs not drawn because the index was out of range
}

// placement is one cached position-to-transform derivation.
type placement struct {
	valid bool
	pos   image.Point
	cell  image.Point
	m     glyphgrid.Matrix
}

// Renderer draws surface subsets to a Sink.
//
// One renderer may draw many subsets, but its placement caches assume it
// drives one logical surface; give each moving surface its own renderer to
// keep the caches effective.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	sink      Sink
	transform TransformFunc
	logger    *slog.Logger

	pixel placement // pixel-mode cache
	grid  placement // cell-mode cache

	stats Stats
}

// NewRenderer creates a renderer drawing to sink.
func NewRenderer(sink Sink, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		sink:      sink,
		transform: o.transform,
		logger:    o.logger,
	}
}

// Sink returns the current sink.
func (r *Renderer) Sink() Sink { return r.sink }

// SetSink changes the sink. Cached placements are kept.
func (r *Renderer) SetSink(s Sink) { r.sink = s }

// Stats returns the work counters.
func (r *Renderer) Stats() Stats { return r.stats }

// ResetStats zeroes the work counters.
func (r *Renderer) ResetStats() { r.stats = Stats{} }

// Invalidate drops both cached placements.
func (r *Renderer) Invalidate() {
	r.pixel = placement{}
	r.grid = placement{}
}

// Render draws sub at pos. With pixel set, pos is in pixels; otherwise it
// is in cells of the subset font and converted to pixels first.
func (r *Renderer) Render(sub *surface.Subset, pos image.Point, pixel bool) error {
	if sub == nil {
		return ErrNilSubset
	}
	if r.sink == nil {
		return ErrNoSink
	}
	return r.compose(sub, r.place(sub.CellSize(), pos, pixel))
}

// RenderTransform draws sub with a caller-supplied batch transform,
// bypassing the placement caches.
func (r *Renderer) RenderTransform(sub *surface.Subset, m glyphgrid.Matrix) error {
	if sub == nil {
		return ErrNilSubset
	}
	if r.sink == nil {
		return ErrNoSink
	}
	return r.compose(sub, m)
}

// place returns the transform for a placement, deriving it only when the
// position differs from the cached one of the same mode.
func (r *Renderer) place(cell, pos image.Point, pixel bool) glyphgrid.Matrix {
	if pixel {
		if !r.pixel.valid || r.pixel.pos != pos {
			r.pixel = placement{valid: true, pos: pos, m: r.derive(pos)}
		}
		return r.pixel.m
	}
	if !r.grid.valid || r.grid.pos != pos || r.grid.cell != cell {
		world := image.Pt(pos.X*cell.X, pos.Y*cell.Y)
		r.grid = placement{valid: true, pos: pos, cell: cell, m: r.derive(world)}
	}
	return r.grid.m
}

func (r *Renderer) derive(world image.Point) glyphgrid.Matrix {
	r.stats.TransformRecomputes++
	return r.transform(world)
}

func (r *Renderer) compose(sub *surface.Subset, m glyphgrid.Matrix) error {
	view := sub.Font()
	area := sub.AbsoluteArea()
	tint := sub.Tint()

	r.sink.Begin(DefaultBatchState(m))
	r.stats.Batches++

	if tint.IsOpaque() {
		// The tint hides every cell.
		r.emit(solidOp(view, area, tint, DepthOverlay))
		return r.sink.End()
	}

	if bg := sub.DefaultBackground(); !bg.IsTransparent() {
		r.emit(DrawOp{Dst: area, Color: bg, Depth: DepthBackground, Glyph: NoGlyph})
	}

	defaultBG := sub.DefaultBackground()
	for i := range sub.Len() {
		c := sub.Cell(i)
		if !c.Visible {
			continue
		}
		dst := sub.Rect(i)
		if !c.Background.IsTransparent() && c.Background != defaultBG {
			r.emit(solidOp(view, dst, c.Background, DepthBackground))
		}
		if c.Foreground.IsTransparent() {
			continue
		}
		src, err := view.Rect(c.Glyph)
		if err != nil {
			r.stats.SkippedGlyphs++
			r.log().Debug("render: glyph skipped", "cell", i, "glyph", c.Glyph, "max", view.MaxGlyph())
			continue
		}
		r.emit(DrawOp{
			Image: view.Image(),
			Dst:   dst,
			Src:   src,
			Color: c.Foreground,
			Flip:  c.Flip,
			Depth: DepthGlyph,
			Glyph: c.Glyph,
		})
	}

	if !tint.IsTransparent() {
		r.emit(solidOp(view, area, tint, DepthOverlay))
	}
	return r.sink.End()
}

func (r *Renderer) emit(op DrawOp) {
	r.stats.Draws++
	r.sink.Draw(op)
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return glyphgrid.Logger()
}

// solidOp covers dst with c using the solid glyph of view, or a plain fill
// when the atlas has none.
func solidOp(view *font.View, dst image.Rectangle, c glyphgrid.Color, d Depth) DrawOp {
	src, ok := view.SolidRect()
	if !ok {
		return DrawOp{Dst: dst, Color: c, Depth: d, Glyph: NoGlyph}
	}
	return DrawOp{
		Image: view.Image(),
		Dst:   dst,
		Src:   src,
		Color: c,
		Depth: d,
		Glyph: view.SolidGlyph(),
	}
}
