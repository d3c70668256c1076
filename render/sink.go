// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/glyphgrid"
)

// NoGlyph is the Glyph of a DrawOp that is not taken from the atlas.
const NoGlyph = -1

// DrawOp is one textured quad.
//
// Src is scaled to Dst, modulated by Color and flipped by Flip. A nil Image
// means a solid fill of Dst with Color. Dst is in subset-local pixels; the
// batch transform places it on the target.
type DrawOp struct {
	Image    image.Image
	Dst      image.Rectangle
	Src      image.Rectangle
	Color    glyphgrid.Color
	Rotation float64     // always 0
	Origin   image.Point // always (0, 0)
	Flip     glyphgrid.Flip
	Depth    Depth

	// Glyph is the atlas index Src was taken from, or NoGlyph. Backends
	// that address glyphs by index (terminals) use it instead of pixels.
	Glyph int
}

// IsFill reports whether the op is a solid fill rather than a textured quad.
func (op DrawOp) IsFill() bool { return op.Image == nil }

// Blend selects how source pixels combine with the target.
type Blend uint8

const (
	// BlendNonPremultiplied treats colors as straight alpha and composites
	// source over destination.
	BlendNonPremultiplied Blend = iota
	// BlendOpaque replaces destination pixels.
	BlendOpaque
)

// Filter selects how scaled glyphs are sampled.
type Filter uint8

const (
	FilterNearest Filter = iota // point sampling, crisp cell edges
	FilterLinear                // bilinear sampling
)

// BatchState is established once per batch and applies to every DrawOp
// in it.
type BatchState struct {
	Transform glyphgrid.Matrix
	Blend     Blend
	Filter    Filter

	// DepthRead means depth is tested but not written: ops keep the order
	// they were issued in within one layer.
	DepthRead bool
}

// DefaultBatchState returns the state the Renderer uses: straight alpha,
// point sampling and read-only depth under transform m.
func DefaultBatchState(m glyphgrid.Matrix) BatchState {
	return BatchState{
		Transform: m,
		Blend:     BlendNonPremultiplied,
		Filter:    FilterNearest,
		DepthRead: true,
	}
}

// Sink receives draw batches. Begin and End always come in pairs; Draw is
// only called between them. End submits the batch.
type Sink interface {
	Begin(state BatchState)
	Draw(op DrawOp)
	End() error
}
