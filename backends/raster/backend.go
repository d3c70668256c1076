// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"reflect"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/internal/cache"
	"github.com/gogpu/glyphgrid/render"
)

// Default size of backends created through the sink registry.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// DefaultTileCacheSize is the number of tinted glyph tiles kept.
const DefaultTileCacheSize = 4096

func init() {
	render.RegisterSink("raster", func() render.Sink {
		return NewBackend(DefaultWidth, DefaultHeight)
	})
}

// ErrNoBatch is returned by End when no batch is open.
var ErrNoBatch = errors.New("raster: End without Begin")

// tileKey identifies a tinted glyph tile.
type tileKey struct {
	img   image.Image
	src   image.Rectangle
	color glyphgrid.Color
	flip  glyphgrid.Flip
}

// Backend composites draw batches into an RGBA image.
//
// Backend is not safe for concurrent use; the tile cache is.
type Backend struct {
	img     *image.RGBA
	state   render.BatchState
	inBatch bool
	tiles   *cache.Cache[tileKey, *image.NRGBA]

	dropped int
}

// Ensure Backend implements render.Sink.
var _ render.Sink = (*Backend)(nil)

// NewBackend creates a backend with a transparent width x height target.
func NewBackend(width, height int) *Backend {
	return NewBackendFromImage(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
}

// NewBackendFromImage creates a backend drawing into img.
func NewBackendFromImage(img *image.RGBA) *Backend {
	return &Backend{
		img:   img,
		tiles: cache.New[tileKey, *image.NRGBA](DefaultTileCacheSize),
	}
}

// Image returns the target image.
func (b *Backend) Image() *image.RGBA { return b.img }

// Width returns the target width.
func (b *Backend) Width() int { return b.img.Bounds().Dx() }

// Height returns the target height.
func (b *Backend) Height() int { return b.img.Bounds().Dy() }

// Resize replaces the target with a transparent image of the new size.
func (b *Backend) Resize(width, height int) {
	b.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

// Clear fills the whole target with c.
func (b *Backend) Clear(c glyphgrid.Color) {
	xdraw.Draw(b.img, b.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, xdraw.Src)
}

// TileStats returns statistics of the tinted tile cache.
func (b *Backend) TileStats() cache.Stats { return b.tiles.Stats() }

// Dropped returns the number of ops received outside a batch.
func (b *Backend) Dropped() int { return b.dropped }

// Begin implements render.Sink.
func (b *Backend) Begin(state render.BatchState) {
	b.state = state
	b.inBatch = true
}

// Draw implements render.Sink.
func (b *Backend) Draw(op render.DrawOp) {
	if !b.inBatch {
		b.dropped++
		glyphgrid.Logger().Debug("raster: draw outside batch", "glyph", op.Glyph)
		return
	}
	if op.Dst.Empty() || op.Color.IsTransparent() {
		return
	}

	var (
		src image.Image
		sr  image.Rectangle
	)
	if op.IsFill() {
		src = image.NewUniform(op.Color.NRGBA())
		sr = op.Dst
	} else {
		if op.Src.Empty() {
			return
		}
		src = b.tile(op)
		sr = src.Bounds()
	}
	b.composite(src, sr, op.Dst)
}

// End implements render.Sink.
func (b *Backend) End() error {
	if !b.inBatch {
		return ErrNoBatch
	}
	b.inBatch = false
	return nil
}

// composite places src (sr) into the local rectangle dst, then applies the
// batch transform.
func (b *Backend) composite(src image.Image, sr, dst image.Rectangle) {
	op := xdraw.Over
	if b.state.Blend == render.BlendOpaque {
		op = xdraw.Src
	}

	m := b.state.Transform
	if off, ok := integerOffset(m); ok && sr.Size() == dst.Size() {
		xdraw.Draw(b.img, dst.Add(off), src, sr.Min, op)
		return
	}

	// Map sr onto dst, then through the batch transform.
	sx := float64(dst.Dx()) / float64(sr.Dx())
	sy := float64(dst.Dy()) / float64(sr.Dy())
	local := glyphgrid.Matrix{
		A: sx, C: float64(dst.Min.X) - float64(sr.Min.X)*sx,
		E: sy, F: float64(dst.Min.Y) - float64(sr.Min.Y)*sy,
	}
	s2d := m.Multiply(local)

	var t xdraw.Transformer = xdraw.NearestNeighbor
	if b.state.Filter == render.FilterLinear {
		t = xdraw.BiLinear
	}
	t.Transform(b.img, f64.Aff3{s2d.A, s2d.B, s2d.C, s2d.D, s2d.E, s2d.F}, src, sr, op, nil)
}

// tile returns the op's glyph tinted and flipped, from the cache if possible.
// Images whose dynamic type cannot be a map key are tinted on every draw.
func (b *Backend) tile(op render.DrawOp) *image.NRGBA {
	if !hashable(op.Image) {
		return tint(op.Image, op.Src, op.Color, op.Flip)
	}
	key := tileKey{img: op.Image, src: op.Src, color: op.Color, flip: op.Flip}
	return b.tiles.GetOrCreate(key, func() *image.NRGBA {
		return tint(op.Image, op.Src, op.Color, op.Flip)
	})
}

// hashable reports whether img can be stored in a tileKey.
func hashable(img image.Image) bool {
	return reflect.TypeOf(img).Comparable()
}

// tint modulates the atlas pixels in r by c. The result starts at (0, 0).
func tint(img image.Image, r image.Rectangle, c glyphgrid.Color, flip glyphgrid.Flip) *image.NRGBA {
	w, h := r.Dx(), r.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		sy := y
		if flip.Vertical() {
			sy = h - 1 - y
		}
		for x := range w {
			sx := x
			if flip.Horizontal() {
				sx = w - 1 - x
			}
			p := color.NRGBAModel.Convert(img.At(r.Min.X+sx, r.Min.Y+sy)).(color.NRGBA)
			out.SetNRGBA(x, y, color.NRGBA{
				R: mul(p.R, c.R),
				G: mul(p.G, c.G),
				B: mul(p.B, c.B),
				A: mul(p.A, c.A),
			})
		}
	}
	return out
}

func mul(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// integerOffset reports the offset of m when it is a whole-pixel
// translation.
func integerOffset(m glyphgrid.Matrix) (image.Point, bool) {
	if !m.IsTranslation() || m.C != math.Trunc(m.C) || m.F != math.Trunc(m.F) {
		return image.Point{}, false
	}
	return image.Pt(int(m.C), int(m.F)), true
}

// EncodePNG writes the target as PNG.
func (b *Backend) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the target to a PNG file.
func (b *Backend) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("raster: %w", cerr)
		}
	}()
	return b.EncodePNG(f)
}
