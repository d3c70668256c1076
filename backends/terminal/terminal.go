// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package terminal provides a render.Sink that previews draw batches on a
// text terminal through tcell.
//
// Each terminal cell stands for one font cell of pixels. Glyph ops write
// the code page 437 rune of their glyph index in the op color; background
// ops set the cell background; overlay ops blend the whole cell toward the
// tint by its alpha. Flips and sub-cell positions have no terminal
// equivalent and are dropped.
//
//	screen, _ := tcell.NewScreen()
//	screen.Init()
//	sink := terminal.NewBackend(screen, atlas.CellSize())
//	r := render.NewRenderer(sink)
package terminal

import (
	"errors"
	"image"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/font"
	"github.com/gogpu/glyphgrid/render"
)

func init() {
	render.RegisterSink("terminal", func() render.Sink {
		return NewBackend(nil, image.Pt(8, 16))
	})
}

var (
	// ErrNoScreen is returned by End when no screen is attached.
	ErrNoScreen = errors.New("terminal: no screen")

	// ErrNoBatch is returned by End when no batch is open.
	ErrNoBatch = errors.New("terminal: End without Begin")
)

// Backend draws batches onto a tcell.Screen.
type Backend struct {
	mu       sync.Mutex
	screen   tcell.Screen
	cell     image.Point
	state    render.BatchState
	inBatch  bool
	autoShow bool
}

// Ensure Backend implements render.Sink.
var _ render.Sink = (*Backend)(nil)

// NewBackend creates a backend for screen where one terminal cell covers
// cellSize pixels. screen may be nil and attached later with SetScreen.
func NewBackend(screen tcell.Screen, cellSize image.Point) *Backend {
	b := &Backend{screen: screen, autoShow: true}
	b.SetCellSize(cellSize)
	return b
}

// SetScreen attaches a screen.
func (b *Backend) SetScreen(s tcell.Screen) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.screen = s
}

// Screen returns the attached screen.
func (b *Backend) Screen() tcell.Screen {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.screen
}

// SetCellSize changes the pixel size of one terminal cell. Non-positive
// components are treated as 1.
func (b *Backend) SetCellSize(p image.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cell = image.Pt(max(p.X, 1), max(p.Y, 1))
}

// SetAutoShow controls whether End calls Show on the screen. Callers that
// draw several batches per frame disable it and show once.
func (b *Backend) SetAutoShow(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.autoShow = on
}

// Begin implements render.Sink.
func (b *Backend) Begin(state render.BatchState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = state
	b.inBatch = true
}

// Draw implements render.Sink.
func (b *Backend) Draw(op render.DrawOp) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inBatch || b.screen == nil || op.Color.IsTransparent() {
		return
	}
	area := b.cells(op.Dst)
	w, h := b.screen.Size()
	area = area.Intersect(image.Rect(0, 0, w, h))

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			b.apply(x, y, op)
		}
	}
}

// End implements render.Sink.
func (b *Backend) End() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inBatch {
		return ErrNoBatch
	}
	b.inBatch = false
	if b.screen == nil {
		return ErrNoScreen
	}
	if b.autoShow {
		b.screen.Show()
	}
	return nil
}

// cells converts a subset-local pixel rectangle to the terminal cells it
// touches. Caller must hold b.mu.
func (b *Backend) cells(r image.Rectangle) image.Rectangle {
	m := b.state.Transform
	x0, y0 := m.Apply(float64(r.Min.X), float64(r.Min.Y))
	x1, y1 := m.Apply(float64(r.Max.X), float64(r.Max.Y))
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	cw, ch := float64(b.cell.X), float64(b.cell.Y)
	return image.Rect(
		int(math.Floor(x0/cw)), int(math.Floor(y0/ch)),
		int(math.Ceil(x1/cw)), int(math.Ceil(y1/ch)),
	)
}

// apply merges op into the terminal cell at (x, y). Caller must hold b.mu.
func (b *Backend) apply(x, y int, op render.DrawOp) {
	mainc, combc, style, _ := b.screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()

	switch {
	case op.Depth == render.DepthGlyph:
		r, ok := font.GlyphRune(op.Glyph)
		if !ok {
			r = ' '
		}
		b.screen.SetContent(x, y, r, nil, style.Foreground(blend(fg, op.Color)))

	case op.Depth == render.DepthOverlay && op.Color.IsOpaque():
		b.screen.SetContent(x, y, ' ', nil, style.Background(toTcell(op.Color)))

	case op.Depth == render.DepthOverlay:
		style = style.Foreground(blend(fg, op.Color)).Background(blend(bg, op.Color))
		b.screen.SetContent(x, y, mainc, combc, style)

	default:
		b.screen.SetContent(x, y, mainc, combc, style.Background(blend(bg, op.Color)))
	}
}

// blend composites c over the terminal color under it.
func blend(under tcell.Color, c glyphgrid.Color) tcell.Color {
	if c.IsOpaque() {
		return toTcell(c)
	}
	base := fromTcell(under)
	return toTcell(base.Lerp(c.WithAlpha(255), float64(c.A)/255))
}

func toTcell(c glyphgrid.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// fromTcell converts a terminal color to an opaque Color. The terminal
// default color is treated as black.
func fromTcell(tc tcell.Color) glyphgrid.Color {
	if tc == tcell.ColorDefault {
		return glyphgrid.Black
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return glyphgrid.Black
	}
	return glyphgrid.RGB(uint8(r), uint8(g), uint8(b))
}
