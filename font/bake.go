// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"fmt"
	"image"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

// BakeOptions controls atlas baking.
type BakeOptions struct {
	// CellWidth and CellHeight override the cell size derived from the face
	// metrics (advance of 'M', ascent + descent).
	CellWidth  int
	CellHeight int

	// Glyphs is the number of glyph cells to lay out. Default: 256.
	Glyphs int

	// Solid is the glyph index filled completely. Zero selects SolidGlyph.
	// A negative value disables it.
	Solid int
}

// GlyphRune returns the rune drawn for glyph index i: the code page 437
// character with that code. ok is false for control codes and indices
// outside one byte.
func GlyphRune(i int) (r rune, ok bool) {
	if i < 0 || i > 255 {
		return 0, false
	}
	r = charmap.CodePage437.DecodeByte(byte(i))
	if r < 0x20 || r == 0x7f {
		return r, false
	}
	return r, true
}

// GlyphIndex returns the glyph index of r in code page 437.
func GlyphIndex(r rune) (int, bool) {
	b, ok := charmap.CodePage437.EncodeRune(r)
	return int(b), ok
}

// Bake rasterizes face into a white-on-transparent atlas image laid out
// DefaultColumns glyphs per row and wraps it in an Atlas named name.
// Glyphs the face cannot render stay empty.
func Bake(name string, face xfont.Face, opts BakeOptions) (*Atlas, error) {
	if face == nil {
		return nil, &LoadError{Name: name, Err: ErrNilFace}
	}
	if opts.Glyphs <= 0 {
		opts.Glyphs = 256
	}
	if opts.Solid == 0 {
		opts.Solid = SolidGlyph
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	w, h := opts.CellWidth, opts.CellHeight
	if w <= 0 {
		adv, _ := face.GlyphAdvance('M')
		w = adv.Ceil()
	}
	if h <= 0 {
		h = (metrics.Ascent + metrics.Descent).Ceil()
	}
	if w <= 0 || h <= 0 {
		return nil, &LoadError{Name: name, Err: ErrInvalidCellSize}
	}

	rows := (opts.Glyphs + DefaultColumns - 1) / DefaultColumns
	img := image.NewNRGBA(image.Rect(0, 0, DefaultColumns*w, rows*h))

	drawer := &xfont.Drawer{Src: image.White, Face: face}
	for i := 0; i < opts.Glyphs; i++ {
		cx, cy := i%DefaultColumns, i/DefaultColumns
		cell := image.Rect(cx*w, cy*h, (cx+1)*w, (cy+1)*h)

		if i == opts.Solid {
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)
			continue
		}
		r, ok := GlyphRune(i)
		if !ok {
			continue
		}
		if _, has := face.GlyphAdvance(r); !has {
			continue
		}

		drawer.Dst = img.SubImage(cell).(*image.NRGBA)
		drawer.Dot = fixed.P(cell.Min.X, cell.Min.Y+ascent)
		drawer.DrawString(string(r))
	}

	a, err := NewAtlas(name, img, w, h, 0)
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	return a, nil
}

// BakeTTF parses TrueType or OpenType data and bakes it at size pixels.
func BakeTTF(name string, data []byte, size float64) (*Atlas, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, &LoadError{Name: name, Err: fmt.Errorf("parse font: %w", err)}
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, &LoadError{Name: name, Err: fmt.Errorf("create face: %w", err)}
	}
	defer func() { _ = face.Close() }()

	return Bake(name, face, BakeOptions{})
}

// Default bakes the 7x13 basic font. The atlas is marked IsDefault.
func Default() (*Atlas, error) {
	a, err := Bake("basic", basicfont.Face7x13, BakeOptions{})
	if err != nil {
		return nil, err
	}
	a.IsDefault = true
	return a, nil
}

// GoMono bakes the Go Mono typeface at size pixels.
func GoMono(size float64) (*Atlas, error) {
	return BakeTTF("gomono", gomono.TTF, size)
}
