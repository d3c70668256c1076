// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"image"
	"slices"

	"github.com/gogpu/glyphgrid"
)

const (
	// DefaultColumns is the number of glyph cells per atlas row.
	DefaultColumns = 16

	// SolidGlyph is the glyph index of a fully filled cell (CP437 full block).
	// Background and tint quads are drawn with it.
	SolidGlyph = 219
)

// Atlas is a glyph image plus the source rectangle of every glyph index.
//
// The rectangle table is recomputed whenever the cell size, the padding or
// the image changes. Several atlases may share one image; the image is never
// modified after load.
type Atlas struct {
	// Name identifies the font family, e.g. "IBM".
	Name string

	// Path is the file the image was decoded from, empty for baked atlases.
	Path string

	// IsDefault marks the atlas to use when a surface names no font.
	IsDefault bool

	cellWidth  int
	cellHeight int
	padding    int
	columns    int

	img   image.Image
	rects []image.Rectangle
}

// NewAtlas creates an atlas over an already decoded image.
func NewAtlas(name string, img image.Image, cellWidth, cellHeight, padding int) (*Atlas, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if err := validateCell(cellWidth, cellHeight, padding); err != nil {
		return nil, err
	}
	a := &Atlas{
		Name:       name,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		padding:    padding,
		columns:    DefaultColumns,
		img:        img,
	}
	if a.Rows() < 1 {
		return nil, ErrImageTooSmall
	}
	a.configureRects()
	return a, nil
}

// Load decodes cfg.Path with dec and builds an atlas from it.
// Every failure is reported as a *LoadError.
func Load(dec Decoder, cfg Config) (*Atlas, error) {
	if err := validateCell(cfg.Width, cfg.Height, cfg.Padding); err != nil {
		return nil, &LoadError{Name: cfg.Name, Path: cfg.Path, Err: err}
	}

	img, err := dec.Decode(cfg.Path)
	if err != nil {
		return nil, &LoadError{Name: cfg.Name, Path: cfg.Path, Err: err}
	}

	a, err := NewAtlas(cfg.Name, img, cfg.Width, cfg.Height, cfg.Padding)
	if err != nil {
		return nil, &LoadError{Name: cfg.Name, Path: cfg.Path, Err: err}
	}
	a.Path = cfg.Path
	a.IsDefault = cfg.Default

	glyphgrid.Logger().Info("font: atlas loaded",
		"name", a.Name, "path", a.Path,
		"cell", image.Pt(a.cellWidth, a.cellHeight), "glyphs", a.GlyphCount())
	return a, nil
}

func validateCell(w, h, padding int) error {
	if w <= 0 || h <= 0 {
		return ErrInvalidCellSize
	}
	if padding < 0 {
		return ErrInvalidPadding
	}
	return nil
}

// CellWidth returns the glyph cell width in pixels.
func (a *Atlas) CellWidth() int { return a.cellWidth }

// CellHeight returns the glyph cell height in pixels.
func (a *Atlas) CellHeight() int { return a.cellHeight }

// CellSize returns the glyph cell size in pixels.
func (a *Atlas) CellSize() image.Point { return image.Pt(a.cellWidth, a.cellHeight) }

// Padding returns the number of pixels between glyph cells.
func (a *Atlas) Padding() int { return a.padding }

// Columns returns the number of glyph cells per row.
func (a *Atlas) Columns() int { return a.columns }

// Image returns the glyph image. It must be treated as read-only.
func (a *Atlas) Image() image.Image { return a.img }

// Rows returns image height / (cell height + padding).
func (a *Atlas) Rows() int {
	if a.img == nil {
		return 0
	}
	return a.img.Bounds().Dy() / (a.cellHeight + a.padding)
}

// GlyphCount returns Rows * Columns.
func (a *Atlas) GlyphCount() int { return len(a.rects) }

// Rect returns the source rectangle of glyph index i.
func (a *Atlas) Rect(i int) (image.Rectangle, error) {
	if i < 0 || i >= len(a.rects) {
		return image.Rectangle{}, &GlyphIndexError{Index: i, Count: len(a.rects)}
	}
	return a.rects[i], nil
}

// Rects returns a copy of the rectangle table.
func (a *Atlas) Rects() []image.Rectangle {
	return slices.Clone(a.rects)
}

// SetCellSize changes the cell size and rebuilds the rectangle table.
func (a *Atlas) SetCellSize(w, h int) error {
	if err := validateCell(w, h, a.padding); err != nil {
		return err
	}
	a.cellWidth, a.cellHeight = w, h
	a.configureRects()
	return nil
}

// SetPadding changes the padding and rebuilds the rectangle table.
func (a *Atlas) SetPadding(p int) error {
	if err := validateCell(a.cellWidth, a.cellHeight, p); err != nil {
		return err
	}
	a.padding = p
	a.configureRects()
	return nil
}

// SetImage points the atlas at another image and rebuilds the rectangle table.
// An image shorter than one row is rejected and the current image is kept.
func (a *Atlas) SetImage(img image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	if img.Bounds().Dy() < a.cellHeight+a.padding {
		return ErrImageTooSmall
	}
	a.img = img
	a.configureRects()
	return nil
}

// fits reports whether img holds at least one full row of cells of the
// given size.
func fits(img image.Image, w, h, padding, columns int) bool {
	b := img.Bounds()
	return b.Dy() >= h+padding && b.Dx() >= columns*w+(columns+1)*padding
}

// configureRects rebuilds the rectangle table from the cell geometry.
func (a *Atlas) configureRects() {
	n := a.Rows() * a.columns
	rects := make([]image.Rectangle, n)
	origin := a.img.Bounds().Min
	for i := range rects {
		cx := i % a.columns
		cy := i / a.columns
		x := cx * a.cellWidth
		y := cy * a.cellHeight
		if a.padding != 0 {
			x += (cx + 1) * a.padding
			y += (cy + 1) * a.padding
		}
		x += origin.X
		y += origin.Y
		rects[i] = image.Rect(x, y, x+a.cellWidth, y+a.cellHeight)
	}
	a.rects = rects
}

// clone returns an atlas sharing the image with its own rectangle table.
func (a *Atlas) clone() *Atlas {
	c := *a
	c.IsDefault = false
	c.rects = slices.Clone(a.rects)
	return &c
}
