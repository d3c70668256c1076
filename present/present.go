// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package present uploads rendered frames to a GPU host through gpucontext.
//
// The host application (for example a gogpu window) owns the device; this
// package only needs its gpucontext.TextureDrawer. The first frame creates
// a texture, later frames of the same size update it in place, and a size
// change recreates it:
//
//	backend := raster.NewBackend(640, 400)
//	p := present.New()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    renderer.Render(sub, image.Pt(0, 0), false)
//	    p.Present(dc.AsTextureDrawer(), backend.Image(), 0, 0)
//	})
package present

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glyphgrid"
)

var (
	// ErrNoTextureCreator is returned when the drawer cannot create textures.
	ErrNoTextureCreator = errors.New("present: drawer has no texture creator")

	// ErrNilImage is returned when there is no frame to present.
	ErrNilImage = errors.New("present: nil image")
)

// textureDestroyer matches the Destroy method of host textures.
type textureDestroyer interface {
	Destroy()
}

// Stats counts texture traffic.
type Stats struct {
	Creates       int // textures created
	Updates       int // full uploads into an existing texture
	RegionUpdates int // partial uploads
	Draws         int
}

// Presenter keeps one GPU texture in sync with a CPU frame.
//
// Presenter is not safe for concurrent use.
type Presenter struct {
	tex   gpucontext.Texture
	size  image.Point
	buf   []byte
	stats Stats
}

// New creates a presenter without a texture.
func New() *Presenter {
	return &Presenter{}
}

// Stats returns texture traffic counters.
func (p *Presenter) Stats() Stats { return p.stats }

// Texture returns the current texture, nil before the first Present.
func (p *Presenter) Texture() gpucontext.Texture { return p.tex }

// Present uploads img and draws it at (x, y).
func (p *Presenter) Present(drawer gpucontext.TextureDrawer, img *image.RGBA, x, y float32) error {
	if img == nil {
		return ErrNilImage
	}
	if err := p.upload(drawer, img); err != nil {
		return err
	}
	return p.draw(drawer, x, y)
}

// PresentRegion is like Present but uploads only dirty when the texture
// supports partial updates and already has the frame size.
func (p *Presenter) PresentRegion(drawer gpucontext.TextureDrawer, img *image.RGBA, dirty image.Rectangle, x, y float32) error {
	if img == nil {
		return ErrNilImage
	}
	dirty = dirty.Intersect(img.Bounds())
	ru, ok := p.tex.(gpucontext.TextureRegionUpdater)
	if !ok || p.size != img.Bounds().Size() {
		if err := p.upload(drawer, img); err != nil {
			return err
		}
		return p.draw(drawer, x, y)
	}
	if !dirty.Empty() {
		at := dirty.Min.Sub(img.Bounds().Min)
		if err := ru.UpdateRegion(at.X, at.Y, dirty.Dx(), dirty.Dy(), p.pack(img, dirty)); err != nil {
			return fmt.Errorf("present: update region: %w", err)
		}
		p.stats.RegionUpdates++
	}
	return p.draw(drawer, x, y)
}

// Release destroys the texture if the host supports it.
func (p *Presenter) Release() {
	if d, ok := p.tex.(textureDestroyer); ok {
		d.Destroy()
	}
	p.tex = nil
	p.size = image.Point{}
}

func (p *Presenter) draw(drawer gpucontext.TextureDrawer, x, y float32) error {
	if err := drawer.DrawTexture(p.tex, x, y); err != nil {
		return fmt.Errorf("present: draw texture: %w", err)
	}
	p.stats.Draws++
	return nil
}

func (p *Presenter) upload(drawer gpucontext.TextureDrawer, img *image.RGBA) error {
	size := img.Bounds().Size()
	data := p.pack(img, img.Bounds())

	if p.tex != nil && p.size == size {
		if u, ok := p.tex.(gpucontext.TextureUpdater); ok {
			if err := u.UpdateData(data); err != nil {
				return fmt.Errorf("present: update texture: %w", err)
			}
			p.stats.Updates++
			return nil
		}
	}

	creator := drawer.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(size.X, size.Y, data)
	if err != nil {
		return fmt.Errorf("present: create texture: %w", err)
	}
	// image.RGBA holds premultiplied alpha.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	p.Release()
	p.tex = tex
	p.size = size
	p.stats.Creates++
	glyphgrid.Logger().Debug("present: texture created", "width", size.X, "height", size.Y)
	return nil
}

// pack returns the pixels of r as tightly packed RGBA rows, reusing the
// image memory when it is already packed.
func (p *Presenter) pack(img *image.RGBA, r image.Rectangle) []byte {
	rowLen := r.Dx() * 4
	if r == img.Bounds() && img.Stride == rowLen {
		return img.Pix[:rowLen*r.Dy()]
	}
	need := rowLen * r.Dy()
	if cap(p.buf) < need {
		p.buf = make([]byte, need)
	}
	buf := p.buf[:need]
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := img.PixOffset(r.Min.X, y)
		copy(buf[(y-r.Min.Y)*rowLen:], img.Pix[off:off+rowLen])
	}
	return buf
}
