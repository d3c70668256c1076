// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"image"
	"math"
)

// ImageRef is a reference to a pooled image.
type ImageRef uint32

// NoImage is the reference of a solid fill op.
const NoImage ImageRef = math.MaxUint32

// IsValid reports whether the reference points at an image.
func (r ImageRef) IsValid() bool { return r != NoImage }

// ImagePool interns images by identity. Images are shared, not copied:
// atlas images are read-only once loaded.
//
// Keys are compared with ==, so pooled images must be comparable; all
// image types of the standard library are pointers.
//
// ImagePool is not safe for concurrent use.
type ImagePool struct {
	images []image.Image
	index  map[image.Image]ImageRef
}

// NewImagePool creates an empty pool.
func NewImagePool() *ImagePool {
	return &ImagePool{
		images: make([]image.Image, 0, 4),
		index:  make(map[image.Image]ImageRef),
	}
}

// Add returns the reference of img, adding it on first use.
// A nil image yields NoImage.
func (p *ImagePool) Add(img image.Image) ImageRef {
	if img == nil {
		return NoImage
	}
	if ref, ok := p.index[img]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by the number of atlases
	ref := ImageRef(uint32(len(p.images)))
	p.images = append(p.images, img)
	p.index[img] = ref
	return ref
}

// Get returns the image for ref, or nil for NoImage or an unknown ref.
func (p *ImagePool) Get(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// Len returns the number of pooled images.
func (p *ImagePool) Len() int { return len(p.images) }
