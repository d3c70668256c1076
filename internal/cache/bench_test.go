// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"image"
	"testing"
)

// tile mirrors the raster backend key: an atlas rectangle plus a tint.
type tile struct {
	src   image.Rectangle
	color uint32
}

func glyphTile(i int) tile {
	x, y := i%16*8, i/16*8
	return tile{src: image.Rect(x, y, x+8, y+8), color: 0xffffffff}
}

// BenchmarkTileHit measures a frame where every glyph is already resident.
func BenchmarkTileHit(b *testing.B) {
	c := New[tile, int](256)
	for i := range 256 {
		c.Set(glyphTile(i), i)
	}
	keys := make([]tile, 256)
	for i := range keys {
		keys[i] = glyphTile(i)
	}

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		c.Get(keys[i&255])
		i++
	}
}

// BenchmarkTileChurn cycles twice as many tiles as fit, so every lookup
// creates and evicts.
func BenchmarkTileChurn(b *testing.B) {
	c := New[tile, int](128)
	keys := make([]tile, 256)
	for i := range keys {
		keys[i] = glyphTile(i)
	}

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		c.GetOrCreate(keys[i&255], func() int { return i })
		i++
	}
}
