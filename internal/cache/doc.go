// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a generic LRU cache.
//
// The raster backend keeps tinted glyph tiles here, keyed by source image,
// glyph rectangle, color and flip, so a frame that repeats the same styled
// glyph composites a ready tile instead of re-tinting atlas pixels.
//
//	tiles := cache.New[tileKey, *image.NRGBA](1024)
//	tile := tiles.GetOrCreate(key, func() *image.NRGBA { return tint(key) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
