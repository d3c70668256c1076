// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides a software render.Sink that composites draw
// batches into an *image.RGBA.
//
// Glyph quads are tinted by their op color in straight alpha, flipped as
// requested, scaled from the atlas cell to the destination cell, placed by
// the batch transform and composited source-over. Tinted tiles are cached,
// so repeated glyphs in the same color cost one composite each.
//
// Integer translations take a direct path through draw.Draw; any other
// transform goes through the golang.org/x/image/draw transformers, nearest
// neighbor or bilinear depending on the batch filter.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/glyphgrid/backends/raster"
//
//	// Create via registry (640x480)
//	sink, _ := render.NewSink("raster")
//
//	// Or create directly
//	backend := raster.NewBackend(320, 200)
//	r := render.NewRenderer(backend)
//	r.Render(sub, image.Pt(0, 0), false)
//	backend.SavePNG("frame.png")
package raster
