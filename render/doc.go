// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render composites surface subsets into ordered draw batches.
//
// A Renderer turns one surface.Subset and a placement into a single batch of
// DrawOps sent to a Sink. The sink is the graphics backend: the raster
// backend composites into an *image.RGBA, the terminal backend maps glyph
// quads onto terminal cells, and the recording package captures batches for
// inspection and replay.
//
// # Draw Order
//
// Every batch is drawn in a fixed order with a fixed Depth per pass, so a
// backend never needs to sort:
//
//  1. the default background, once under the whole subset (DepthBackground)
//  2. per visible cell, a background quad when the cell background is
//     neither transparent nor the default background (DepthBackground)
//  3. per visible cell, the glyph quad when the foreground is not
//     transparent (DepthGlyph)
//  4. the tint, once over the whole subset (DepthOverlay)
//
// A fully opaque tint hides every cell, so in that case the batch holds the
// tint quad and nothing else.
//
// # Placement
//
// Subsets are drawn in local pixel space and placed by the batch transform.
// A placement is either a cell position, multiplied by the subset cell size,
// or a raw pixel position. The renderer caches the last transform for each
// mode separately and only derives a new one when that mode's position
// changes.
//
// # Sinks
//
// Backends register a factory by name, database/sql style:
//
//	import _ "github.com/gogpu/glyphgrid/backends/raster"
//
//	sink, err := render.NewSink("raster")
package render
