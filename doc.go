// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyphgrid renders grids of character cells to pixels through a
// fixed-cell glyph atlas.
//
// # Overview
//
// A console surface is a rectangular grid of cells. Each cell carries a
// glyph index, a foreground and background color, a visibility flag and an
// optional flip. glyphgrid turns a window of that grid into an ordered list
// of sprite draws that any backend able to blit a sub-rectangle of an image
// with a color modulation can reproduce.
//
// # Architecture
//
// The library is organized leaf to root:
//   - font: glyph atlases, scaled views and an explicit atlas cache
//   - surface: cells, grids and bounds-checked subsets of a grid
//   - render: the compositing renderer and the draw sink contract
//   - console: render-only (static) and interactive surface variants
//   - recording, backends/raster, backends/terminal: draw sinks
//   - present: GPU presentation of a rasterized frame
//
// # Quick Start
//
//	atlas, _ := font.Default()
//	grid := surface.NewGrid(40, 10, atlas.View(1))
//	grid.Print(1, 1, "Hello", glyphgrid.White, glyphgrid.Transparent)
//
//	sub, _ := surface.NewSubset(grid, grid.Bounds())
//	backend := raster.NewBackend(320, 130)
//	r := render.NewRenderer(backend)
//	_ = r.Render(sub, image.Pt(0, 0), false)
//	_ = backend.SavePNG("hello.png")
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner, X grows right and Y grows down.
// Cell positions are converted to pixels by multiplying with the cell size
// of the font view in use.
//
// # Concurrency
//
// Rendering is single-threaded and frame-driven. A Renderer keeps a private
// placement cache and must not be shared between goroutines. font.Cache is
// safe for concurrent use.
package glyphgrid

// Version is the current version of the library.
const Version = "0.1.0"
