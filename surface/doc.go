// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface holds cell grids and render-ready windows into them.
//
// A Grid is a row-major array of cells addressed as y*width + x. A Subset is
// an immutable snapshot of a rectangular window of any Source: one
// destination rectangle and one cell copy per visible position, plus the
// style (font view, default colors, tint) captured at construction. Subsets
// are cheap to discard and rebuild whenever the window, the scroll position
// or the grid size changes.
package surface
