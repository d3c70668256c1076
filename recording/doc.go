// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording captures draw batches as commands for inspection and
// replay.
//
// A Recorder is a render.Sink. Attach it to a render.Renderer, render, then
// call Finish to obtain an immutable Recording:
//
//	rec := recording.NewRecorder()
//	r := render.NewRenderer(rec)
//	r.Render(sub, image.Pt(2, 1), false)
//	rc := rec.Finish()
//
// A Recording can be inspected batch by batch or replayed to any other
// sink, for example a raster backend, in the exact order it was recorded:
//
//	backend := raster.NewBackend(320, 200)
//	if err := rc.Replay(backend); err != nil {
//	    // handle
//	}
//
// Glyph images are pooled: every op that draws from the same atlas image
// refers to one ImageRef.
//
// The recorder registers itself as the "recording" sink.
package recording
