// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrNilSubset is returned when Render is called without a subset.
	ErrNilSubset = errors.New("render: nil subset")

	// ErrNoSink is returned when a Renderer has no sink to draw to.
	ErrNoSink = errors.New("render: no sink")
)
