// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"log/slog"

	"github.com/gogpu/glyphgrid"
)

// TransformFunc derives the batch transform for a placement in world
// pixels. It is called only when a cached placement is invalidated.
type TransformFunc func(world image.Point) glyphgrid.Matrix

// Translation is the default TransformFunc: a plain translation.
func Translation(world image.Point) glyphgrid.Matrix {
	return glyphgrid.Translate(float64(world.X), float64(world.Y))
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r := render.NewRenderer(sink, render.WithLogger(logger))
type Option func(*options)

type options struct {
	transform TransformFunc
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{transform: Translation}
}

// WithTransformFunc replaces the placement transform derivation. The
// function may apply a camera or scale on top of the translation.
func WithTransformFunc(f TransformFunc) Option {
	return func(o *options) {
		if f != nil {
			o.transform = f
		}
	}
}

// WithLogger sets the logger for this renderer. Without it the renderer
// logs through glyphgrid.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
