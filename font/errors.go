// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for font package.
var (
	// ErrFontLoad matches every *LoadError.
	ErrFontLoad = errors.New("font: load failed")

	// ErrGlyphIndexOutOfRange matches every *GlyphIndexError.
	ErrGlyphIndexOutOfRange = errors.New("font: glyph index out of range")

	// ErrInvalidCellSize is returned when a cell width or height is not positive.
	ErrInvalidCellSize = errors.New("font: cell width and height must be positive")

	// ErrInvalidPadding is returned when padding is negative.
	ErrInvalidPadding = errors.New("font: padding must be non-negative")

	// ErrImageTooSmall is returned when the image cannot hold one row of glyphs.
	ErrImageTooSmall = errors.New("font: image smaller than one glyph row")

	// ErrNilImage is returned when an atlas is created without an image.
	ErrNilImage = errors.New("font: nil image")

	// ErrNilFace is returned when baking is requested without a face.
	ErrNilFace = errors.New("font: nil face")
)

// LoadError reports a failed atlas load: decode failure or unusable
// dimensions. It is fatal to that atlas only.
type LoadError struct {
	Name string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("font: load %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("font: load %q from %s: %v", e.Name, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFontLoad.
func (e *LoadError) Is(target error) bool { return target == ErrFontLoad }

// GlyphIndexError is returned when a glyph index is outside [0, Count).
type GlyphIndexError struct {
	Index int
	Count int
}

func (e *GlyphIndexError) Error() string {
	return fmt.Sprintf("font: glyph index %d out of range [0, %d)", e.Index, e.Count)
}

// Is reports whether target is ErrGlyphIndexOutOfRange.
func (e *GlyphIndexError) Is(target error) bool { return target == ErrGlyphIndexOutOfRange }

// ConfigError reports a malformed font configuration file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("font: config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error { return e.Err }
