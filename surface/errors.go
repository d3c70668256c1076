// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for surface package.
var (
	// ErrAreaOutOfBounds matches every *AreaOutOfBoundsError.
	ErrAreaOutOfBounds = errors.New("surface: area out of bounds")

	// ErrNoFont is returned when a subset is built from a source without a font view.
	ErrNoFont = errors.New("surface: source has no font")
)

// Edge names the bound a subset area violates.
type Edge uint8

const (
	EdgeTooWide  Edge = iota // width exceeds the surface width
	EdgeTooTall              // height exceeds the surface height
	EdgeLeft                 // x < 0
	EdgeTop                  // y < 0
	EdgeRight                // x + width > surface width
	EdgeBottom               // y + height > surface height
	EdgeInverted             // max < min on either axis
)

var edgeMessages = [...]string{
	EdgeTooWide:  "the area is too wide for the surface",
	EdgeTooTall:  "the area is too tall for the surface",
	EdgeLeft:     "the left of the area cannot be less than 0",
	EdgeTop:      "the top of the area cannot be less than 0",
	EdgeRight:    "the area x + width is too wide for the surface",
	EdgeBottom:   "the area y + height is too tall for the surface",
	EdgeInverted: "the area has a negative size",
}

// String returns the diagnostic message of the edge.
func (e Edge) String() string {
	if int(e) < len(edgeMessages) {
		return edgeMessages[e]
	}
	return "unknown edge"
}

// AreaOutOfBoundsError reports a subset area that does not lie inside its
// source. It always indicates a layout bug in the caller.
type AreaOutOfBoundsError struct {
	Edge   Edge
	Area   image.Rectangle
	Width  int
	Height int
}

func (e *AreaOutOfBoundsError) Error() string {
	return fmt.Sprintf("surface: %s (area %v, surface %dx%d)", e.Edge, e.Area, e.Width, e.Height)
}

// Is reports whether target is ErrAreaOutOfBounds.
func (e *AreaOutOfBoundsError) Is(target error) bool { return target == ErrAreaOutOfBounds }
