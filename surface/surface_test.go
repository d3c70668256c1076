// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"testing"

	"github.com/gogpu/glyphgrid/font"
)

// testView returns an 8x8 cell view over a blank 16x16 cell atlas.
func testView(t *testing.T, k int) *font.View {
	t.Helper()
	a, err := font.NewAtlas("test", image.NewNRGBA(image.Rect(0, 0, 128, 128)), 8, 8, 0)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return a.View(k)
}
