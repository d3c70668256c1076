// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"errors"
	"image"
	"slices"
	"testing"
)

func TestViewScalesCellSizeOnly(t *testing.T) {
	a, err := NewAtlas("test", newTestImage(128, 128), 8, 16, 0)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}

	for _, k := range []int{1, 2, 3} {
		v := a.View(k)
		if got, want := v.CellSize(), image.Pt(8*k, 16*k); got != want {
			t.Errorf("View(%d).CellSize() = %v, want %v", k, got, want)
		}
		if !slices.Equal(v.Rects(), a.Rects()) {
			t.Errorf("View(%d) rect table differs from atlas", k)
		}
		if v.Image() != a.Image() {
			t.Errorf("View(%d) should share the atlas image", k)
		}
		if v.Multiple() != k {
			t.Errorf("View(%d).Multiple() = %d", k, v.Multiple())
		}
		if v.MaxGlyph() != a.GlyphCount()-1 {
			t.Errorf("View(%d).MaxGlyph() = %d, want %d", k, v.MaxGlyph(), a.GlyphCount()-1)
		}
	}
}

func TestViewMultipleBelowOne(t *testing.T) {
	a, err := NewAtlas("test", newTestImage(128, 128), 8, 8, 0)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	if got := a.View(0).CellSize(); got != image.Pt(8, 8) {
		t.Errorf("View(0).CellSize() = %v, want (8,8)", got)
	}
}

func TestViewIsIndependentOfAtlas(t *testing.T) {
	a, err := NewAtlas("test", newTestImage(128, 128), 8, 8, 0)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	v := a.View(2)
	before := v.Rects()

	if err := a.SetCellSize(16, 16); err != nil {
		t.Fatalf("SetCellSize: %v", err)
	}
	if !slices.Equal(v.Rects(), before) {
		t.Error("view rect table changed after atlas resize")
	}
	if v.CellSize() != image.Pt(16, 16) {
		t.Errorf("view cell size changed to %v", v.CellSize())
	}

	// Rects returns a copy.
	rects := v.Rects()
	rects[0] = image.Rect(99, 99, 100, 100)
	if r, _ := v.Rect(0); r == rects[0] {
		t.Error("mutating Rects() result changed the view")
	}
}

func TestViewRect(t *testing.T) {
	a, err := NewAtlas("test", newTestImage(128, 80), 8, 8, 0)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	v := a.View(1)
	if r, err := v.Rect(25); err != nil || r != image.Rect(72, 8, 80, 16) {
		t.Errorf("Rect(25) = %v, %v", r, err)
	}
	if _, err := v.Rect(160); !errors.Is(err, ErrGlyphIndexOutOfRange) {
		t.Errorf("Rect(160) error = %v, want ErrGlyphIndexOutOfRange", err)
	}
}

func TestViewSolidRect(t *testing.T) {
	full, err := NewAtlas("full", newTestImage(128, 128), 8, 8, 0)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	r, ok := full.View(1).SolidRect()
	if !ok {
		t.Fatal("SolidRect() not ok for a 256 glyph atlas")
	}
	if want := image.Rect(219%16*8, 219/16*8, 219%16*8+8, 219/16*8+8); r != want {
		t.Errorf("SolidRect() = %v, want %v", r, want)
	}

	half, err := NewAtlas("half", newTestImage(128, 64), 8, 8, 0)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	if _, ok := half.View(1).SolidRect(); ok {
		t.Error("SolidRect() ok for a 128 glyph atlas")
	}
	v := half.View(1).WithSolidGlyph(0)
	if r, ok := v.SolidRect(); !ok || r != image.Rect(0, 0, 8, 8) {
		t.Errorf("WithSolidGlyph(0).SolidRect() = %v, %v", r, ok)
	}
	if v.SolidGlyph() != 0 {
		t.Errorf("SolidGlyph() = %d, want 0", v.SolidGlyph())
	}
}
