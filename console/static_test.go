// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package console

import (
	"image"
	"testing"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/recording"
	"github.com/gogpu/glyphgrid/render"
)

func TestStaticReusesSnapshot(t *testing.T) {
	g := testGrid(t, 4, 2)
	g.SetGlyph(0, 0, 'a')

	s, err := NewStatic(g, image.Pt(2, 0), false)
	if err != nil {
		t.Fatalf("NewStatic: %v", err)
	}
	first := s.Subset()

	rec := recording.NewRecorder()
	r := render.NewRenderer(rec)
	for i := 0; i < 3; i++ {
		if err := s.Render(r); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if s.Builds() != 1 {
		t.Errorf("Builds() = %d after 3 renders, want 1", s.Builds())
	}
	if s.Subset() != first {
		t.Error("snapshot replaced by Render")
	}
	if got := rec.Finish().Batches()[0].State.Transform; got != glyphgrid.Translate(16, 0) {
		t.Errorf("transform = %v, want translate(16, 0)", got)
	}

	g.SetGlyph(0, 0, 'b')
	if s.Subset().Cell(0).Glyph != 'a' {
		t.Error("grid edit leaked into the snapshot before Refresh")
	}
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if s.Subset().Cell(0).Glyph != 'b' {
		t.Errorf("after Refresh glyph = %d, want 'b'", s.Subset().Cell(0).Glyph)
	}
	if s.Builds() != 2 {
		t.Errorf("Builds() = %d, want 2", s.Builds())
	}
}

func TestStaticSetGrid(t *testing.T) {
	g := testGrid(t, 4, 2)
	s, _ := NewStatic(g, image.Point{}, true)

	if err := s.SetGrid(g); err != nil {
		t.Fatalf("SetGrid(same): %v", err)
	}
	if s.Builds() != 1 {
		t.Errorf("SetGrid with the same grid rebuilt: builds = %d", s.Builds())
	}

	other := testGrid(t, 3, 3)
	if err := s.SetGrid(other); err != nil {
		t.Fatalf("SetGrid(other): %v", err)
	}
	if s.Grid() != other || s.Subset().Area() != image.Rect(0, 0, 3, 3) {
		t.Errorf("SetGrid did not switch: area %v", s.Subset().Area())
	}

	if err := s.SetGrid(nil); err == nil {
		t.Fatal("SetGrid(nil) succeeded")
	}
	if s.Grid() != other {
		t.Error("failed SetGrid replaced the grid")
	}
}

func TestStaticPosition(t *testing.T) {
	s, _ := NewStatic(testGrid(t, 1, 1), image.Pt(3, 4), false)
	s.SetPosition(image.Pt(5, 6), true)
	if pos, pixel := s.Position(); pos != image.Pt(5, 6) || !pixel {
		t.Errorf("Position() = %v, %v", pos, pixel)
	}

	rec := recording.NewRecorder()
	if err := s.Render(render.NewRenderer(rec)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := rec.Finish().Batches()[0].State.Transform; got != glyphgrid.Translate(5, 6) {
		t.Errorf("transform = %v, want translate(5, 6)", got)
	}
}
