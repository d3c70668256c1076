// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package console

import (
	"errors"
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/font"
	"github.com/gogpu/glyphgrid/recording"
	"github.com/gogpu/glyphgrid/render"
	"github.com/gogpu/glyphgrid/surface"
)

func testGrid(t *testing.T, w, h int) *surface.Grid {
	t.Helper()
	a, err := font.NewAtlas("test", image.NewNRGBA(image.Rect(0, 0, 128, 128)), 8, 8, 0)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return surface.NewGrid(w, h, a.View(1))
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typed(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func glyphAt(g *surface.Grid, x, y int) int {
	c, _ := g.Cell(x, y)
	return c.Glyph
}

func TestConsoleRendersView(t *testing.T) {
	g := testGrid(t, 10, 10)
	g.Print(3, 4, "x", glyphgrid.White, glyphgrid.Red)

	c, err := New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.SetView(image.Rect(2, 2, 6, 6)); err != nil {
		t.Fatalf("SetView: %v", err)
	}
	c.SetPosition(image.Pt(1, 1), false)

	rec := recording.NewRecorder()
	if err := c.Render(render.NewRenderer(rec)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	b := rec.Finish().Batches()[0]
	if b.State.Transform != glyphgrid.Translate(8, 8) {
		t.Errorf("transform = %v, want translate(8, 8)", b.State.Transform)
	}
	// default background + 1 red background + 16 glyphs
	if len(b.Ops) != 18 {
		t.Errorf("got %d ops, want 18", len(b.Ops))
	}
	// Source (3, 4) is local (1, 2) in the view.
	var red []image.Rectangle
	for _, op := range b.Ops {
		if op.Color == glyphgrid.Red {
			red = append(red, op.Dst)
		}
	}
	if len(red) != 1 || red[0] != image.Rect(8, 16, 16, 24) {
		t.Errorf("red background at %v, want [(8,16)-(16,24)]", red)
	}
}

func TestConsoleSetViewOutOfBounds(t *testing.T) {
	c, _ := New(testGrid(t, 4, 4))
	err := c.SetView(image.Rect(2, 2, 6, 6))
	if !errors.Is(err, surface.ErrAreaOutOfBounds) {
		t.Fatalf("SetView() error = %v, want ErrAreaOutOfBounds", err)
	}
	if c.View() != image.Rect(0, 0, 4, 4) {
		t.Errorf("View() changed to %v after failed SetView", c.View())
	}
}

func TestConsoleLazyRebuild(t *testing.T) {
	g := testGrid(t, 8, 8)
	c, _ := New(g)
	r := render.NewRenderer(recording.NewRecorder())

	draw := func() {
		t.Helper()
		if err := c.Render(r); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}

	draw()
	draw()
	if c.Builds() != 1 {
		t.Errorf("unchanged console built %d subsets, want 1", c.Builds())
	}

	g.SetGlyph(0, 0, 5)
	draw()
	if c.Builds() != 2 {
		t.Errorf("content change: builds = %d, want 2", c.Builds())
	}

	if err := c.SetView(image.Rect(0, 0, 4, 4)); err != nil {
		t.Fatalf("SetView: %v", err)
	}
	builds := c.Builds()
	draw()
	if c.Builds() != builds {
		t.Error("SetView subset was rebuilt again at render")
	}

	c.Scroll(2, 1)
	draw()
	if c.View() != image.Rect(2, 1, 6, 5) {
		t.Errorf("View() = %v after Scroll(2, 1)", c.View())
	}
	sub, _ := c.Subset()
	if sub.Area() != c.View() {
		t.Errorf("subset area %v does not follow the view %v", sub.Area(), c.View())
	}
}

func TestConsoleGridShrink(t *testing.T) {
	g := testGrid(t, 8, 8)
	c, _ := New(g)
	g.Resize(5, 3)

	sub, err := c.Subset()
	if err != nil {
		t.Fatalf("Subset: %v", err)
	}
	if sub.Area() != image.Rect(0, 0, 5, 3) {
		t.Errorf("area after shrink = %v, want (0,0)-(5,3)", sub.Area())
	}
}

func TestConsoleScrollClamps(t *testing.T) {
	c, _ := New(testGrid(t, 10, 6))
	if err := c.SetView(image.Rect(0, 0, 4, 4)); err != nil {
		t.Fatalf("SetView: %v", err)
	}
	c.Scroll(100, 100)
	if c.View() != image.Rect(6, 2, 10, 6) {
		t.Errorf("View() = %v, want clamped (6,2)-(10,6)", c.View())
	}
	c.ScrollTo(-3, -3)
	if c.View() != image.Rect(0, 0, 4, 4) {
		t.Errorf("View() = %v, want (0,0)-(4,4)", c.View())
	}
}

func TestConsoleHidden(t *testing.T) {
	c, _ := New(testGrid(t, 2, 2))
	c.SetVisible(false)
	rec := recording.NewRecorder()
	if err := c.Render(render.NewRenderer(rec)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if rec.Len() != 0 {
		t.Errorf("hidden console recorded %d commands", rec.Len())
	}
}

func TestConsoleTransformOverride(t *testing.T) {
	c, _ := New(testGrid(t, 2, 2))
	m := glyphgrid.Scale(3, 3)
	c.SetTransform(&m)

	rec := recording.NewRecorder()
	if err := c.Render(render.NewRenderer(rec)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := rec.Finish().Batches()[0].State.Transform; got != m {
		t.Errorf("transform = %v, want %v", got, m)
	}
}

func TestConsoleTyping(t *testing.T) {
	g := testGrid(t, 3, 2)
	c, _ := New(g)

	for _, r := range "abcd" {
		if !c.HandleKey(typed(r)) {
			t.Fatalf("HandleKey(%q) = false", r)
		}
	}
	// Wrapped after three cells.
	if glyphAt(g, 0, 0) != 'a' || glyphAt(g, 2, 0) != 'c' || glyphAt(g, 0, 1) != 'd' {
		t.Errorf("typed text landed wrong: %d %d %d", glyphAt(g, 0, 0), glyphAt(g, 2, 0), glyphAt(g, 0, 1))
	}
	if c.Cursor.Position != image.Pt(1, 1) {
		t.Errorf("cursor = %v, want (1,1)", c.Cursor.Position)
	}

	c.HandleKey(key(tcell.KeyBackspace2))
	if glyphAt(g, 0, 1) != 0 || c.Cursor.Position != image.Pt(0, 1) {
		t.Errorf("backspace: glyph %d cursor %v", glyphAt(g, 0, 1), c.Cursor.Position)
	}
	c.HandleKey(key(tcell.KeyBackspace))
	if c.Cursor.Position != image.Pt(2, 0) || glyphAt(g, 2, 0) != 0 {
		t.Errorf("backspace across lines: cursor %v glyph %d", c.Cursor.Position, glyphAt(g, 2, 0))
	}

	c.HandleKey(key(tcell.KeyEnter))
	if c.Cursor.Position != image.Pt(0, 1) {
		t.Errorf("enter: cursor = %v, want (0,1)", c.Cursor.Position)
	}

	c.HandleKey(key(tcell.KeyUp))
	c.HandleKey(key(tcell.KeyRight))
	c.HandleKey(key(tcell.KeyLeft))
	c.HandleKey(key(tcell.KeyLeft))
	c.HandleKey(key(tcell.KeyDown))
	if c.Cursor.Position != image.Pt(0, 1) {
		t.Errorf("arrows: cursor = %v, want (0,1)", c.Cursor.Position)
	}

	if c.HandleKey(key(tcell.KeyF1)) {
		t.Error("F1 should not be consumed")
	}
}

func TestConsoleKeyboardControls(t *testing.T) {
	g := testGrid(t, 3, 1)
	c, _ := New(g)

	c.SetKeyboard(false)
	if c.HandleKey(typed('z')) || glyphAt(g, 0, 0) == 'z' {
		t.Error("disabled keyboard still typed")
	}

	c.SetKeyboard(true)
	var got []rune
	c.SetKeyHandler(func(_ *Console, ev *tcell.EventKey) bool {
		got = append(got, ev.Rune())
		return true
	})
	c.HandleKey(typed('q'))
	if len(got) != 1 || got[0] != 'q' || glyphAt(g, 0, 0) == 'q' {
		t.Errorf("custom handler not used: %v", got)
	}
}

func TestConsoleFocus(t *testing.T) {
	c, _ := New(testGrid(t, 1, 1))
	c.SetFocused(true)
	if !c.IsFocused() {
		t.Error("SetFocused(true) ignored")
	}
	c.SetCanFocus(false)
	if c.IsFocused() {
		t.Error("SetCanFocus(false) kept focus")
	}
	c.SetFocused(true)
	if c.IsFocused() {
		t.Error("unfocusable console took focus")
	}
}

func TestNewNilGrid(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilGrid) {
		t.Errorf("New(nil) = %v, want ErrNilGrid", err)
	}
	if _, err := NewStatic(nil, image.Point{}, false); !errors.Is(err, ErrNilGrid) {
		t.Errorf("NewStatic(nil) = %v, want ErrNilGrid", err)
	}
}
