// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package console

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/render"
	"github.com/gogpu/glyphgrid/surface"
)

// Interactive is a Renderable that can take focus and keyboard input.
type Interactive interface {
	Renderable
	CanFocus() bool
	SetFocused(focused bool)
	IsFocused() bool

	// HandleKey processes a key press and reports whether it was consumed.
	HandleKey(ev *tcell.EventKey) bool
}

// KeyHandler replaces the default key processing of a Console.
type KeyHandler func(c *Console, ev *tcell.EventKey) bool

// Console is an interactive surface showing a view of its grid.
//
// The subset is rebuilt lazily at render time whenever the view, the grid
// size or the grid content changed since the last build.
type Console struct {
	grid      *surface.Grid
	view      image.Rectangle
	pos       image.Point
	pixel     bool
	transform *glyphgrid.Matrix

	visible  bool
	focused  bool
	canFocus bool
	keyboard bool
	handler  KeyHandler

	// Cursor is where typed text goes.
	Cursor Cursor

	sub      *surface.Subset
	built    bool
	builtFor buildKey
	builds   int
}

// buildKey is what the cached subset depends on.
type buildKey struct {
	view    image.Rectangle
	size    image.Point
	version uint64
}

// Ensure Console implements Interactive.
var _ Interactive = (*Console)(nil)

// New creates a visible, focusable console viewing the whole grid. The
// cursor prints in the grid default colors.
func New(grid *surface.Grid) (*Console, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	st := grid.Style()
	return &Console{
		grid:     grid,
		view:     grid.Bounds(),
		visible:  true,
		canFocus: true,
		keyboard: true,
		Cursor: Cursor{
			Foreground: st.DefaultForeground,
			Background: st.DefaultBackground,
		},
	}, nil
}

// Grid returns the grid.
func (c *Console) Grid() *surface.Grid { return c.grid }

// View returns the visible window in cells.
func (c *Console) View() image.Rectangle { return c.view }

// SetView changes the visible window. An area outside the grid fails
// immediately with surface.ErrAreaOutOfBounds.
func (c *Console) SetView(area image.Rectangle) error {
	sub, err := surface.NewSubset(c.grid, area)
	if err != nil {
		return err
	}
	c.view = area
	c.store(sub)
	return nil
}

// ScrollTo moves the view so its top-left is (x, y), keeping its size and
// clamping it inside the grid.
func (c *Console) ScrollTo(x, y int) {
	size := c.view.Size()
	at := clampPoint(image.Pt(x, y), c.grid.Width()-size.X, c.grid.Height()-size.Y)
	c.view = image.Rectangle{Min: at, Max: at.Add(size)}
}

// Scroll moves the view by (dx, dy) cells.
func (c *Console) Scroll(dx, dy int) {
	c.ScrollTo(c.view.Min.X+dx, c.view.Min.Y+dy)
}

// Position returns the placement and whether it is in pixels.
func (c *Console) Position() (pos image.Point, pixel bool) { return c.pos, c.pixel }

// SetPosition moves the console.
func (c *Console) SetPosition(pos image.Point, pixel bool) {
	c.pos, c.pixel = pos, pixel
}

// SetTransform makes the console render with m instead of its position.
// nil restores positioned rendering.
func (c *Console) SetTransform(m *glyphgrid.Matrix) { c.transform = m }

// IsVisible reports whether Render draws anything.
func (c *Console) IsVisible() bool { return c.visible }

// SetVisible shows or hides the console.
func (c *Console) SetVisible(v bool) { c.visible = v }

// CanFocus implements Interactive.
func (c *Console) CanFocus() bool { return c.canFocus }

// SetCanFocus controls whether the console accepts focus. Disabling it
// also drops the current focus.
func (c *Console) SetCanFocus(v bool) {
	c.canFocus = v
	if !v {
		c.focused = false
	}
}

// IsFocused implements Interactive.
func (c *Console) IsFocused() bool { return c.focused }

// SetFocused implements Interactive. It has no effect when the console
// cannot take focus.
func (c *Console) SetFocused(f bool) { c.focused = f && c.canFocus }

// SetKeyboard enables or disables key processing.
func (c *Console) SetKeyboard(on bool) { c.keyboard = on }

// SetKeyHandler replaces the default key processing. nil restores it.
func (c *Console) SetKeyHandler(h KeyHandler) { c.handler = h }

// HandleKey implements Interactive. By default printable runes are typed
// at the cursor, Enter and Backspace edit, and arrow keys move the cursor.
func (c *Console) HandleKey(ev *tcell.EventKey) bool {
	if !c.keyboard || ev == nil {
		return false
	}
	if c.handler != nil {
		return c.handler(c, ev)
	}
	switch ev.Key() {
	case tcell.KeyRune:
		c.Cursor.Print(c.grid, string(ev.Rune()))
	case tcell.KeyEnter:
		c.Cursor.Newline(c.grid)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		c.Cursor.Backspace(c.grid)
	case tcell.KeyLeft:
		c.Cursor.Move(c.grid, -1, 0)
	case tcell.KeyRight:
		c.Cursor.Move(c.grid, 1, 0)
	case tcell.KeyUp:
		c.Cursor.Move(c.grid, 0, -1)
	case tcell.KeyDown:
		c.Cursor.Move(c.grid, 0, 1)
	default:
		return false
	}
	return true
}

// Subset returns the subset for the current view, rebuilding it if stale.
func (c *Console) Subset() (*surface.Subset, error) {
	key := c.key()
	if c.built && key == c.builtFor {
		return c.sub, nil
	}
	if key.view.Max.X > key.size.X || key.view.Max.Y > key.size.Y {
		// The grid shrank under the view.
		c.view = c.view.Intersect(c.grid.Bounds())
	}
	sub, err := surface.NewSubset(c.grid, c.view)
	if err != nil {
		return nil, err
	}
	c.store(sub)
	return sub, nil
}

// Builds returns how many subsets have been built.
func (c *Console) Builds() int { return c.builds }

// Render implements Renderable.
func (c *Console) Render(r *render.Renderer) error {
	if !c.visible {
		return nil
	}
	sub, err := c.Subset()
	if err != nil {
		return err
	}
	if c.transform != nil {
		return r.RenderTransform(sub, *c.transform)
	}
	return r.Render(sub, c.pos, c.pixel)
}

func (c *Console) key() buildKey {
	return buildKey{
		view:    c.view,
		size:    image.Pt(c.grid.Width(), c.grid.Height()),
		version: c.grid.Version(),
	}
}

func (c *Console) store(sub *surface.Subset) {
	c.sub = sub
	c.built = true
	c.builtFor = c.key()
	c.builds++
}
