// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package console

import (
	"errors"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphgrid/render"
)

// Stack draws surfaces back to front in insertion order and routes keys
// to the focused surface.
type Stack struct {
	items   []Renderable
	focused Interactive
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Add appends a surface on top.
func (s *Stack) Add(r Renderable) {
	s.items = append(s.items, r)
}

// Remove takes a surface out of the stack and reports whether it was
// there. A removed focused surface loses focus.
func (s *Stack) Remove(r Renderable) bool {
	i := slices.Index(s.items, r)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	if in, ok := r.(Interactive); ok && in == s.focused {
		in.SetFocused(false)
		s.focused = nil
	}
	return true
}

// Len returns the number of surfaces.
func (s *Stack) Len() int { return len(s.items) }

// Focus gives keyboard focus to in, taking it from the previous owner.
// It reports false when in refuses focus.
func (s *Stack) Focus(in Interactive) bool {
	if in == nil || !in.CanFocus() {
		return false
	}
	if s.focused != nil && s.focused != in {
		s.focused.SetFocused(false)
	}
	in.SetFocused(true)
	s.focused = in
	return true
}

// Focused returns the surface holding focus, or nil.
func (s *Stack) Focused() Interactive { return s.focused }

// FocusNext moves focus to the next surface in the stack that accepts it,
// wrapping around. Render-only surfaces are skipped.
func (s *Stack) FocusNext() bool {
	start := -1
	if s.focused != nil {
		start = slices.Index(s.items, Renderable(s.focused))
	}
	for n := 1; n <= len(s.items); n++ {
		if in, ok := s.items[(start+n+len(s.items))%len(s.items)].(Interactive); ok && in.CanFocus() {
			return s.Focus(in)
		}
	}
	return false
}

// HandleKey passes ev to the focused surface.
func (s *Stack) HandleKey(ev *tcell.EventKey) bool {
	if s.focused == nil {
		return false
	}
	return s.focused.HandleKey(ev)
}

// Render draws every surface in order. A failing surface does not stop
// the others; all errors are returned joined.
func (s *Stack) Render(r *render.Renderer) error {
	var errs []error
	for _, item := range s.items {
		if err := item.Render(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
