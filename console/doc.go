// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package console puts grids on screen as renderable surfaces.
//
// Surfaces are modeled by capability rather than by one wide interface:
//
//   - Renderable can draw itself through a render.Renderer.
//   - Interactive is a Renderable that also takes focus and keyboard input.
//
// Static is render-only. It snapshots its whole grid once and draws the
// same subset every frame until the grid reference changes or Refresh is
// called, which makes it the cheap choice for content that rarely changes,
// such as borders and backdrops. It has no focus, input or cursor API at
// all, rather than methods that do nothing.
//
// Console is interactive. It shows a scrollable view of its grid, keeps a
// cursor for keyboard text entry and rebuilds its subset lazily whenever the
// view, the grid size or the grid content changes.
//
// A Stack draws surfaces in the order they were added and routes keys to
// the focused one.
package console
