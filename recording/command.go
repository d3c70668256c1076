// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"image"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/render"
)

// CommandType identifies the kind of a recorded command.
type CommandType uint8

const (
	CmdBegin CommandType = iota // batch begin with its state
	CmdDraw                     // one draw op
	CmdEnd                      // batch end
)

// String returns the command type name.
func (t CommandType) String() string {
	switch t {
	case CmdBegin:
		return "Begin"
	case CmdDraw:
		return "Draw"
	case CmdEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Command is one recorded sink call.
type Command interface {
	Type() CommandType
}

// BeginCommand records Sink.Begin.
type BeginCommand struct {
	State render.BatchState
}

// Type implements Command.
func (BeginCommand) Type() CommandType { return CmdBegin }

// DrawCommand records Sink.Draw with the image replaced by a pool reference.
type DrawCommand struct {
	Image ImageRef
	Dst   image.Rectangle
	Src   image.Rectangle
	Color glyphgrid.Color
	Flip  glyphgrid.Flip
	Depth render.Depth
	Glyph int
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }

// EndCommand records Sink.End.
type EndCommand struct{}

// Type implements Command.
func (EndCommand) Type() CommandType { return CmdEnd }
