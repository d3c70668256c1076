// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphgrid/render"
)

func init() {
	render.RegisterSink("recording", func() render.Sink {
		return NewRecorder()
	})
}

// ErrUnbalanced is returned by Replay when a recording has a Draw outside a
// batch or a batch without an End.
var ErrUnbalanced = errors.New("recording: unbalanced batch")

// Recorder is a render.Sink that stores every call as a command.
// Use Finish to obtain an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	images   *ImagePool
}

// Ensure Recorder implements render.Sink.
var _ render.Sink = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 256),
		images:   NewImagePool(),
	}
}

// Begin implements render.Sink.
func (r *Recorder) Begin(state render.BatchState) {
	r.commands = append(r.commands, BeginCommand{State: state})
}

// Draw implements render.Sink.
func (r *Recorder) Draw(op render.DrawOp) {
	r.commands = append(r.commands, DrawCommand{
		Image: r.images.Add(op.Image),
		Dst:   op.Dst,
		Src:   op.Src,
		Color: op.Color,
		Flip:  op.Flip,
		Depth: op.Depth,
		Glyph: op.Glyph,
	})
}

// End implements render.Sink. It never fails.
func (r *Recorder) End() error {
	r.commands = append(r.commands, EndCommand{})
	return nil
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Finish returns a Recording of everything recorded so far and resets the
// recorder. The image pool carries over so refs stay stable across frames.
func (r *Recorder) Finish() *Recording {
	rc := &Recording{
		commands: r.commands,
		images:   r.images,
	}
	r.commands = make([]Command, 0, cap(rc.commands))
	return rc
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Batch is one Begin..End span of a recording with images resolved.
type Batch struct {
	State render.BatchState
	Ops   []render.DrawOp
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	commands []Command
	images   *ImagePool
}

// Commands returns the recorded commands. The slice must not be modified.
func (rc *Recording) Commands() []Command { return rc.commands }

// Images returns the image pool referenced by draw commands.
func (rc *Recording) Images() *ImagePool { return rc.images }

// Op resolves a draw command back into a render.DrawOp.
func (rc *Recording) Op(c DrawCommand) render.DrawOp {
	return render.DrawOp{
		Image: rc.images.Get(c.Image),
		Dst:   c.Dst,
		Src:   c.Src,
		Color: c.Color,
		Flip:  c.Flip,
		Depth: c.Depth,
		Glyph: c.Glyph,
	}
}

// Batches groups the commands into batches. Draws outside a batch are
// dropped.
func (rc *Recording) Batches() []Batch {
	var (
		out  []Batch
		open bool
	)
	for _, cmd := range rc.commands {
		switch c := cmd.(type) {
		case BeginCommand:
			out = append(out, Batch{State: c.State})
			open = true
		case DrawCommand:
			if open {
				b := &out[len(out)-1]
				b.Ops = append(b.Ops, rc.Op(c))
			}
		case EndCommand:
			open = false
		}
	}
	return out
}

// Count returns how many draw commands were recorded at depth d.
func (rc *Recording) Count(d render.Depth) int {
	n := 0
	for _, cmd := range rc.commands {
		if c, ok := cmd.(DrawCommand); ok && c.Depth == d {
			n++
		}
	}
	return n
}

// Replay issues every command to sink in recorded order. It stops at the
// first End error.
func (rc *Recording) Replay(sink render.Sink) error {
	open := false
	for i, cmd := range rc.commands {
		switch c := cmd.(type) {
		case BeginCommand:
			if open {
				return fmt.Errorf("%w: nested Begin at command %d", ErrUnbalanced, i)
			}
			sink.Begin(c.State)
			open = true
		case DrawCommand:
			if !open {
				return fmt.Errorf("%w: Draw outside a batch at command %d", ErrUnbalanced, i)
			}
			sink.Draw(rc.Op(c))
		case EndCommand:
			if !open {
				return fmt.Errorf("%w: End without Begin at command %d", ErrUnbalanced, i)
			}
			open = false
			if err := sink.End(); err != nil {
				return err
			}
		}
	}
	if open {
		return fmt.Errorf("%w: missing End", ErrUnbalanced)
	}
	return nil
}
