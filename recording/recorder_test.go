// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/font"
	"github.com/gogpu/glyphgrid/render"
	"github.com/gogpu/glyphgrid/surface"
)

func recordFrame(t *testing.T, rec *Recorder) {
	t.Helper()
	atlas, err := font.NewAtlas("test", image.NewNRGBA(image.Rect(0, 0, 128, 128)), 8, 8, 0)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	g := surface.NewGrid(3, 2, atlas.View(1))
	g.Print(0, 0, "abc", glyphgrid.White, glyphgrid.Red)
	g.SetTint(glyphgrid.Black.WithAlpha(100))
	sub, err := surface.NewSubset(g, g.Bounds())
	if err != nil {
		t.Fatalf("NewSubset: %v", err)
	}
	if err := render.NewRenderer(rec).Render(sub, image.Pt(1, 1), false); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRecorderCapturesBatch(t *testing.T) {
	rec := NewRecorder()
	recordFrame(t, rec)
	rc := rec.Finish()

	cmds := rc.Commands()
	if cmds[0].Type() != CmdBegin || cmds[len(cmds)-1].Type() != CmdEnd {
		t.Fatalf("commands not bracketed: first %v last %v", cmds[0].Type(), cmds[len(cmds)-1].Type())
	}

	batches := rc.Batches()
	if len(batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(batches))
	}
	// default bg + 3 red backgrounds + 6 glyphs + tint
	if got := len(batches[0].Ops); got != 11 {
		t.Errorf("batch has %d ops, want 11", got)
	}
	if got := batches[0].State.Transform; got != glyphgrid.Translate(8, 8) {
		t.Errorf("transform = %v, want translate(8, 8)", got)
	}
	if rc.Count(render.DepthGlyph) != 6 || rc.Count(render.DepthOverlay) != 1 || rc.Count(render.DepthBackground) != 4 {
		t.Errorf("per-depth counts = %d/%d/%d",
			rc.Count(render.DepthBackground), rc.Count(render.DepthGlyph), rc.Count(render.DepthOverlay))
	}

	// One atlas image shared by every textured op.
	if rc.Images().Len() != 1 {
		t.Errorf("pooled images = %d, want 1", rc.Images().Len())
	}
	if !batches[0].Ops[0].IsFill() {
		t.Error("default background should replay as a fill")
	}

	if rec.Len() != 0 {
		t.Errorf("recorder holds %d commands after Finish, want 0", rec.Len())
	}
}

func TestRecordingReplay(t *testing.T) {
	rec := NewRecorder()
	recordFrame(t, rec)
	recordFrame(t, rec)
	rc := rec.Finish()

	copyRec := NewRecorder()
	if err := rc.Replay(copyRec); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	replayed := copyRec.Finish()

	if !slices.EqualFunc(rc.Batches(), replayed.Batches(), func(a, b Batch) bool {
		return a.State == b.State && slices.Equal(a.Ops, b.Ops)
	}) {
		t.Error("replayed batches differ from the original")
	}
	if len(replayed.Batches()) != 2 {
		t.Errorf("replayed %d batches, want 2", len(replayed.Batches()))
	}
}

type failingSink struct{ Recorder }

func (s *failingSink) End() error { return errors.New("submit failed") }

func TestRecordingReplayStopsOnEndError(t *testing.T) {
	rec := NewRecorder()
	recordFrame(t, rec)
	recordFrame(t, rec)
	rc := rec.Finish()

	sink := &failingSink{Recorder: *NewRecorder()}
	if err := rc.Replay(sink); err == nil {
		t.Fatal("Replay did not report the End error")
	}
	begins := 0
	for _, c := range sink.commands {
		if c.Type() == CmdBegin {
			begins++
		}
	}
	if begins != 1 {
		t.Errorf("replay continued after the error: %d batches begun", begins)
	}
}

func TestRecordingReplayUnbalanced(t *testing.T) {
	tests := []struct {
		name string
		cmds []Command
	}{
		{"draw outside", []Command{DrawCommand{Image: NoImage}}},
		{"end without begin", []Command{EndCommand{}}},
		{"nested begin", []Command{BeginCommand{}, BeginCommand{}}},
		{"missing end", []Command{BeginCommand{}, DrawCommand{Image: NoImage}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := &Recording{commands: tt.cmds, images: NewImagePool()}
			if err := rc.Replay(NewRecorder()); !errors.Is(err, ErrUnbalanced) {
				t.Errorf("Replay() error = %v, want ErrUnbalanced", err)
			}
		})
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	recordFrame(t, rec)
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d", rec.Len())
	}
}

func TestImagePool(t *testing.T) {
	p := NewImagePool()
	a := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	ra, rb := p.Add(a), p.Add(b)
	if ra == rb {
		t.Error("distinct images share a ref")
	}
	if p.Add(a) != ra {
		t.Error("same image got a new ref")
	}
	if p.Add(nil) != NoImage || NoImage.IsValid() {
		t.Error("nil image should map to the invalid NoImage ref")
	}
	if p.Get(ra) != a || p.Get(NoImage) != nil {
		t.Error("Get returned the wrong image")
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdBegin, "Begin"},
		{CmdDraw, "Draw"},
		{CmdEnd, "End"},
		{CommandType(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestRegisteredSink(t *testing.T) {
	sink, err := render.NewSink("recording")
	if err != nil {
		t.Fatalf("NewSink(recording): %v", err)
	}
	if _, ok := sink.(*Recorder); !ok {
		t.Errorf("NewSink(recording) = %T, want *Recorder", sink)
	}
}
