// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command glyphdemo draws a small console scene either into a PNG file or
// into the running terminal.
//
// Usage:
//
//	glyphdemo -out demo.png
//	glyphdemo -config fonts.toml -font IBM -scale 2 -out demo.png
//	glyphdemo -term
//
// In terminal mode typed keys go to the focused console, Tab moves the
// focus and Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphgrid"
	"github.com/gogpu/glyphgrid/backends/raster"
	"github.com/gogpu/glyphgrid/backends/terminal"
	"github.com/gogpu/glyphgrid/console"
	"github.com/gogpu/glyphgrid/font"
	"github.com/gogpu/glyphgrid/render"
	"github.com/gogpu/glyphgrid/surface"
)

const (
	bannerWidth  = 40
	bannerHeight = 5
	editWidth    = 40
	editHeight   = 10
)

func main() {
	var (
		config  = flag.String("config", "", "TOML font list to load")
		name    = flag.String("font", "", "font name (basic, gomono, or a name from -config)")
		scale   = flag.Int("scale", 1, "integer font scale")
		output  = flag.String("out", "demo.png", "output PNG file")
		term    = flag.Bool("term", false, "draw into the terminal instead of a file")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	glyphgrid.SetLogger(logger)

	atlas, err := loadAtlas(*config, *name)
	if err != nil {
		logger.Error("load font", "err", err)
		os.Exit(1)
	}
	view := atlas.View(*scale)
	logger.Info("font ready", "name", atlas.Name, "cell", view.CellSize())

	scene, err := newScene(view)
	if err != nil {
		logger.Error("build scene", "err", err)
		os.Exit(1)
	}

	if *term {
		err = runTerminal(scene, view)
	} else {
		err = writePNG(scene, view, *output)
		if err == nil {
			logger.Info("demo saved", "path", *output)
		}
	}
	if err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

// loadAtlas resolves the requested font. Without a config file the baked
// fonts are used.
func loadAtlas(config, name string) (*font.Atlas, error) {
	if config == "" {
		if name == "gomono" {
			return font.GoMono(16)
		}
		return font.Default()
	}

	configs, err := font.LoadConfig(nil, config)
	if err != nil {
		return nil, err
	}
	cache := font.NewCache()
	atlases, err := cache.LoadAll(configs, font.NewFileDecoder(nil))
	if err != nil {
		glyphgrid.Logger().Warn("some fonts failed to load", "err", err)
	}
	if name != "" {
		if list := cache.LookupName(name); len(list) > 0 {
			return list[0], nil
		}
		return nil, fmt.Errorf("font %q not found in %s", name, config)
	}
	if a, ok := cache.Default(); ok {
		return a, nil
	}
	if len(atlases) == 0 {
		return nil, errors.New("no font loaded")
	}
	return atlases[0], nil
}

type scene struct {
	stack *console.Stack
	edit  *console.Console
}

func newScene(view *font.View) (*scene, error) {
	banner := surface.NewGrid(bannerWidth, bannerHeight, view)
	banner.SetDefaults(glyphgrid.White, glyphgrid.Color{R: 0, G: 0, B: 96, A: 255})
	drawBox(banner, glyphgrid.Cyan)
	banner.Print(2, 1, "glyphgrid demo", glyphgrid.Yellow, glyphgrid.Transparent)
	bars := []glyphgrid.Color{
		glyphgrid.Red, glyphgrid.Green, glyphgrid.Blue, glyphgrid.Yellow,
		glyphgrid.Cyan, glyphgrid.Magenta, glyphgrid.Gray, glyphgrid.White,
	}
	for i, c := range bars {
		banner.SetBackground(2+i*2, 3, c)
		banner.SetBackground(3+i*2, 3, c)
	}

	static, err := console.NewStatic(banner, image.Pt(0, 0), false)
	if err != nil {
		return nil, err
	}

	text := surface.NewGrid(editWidth, editHeight, view)
	text.SetDefaults(glyphgrid.Green, glyphgrid.Black)
	edit, err := console.New(text)
	if err != nil {
		return nil, err
	}
	edit.SetPosition(image.Pt(0, bannerHeight), false)
	edit.Cursor.Print(text, "Type here. Tab: focus, Esc: quit.\n> ")

	stack := console.NewStack()
	stack.Add(static)
	stack.Add(edit)
	stack.Focus(edit)
	return &scene{stack: stack, edit: edit}, nil
}

// drawBox frames g with double-line box characters.
func drawBox(g *surface.Grid, fg glyphgrid.Color) {
	w, h := g.Width()-1, g.Height()-1
	for x := 1; x < w; x++ {
		g.Print(x, 0, "═", fg, glyphgrid.Transparent)
		g.Print(x, h, "═", fg, glyphgrid.Transparent)
	}
	for y := 1; y < h; y++ {
		g.Print(0, y, "║", fg, glyphgrid.Transparent)
		g.Print(w, y, "║", fg, glyphgrid.Transparent)
	}
	g.Print(0, 0, "╔", fg, glyphgrid.Transparent)
	g.Print(w, 0, "╗", fg, glyphgrid.Transparent)
	g.Print(0, h, "╚", fg, glyphgrid.Transparent)
	g.Print(w, h, "╝", fg, glyphgrid.Transparent)
}

func writePNG(s *scene, view *font.View, path string) error {
	cell := view.CellSize()
	out := raster.NewBackend(max(bannerWidth, editWidth)*cell.X, (bannerHeight+editHeight)*cell.Y)
	out.Clear(glyphgrid.Black)

	if err := s.stack.Render(render.NewRenderer(out)); err != nil {
		return err
	}
	return out.SavePNG(path)
}

func runTerminal(s *scene, view *font.View) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// One grid cell maps onto one terminal cell.
	sink := terminal.NewBackend(screen, view.CellSize())
	sink.SetAutoShow(false)
	r := render.NewRenderer(sink)

	draw := func() error {
		screen.Clear()
		err := s.stack.Render(r)
		screen.ShowCursor(s.edit.Cursor.Position.X, s.edit.Cursor.Position.Y+bannerHeight)
		screen.Show()
		return err
	}
	if err := draw(); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyTab:
				s.stack.FocusNext()
			default:
				s.stack.HandleKey(ev)
			}
		case nil:
			return nil
		}
		if err := draw(); err != nil {
			return err
		}
	}
}
