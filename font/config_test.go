// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testConfig = `
[[font]]
name = "IBM"
path = "IBM.png"
width = 8
height = 16
default = true

[[font]]
name = "Cheepicus"
path = "/abs/cheepicus.png"
width = 12
height = 12
padding = 1
`

func TestParseConfig(t *testing.T) {
	configs, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("got %d configs, want 2", len(configs))
	}
	want := Config{Name: "IBM", Path: "IBM.png", Width: 8, Height: 16, Default: true}
	if configs[0] != want {
		t.Errorf("configs[0] = %+v, want %+v", configs[0], want)
	}
	if configs[1].Padding != 1 || configs[1].Default {
		t.Errorf("configs[1] = %+v", configs[1])
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[[font]\nname = "},
		{"missing name", "[[font]]\nwidth = 8\nheight = 8\n"},
		{"zero height", "[[font]]\nname = \"a\"\nwidth = 8\nheight = 0\n"},
		{"negative padding", "[[font]]\nname = \"a\"\nwidth = 8\nheight = 8\npadding = -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Errorf("ParseConfig() error = %v, want *ConfigError", err)
			}
		})
	}
}

func TestLoadConfigResolvesPaths(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/fonts.toml": {Data: []byte(testConfig)},
	}
	configs, err := LoadConfig(fsys, "fonts/fonts.toml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if configs[0].Path != "fonts/IBM.png" {
		t.Errorf("relative path = %q, want fonts/IBM.png", configs[0].Path)
	}

	_, err = LoadConfig(fsys, "missing.toml")
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.Path != "missing.toml" {
		t.Errorf("missing file error = %v", err)
	}
}
