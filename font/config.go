// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is everything needed to reconstruct an atlas.
type Config struct {
	Name    string `toml:"name"`
	Path    string `toml:"path"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Padding int    `toml:"padding"`
	Default bool   `toml:"default"`
}

// Validate checks the cell geometry and the name.
func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("font: config name is empty")
	}
	return validateCell(c.Width, c.Height, c.Padding)
}

// configFile is the TOML document layout:
//
//	[[font]]
//	name = "IBM"
//	path = "IBM.png"
//	width = 8
//	height = 16
type configFile struct {
	Fonts []Config `toml:"font"`
}

// ParseConfig parses a TOML font list.
func ParseConfig(data []byte) ([]Config, error) {
	return parseConfig("<data>", data)
}

func parseConfig(source string, data []byte) ([]Config, error) {
	var file configFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &ConfigError{Path: source, Err: err}
	}
	for i, c := range file.Fonts {
		if err := c.Validate(); err != nil {
			return nil, &ConfigError{Path: source, Err: fmt.Errorf("font #%d: %w", i, err)}
		}
	}
	return file.Fonts, nil
}

// LoadConfig reads a TOML font list from fsys, or from the host file system
// when fsys is nil. Relative image paths are resolved against the directory
// of the configuration file.
func LoadConfig(fsys fs.FS, name string) ([]Config, error) {
	var (
		data []byte
		err  error
	)
	if fsys == nil {
		data, err = os.ReadFile(filepath.Clean(name))
	} else {
		data, err = fs.ReadFile(fsys, name)
	}
	if err != nil {
		return nil, &ConfigError{Path: name, Err: err}
	}

	configs, err := parseConfig(name, data)
	if err != nil {
		return nil, err
	}

	for i := range configs {
		p := configs[i].Path
		if p == "" {
			continue
		}
		if fsys == nil {
			if !filepath.IsAbs(p) {
				configs[i].Path = filepath.Join(filepath.Dir(name), p)
			}
		} else {
			configs[i].Path = path.Join(path.Dir(name), p)
		}
	}
	return configs, nil
}
