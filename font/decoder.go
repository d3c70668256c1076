// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	// Register image formats accepted for atlas files.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Decoder turns a path into a decoded glyph image.
// It is the only I/O an atlas load performs.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (image.Image, error)

// Decode calls f(path).
func (f DecoderFunc) Decode(path string) (image.Image, error) { return f(path) }

// FileDecoder decodes PNG, JPEG and BMP images.
type FileDecoder struct {
	fsys fs.FS
}

// NewFileDecoder returns a decoder reading from fsys.
// A nil fsys reads from the host file system.
func NewFileDecoder(fsys fs.FS) *FileDecoder {
	return &FileDecoder{fsys: fsys}
}

// Decode opens path and decodes it, detecting the format from its content.
func (d *FileDecoder) Decode(path string) (image.Image, error) {
	var (
		f   fs.File
		err error
	)
	if d.fsys == nil {
		f, err = os.Open(filepath.Clean(path))
	} else {
		f, err = d.fsys.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("font: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("font: decode image: %w", err)
	}
	return img, nil
}
