// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package font provides fixed-cell glyph atlases.
//
// An Atlas owns a glyph image laid out as a grid of equally sized cells,
// DefaultColumns cells per row, and a table with the source rectangle of
// every glyph index. A View is an immutable, optionally enlarged snapshot of
// that table which shares the atlas image; surfaces render through views.
//
// # Loading
//
// Images are decoded by a Decoder. FileDecoder handles PNG, JPEG and BMP
// files; Bake rasterizes any golang.org/x/image/font.Face into an atlas so
// that no font image has to ship with the program:
//
//	atlas, err := font.Default()            // basicfont 7x13
//	atlas, err := font.GoMono(16)           // Go Mono at 16px
//	atlas, err := font.Load(dec, font.Config{Name: "IBM", Path: "ibm.png", Width: 8, Height: 16})
//
// # Sharing
//
// Cache deduplicates atlases by (name, cell width, cell height). Resolving a
// configuration whose atlas is already resident reuses the resident image
// instead of decoding the file again. Caches are explicit values so that
// tests and independent subsystems can use isolated instances.
package font
