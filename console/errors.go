// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package console

import "errors"

// ErrNilGrid is returned when a surface is created or pointed at a nil grid.
var ErrNilGrid = errors.New("console: nil grid")
