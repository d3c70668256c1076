// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ErrUnknownSink is returned by NewSink for a name no package registered.
var ErrUnknownSink = errors.New("render: unknown sink")

// SinkFactory builds a ready-to-use sink. Sinks that need a target, such
// as a terminal screen, return one that is attached later.
type SinkFactory func() Sink

// sinkRegistry maps sink names to factories. Sink packages add themselves
// from init, so a program picks its outputs with blank imports:
//
//	import _ "github.com/gogpu/glyphgrid/backends/raster"
//
//	sink, err := render.NewSink("raster")
var sinkRegistry = struct {
	sync.RWMutex
	factories map[string]SinkFactory
}{factories: make(map[string]SinkFactory)}

// RegisterSink publishes factory under name. A nil factory or a name taken
// by another sink is a programming error and panics.
func RegisterSink(name string, factory SinkFactory) {
	if factory == nil {
		panic("render: nil factory for sink " + name)
	}
	sinkRegistry.Lock()
	defer sinkRegistry.Unlock()
	if _, taken := sinkRegistry.factories[name]; taken {
		panic("render: sink " + name + " registered twice")
	}
	sinkRegistry.factories[name] = factory
}

// UnregisterSink forgets name. Tests use it to undo RegisterSink.
func UnregisterSink(name string) {
	sinkRegistry.Lock()
	delete(sinkRegistry.factories, name)
	sinkRegistry.Unlock()
}

// NewSink builds the sink registered as name. An unregistered name usually
// means the sink package was never imported; the error says so and wraps
// ErrUnknownSink.
func NewSink(name string) (Sink, error) {
	sinkRegistry.RLock()
	factory, ok := sinkRegistry.factories[name]
	sinkRegistry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownSink, name)
	}
	return factory(), nil
}

// Sinks lists the registered names, sorted.
func Sinks() []string {
	sinkRegistry.RLock()
	defer sinkRegistry.RUnlock()
	return slices.Sorted(maps.Keys(sinkRegistry.factories))
}

// IsRegistered reports whether name has a factory.
func IsRegistered(name string) bool {
	sinkRegistry.RLock()
	defer sinkRegistry.RUnlock()
	_, ok := sinkRegistry.factories[name]
	return ok
}
