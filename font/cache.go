// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gogpu/glyphgrid"
)

// Key identifies an atlas by name and cell size.
type Key struct {
	Name   string
	Width  int
	Height int
}

// KeyOf returns the key of a.
func KeyOf(a *Atlas) Key {
	return Key{Name: a.Name, Width: a.cellWidth, Height: a.cellHeight}
}

// Cache holds resident atlases so that equivalent font requests share one
// decoded image.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	byKey  map[Key]*Atlas
	byName map[string][]*Atlas

	// Statistics (atomic for lock-free reads)
	hits      atomic.Uint64
	fallbacks atomic.Uint64
	loads     atomic.Uint64
}

// CacheStats reports how ResolveOrLoad requests were served.
type CacheStats struct {
	// Atlases is the number of resident atlases.
	Atlases int
	// Hits counts exact (name, width, height) matches.
	Hits uint64
	// Fallbacks counts requests served from a same-name atlas of another size.
	Fallbacks uint64
	// Loads counts requests that had to decode an image.
	Loads uint64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		byKey:  make(map[Key]*Atlas),
		byName: make(map[string][]*Atlas),
	}
}

// Add makes a resident. An atlas already registered under the same key is
// replaced.
func (c *Cache) Add(a *Atlas) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := KeyOf(a)
	if old, ok := c.byKey[key]; ok {
		list := c.byName[key.Name]
		for i, e := range list {
			if e == old {
				list[i] = a
				break
			}
		}
	} else {
		c.byName[key.Name] = append(c.byName[key.Name], a)
	}
	c.byKey[key] = a
}

// Lookup returns the resident atlas with the exact name and cell size.
func (c *Cache) Lookup(name string, width, height int) (*Atlas, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.byKey[Key{Name: name, Width: width, Height: height}]
	return a, ok
}

// LookupName returns every resident atlas with the given name, oldest first.
func (c *Cache) LookupName(name string) []*Atlas {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.byName[name]
	out := make([]*Atlas, len(list))
	copy(out, list)
	return out
}

// Default returns the first resident atlas marked IsDefault.
func (c *Cache) Default() (*Atlas, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var found *Atlas
	for _, list := range c.byName {
		for _, a := range list {
			if a.IsDefault && (found == nil || a.Name < found.Name) {
				found = a
			}
		}
	}
	return found, found != nil
}

// Len returns the number of resident atlases.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byKey)
}

// Stats returns request statistics.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Atlases:   c.Len(),
		Hits:      c.hits.Load(),
		Fallbacks: c.fallbacks.Load(),
		Loads:     c.loads.Load(),
	}
}

// ResolveOrLoad returns an atlas for cfg, decoding an image only when no
// resident atlas can provide one:
//
//  1. an atlas with the same name and cell size: the result shares its
//     image and has its own copy of its rectangle table, rebuilt when
//     cfg asks for a different padding that the image can hold;
//  2. the oldest atlas with the same name whose image holds at least one
//     row at the requested cell size: the result shares that image and
//     rebuilds the rectangle table for cfg;
//  3. otherwise the image is decoded with dec and the new atlas becomes
//     resident.
//
// Only the last step can fail, always with a *LoadError.
func (c *Cache) ResolveOrLoad(cfg Config, dec Decoder) (*Atlas, error) {
	if err := validateCell(cfg.Width, cfg.Height, cfg.Padding); err != nil {
		return nil, &LoadError{Name: cfg.Name, Path: cfg.Path, Err: err}
	}
	log := glyphgrid.Logger()

	if master, ok := c.Lookup(cfg.Name, cfg.Width, cfg.Height); ok &&
		(master.padding == cfg.Padding || fits(master.img, cfg.Width, cfg.Height, cfg.Padding, master.columns)) {
		c.hits.Add(1)
		a := master.clone()
		a.Path = cfg.Path
		if a.padding != cfg.Padding {
			// Same image, different layout: the table must follow cfg.
			a.padding = cfg.Padding
			a.configureRects()
		}
		log.Debug("font: atlas shared", "name", cfg.Name, "width", cfg.Width, "height", cfg.Height)
		return a, nil
	}

	for _, candidate := range c.LookupName(cfg.Name) {
		if !fits(candidate.img, cfg.Width, cfg.Height, cfg.Padding, candidate.columns) {
			continue
		}
		c.fallbacks.Add(1)
		a := &Atlas{
			Name:       cfg.Name,
			Path:       cfg.Path,
			cellWidth:  cfg.Width,
			cellHeight: cfg.Height,
			padding:    cfg.Padding,
			columns:    candidate.columns,
			img:        candidate.img,
		}
		a.configureRects()
		log.Warn("font: atlas resized from resident image",
			"name", cfg.Name,
			"from", candidate.CellSize(), "to", a.CellSize())
		return a, nil
	}

	a, err := Load(dec, cfg)
	if err != nil {
		return nil, err
	}
	c.loads.Add(1)
	c.Add(a)
	return a, nil
}

// LoadAll resolves every configuration. A failed load does not stop the
// others; all failures are returned joined.
func (c *Cache) LoadAll(configs []Config, dec Decoder) ([]*Atlas, error) {
	atlases := make([]*Atlas, 0, len(configs))
	var errs []error
	for _, cfg := range configs {
		a, err := c.ResolveOrLoad(cfg, dec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		atlases = append(atlases, a)
	}
	return atlases, errors.Join(errs...)
}
