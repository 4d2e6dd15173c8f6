// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cachemutex provides lazily computed caches that are safe
// to read from many goroutines, using double-checked locking so
// that a cache is computed at most once per invalidation.
package cachemutex

import (
	"sync"
	"sync/atomic"
)

// CacheMutex guards the computation of a lazily computed cache.
// The zero value is a dirty cache.
type CacheMutex struct {
	mu    sync.Mutex
	valid atomic.Bool
}

// Ensure runs compute if the cache is dirty. The dirty flag is checked
// without locking first, then again under the lock, so that concurrent
// callers wait for a single computation instead of repeating it.
func (c *CacheMutex) Ensure(compute func()) {
	if c.valid.Load() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid.Load() {
		return
	}
	compute()
	c.valid.Store(true)
}

// TagDirty marks the cache as needing recomputation.
// It must not be called while other goroutines read the cached data.
func (c *CacheMutex) TagDirty() {
	c.valid.Store(false)
}

// IsDirty returns whether the cache needs to be computed.
func (c *CacheMutex) IsDirty() bool {
	return !c.valid.Load()
}

// IsCached returns whether the cache is up to date.
func (c *CacheMutex) IsCached() bool {
	return c.valid.Load()
}

// Cache is a value of type T computed lazily under a [CacheMutex].
// The zero value is an empty, dirty cache.
type Cache[T any] struct {
	mutex CacheMutex
	data  T
}

// Get returns the cached value, calling compute to fill it first
// if the cache is dirty.
func (c *Cache[T]) Get(compute func(data *T)) *T {
	c.mutex.Ensure(func() {
		compute(&c.data)
	})
	return &c.data
}

// Tag marks the cache as dirty; the old value is kept so that
// compute can reuse its allocations.
func (c *Cache[T]) Tag() {
	c.mutex.TagDirty()
}

// IsCached returns whether the value is up to date.
func (c *Cache[T]) IsCached() bool {
	return c.mutex.IsCached()
}
