// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrmath

import (
	"cogentcore.org/geometry/indexmask"
)

type mixImpl[T any] interface {
	set(i int, v T, weight float32)
	mixIn(i int, v T, weight float32)
	finalize(mask indexmask.Mask)
}

type mixer[T, A any] struct {
	ops          linear[T, A]
	buffer       []T
	sums         []A
	weights      []float32
	defaultValue T
}

func (l linear[T, A]) newMixer(buffer []T, defaultValue T) mixImpl[T] {
	return &mixer[T, A]{
		ops:          l,
		buffer:       buffer,
		sums:         make([]A, len(buffer)),
		weights:      make([]float32, len(buffer)),
		defaultValue: defaultValue,
	}
}

func (m *mixer[T, A]) set(i int, v T, weight float32) {
	m.sums[i] = m.ops.scale(m.ops.toAcc(v), weight)
	m.weights[i] = weight
}

func (m *mixer[T, A]) mixIn(i int, v T, weight float32) {
	m.sums[i] = m.ops.add(m.sums[i], m.ops.scale(m.ops.toAcc(v), weight))
	m.weights[i] += weight
}

func (m *mixer[T, A]) finalize(mask indexmask.Mask) {
	mask.Foreach(func(i int) {
		w := m.weights[i]
		if w > 0 {
			m.buffer[i] = m.ops.fromAcc(m.ops.scale(m.sums[i], 1/w))
		} else {
			m.buffer[i] = m.defaultValue
		}
	})
}

// Mixer averages weighted values into the elements of a buffer.
// Elements that receive no weight are set to the default value.
// Different elements may be mixed concurrently.
type Mixer[T any] struct {
	impl mixImpl[T]
	size int
}

// NewDefaultMixer returns a [Mixer] writing into buffer, using the
// zero value as default. It returns nil if T cannot be mixed.
func NewDefaultMixer[T any](buffer []T) *Mixer[T] {
	var zero T
	return NewMixer(buffer, zero)
}

// NewMixer returns a [Mixer] writing into buffer with the given
// default value. It returns nil if T cannot be mixed.
func NewMixer[T any](buffer []T, defaultValue T) *Mixer[T] {
	b := builderFor[T]()
	if b == nil {
		return nil
	}
	return &Mixer[T]{impl: b.newMixer(buffer, defaultValue), size: len(buffer)}
}

// Set replaces the accumulated value of element i.
func (m *Mixer[T]) Set(i int, v T, weight float32) {
	m.impl.set(i, v, weight)
}

// MixIn adds a weighted value to element i.
func (m *Mixer[T]) MixIn(i int, v T, weight float32) {
	m.impl.mixIn(i, v, weight)
}

// Finalize writes the average of every element to the buffer.
func (m *Mixer[T]) Finalize() {
	m.impl.finalize(indexmask.FromSize(m.size))
}

// FinalizeMask writes the average of the selected elements.
func (m *Mixer[T]) FinalizeMask(mask indexmask.Mask) {
	m.impl.finalize(mask)
}
