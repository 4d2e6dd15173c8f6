// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"log/slog"
	"runtime"
	"sync/atomic"

	"cogentcore.org/geometry/base/debug"
	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/varray"
)

// Reader is the result of looking up an attribute for reading. An
// invalid Reader means the attribute does not exist.
type Reader struct {
	VArray varray.GVArray
	Domain Domain
}

func (r Reader) Valid() bool { return r.VArray.Valid() }

// TypedReader is a [Reader] with a known value type.
type TypedReader[T any] struct {
	VArray varray.VArray[T]
	Domain Domain
}

func (r TypedReader[T]) Valid() bool { return r.VArray.Valid() }

// ReaderAs returns r with values of type T, which must be its type.
func ReaderAs[T any](r Reader) TypedReader[T] {
	return TypedReader[T]{VArray: varray.Typed[T](r.VArray), Domain: r.Domain}
}

// WriterTracker counts the writers handed out by the accessors it is
// attached to that have not been finished yet. See
// [MutableAccessor.WithTracker].
type WriterTracker struct {
	open atomic.Int64
}

// Open returns the number of tracked writers not yet finished.
func (t *WriterTracker) Open() int {
	return int(t.open.Load())
}

type writerState struct {
	finished *atomic.Bool
	tracker  *WriterTracker
}

type writerCleanup struct {
	finished *atomic.Bool
	name     string
}

// Writer is the result of looking up an attribute for writing. After
// writing, [Writer.Finish] must be called exactly once, so that caches
// depending on the attribute are invalidated. An invalid Writer means
// the attribute does not exist or is not writable.
type Writer struct {
	VArray varray.GVMutableArray
	Domain Domain

	// TagModifiedFn is called by Finish, if set.
	TagModifiedFn func()

	state *writerState
}

// NewWriter returns a [Writer]. name is used in debug diagnostics.
func NewWriter(name string, v varray.GVMutableArray, domain Domain, tagModified func()) Writer {
	w := Writer{VArray: v, Domain: domain, TagModifiedFn: tagModified}
	if !debug.Enabled || !v.Valid() {
		return w
	}
	w.state = &writerState{finished: &atomic.Bool{}}
	runtime.AddCleanup(w.state, func(c writerCleanup) {
		if !c.finished.Load() {
			slog.Error("attribute writer was not finished", "attribute", c.name)
		}
	}, writerCleanup{finished: w.state.finished, name: name})
	return w
}

func (w Writer) Valid() bool { return w.VArray.Valid() }

// track counts w in t until it is finished.
func (w Writer) track(t *WriterTracker) Writer {
	if t == nil || !w.Valid() {
		return w
	}
	if w.state == nil {
		w.state = &writerState{finished: &atomic.Bool{}}
	}
	w.state.tracker = t
	t.open.Add(1)
	return w
}

// Finish calls the TagModifiedFn. It must be called once after the
// values have been written.
func (w Writer) Finish() {
	if w.state != nil {
		first := !w.state.finished.Swap(true)
		debug.Assert(first, "attribute writer finished twice")
		if first && w.state.tracker != nil {
			w.state.tracker.open.Add(-1)
		}
	}
	if w.TagModifiedFn != nil {
		w.TagModifiedFn()
	}
}

// TypedWriter is a [Writer] with a known value type.
type TypedWriter[T any] struct {
	VArray varray.VMutableArray[T]
	Domain Domain
	writer Writer
}

// WriterAs returns w with values of type T, which must be its type.
func WriterAs[T any](w Writer) TypedWriter[T] {
	return TypedWriter[T]{VArray: varray.TypedMutable[T](w.VArray), Domain: w.Domain, writer: w}
}

func (w TypedWriter[T]) Valid() bool { return w.VArray.Valid() }

// Finish is [Writer.Finish].
func (w TypedWriter[T]) Finish() { w.writer.Finish() }

// SpanWriter gives write access to an attribute as a contiguous span.
// If the attribute is not stored contiguously, a temporary buffer is
// written back by [SpanWriter.Finish].
type SpanWriter struct {
	Span   generic.MutableSpan
	Domain Domain

	writer Writer
	buffer *generic.Array
}

// NewSpanWriter returns a span writer for w. If copyValues is false and
// a buffer is needed, its initial values are unspecified, which is
// cheaper when all values will be overwritten.
func NewSpanWriter(w Writer, copyValues bool) SpanWriter {
	if !w.Valid() {
		return SpanWriter{}
	}
	s := SpanWriter{Domain: w.Domain, writer: w}
	if w.VArray.IsSpan() {
		s.Span = w.VArray.InternalMutableSpan()
		return s
	}
	s.buffer = generic.NewArray(w.VArray.Type(), w.VArray.Size())
	if copyValues {
		w.VArray.Materialize(indexmask.FromSize(w.VArray.Size()), s.buffer.Data())
	}
	s.Span = s.buffer.AsMutableSpan()
	return s
}

func (s SpanWriter) Valid() bool { return s.writer.Valid() }

// Finish writes back buffered values and finishes the writer.
func (s SpanWriter) Finish() {
	if s.buffer != nil {
		s.writer.VArray.SetAll(s.buffer.AsSpan())
	}
	s.writer.Finish()
}

// SpanAs returns the span as a slice of T.
func SpanAs[T any](s SpanWriter) []T {
	return generic.TypedMutable[T](s.Span)
}
