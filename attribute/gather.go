// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"cogentcore.org/geometry/indexmask"
)

// SkipFunc returns true for attributes that should not be copied.
type SkipFunc func(id ID) bool

// SkipNames returns a [SkipFunc] skipping the given names.
func SkipNames(names ...string) SkipFunc {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(id ID) bool {
		_, ok := set[id.Key()]
		return ok
	}
}

// GatherAttributes copies the attributes of src stored on domain to dst,
// so that element i of dst gets element mask.At(i) of src. Attributes
// are created on dst as needed; the domain of dst must have mask.Size()
// elements.
func GatherAttributes(src Accessor, domain Domain, skip SkipFunc, mask indexmask.Mask, dst MutableAccessor) {
	src.ForAll(func(id ID, meta MetaData) bool {
		if meta.Domain != domain || (skip != nil && skip(id)) {
			return true
		}
		r := src.Lookup(id)
		if !r.Valid() {
			return true
		}
		w := NewSpanWriter(dst.LookupOrAdd(id, domain, meta.DataType, InitConstruct{}), false)
		if !w.Valid() {
			return true
		}
		r.VArray.MaterializeCompressed(mask, w.Span.Data())
		w.Finish()
		return true
	})
}

// CopyAttributes copies all attributes of src stored on domain to dst,
// whose domain must have the same size.
func CopyAttributes(src Accessor, domain Domain, skip SkipFunc, dst MutableAccessor) {
	GatherAttributes(src, domain, skip, indexmask.FromSize(src.DomainSize(domain)), dst)
}

// RemoveAnonymous removes all anonymous attributes.
func RemoveAnonymous(a MutableAccessor) {
	var ids []ID
	a.ForAll(func(id ID, _ MetaData) bool {
		if id.IsAnonymous() || IsAnonymousName(id.Name()) {
			ids = append(ids, id)
		}
		return true
	})
	for _, id := range ids {
		a.Remove(id)
	}
}
