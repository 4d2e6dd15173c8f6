// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"unsafe"

	"cogentcore.org/geometry/gtype"
	"cogentcore.org/geometry/typeconv"
	"cogentcore.org/geometry/varray"
)

// AccessorFunctions is the table of functions implementing attribute
// access for one geometry component type. It is built once per type
// and shared by all accessors of that type.
type AccessorFunctions struct {
	// DomainSupported returns whether the owner has the domain.
	DomainSupported func(owner any, domain Domain) bool

	// DomainSize returns the number of elements of a domain, 0 if
	// the domain is not supported.
	DomainSize func(owner any, domain Domain) int

	// AdaptDomain converts values between domains. It returns an
	// invalid array if the conversion is not supported.
	AdaptDomain func(owner any, v varray.GVArray, from, to Domain) varray.GVArray

	Contains        func(owner any, id ID) bool
	LookupMetaData  func(owner any, id ID) (MetaData, bool)
	Lookup          func(owner any, id ID) Reader
	LookupValidator func(owner any, id ID) Validator
	ForAll          func(owner any, fn func(id ID, meta MetaData) bool) bool

	// IsRequired returns whether the attribute is builtin and cannot be
	// removed. Nil means no attribute is required.
	IsRequired func(owner any, id ID) bool

	LookupForWrite func(owner any, id ID) Writer
	Remove         func(owner any, id ID) bool
	Add            func(owner any, id ID, domain Domain, dataType DataType, init Init) bool
}

// FunctionsForProviders returns the attribute functions of the given
// providers. DomainSize and AdaptDomain are supplied by the component
// type; a nil adapt only supports identity conversions.
func FunctionsForProviders(p *ComponentProviders, domainSize func(owner any, domain Domain) int,
	adapt func(owner any, v varray.GVArray, from, to Domain) varray.GVArray) *AccessorFunctions {
	if adapt == nil {
		adapt = func(owner any, v varray.GVArray, from, to Domain) varray.GVArray {
			if from == to {
				return v
			}
			return varray.GVArray{}
		}
	}
	return &AccessorFunctions{
		DomainSupported: func(owner any, domain Domain) bool {
			for _, d := range p.SupportedDomains() {
				if d == domain {
					return true
				}
			}
			return false
		},
		DomainSize:      domainSize,
		AdaptDomain:     adapt,
		Contains:        p.Contains,
		LookupMetaData:  p.LookupMetaData,
		Lookup:          p.Lookup,
		LookupValidator: func(owner any, id ID) Validator { return p.LookupValidator(id) },
		ForAll:          p.ForAll,
		IsRequired:      func(owner any, id ID) bool { return p.IsRequired(id) },
		LookupForWrite:  p.LookupForWrite,
		Remove:          p.Remove,
		Add:             p.Add,
	}
}

// Accessor gives read access to the attributes of a geometry. The zero
// value is invalid.
type Accessor struct {
	owner any
	fn    *AccessorFunctions
}

// NewAccessor returns an accessor for owner.
func NewAccessor(owner any, fn *AccessorFunctions) Accessor {
	return Accessor{owner: owner, fn: fn}
}

func (a Accessor) Valid() bool { return a.fn != nil }

// Owner returns the geometry the accessor reads.
func (a Accessor) Owner() any { return a.owner }

// Functions returns the shared function table.
func (a Accessor) Functions() *AccessorFunctions { return a.fn }

// Contains returns whether the attribute exists.
func (a Accessor) Contains(id ID) bool {
	return a.fn.Contains(a.owner, id)
}

// ContainsName returns whether the named attribute exists.
func (a Accessor) ContainsName(name string) bool {
	return a.Contains(Named(name))
}

// LookupMetaData returns the storage description of the attribute.
func (a Accessor) LookupMetaData(id ID) (MetaData, bool) {
	return a.fn.LookupMetaData(a.owner, id)
}

// DomainSupported returns whether the geometry has the domain.
func (a Accessor) DomainSupported(domain Domain) bool {
	return a.fn.DomainSupported(a.owner, domain)
}

// DomainSize returns the number of elements of the domain. Check
// [Accessor.DomainSupported] first; unsupported domains have size 0.
func (a Accessor) DomainSize(domain Domain) int {
	if !a.DomainSupported(domain) {
		return 0
	}
	return a.fn.DomainSize(a.owner, domain)
}

// AdaptDomain converts v from one domain to another.
func (a Accessor) AdaptDomain(v varray.GVArray, from, to Domain) varray.GVArray {
	if !v.Valid() {
		return varray.GVArray{}
	}
	if from == to {
		return v
	}
	return a.fn.AdaptDomain(a.owner, v, from, to)
}

// Lookup returns the attribute in its stored domain and type.
func (a Accessor) Lookup(id ID) Reader {
	return a.fn.Lookup(a.owner, id)
}

// LookupName is [Accessor.Lookup] by name.
func (a Accessor) LookupName(name string) Reader {
	return a.Lookup(Named(name))
}

// LookupOn returns the attribute values adapted to domain, or an
// invalid array if it does not exist or cannot be adapted.
func (a Accessor) LookupOn(id ID, domain Domain) varray.GVArray {
	r := a.Lookup(id)
	if !r.Valid() {
		return varray.GVArray{}
	}
	return a.AdaptDomain(r.VArray, r.Domain, domain)
}

// LookupAs returns the attribute values adapted to domain and
// converted to dataType, or an invalid array.
func (a Accessor) LookupAs(id ID, domain Domain, dataType DataType) varray.GVArray {
	v := a.LookupOn(id, domain)
	if !v.Valid() {
		return v
	}
	return typeconv.Default().TryConvert(v, dataType.Type())
}

// LookupOrDefault is [Accessor.LookupAs] returning a single value
// array of the given default when the attribute is missing. A nil
// defaultValue uses the default of the type.
func (a Accessor) LookupOrDefault(id ID, domain Domain, dataType DataType, defaultValue unsafe.Pointer) varray.GVArray {
	if v := a.LookupAs(id, domain, dataType); v.Valid() {
		return v
	}
	size := a.DomainSize(domain)
	if defaultValue == nil {
		return varray.ForGSingleDefault(dataType.Type(), size)
	}
	return varray.ForGSingle(dataType.Type(), defaultValue, size)
}

// LookupValidator returns the validator of the attribute, or nil.
func (a Accessor) LookupValidator(id ID) Validator {
	return a.fn.LookupValidator(a.owner, id)
}

// ForAll calls fn for every attribute until it returns false.
func (a Accessor) ForAll(fn func(id ID, meta MetaData) bool) bool {
	return a.fn.ForAll(a.owner, fn)
}

// IsRequired returns whether the attribute is part of the geometry
// itself, so that it cannot be removed or renamed.
func (a Accessor) IsRequired(id ID) bool {
	return a.fn.IsRequired != nil && a.fn.IsRequired(a.owner, id)
}

// AllIDs returns the IDs of all attributes.
func (a Accessor) AllIDs() []ID {
	var ids []ID
	a.ForAll(func(id ID, _ MetaData) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Lookup returns the typed attribute values adapted to domain, or an
// invalid array if the attribute is missing or not convertible to T.
func Lookup[T any](a Accessor, id ID, domain Domain) varray.VArray[T] {
	v := a.LookupOn(id, domain)
	if !v.Valid() {
		return varray.VArray[T]{}
	}
	v = typeconv.Default().TryConvert(v, gtype.Of[T]())
	if !v.Valid() {
		return varray.VArray[T]{}
	}
	return varray.Typed[T](v)
}

// LookupOrDefault is [Lookup] with defaultValue used for a missing attribute.
func LookupOrDefault[T any](a Accessor, id ID, domain Domain, defaultValue T) varray.VArray[T] {
	if v := Lookup[T](a, id, domain); v.Valid() {
		return v
	}
	return varray.ForSingle(defaultValue, a.DomainSize(domain))
}

// MutableAccessor gives read and write access to the attributes of a
// geometry.
type MutableAccessor struct {
	Accessor

	tracker *WriterTracker
}

// NewMutableAccessor returns a mutable accessor for owner.
func NewMutableAccessor(owner any, fn *AccessorFunctions) MutableAccessor {
	return MutableAccessor{Accessor: Accessor{owner: owner, fn: fn}}
}

// LookupForWrite returns the attribute for writing in its stored
// domain and type.
func (a MutableAccessor) LookupForWrite(id ID) Writer {
	return a.fn.LookupForWrite(a.owner, id).track(a.tracker)
}

// WithTracker returns a copy of a whose writers are counted by t until
// they are finished. Tracking does not depend on debug builds.
func (a MutableAccessor) WithTracker(t *WriterTracker) MutableAccessor {
	a.tracker = t
	return a
}

// LookupForWriteSpan returns the attribute as a span for writing,
// with its current values.
func (a MutableAccessor) LookupForWriteSpan(id ID) SpanWriter {
	return NewSpanWriter(a.LookupForWrite(id), true)
}

// LookupForWrite returns the attribute for writing as values of T,
// which must be its stored type.
func LookupForWrite[T any](a MutableAccessor, id ID) TypedWriter[T] {
	w := a.LookupForWrite(id)
	if !w.Valid() || !gtype.Is[T](w.VArray.Type()) {
		return TypedWriter[T]{}
	}
	return WriterAs[T](w)
}

// Remove deletes the attribute.
func (a MutableAccessor) Remove(id ID) bool {
	return a.fn.Remove(a.owner, id)
}

// Add creates the attribute, returning false if it exists or cannot be
// stored with the given domain and type. An [InitVArray] is validated
// first if the attribute has a validator.
func (a MutableAccessor) Add(id ID, domain Domain, dataType DataType, init Init) bool {
	if vi, ok := init.(InitVArray); ok {
		if validate := a.LookupValidator(id); validate != nil {
			init = InitVArray{VArray: validate(vi.VArray)}
		}
	}
	return a.fn.Add(a.owner, id, domain, dataType, init)
}

// LookupOrAdd returns the attribute for writing, creating it with init
// if missing. An existing attribute with another domain or type gives
// an invalid [Writer].
func (a MutableAccessor) LookupOrAdd(id ID, domain Domain, dataType DataType, init Init) Writer {
	if meta, ok := a.LookupMetaData(id); ok {
		if meta.Domain != domain || meta.DataType != dataType {
			return Writer{}
		}
		return a.LookupForWrite(id)
	}
	if !a.Add(id, domain, dataType, init) {
		return Writer{}
	}
	return a.LookupForWrite(id)
}

// LookupOrAddForWriteSpan is [MutableAccessor.LookupOrAdd] as a span.
func (a MutableAccessor) LookupOrAddForWriteSpan(id ID, domain Domain, dataType DataType) SpanWriter {
	return NewSpanWriter(a.LookupOrAdd(id, domain, dataType, InitDefaultValue{}), true)
}

// LookupOrAddForWriteOnlySpan is [MutableAccessor.LookupOrAddForWriteSpan]
// for callers that overwrite every value.
func (a MutableAccessor) LookupOrAddForWriteOnlySpan(id ID, domain Domain, dataType DataType) SpanWriter {
	return NewSpanWriter(a.LookupOrAdd(id, domain, dataType, InitConstruct{}), false)
}

// LookupOrAdd is [MutableAccessor.LookupOrAdd] for values of T.
func LookupOrAdd[T any](a MutableAccessor, id ID, domain Domain, init Init) TypedWriter[T] {
	dt, ok := DataTypeFor[T]()
	if !ok {
		return TypedWriter[T]{}
	}
	w := a.LookupOrAdd(id, domain, dt, init)
	if !w.Valid() {
		return TypedWriter[T]{}
	}
	return WriterAs[T](w)
}
