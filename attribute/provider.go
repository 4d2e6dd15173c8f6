// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"slices"

	"cogentcore.org/geometry/varray"
)

// Validator corrects attribute values, for example clamping indexes
// to a valid range. It returns a virtual array with corrected values.
type Validator func(v varray.GVArray) varray.GVArray

// BuiltinProvider gives access to one attribute with a fixed name,
// domain and type, usually stored in a dedicated field of the
// geometry instead of a generic layer. owner is the geometry.
type BuiltinProvider interface {
	Name() string
	Domain() Domain
	DataType() DataType

	// TryGetForRead returns an invalid [Reader] if the attribute does not exist.
	TryGetForRead(owner any) Reader

	// TryGetForWrite returns an invalid [Writer] if the attribute does
	// not exist or is not writable.
	TryGetForWrite(owner any) Writer

	TryDelete(owner any) bool
	TryCreate(owner any, init Init) bool

	// Deletable returns false for attributes the geometry cannot exist
	// without, which are then required.
	Deletable() bool
	Exists(owner any) bool

	// Validator returns nil if values need no validation.
	Validator() Validator
}

// DynamicProvider gives access to an open set of attributes, usually
// stored in generic layers.
type DynamicProvider interface {
	TryGetForRead(owner any, id ID) Reader
	TryGetForWrite(owner any, id ID) Writer
	TryDelete(owner any, id ID) bool

	// TryCreate returns false if the attribute exists, or the domain
	// or data type is not supported.
	TryCreate(owner any, id ID, domain Domain, dataType DataType, init Init) bool

	// ForeachAttribute calls fn for every attribute until fn returns
	// false, in which case it returns false.
	ForeachAttribute(owner any, fn func(id ID, meta MetaData) bool) bool

	// ForeachDomain calls fn for every domain the provider can store.
	ForeachDomain(fn func(domain Domain))
}

// ComponentProviders is the set of providers of one geometry
// component type. Builtin providers are looked up by name first, so
// their names are reserved; dynamic providers are consulted in order.
// It is immutable after construction and safe for concurrent use.
type ComponentProviders struct {
	builtin map[string]BuiltinProvider
	order   []BuiltinProvider
	dynamic []DynamicProvider
	domains []Domain
}

// NewComponentProviders returns the providers of a component type.
func NewComponentProviders(builtins []BuiltinProvider, dynamics []DynamicProvider) *ComponentProviders {
	p := &ComponentProviders{
		builtin: make(map[string]BuiltinProvider, len(builtins)),
		order:   builtins,
		dynamic: dynamics,
	}
	addDomain := func(d Domain) {
		if !slices.Contains(p.domains, d) {
			p.domains = append(p.domains, d)
		}
	}
	for _, b := range builtins {
		p.builtin[b.Name()] = b
		addDomain(b.Domain())
	}
	for _, d := range dynamics {
		d.ForeachDomain(addDomain)
	}
	slices.Sort(p.domains)
	return p
}

// Builtin returns the builtin provider with the given name, or nil.
func (p *ComponentProviders) Builtin(name string) BuiltinProvider {
	return p.builtin[name]
}

// Builtins returns the builtin providers in registration order.
func (p *ComponentProviders) Builtins() []BuiltinProvider { return p.order }

// Dynamic returns the dynamic providers in lookup order.
func (p *ComponentProviders) Dynamic() []DynamicProvider { return p.dynamic }

// SupportedDomains returns the domains of all providers, sorted.
func (p *ComponentProviders) SupportedDomains() []Domain { return p.domains }

// builtinFor returns the builtin provider that owns id.
func (p *ComponentProviders) builtinFor(id ID) BuiltinProvider {
	if id.IsAnonymous() {
		return nil
	}
	return p.builtin[id.Name()]
}

// Lookup returns the attribute for reading.
func (p *ComponentProviders) Lookup(owner any, id ID) Reader {
	if b := p.builtinFor(id); b != nil {
		return b.TryGetForRead(owner)
	}
	for _, d := range p.dynamic {
		if r := d.TryGetForRead(owner, id); r.Valid() {
			return r
		}
	}
	return Reader{}
}

// LookupForWrite returns the attribute for writing.
func (p *ComponentProviders) LookupForWrite(owner any, id ID) Writer {
	if b := p.builtinFor(id); b != nil {
		return b.TryGetForWrite(owner)
	}
	for _, d := range p.dynamic {
		if w := d.TryGetForWrite(owner, id); w.Valid() {
			return w
		}
	}
	return Writer{}
}

// LookupMetaData returns the storage description of the attribute.
func (p *ComponentProviders) LookupMetaData(owner any, id ID) (MetaData, bool) {
	if b := p.builtinFor(id); b != nil {
		if !b.Exists(owner) {
			return MetaData{}, false
		}
		return MetaData{Domain: b.Domain(), DataType: b.DataType()}, true
	}
	var meta MetaData
	found := false
	for _, d := range p.dynamic {
		d.ForeachAttribute(owner, func(other ID, m MetaData) bool {
			if other.Key() == id.Key() {
				meta, found = m, true
				return false
			}
			return true
		})
		if found {
			break
		}
	}
	return meta, found
}

// Contains returns whether the attribute exists.
func (p *ComponentProviders) Contains(owner any, id ID) bool {
	_, ok := p.LookupMetaData(owner, id)
	return ok
}

// LookupValidator returns the validator of a builtin attribute, or nil.
func (p *ComponentProviders) LookupValidator(id ID) Validator {
	if b := p.builtinFor(id); b != nil {
		return b.Validator()
	}
	return nil
}

// ForAll calls fn for every existing attribute, each once, until fn
// returns false, in which case it returns false. Dynamic attributes
// shadowed by builtin names are not reported.
func (p *ComponentProviders) ForAll(owner any, fn func(id ID, meta MetaData) bool) bool {
	handled := make(map[string]struct{})
	for _, b := range p.order {
		if !b.Exists(owner) {
			continue
		}
		handled[b.Name()] = struct{}{}
		if !fn(Named(b.Name()), MetaData{Domain: b.Domain(), DataType: b.DataType()}) {
			return false
		}
	}
	for _, d := range p.dynamic {
		ok := d.ForeachAttribute(owner, func(id ID, meta MetaData) bool {
			if _, seen := handled[id.Key()]; seen {
				return true
			}
			handled[id.Key()] = struct{}{}
			return fn(id, meta)
		})
		if !ok {
			return false
		}
	}
	return true
}

// IsRequired returns whether id names a builtin attribute that cannot
// be removed or renamed.
func (p *ComponentProviders) IsRequired(id ID) bool {
	b := p.builtinFor(id)
	return b != nil && !b.Deletable()
}

// Remove deletes the attribute, returning whether anything was deleted.
// A builtin name only removes the builtin attribute.
func (p *ComponentProviders) Remove(owner any, id ID) bool {
	if b := p.builtinFor(id); b != nil {
		return b.TryDelete(owner)
	}
	removed := false
	for _, d := range p.dynamic {
		removed = d.TryDelete(owner, id) || removed
	}
	return removed
}

// Add creates the attribute, returning false if it already exists or
// no provider can store it. For [InitMoveArray] the array is freed
// when false is returned.
func (p *ComponentProviders) Add(owner any, id ID, domain Domain, dataType DataType, init Init) bool {
	if p.Contains(owner, id) {
		freeMoved(init)
		return false
	}
	if b := p.builtinFor(id); b != nil {
		if domain != b.Domain() || dataType != b.DataType() {
			freeMoved(init)
			return false
		}
		return b.TryCreate(owner, init)
	}
	for _, d := range p.dynamic {
		if d.TryCreate(owner, id, domain, dataType, init) {
			return true
		}
	}
	freeMoved(init)
	return false
}

// freeMoved frees the array of an unused [InitMoveArray].
func freeMoved(init Init) {
	if m, ok := init.(InitMoveArray); ok && m.Array != nil {
		m.Array.Free()
	}
}
