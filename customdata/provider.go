// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customdata

import (
	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/varray"
)

// Access locates the layers of one domain in a geometry.
type Access struct {
	// CustomData returns the layers of the domain, or nil if the owner
	// has none.
	CustomData func(owner any) *CustomData

	// Size returns the number of elements in the domain.
	Size func(owner any) int
}

// BuiltinLayer configures a [BuiltinLayerProvider].
type BuiltinLayer struct {
	Name     string
	Domain   attribute.Domain
	DataType attribute.DataType

	// Creatable and Deletable allow adding and removing the layer
	// through an accessor.
	Creatable bool
	Deletable bool

	// ReadOnly rejects lookups for writing.
	ReadOnly bool

	Access Access

	// UpdateOnChange is called with the owner when a writer finishes,
	// to tag caches derived from the layer dirty.
	UpdateOnChange func(owner any)

	Validator attribute.Validator
}

// BuiltinLayerProvider is an [attribute.BuiltinProvider] stored as a
// layer with a fixed name.
type BuiltinLayerProvider struct {
	cfg BuiltinLayer
}

// NewBuiltinLayerProvider returns a provider for the given layer.
func NewBuiltinLayerProvider(cfg BuiltinLayer) *BuiltinLayerProvider {
	return &BuiltinLayerProvider{cfg: cfg}
}

func (p *BuiltinLayerProvider) Name() string                   { return p.cfg.Name }
func (p *BuiltinLayerProvider) Domain() attribute.Domain       { return p.cfg.Domain }
func (p *BuiltinLayerProvider) DataType() attribute.DataType   { return p.cfg.DataType }
func (p *BuiltinLayerProvider) Validator() attribute.Validator { return p.cfg.Validator }

func (p *BuiltinLayerProvider) layer(owner any) *Layer {
	cd := p.cfg.Access.CustomData(owner)
	if cd == nil {
		return nil
	}
	l := cd.Layer(p.cfg.Name)
	if l == nil || l.dataType != p.cfg.DataType {
		return nil
	}
	return l
}

func (p *BuiltinLayerProvider) TryGetForRead(owner any) attribute.Reader {
	l := p.layer(owner)
	if l == nil {
		return attribute.Reader{}
	}
	return attribute.Reader{VArray: varray.ForGSpan(l.Span()), Domain: p.cfg.Domain}
}

func (p *BuiltinLayerProvider) TryGetForWrite(owner any) attribute.Writer {
	if p.cfg.ReadOnly {
		return attribute.Writer{}
	}
	l := p.layer(owner)
	if l == nil {
		return attribute.Writer{}
	}
	var tag func()
	if p.cfg.UpdateOnChange != nil {
		tag = func() { p.cfg.UpdateOnChange(owner) }
	}
	return attribute.NewWriter(p.cfg.Name, varray.ForGMutableSpan(l.MutableSpan()), p.cfg.Domain, tag)
}

func (p *BuiltinLayerProvider) Deletable() bool { return p.cfg.Deletable }

func (p *BuiltinLayerProvider) TryDelete(owner any) bool {
	if !p.cfg.Deletable {
		return false
	}
	cd := p.cfg.Access.CustomData(owner)
	if cd == nil || !cd.Remove(p.cfg.Name) {
		return false
	}
	if p.cfg.UpdateOnChange != nil {
		p.cfg.UpdateOnChange(owner)
	}
	return true
}

func (p *BuiltinLayerProvider) TryCreate(owner any, init attribute.Init) bool {
	cd := p.cfg.Access.CustomData(owner)
	if !p.cfg.Creatable || cd == nil {
		freeMoved(init)
		return false
	}
	if !cd.CreateLayer(attribute.Named(p.cfg.Name), p.cfg.DataType, p.cfg.Access.Size(owner), init) {
		return false
	}
	if p.cfg.UpdateOnChange != nil {
		p.cfg.UpdateOnChange(owner)
	}
	return true
}

func (p *BuiltinLayerProvider) Exists(owner any) bool {
	return p.layer(owner) != nil
}

// DynamicLayerProvider is an [attribute.DynamicProvider] for the
// layers of one domain whose type is in a mask. Builtin names are
// resolved before dynamic providers, so builtin layers stored in the
// same [CustomData] are never reached through it for lookups; the
// builtins set hides them from iteration.
type DynamicLayerProvider struct {
	domain   attribute.Domain
	types    attribute.DataTypeMask
	access   Access
	builtins map[string]bool
}

// NewDynamicLayerProvider returns a provider for the layers of domain
// with a type in types. Layers named in builtins are skipped.
func NewDynamicLayerProvider(domain attribute.Domain, types attribute.DataTypeMask, access Access, builtins ...string) *DynamicLayerProvider {
	p := &DynamicLayerProvider{domain: domain, types: types, access: access, builtins: map[string]bool{}}
	for _, b := range builtins {
		p.builtins[b] = true
	}
	return p
}

func (p *DynamicLayerProvider) layer(owner any, id attribute.ID) *Layer {
	if !id.Valid() || p.builtins[id.Key()] {
		return nil
	}
	cd := p.access.CustomData(owner)
	if cd == nil {
		return nil
	}
	l := cd.Layer(id.Key())
	if l == nil || !p.types.Has(l.dataType) {
		return nil
	}
	return l
}

func (p *DynamicLayerProvider) TryGetForRead(owner any, id attribute.ID) attribute.Reader {
	l := p.layer(owner, id)
	if l == nil {
		return attribute.Reader{}
	}
	return attribute.Reader{VArray: varray.ForGSpan(l.Span()), Domain: p.domain}
}

func (p *DynamicLayerProvider) TryGetForWrite(owner any, id attribute.ID) attribute.Writer {
	l := p.layer(owner, id)
	if l == nil {
		return attribute.Writer{}
	}
	return attribute.NewWriter(id.Key(), varray.ForGMutableSpan(l.MutableSpan()), p.domain, nil)
}

func (p *DynamicLayerProvider) TryDelete(owner any, id attribute.ID) bool {
	if p.layer(owner, id) == nil {
		return false
	}
	return p.access.CustomData(owner).Remove(id.Key())
}

func (p *DynamicLayerProvider) TryCreate(owner any, id attribute.ID, domain attribute.Domain, dataType attribute.DataType, init attribute.Init) bool {
	cd := p.access.CustomData(owner)
	if domain != p.domain || !p.types.Has(dataType) || cd == nil || p.builtins[id.Key()] {
		freeMoved(init)
		return false
	}
	return cd.CreateLayer(id, dataType, p.access.Size(owner), init)
}

func (p *DynamicLayerProvider) ForeachAttribute(owner any, fn func(id attribute.ID, meta attribute.MetaData) bool) bool {
	cd := p.access.CustomData(owner)
	if cd == nil {
		return true
	}
	for _, l := range cd.Layers() {
		if p.builtins[l.name] || !p.types.Has(l.dataType) {
			continue
		}
		if !fn(l.ID(), attribute.MetaData{Domain: p.domain, DataType: l.dataType}) {
			return false
		}
	}
	return true
}

func (p *DynamicLayerProvider) ForeachDomain(fn func(domain attribute.Domain)) {
	fn(p.domain)
}

func freeMoved(init attribute.Init) {
	if m, ok := init.(attribute.InitMoveArray); ok && m.Array != nil {
		m.Array.Free()
	}
}
