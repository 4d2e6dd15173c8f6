// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"io"
	"reflect"
	"runtime"
	"slices"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/base/errors"
	"cogentcore.org/geometry/geometry"
	"cogentcore.org/geometry/math32"
	"cogentcore.org/geometry/varray"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// report is the dumped description of a geometry set.
type report struct {
	Bounds     *boundsReport     `yaml:"bounds,omitempty" cbor:"bounds,omitempty"`
	Components []componentReport `yaml:"components" cbor:"components"`
}

type componentReport struct {
	Type string `yaml:"type" cbor:"type"`

	// Domains maps each supported domain to its size.
	Domains map[string]int `yaml:"domains" cbor:"domains"`

	Bounds *boundsReport `yaml:"bounds,omitempty" cbor:"bounds,omitempty"`

	// EvaluatedPoints is the number of evaluated curve points.
	EvaluatedPoints int `yaml:"evaluated_points,omitempty" cbor:"evaluated_points,omitempty"`

	Attributes []attributeReport `yaml:"attributes" cbor:"attributes"`
}

type boundsReport struct {
	Min [3]float32 `yaml:"min,flow" cbor:"min"`
	Max [3]float32 `yaml:"max,flow" cbor:"max"`
}

type attributeReport struct {
	Name   string `yaml:"name" cbor:"name"`
	Domain string `yaml:"domain" cbor:"domain"`
	Type   string `yaml:"type" cbor:"type"`

	// ValuesDomain and ValuesType describe Values when they were
	// adapted or converted.
	ValuesDomain string `yaml:"values_domain,omitempty" cbor:"values_domain,omitempty"`
	ValuesType   string `yaml:"values_type,omitempty" cbor:"values_type,omitempty"`
	Values       []any  `yaml:"values,omitempty" cbor:"values,omitempty"`

	// Error is set when the values could not be read as requested.
	Error string `yaml:"error,omitempty" cbor:"error,omitempty"`
}

// dumpOptions select what is reported.
type dumpOptions struct {
	// All includes attributes hidden from procedural access.
	All bool

	// Components limits the report to these component types.
	Components []string

	// Values includes the values of every attribute.
	Values bool

	// Attribute includes the values of this attribute, read on
	// Domain and as DataType when they are set.
	Attribute string
	Domain    string
	DataType  string
}

// buildReport describes the components of gs.
func buildReport(gs *geometry.GeometrySet, opts dumpOptions) (report, error) {
	var types []geometry.ComponentType
	for _, name := range opts.Components {
		t, err := geometry.ParseComponentType(name)
		if err != nil {
			return report{}, err
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		types = gs.ComponentTypes()
	}
	var domain *attribute.Domain
	if opts.Domain != "" {
		d, err := attribute.ParseDomain(opts.Domain)
		if err != nil {
			return report{}, err
		}
		domain = &d
	}
	var dataType *attribute.DataType
	if opts.DataType != "" {
		dt, err := attribute.ParseDataType(opts.DataType)
		if err != nil {
			return report{}, err
		}
		dataType = &dt
	}

	var r report
	r.Bounds = newBoundsReport(gs.Bounds())
	for _, t := range types {
		c := gs.Component(t)
		if c == nil {
			continue
		}
		cr := componentInfo(gs, c)
		a := c.Attributes()
		gs.AttributeForeach(func(id attribute.ID, meta attribute.MetaData, _ geometry.Component) bool {
			if !opts.All && !attribute.AllowProceduralAccess(id.Name()) {
				return true
			}
			ar := attributeReport{Name: id.Name(), Domain: meta.Domain.String(), Type: meta.DataType.String()}
			if opts.Values || id.Name() == opts.Attribute {
				readValues(a, id, meta, domain, dataType, &ar)
			}
			cr.Attributes = append(cr.Attributes, ar)
			return true
		}, t)
		slices.SortFunc(cr.Attributes, func(x, y attributeReport) int { return cmp.Compare(x.Name, y.Name) })
		r.Components = append(r.Components, cr)
	}
	return r, nil
}

// componentInfo returns the domains and derived data of c.
func componentInfo(gs *geometry.GeometrySet, c geometry.Component) componentReport {
	cr := componentReport{Type: c.Type().String(), Domains: map[string]int{}}
	a := c.Attributes()
	for _, d := range attribute.Domains() {
		if a.DomainSupported(d) {
			cr.Domains[d.String()] = a.DomainSize(d)
		}
	}
	if c.IsEmpty() {
		return cr
	}
	var b math32.Box3
	var ok bool
	switch c.Type() {
	case geometry.ComponentMesh:
		b, ok = gs.Mesh().Bounds()
	case geometry.ComponentCurve:
		b, ok = gs.Curves().Bounds()
		cr.EvaluatedPoints = gs.Curves().EvaluatedPointsNum()
	case geometry.ComponentPointCloud:
		b, ok = gs.PointCloud().Bounds()
	}
	cr.Bounds = newBoundsReport(b, ok)
	return cr
}

func newBoundsReport(b math32.Box3, ok bool) *boundsReport {
	if !ok {
		return nil
	}
	return &boundsReport{
		Min: [3]float32{b.Min.X, b.Min.Y, b.Min.Z},
		Max: [3]float32{b.Max.X, b.Max.Y, b.Max.Z},
	}
}

// readValues fills the values of the attribute, adapted to domain and
// converted to dataType when they are not nil.
func readValues(a attribute.Accessor, id attribute.ID, meta attribute.MetaData, domain *attribute.Domain, dataType *attribute.DataType, ar *attributeReport) {
	d, dt := meta.Domain, meta.DataType
	if domain != nil {
		d = *domain
		ar.ValuesDomain = d.String()
	}
	if dataType != nil {
		dt = *dataType
		ar.ValuesType = dt.String()
	}
	v := a.LookupAs(id, d, dt)
	if !v.Valid() {
		ar.Error = errors.Errorf("cannot read as %s on the %s domain", dt, d).Error()
		return
	}
	ar.Values = valuesOf(v)
}

// valuesOf copies the values of v into Go values of its type.
func valuesOf(v varray.GVArray) []any {
	t := v.Type()
	keep, buf := t.NewBuffer(1)
	rt := t.ReflectType()
	out := make([]any, v.Size())
	for i := range out {
		v.Get(i, buf)
		out[i] = reflect.NewAt(rt, buf).Elem().Interface()
	}
	runtime.KeepAlive(keep)
	return out
}

var cborEncMode = errors.Must1(cbor.CoreDetEncOptions().EncMode())

// encode writes r in the given format, yaml or cbor.
func encode(w io.Writer, format string, r report) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "cbor":
		return cborEncMode.NewEncoder(w).Encode(r)
	}
	return errors.Errorf("unknown format %q, want yaml or cbor", format)
}
