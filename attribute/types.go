// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attribute defines attribute identifiers, domains and data
// types, readers and writers, and the provider framework that maps
// attribute identifiers to virtual arrays over the storage of a
// geometry component.
package attribute

import (
	"fmt"
	"strings"

	"cogentcore.org/geometry/gtype"
	"cogentcore.org/geometry/math32"
)

// Domain is the kind of geometry element an attribute stores one
// value for.
type Domain int32

const (
	DomainPoint Domain = iota
	DomainEdge
	DomainFace
	DomainCorner
	DomainCurve
	DomainInstance

	// DomainN is the number of domains.
	DomainN
)

var domainNames = [DomainN]string{"point", "edge", "face", "corner", "curve", "instance"}

func (d Domain) String() string {
	if d < 0 || d >= DomainN {
		return fmt.Sprintf("Domain(%d)", int32(d))
	}
	return domainNames[d]
}

// ParseDomain returns the domain with the given name.
func ParseDomain(s string) (Domain, error) {
	for d, n := range domainNames {
		if strings.EqualFold(n, s) {
			return Domain(d), nil
		}
	}
	return DomainPoint, fmt.Errorf("attribute: unknown domain %q", s)
}

// Domains returns all domains in order.
func Domains() []Domain {
	out := make([]Domain, DomainN)
	for i := range out {
		out[i] = Domain(i)
	}
	return out
}

func domainPriority(d Domain) int {
	switch d {
	case DomainInstance:
		return 0
	case DomainCurve:
		return 1
	case DomainFace:
		return 2
	case DomainEdge:
		return 3
	case DomainPoint:
		return 4
	case DomainCorner:
		return 5
	}
	return -1
}

// DomainHighestPriority returns the domain that can hold the values
// of all given domains with the least loss, used when joining
// attributes stored on different domains. Corners have the highest
// priority, instances the lowest. An empty list gives DomainPoint.
func DomainHighestPriority(domains []Domain) Domain {
	best, bestPriority := DomainPoint, -1
	for _, d := range domains {
		if p := domainPriority(d); p > bestPriority {
			best, bestPriority = d, p
		}
	}
	return best
}

// DataType is the value type of an attribute.
type DataType int32

const (
	DataTypeFloat DataType = iota
	DataTypeFloat2
	DataTypeFloat3
	DataTypeInt32
	DataTypeInt2
	DataTypeInt8
	DataTypeBool
	DataTypeColorFloat
	DataTypeColorByte
	DataTypeQuaternion
	DataTypeFloat4x4
	DataTypeString

	// DataTypeN is the number of data types.
	DataTypeN
)

var dataTypeNames = [DataTypeN]string{
	"float", "float2", "float3", "int", "int2", "int8", "bool",
	"color", "byte_color", "quaternion", "float4x4", "string",
}

func (t DataType) String() string {
	if t < 0 || t >= DataTypeN {
		return fmt.Sprintf("DataType(%d)", int32(t))
	}
	return dataTypeNames[t]
}

// ParseDataType returns the data type with the given name.
func ParseDataType(s string) (DataType, error) {
	for t, n := range dataTypeNames {
		if strings.EqualFold(n, s) {
			return DataType(t), nil
		}
	}
	return DataTypeFloat, fmt.Errorf("attribute: unknown data type %q", s)
}

// Type returns the value type descriptor.
func (t DataType) Type() *gtype.Type {
	switch t {
	case DataTypeFloat:
		return gtype.Of[float32]()
	case DataTypeFloat2:
		return gtype.Of[math32.Vector2]()
	case DataTypeFloat3:
		return gtype.Of[math32.Vector3]()
	case DataTypeInt32:
		return gtype.Of[int32]()
	case DataTypeInt2:
		return gtype.Of[math32.Int2]()
	case DataTypeInt8:
		return gtype.Of[int8]()
	case DataTypeBool:
		return gtype.Of[bool]()
	case DataTypeColorFloat:
		return gtype.Of[math32.Color]()
	case DataTypeColorByte:
		return gtype.Of[math32.ColorB]()
	case DataTypeQuaternion:
		return gtype.Of[math32.Quat]()
	case DataTypeFloat4x4:
		return gtype.Of[math32.Matrix4]()
	case DataTypeString:
		return gtype.Of[string]()
	}
	return nil
}

// DataTypeOf returns the data type storing values of t.
func DataTypeOf(t *gtype.Type) (DataType, bool) {
	for dt := range DataTypeN {
		if dt.Type() == t {
			return dt, true
		}
	}
	return DataTypeFloat, false
}

// DataTypeFor returns the data type storing values of T.
func DataTypeFor[T any]() (DataType, bool) {
	return DataTypeOf(gtype.Of[T]())
}

func dataTypeComplexity(t DataType) int {
	switch t {
	case DataTypeBool:
		return 0
	case DataTypeInt8:
		return 1
	case DataTypeInt2:
		return 2
	case DataTypeInt32:
		return 3
	case DataTypeFloat:
		return 4
	case DataTypeFloat2:
		return 5
	case DataTypeFloat3:
		return 6
	case DataTypeColorByte:
		return 7
	case DataTypeQuaternion:
		return 8
	case DataTypeColorFloat:
		return 9
	case DataTypeFloat4x4:
		return 10
	}
	return -1
}

// DataTypeHighestComplexity returns the type that can represent the
// values of all given types with the least loss. An empty list, or
// one of only strings, gives DataTypeBool.
func DataTypeHighestComplexity(types []DataType) DataType {
	best, bestComplexity := DataTypeBool, -1
	for _, t := range types {
		if c := dataTypeComplexity(t); c > bestComplexity {
			best, bestComplexity = t, c
		}
	}
	return best
}

// DataTypeMask is a set of data types.
type DataTypeMask uint32

// MaskOf returns the set of the given types.
func MaskOf(types ...DataType) DataTypeMask {
	var m DataTypeMask
	for _, t := range types {
		m |= 1 << t
	}
	return m
}

// AllDataTypes contains every data type.
const AllDataTypes DataTypeMask = 1<<DataTypeN - 1

// Has returns whether t is in the set.
func (m DataTypeMask) Has(t DataType) bool {
	return m&(1<<t) != 0
}

// MetaData is the storage description of an attribute.
type MetaData struct {
	Domain   Domain
	DataType DataType
}

func (m MetaData) String() string {
	return m.DataType.String() + " on " + m.Domain.String()
}
