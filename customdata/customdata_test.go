// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customdata

import (
	"testing"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/math32"
	"cogentcore.org/geometry/varray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLayer(t *testing.T) {
	var cd CustomData
	assert.True(t, cd.CreateLayer(attribute.Named("a"), attribute.DataTypeFloat, 3, attribute.InitConstruct{}))
	assert.Equal(t, []float32{0, 0, 0}, Get[float32](&cd, "a"))
	assert.False(t, cd.CreateLayer(attribute.Named("a"), attribute.DataTypeFloat, 3, attribute.InitConstruct{}))

	src := varray.FromVArray(varray.ForSpan([]int32{4, 5, 6}))
	assert.True(t, cd.CreateLayer(attribute.Named("b"), attribute.DataTypeInt32, 3, attribute.InitVArray{VArray: src}))
	assert.Equal(t, []int32{4, 5, 6}, Get[int32](&cd, "b"))

	assert.True(t, cd.CreateLayer(attribute.Named("rot"), attribute.DataTypeQuaternion, 2, attribute.InitDefaultValue{}))
	assert.Equal(t, []math32.Quat{math32.QuatIdentity(), math32.QuatIdentity()}, Get[math32.Quat](&cd, "rot"))

	assert.Nil(t, Get[float32](&cd, "b"))
	assert.Nil(t, Get[float32](&cd, "missing"))
	assert.Equal(t, []string{"a", "b", "rot"}, cd.layers.Keys)
}

func TestCreateLayerMoveArray(t *testing.T) {
	var cd CustomData
	arr := generic.ArrayOf([]float32{1, 2})
	require.True(t, cd.CreateLayer(attribute.Named("a"), attribute.DataTypeFloat, 2, attribute.InitMoveArray{Array: arr}))
	assert.Equal(t, 0, arr.Size())
	assert.Equal(t, []float32{1, 2}, Get[float32](&cd, "a"))

	// wrong size: the array is freed
	arr = generic.ArrayOf([]float32{1, 2, 3})
	assert.False(t, cd.CreateLayer(attribute.Named("b"), attribute.DataTypeFloat, 2, attribute.InitMoveArray{Array: arr}))
	assert.Equal(t, 0, arr.Size())
	assert.False(t, cd.Has("b"))
}

func TestImplicitSharing(t *testing.T) {
	var cd CustomData
	require.True(t, cd.CreateLayer(attribute.Named("a"), attribute.DataTypeFloat, 3, attribute.InitConstruct{}))
	GetForWrite[float32](&cd, "a")[1] = 5

	cp := cd.Copy()
	assert.True(t, cd.Layer("a").IsShared())
	assert.True(t, cp.Layer("a").IsShared())

	w := GetForWrite[float32](cp, "a")
	w[0] = 7
	assert.False(t, cp.Layer("a").IsShared())
	assert.False(t, cd.Layer("a").IsShared())
	assert.Equal(t, []float32{0, 5, 0}, Get[float32](&cd, "a"))
	assert.Equal(t, []float32{7, 5, 0}, Get[float32](cp, "a"))

	cp2 := cd.Copy()
	assert.True(t, cp2.Remove("a"))
	assert.False(t, cd.Layer("a").IsShared())
	assert.False(t, cp2.Remove("a"))
}

func TestAnonymousLayer(t *testing.T) {
	var cd CustomData
	anon := attribute.NewAnonymousID("tmp")
	id := attribute.Anonymous(anon)
	require.True(t, cd.CreateLayer(id, attribute.DataTypeBool, 2, attribute.InitConstruct{}))
	l := cd.Layer(id.Key())
	require.NotNil(t, l)
	assert.True(t, l.ID().IsAnonymous())
	assert.True(t, l.ID().Equal(id))
	assert.Same(t, anon, l.ID().AnonymousID())

	cd.Clear()
	assert.Equal(t, 0, cd.Len())
}

// owner is a geometry with one point domain.
type owner struct {
	size     int
	points   CustomData
	modified int
}

func testFunctions() *attribute.AccessorFunctions {
	access := Access{
		CustomData: func(o any) *CustomData { return &o.(*owner).points },
		Size:       func(o any) int { return o.(*owner).size },
	}
	builtins := []attribute.BuiltinProvider{
		NewBuiltinLayerProvider(BuiltinLayer{
			Name: "position", Domain: attribute.DomainPoint, DataType: attribute.DataTypeFloat3,
			Creatable: true, Access: access,
			UpdateOnChange: func(o any) { o.(*owner).modified++ },
		}),
		NewBuiltinLayerProvider(BuiltinLayer{
			Name: ".id", Domain: attribute.DomainPoint, DataType: attribute.DataTypeInt32,
			Creatable: true, Deletable: true, ReadOnly: true, Access: access,
		}),
	}
	dynamic := []attribute.DynamicProvider{
		NewDynamicLayerProvider(attribute.DomainPoint, attribute.AllDataTypes, access, "position", ".id"),
	}
	p := attribute.NewComponentProviders(builtins, dynamic)
	return attribute.FunctionsForProviders(p, func(o any, d attribute.Domain) int { return o.(*owner).size }, nil)
}

func TestProvidersRoundTrip(t *testing.T) {
	fn := testFunctions()
	o := &owner{size: 3}
	tr := &attribute.WriterTracker{}
	a := attribute.NewMutableAccessor(o, fn).WithTracker(tr)

	require.True(t, a.Add(attribute.Named("position"), attribute.DomainPoint, attribute.DataTypeFloat3, attribute.InitConstruct{}))
	w := attribute.LookupForWrite[math32.Vector3](a, attribute.Named("position"))
	require.True(t, w.Valid())
	w.VArray.Set(1, math32.Vec3(1, 2, 3))
	w.Finish()
	assert.Equal(t, 2, o.modified) // create and finish
	assert.Equal(t, math32.Vec3(1, 2, 3), attribute.Lookup[math32.Vector3](a.Accessor, attribute.Named("position"), attribute.DomainPoint).Get(1))

	// a builtin name with the wrong type is rejected
	assert.False(t, a.Add(attribute.Named("position"), attribute.DomainPoint, attribute.DataTypeFloat, attribute.InitConstruct{}))

	weights := []float32{0.5, 1, 1.5}
	require.True(t, a.Add(attribute.Named("weight"), attribute.DomainPoint, attribute.DataTypeFloat,
		attribute.InitVArray{VArray: varray.FromVArray(varray.ForSpan(weights))}))
	got := attribute.Lookup[float32](a.Accessor, attribute.Named("weight"), attribute.DomainPoint)
	assert.Equal(t, weights, got.ToSlice())

	require.True(t, a.Add(attribute.Named(".id"), attribute.DomainPoint, attribute.DataTypeInt32, attribute.InitDefaultValue{}))
	assert.False(t, a.LookupForWrite(attribute.Named(".id")).Valid())
	assert.True(t, a.Lookup(attribute.Named(".id")).Valid())

	var names []string
	a.ForAll(func(id attribute.ID, meta attribute.MetaData) bool {
		names = append(names, id.Name())
		return true
	})
	assert.ElementsMatch(t, []string{"position", ".id", "weight"}, names)

	assert.False(t, a.Remove(attribute.Named("position")))
	assert.True(t, a.Remove(attribute.Named(".id")))
	assert.True(t, a.Remove(attribute.Named("weight")))
	assert.False(t, a.Contains(attribute.Named("weight")))
	assert.Equal(t, 0, tr.Open())
}

func TestDynamicProviderTypeMask(t *testing.T) {
	access := Access{
		CustomData: func(o any) *CustomData { return &o.(*owner).points },
		Size:       func(o any) int { return o.(*owner).size },
	}
	p := NewDynamicLayerProvider(attribute.DomainPoint, attribute.MaskOf(attribute.DataTypeFloat), access)
	o := &owner{size: 2}
	assert.True(t, p.TryCreate(o, attribute.Named("f"), attribute.DomainPoint, attribute.DataTypeFloat, attribute.InitConstruct{}))
	assert.False(t, p.TryCreate(o, attribute.Named("i"), attribute.DomainPoint, attribute.DataTypeInt32, attribute.InitConstruct{}))
	assert.False(t, p.TryCreate(o, attribute.Named("e"), attribute.DomainEdge, attribute.DataTypeFloat, attribute.InitConstruct{}))

	o.points.CreateLayer(attribute.Named("i"), attribute.DataTypeInt32, 2, attribute.InitConstruct{})
	assert.False(t, p.TryGetForRead(o, attribute.Named("i")).Valid())

	n := 0
	p.ForeachAttribute(o, func(id attribute.ID, meta attribute.MetaData) bool {
		n++
		return true
	})
	assert.Equal(t, 1, n)
}
