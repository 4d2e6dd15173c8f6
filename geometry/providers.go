// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"sync"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/customdata"
	"cogentcore.org/geometry/instances"
	"cogentcore.org/geometry/mesh"
	"cogentcore.org/geometry/pointcloud"
	"cogentcore.org/geometry/varray"
	"golang.org/x/exp/constraints"
)

// domainData is implemented by the geometry types storing attributes
// in custom data layers.
type domainData interface {
	DomainSize(domain attribute.Domain) int
	CustomData(domain attribute.Domain) *customdata.CustomData
}

// access returns the layer access of one domain of geometry type P,
// for which a nil owner has no layers.
func access[P interface {
	comparable
	domainData
}](domain attribute.Domain) customdata.Access {
	var zero P
	return customdata.Access{
		CustomData: func(owner any) *customdata.CustomData {
			p, _ := owner.(P)
			if p == zero {
				return nil
			}
			return p.CustomData(domain)
		},
		Size: func(owner any) int {
			p, _ := owner.(P)
			if p == zero {
				return 0
			}
			return p.DomainSize(domain)
		},
	}
}

func domainSize[P interface {
	comparable
	domainData
}](owner any, domain attribute.Domain) int {
	var zero P
	p, _ := owner.(P)
	if p == zero {
		return 0
	}
	return p.DomainSize(domain)
}

// clampValidator returns a validator limiting integer values to [lo, hi].
func clampValidator[T constraints.Signed](lo, hi T) attribute.Validator {
	return func(v varray.GVArray) varray.GVArray {
		typed := varray.Typed[T](v)
		return varray.FromVArray(varray.ForFunc(typed.Size(), func(i int) T {
			return min(max(typed.Get(i), lo), hi)
		}))
	}
}

const maxInt32 = 1<<31 - 1

// builtin is a shorthand for a builtin layer provider.
func builtin(cfg customdata.BuiltinLayer) attribute.BuiltinProvider {
	return customdata.NewBuiltinLayerProvider(cfg)
}

func layerProviders[P interface {
	comparable
	domainData
}](builtins []attribute.BuiltinProvider, domains ...attribute.Domain) *attribute.ComponentProviders {
	var dynamic []attribute.DynamicProvider
	for _, d := range domains {
		var names []string
		for _, b := range builtins {
			if b.Domain() == d {
				names = append(names, b.Name())
			}
		}
		dynamic = append(dynamic, customdata.NewDynamicLayerProvider(d, attribute.AllDataTypes, access[P](d), names...))
	}
	return attribute.NewComponentProviders(builtins, dynamic)
}

func meshProviders() *attribute.ComponentProviders {
	point := access[*mesh.Mesh](attribute.DomainPoint)
	edge := access[*mesh.Mesh](attribute.DomainEdge)
	face := access[*mesh.Mesh](attribute.DomainFace)
	corner := access[*mesh.Mesh](attribute.DomainCorner)
	positionsChanged := func(owner any) { owner.(*mesh.Mesh).TagPositionsChanged() }
	topologyChanged := func(owner any) { owner.(*mesh.Mesh).TagTopologyChanged() }
	return layerProviders[*mesh.Mesh]([]attribute.BuiltinProvider{
		builtin(customdata.BuiltinLayer{Name: mesh.AttrPosition, Domain: attribute.DomainPoint, DataType: attribute.DataTypeFloat3,
			Access: point, UpdateOnChange: positionsChanged}),
		builtin(customdata.BuiltinLayer{Name: mesh.AttrEdgeVerts, Domain: attribute.DomainEdge, DataType: attribute.DataTypeInt2,
			Access: edge, UpdateOnChange: topologyChanged}),
		builtin(customdata.BuiltinLayer{Name: mesh.AttrCornerVert, Domain: attribute.DomainCorner, DataType: attribute.DataTypeInt32,
			Access: corner, UpdateOnChange: topologyChanged}),
		builtin(customdata.BuiltinLayer{Name: mesh.AttrCornerEdge, Domain: attribute.DomainCorner, DataType: attribute.DataTypeInt32,
			Access: corner, UpdateOnChange: topologyChanged}),
		builtin(customdata.BuiltinLayer{Name: mesh.AttrMaterialIndex, Domain: attribute.DomainFace, DataType: attribute.DataTypeInt32,
			Creatable: true, Deletable: true, Access: face, Validator: clampValidator[int32](0, maxInt32)}),
		builtin(customdata.BuiltinLayer{Name: mesh.AttrSharpFace, Domain: attribute.DomainFace, DataType: attribute.DataTypeBool,
			Creatable: true, Deletable: true, Access: face}),
		builtin(customdata.BuiltinLayer{Name: mesh.AttrSharpEdge, Domain: attribute.DomainEdge, DataType: attribute.DataTypeBool,
			Creatable: true, Deletable: true, Access: edge}),
		builtin(customdata.BuiltinLayer{Name: mesh.AttrID, Domain: attribute.DomainPoint, DataType: attribute.DataTypeInt32,
			Creatable: true, Deletable: true, Access: point}),
	}, attribute.DomainPoint, attribute.DomainEdge, attribute.DomainFace, attribute.DomainCorner)
}

func curveProviders() *attribute.ComponentProviders {
	point := access[*curves.Curves](attribute.DomainPoint)
	curve := access[*curves.Curves](attribute.DomainCurve)
	positionsChanged := func(owner any) { owner.(*curves.Curves).TagPositionsChanged() }
	topologyChanged := func(owner any) { owner.(*curves.Curves).TagTopologyChanged() }
	pointAttr := func(name string, dt attribute.DataType, update func(any)) attribute.BuiltinProvider {
		return builtin(customdata.BuiltinLayer{Name: name, Domain: attribute.DomainPoint, DataType: dt,
			Creatable: true, Deletable: true, Access: point, UpdateOnChange: update})
	}
	curveAttr := func(name string, dt attribute.DataType, validator attribute.Validator) attribute.BuiltinProvider {
		return builtin(customdata.BuiltinLayer{Name: name, Domain: attribute.DomainCurve, DataType: dt,
			Creatable: true, Deletable: true, Access: curve, UpdateOnChange: topologyChanged, Validator: validator})
	}
	return layerProviders[*curves.Curves]([]attribute.BuiltinProvider{
		builtin(customdata.BuiltinLayer{Name: curves.AttrPosition, Domain: attribute.DomainPoint, DataType: attribute.DataTypeFloat3,
			Access: point, UpdateOnChange: positionsChanged}),
		pointAttr(curves.AttrRadius, attribute.DataTypeFloat, nil),
		pointAttr(curves.AttrTilt, attribute.DataTypeFloat, nil),
		pointAttr(curves.AttrHandleLeft, attribute.DataTypeFloat3, positionsChanged),
		pointAttr(curves.AttrHandleRight, attribute.DataTypeFloat3, positionsChanged),
		pointAttr(curves.AttrNurbsWeight, attribute.DataTypeFloat, positionsChanged),
		pointAttr(curves.AttrID, attribute.DataTypeInt32, nil),
		curveAttr(curves.AttrCurveType, attribute.DataTypeInt8, clampValidator(int8(0), int8(curves.CurveTypeN-1))),
		curveAttr(curves.AttrNurbsOrder, attribute.DataTypeInt8, clampValidator[int8](1, 127)),
		curveAttr(curves.AttrKnotsMode, attribute.DataTypeInt8, clampValidator(int8(0), int8(curves.KnotsModeN-1))),
		curveAttr(curves.AttrResolution, attribute.DataTypeInt32, clampValidator[int32](1, maxInt32)),
		curveAttr(curves.AttrCyclic, attribute.DataTypeBool, nil),
	}, attribute.DomainPoint, attribute.DomainCurve)
}

func pointCloudProviders() *attribute.ComponentProviders {
	point := access[*pointcloud.PointCloud](attribute.DomainPoint)
	positionsChanged := func(owner any) { owner.(*pointcloud.PointCloud).TagPositionsChanged() }
	return layerProviders[*pointcloud.PointCloud]([]attribute.BuiltinProvider{
		builtin(customdata.BuiltinLayer{Name: pointcloud.AttrPosition, Domain: attribute.DomainPoint, DataType: attribute.DataTypeFloat3,
			Access: point, UpdateOnChange: positionsChanged}),
		builtin(customdata.BuiltinLayer{Name: pointcloud.AttrRadius, Domain: attribute.DomainPoint, DataType: attribute.DataTypeFloat,
			Creatable: true, Deletable: true, Access: point, UpdateOnChange: positionsChanged}),
		builtin(customdata.BuiltinLayer{Name: pointcloud.AttrID, Domain: attribute.DomainPoint, DataType: attribute.DataTypeInt32,
			Creatable: true, Deletable: true, Access: point}),
	}, attribute.DomainPoint)
}

func instancesProviders() *attribute.ComponentProviders {
	inst := access[*instances.Instances](attribute.DomainInstance)
	idsChanged := func(owner any) { owner.(*instances.Instances).TagIDsChanged() }
	return layerProviders[*instances.Instances]([]attribute.BuiltinProvider{
		builtin(customdata.BuiltinLayer{Name: instances.AttrReferenceIndex, Domain: attribute.DomainInstance, DataType: attribute.DataTypeInt32,
			Access: inst}),
		builtin(customdata.BuiltinLayer{Name: instances.AttrTransform, Domain: attribute.DomainInstance, DataType: attribute.DataTypeFloat4x4,
			Access: inst}),
		builtin(customdata.BuiltinLayer{Name: instances.AttrID, Domain: attribute.DomainInstance, DataType: attribute.DataTypeInt32,
			Creatable: true, Deletable: true, Access: inst, UpdateOnChange: idsChanged}),
	}, attribute.DomainInstance)
}

// The function tables of each component type, shared by all accessors.
var (
	meshFunctions = sync.OnceValue(func() *attribute.AccessorFunctions {
		return attribute.FunctionsForProviders(meshProviders(), domainSize[*mesh.Mesh],
			func(owner any, v varray.GVArray, from, to attribute.Domain) varray.GVArray {
				m, _ := owner.(*mesh.Mesh)
				return AdaptMeshDomain(m, v, from, to)
			})
	})
	curveFunctions = sync.OnceValue(func() *attribute.AccessorFunctions {
		return attribute.FunctionsForProviders(curveProviders(), domainSize[*curves.Curves],
			func(owner any, v varray.GVArray, from, to attribute.Domain) varray.GVArray {
				c, _ := owner.(*curves.Curves)
				return AdaptCurveDomain(c, v, from, to)
			})
	})
	pointCloudFunctions = sync.OnceValue(func() *attribute.AccessorFunctions {
		return attribute.FunctionsForProviders(pointCloudProviders(), domainSize[*pointcloud.PointCloud], nil)
	})
	instancesFunctions = sync.OnceValue(func() *attribute.AccessorFunctions {
		return attribute.FunctionsForProviders(instancesProviders(), domainSize[*instances.Instances], nil)
	})
)
