// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instances

import (
	"testing"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/customdata"
	"cogentcore.org/geometry/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddInstances(t *testing.T) {
	in := New()
	a := in.AddReference(Reference{Name: "a"})
	b := in.AddReference(Reference{Name: "b"})
	assert.Equal(t, a, in.AddReference(Reference{Name: "a"}))

	in.AddInstance(a, math32.Translation4(math32.Vec3(1, 0, 0)))
	in.AddInstance(b, math32.Identity4())
	in.AddInstance(a, math32.Identity4())
	assert.Equal(t, 3, in.InstancesNum())
	assert.Equal(t, 3, in.DomainSize(attribute.DomainInstance))
	assert.Equal(t, []int32{0, 1, 0}, in.ReferenceHandles())
	tr := in.Transforms()[0]
	assert.Equal(t, math32.Vec3(1, 0, 0), tr.Translation())

	in.Resize(4)
	assert.Equal(t, math32.Identity4(), in.Transforms()[3])

	in.Resize(2)
	in.RemoveUnusedReferences()
	assert.Len(t, in.References(), 2)
	in.ReferenceHandlesForWrite()[1] = 0
	in.RemoveUnusedReferences()
	assert.Len(t, in.References(), 1)
	assert.Equal(t, []int32{0, 0}, in.ReferenceHandles())
}

func TestAlmostUniqueIDs(t *testing.T) {
	in := New()
	in.Resize(4)
	assert.Equal(t, []int32{0, 1, 2, 3}, in.AlmostUniqueIDs())

	require.True(t, in.InstanceData.CreateLayer(attribute.Named(AttrID), attribute.DataTypeInt32, 4, attribute.InitConstruct{}))
	copy(customdata.GetForWrite[int32](&in.InstanceData, AttrID), []int32{5, 5, 7, 5})
	in.TagIDsChanged()
	ids := in.AlmostUniqueIDs()
	assert.Equal(t, int32(5), ids[0])
	assert.Equal(t, int32(7), ids[2])
	seen := map[int32]bool{}
	for _, id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}

	// generated ids are deterministic
	assert.Equal(t, ids, uniqueIDs([]int32{5, 5, 7, 5}))
}

func TestCopy(t *testing.T) {
	in := New()
	in.AddInstance(in.AddReference(Reference{Name: "a"}), math32.Identity4())
	cp := in.Copy()
	cp.TransformsForWrite()[0] = math32.Translation4(math32.Vec3(0, 1, 0))
	assert.Equal(t, math32.Identity4(), in.Transforms()[0])
	assert.Equal(t, in.References(), cp.References())
}
