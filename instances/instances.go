// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package instances provides transformed instances of referenced
// geometry, with attributes on the instance domain.
package instances

import (
	"encoding/binary"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/base/cachemutex"
	"cogentcore.org/geometry/base/slicesx"
	"cogentcore.org/geometry/customdata"
	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/math32"
	"github.com/zeebo/blake3"
)

const (
	AttrReferenceIndex = ".reference_index"
	AttrTransform      = "instance_transform"
	AttrID             = "id"
)

// Reference is the data an instance refers to. Data is usually a
// geometry set; references compare equal when Data is the same value,
// so Data must be comparable.
type Reference struct {
	Name string
	Data any
}

// Instances is a set of instances of references.
type Instances struct {
	references   []Reference
	instancesNum int

	InstanceData customdata.CustomData

	almostUniqueIDs *cachemutex.Cache[[]int32]
}

// New returns instances with no instances and no references.
func New() *Instances {
	in := &Instances{almostUniqueIDs: &cachemutex.Cache[[]int32]{}}
	in.InstanceData.CreateLayer(attribute.Named(AttrReferenceIndex), attribute.DataTypeInt32, 0, attribute.InitConstruct{})
	in.InstanceData.CreateLayer(attribute.Named(AttrTransform), attribute.DataTypeFloat4x4, 0, attribute.InitConstruct{})
	return in
}

func (in *Instances) InstancesNum() int { return in.instancesNum }

func (in *Instances) IsEmpty() bool { return in == nil || in.instancesNum == 0 }

// DomainSize returns the number of instances for the instance domain
// and 0 otherwise.
func (in *Instances) DomainSize(domain attribute.Domain) int {
	if domain == attribute.DomainInstance {
		return in.instancesNum
	}
	return 0
}

// CustomData returns the instance layers for the instance domain, or nil.
func (in *Instances) CustomData(domain attribute.Domain) *customdata.CustomData {
	if domain == attribute.DomainInstance {
		return &in.InstanceData
	}
	return nil
}

func (in *Instances) References() []Reference { return in.references }

// AddReference returns the index of ref, adding it if no equal
// reference exists.
func (in *Instances) AddReference(ref Reference) int {
	for i, r := range in.references {
		if r == ref {
			return i
		}
	}
	in.references = append(in.references, ref)
	return len(in.references) - 1
}

func (in *Instances) ReferenceHandles() []int32 {
	return customdata.Get[int32](&in.InstanceData, AttrReferenceIndex)
}

func (in *Instances) ReferenceHandlesForWrite() []int32 {
	return customdata.GetForWrite[int32](&in.InstanceData, AttrReferenceIndex)
}

func (in *Instances) Transforms() []math32.Matrix4 {
	return customdata.Get[math32.Matrix4](&in.InstanceData, AttrTransform)
}

func (in *Instances) TransformsForWrite() []math32.Matrix4 {
	return customdata.GetForWrite[math32.Matrix4](&in.InstanceData, AttrTransform)
}

// Resize changes the number of instances. Values of all layers are
// kept for the remaining instances; new instances have default values.
func (in *Instances) Resize(n int) {
	if n == in.instancesNum {
		return
	}
	old := in.InstanceData.Layers()
	var resized customdata.CustomData
	for _, l := range old {
		arr := generic.NewArray(l.Span().Type(), n)
		t := arr.Type()
		t.FillAssignN(t.DefaultValue(), arr.Data(), n)
		keep := min(n, l.Size())
		if keep > 0 {
			src := l.Span()
			t.CopyAssignIndices(src.Data(), arr.Data(), indexmask.FromSize(keep))
		}
		resized.AddLayer(l.ID(), l.DataType(), arr)
	}
	in.InstanceData.Clear()
	in.InstanceData = resized
	in.instancesNum = n
	in.almostUniqueIDs.Tag()
}

// AddInstance appends an instance of the reference with the given index.
func (in *Instances) AddInstance(reference int, transform math32.Matrix4) {
	n := in.instancesNum
	in.Resize(n + 1)
	in.ReferenceHandlesForWrite()[n] = int32(reference)
	in.TransformsForWrite()[n] = transform
}

// RemoveUnusedReferences removes references no instance uses and
// renumbers the reference indexes.
func (in *Instances) RemoveUnusedReferences() {
	used := make([]bool, len(in.references))
	for _, h := range in.ReferenceHandles() {
		used[h] = true
	}
	remap := make([]int32, len(in.references))
	var kept []Reference
	for i, r := range in.references {
		if used[i] {
			remap[i] = int32(len(kept))
			kept = append(kept, r)
		}
	}
	if len(kept) == len(in.references) {
		return
	}
	in.references = kept
	handles := in.ReferenceHandlesForWrite()
	for i, h := range handles {
		handles[i] = remap[h]
	}
}

// TagIDsChanged tags the almost unique ids dirty.
func (in *Instances) TagIDsChanged() {
	in.almostUniqueIDs.Tag()
}

// AlmostUniqueIDs returns an id for every instance, unique unless
// generating a unique one failed repeatedly. Instances keep their id
// attribute value when it is not used by an earlier instance, and use
// their index when there is no id attribute.
func (in *Instances) AlmostUniqueIDs() []int32 {
	return *in.almostUniqueIDs.Get(func(out *[]int32) {
		ids := customdata.Get[int32](&in.InstanceData, AttrID)
		if ids == nil {
			*out = slicesx.Iota[int32](in.instancesNum)
			return
		}
		*out = uniqueIDs(ids)
	})
}

const maxIDIterations = 100

// uniqueIDs replaces repeated ids by ids derived from the original id,
// so that they stay stable when other instances change.
func uniqueIDs(ids []int32) []int32 {
	res := make([]int32, len(ids))
	used := make(map[int32]bool, len(ids))
	var collisions []int
	for i, id := range ids {
		if used[id] {
			collisions = append(collisions, i)
			continue
		}
		used[id] = true
		res[i] = id
	}
	generators := map[int32]*idGenerator{}
	for _, i := range collisions {
		id := ids[i]
		g := generators[id]
		if g == nil {
			g = &idGenerator{seed: id}
			generators[id] = g
		}
		for iter := 0; ; iter++ {
			r := g.next()
			if iter == maxIDIterations || !used[r] {
				used[r] = true
				res[i] = r
				break
			}
		}
	}
	return res
}

// idGenerator is a deterministic sequence of ids for a seed id.
type idGenerator struct {
	seed    int32
	counter uint32
}

func (g *idGenerator) next() int32 {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(g.seed))
	binary.LittleEndian.PutUint32(buf[4:], g.counter)
	g.counter++
	sum := blake3.Sum256(buf[:])
	return int32(binary.LittleEndian.Uint32(sum[:4]) & 0x7fffffff)
}

// Copy returns a copy sharing the layer arrays until either writes.
// References are shared.
func (in *Instances) Copy() *Instances {
	return &Instances{
		references:      append([]Reference(nil), in.references...),
		instancesNum:    in.instancesNum,
		InstanceData:    *in.InstanceData.Copy(),
		almostUniqueIDs: &cachemutex.Cache[[]int32]{},
	}
}
