// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/varray"
)

// InitKind tags the variants of [Init].
type InitKind uint8

const (
	InitKindConstruct InitKind = iota
	InitKindDefaultValue
	InitKindVArray
	InitKindMoveArray
)

// Init describes the initial values of a new attribute. It is one of
// [InitConstruct], [InitDefaultValue], [InitVArray] or [InitMoveArray].
type Init interface {
	Kind() InitKind
}

// InitConstruct leaves the values constructed but unspecified; the
// caller fills them.
type InitConstruct struct{}

// InitDefaultValue fills the attribute with the default value of its type.
type InitDefaultValue struct{}

// InitVArray copies the values of a virtual array, which must have the
// attribute type and domain size.
type InitVArray struct {
	VArray varray.GVArray
}

// InitMoveArray transfers ownership of an array to the attribute. The
// array is freed if the attribute cannot be created.
type InitMoveArray struct {
	Array *generic.Array
}

func (InitConstruct) Kind() InitKind    { return InitKindConstruct }
func (InitDefaultValue) Kind() InitKind { return InitKindDefaultValue }
func (InitVArray) Kind() InitKind       { return InitKindVArray }
func (InitMoveArray) Kind() InitKind    { return InitKindMoveArray }
