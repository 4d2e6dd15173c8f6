// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"strings"

	"github.com/google/uuid"
)

// AnonymousPrefix starts the storage names of anonymous attributes.
const AnonymousPrefix = ".a_"

// AnonymousID identifies a hidden attribute by identity instead of by
// a user visible name. Each call to [NewAnonymousID] returns an
// identity that differs from all others in the process.
type AnonymousID struct {
	name      string
	debugName string
}

// NewAnonymousID returns a new identity. debugName is only used for
// display.
func NewAnonymousID(debugName string) *AnonymousID {
	token := uuid.New()
	return &AnonymousID{
		name:      AnonymousPrefix + strings.ReplaceAll(token.String(), "-", ""),
		debugName: debugName,
	}
}

// Name returns the unique storage name.
func (a *AnonymousID) Name() string { return a.name }

// DebugName returns the name given at creation.
func (a *AnonymousID) DebugName() string { return a.debugName }

func (a *AnonymousID) String() string {
	if a.debugName == "" {
		return a.name
	}
	return a.debugName + " (" + a.name + ")"
}

// ID identifies an attribute by name or by [AnonymousID]. Named IDs
// are equal when their names are equal, anonymous IDs when they refer
// to the same [AnonymousID]. The zero value is invalid.
type ID struct {
	name string
	anon *AnonymousID
}

// Named returns the ID of the attribute with the given name.
func Named(name string) ID {
	return ID{name: name}
}

// Anonymous returns the ID of an anonymous attribute.
func Anonymous(a *AnonymousID) ID {
	return ID{name: a.name, anon: a}
}

// Valid returns whether the ID refers to an attribute.
func (id ID) Valid() bool { return id.name != "" }

// IsAnonymous returns whether the ID is anonymous.
func (id ID) IsAnonymous() bool { return id.anon != nil }

// AnonymousID returns the anonymous identity, or nil for named IDs.
func (id ID) AnonymousID() *AnonymousID { return id.anon }

// Name returns the attribute name, which for anonymous IDs is the
// unique storage name.
func (id ID) Name() string { return id.name }

// Key returns a string that identifies the attribute in storage.
func (id ID) Key() string { return id.name }

// Equal reports whether id and other identify the same attribute.
func (id ID) Equal(other ID) bool {
	if id.anon != nil || other.anon != nil {
		return id.anon == other.anon
	}
	return id.name == other.name
}

func (id ID) String() string {
	if id.anon != nil {
		return id.anon.String()
	}
	return id.name
}

// IsAnonymousName returns whether name is the storage name of an
// anonymous attribute.
func IsAnonymousName(name string) bool {
	return strings.HasPrefix(name, AnonymousPrefix)
}

// AllowProceduralAccess returns whether the attribute with the given
// name may be listed and accessed by user facing procedural tools.
// Names starting with "." are internal. Providers do not check this;
// callers listing attributes do.
func AllowProceduralAccess(name string) bool {
	return !strings.HasPrefix(name, ".")
}

// IsInternal returns whether the named attribute is hidden from user
// facing procedural tools.
func IsInternal(name string) bool {
	return !AllowProceduralAccess(name)
}
