// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"fmt"

	"cogentcore.org/geometry/base/errors"
)

// Errors returned by [Editor] operations.
var (
	ErrDomainNotSupported = errors.New("attribute domain not supported by this geometry type")
	ErrRequired           = errors.New("attribute is required and cannot be removed or renamed")
	ErrNotFound           = errors.New("attribute not found")
	ErrNotColor           = errors.New("attribute is not a color attribute")
)

// DefaultName is used for new attributes created without a name.
const DefaultName = "Attribute"

// EditState is the attribute editing state a geometry stores with its
// data.
type EditState struct {
	// ActiveIndex is the index of the active attribute in
	// [Editor.IDs], or -1 for none.
	ActiveIndex int

	// ActiveColor is the name of the color attribute being edited, and
	// DefaultColor the one used for rendering. They are only kept for
	// geometries with color tracking, see [NewEditor].
	ActiveColor  string
	DefaultColor string
}

// Editor edits the attributes of one geometry by name, reporting
// failures as errors and keeping its [EditState] consistent.
type Editor struct {
	a      MutableAccessor
	state  *EditState
	colors bool
}

// NewEditor returns an editor of the attributes of a, keeping state.
// If colors is true, the first color attribute created becomes the
// active and default color attribute.
func NewEditor(a MutableAccessor, state *EditState, colors bool) *Editor {
	return &Editor{a: a, state: state, colors: colors}
}

// Accessor returns the accessor being edited.
func (e *Editor) Accessor() MutableAccessor { return e.a }

// IsColor returns whether an attribute with the given domain and type
// is a color attribute.
func IsColor(domain Domain, dataType DataType) bool {
	return (dataType == DataTypeColorFloat || dataType == DataTypeColorByte) &&
		(domain == DomainPoint || domain == DomainCorner)
}

// IDs returns the named attributes, in the order of [Accessor.ForAll].
// Anonymous attributes are not listed.
func (e *Editor) IDs() []ID {
	var ids []ID
	e.a.ForAll(func(id ID, _ MetaData) bool {
		if !id.IsAnonymous() {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// ColorIDs returns the color attributes, in the order of [Editor.IDs].
func (e *Editor) ColorIDs() []ID {
	var ids []ID
	e.a.ForAll(func(id ID, meta MetaData) bool {
		if !id.IsAnonymous() && IsColor(meta.Domain, meta.DataType) {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

func indexOf(ids []ID, name string) int {
	for i, id := range ids {
		if id.Name() == name {
			return i
		}
	}
	return -1
}

// NameEditable returns whether the attribute can be renamed.
func (e *Editor) NameEditable(id ID) bool {
	return !id.IsAnonymous() && e.a.Contains(id) && !e.a.IsRequired(id)
}

// UniqueName returns name, or name with the lowest numeric suffix
// ".001", ".002", ... that no attribute uses. An empty name gives
// [DefaultName].
func (e *Editor) UniqueName(name string) string {
	if name == "" {
		name = DefaultName
	}
	if !e.a.ContainsName(name) {
		return name
	}
	for i := 1; ; i++ {
		n := fmt.Sprintf("%s.%03d", name, i)
		if !e.a.ContainsName(n) {
			return n
		}
	}
}

// New adds an attribute with default values under a unique name
// derived from name, which it returns.
func (e *Editor) New(name string, dataType DataType, domain Domain) (ID, error) {
	if !e.a.DomainSupported(domain) {
		return ID{}, ErrDomainNotSupported
	}
	id := Named(e.UniqueName(name))
	if !e.a.Add(id, domain, dataType, InitDefaultValue{}) {
		return ID{}, fmt.Errorf("cannot create attribute %q of type %v on the %v domain", id.Name(), dataType, domain)
	}
	if e.colors && IsColor(domain, dataType) {
		if e.state.ActiveColor == "" {
			e.state.ActiveColor = id.Name()
		}
		if e.state.DefaultColor == "" {
			e.state.DefaultColor = id.Name()
		}
	}
	return id, nil
}

// Remove deletes the attribute. Required attributes are not removed.
func (e *Editor) Remove(id ID) error {
	if !e.a.Contains(id) {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	if e.a.IsRequired(id) {
		return fmt.Errorf("%w: %v", ErrRequired, id)
	}
	index := indexOf(e.IDs(), id.Name())
	if !e.a.Remove(id) {
		return fmt.Errorf("cannot remove attribute %v", id)
	}
	if index >= 0 && index < e.state.ActiveIndex {
		e.state.ActiveIndex--
	}
	e.clampActive()
	if e.state.ActiveColor == id.Name() {
		e.state.ActiveColor = ""
	}
	if e.state.DefaultColor == id.Name() {
		e.state.DefaultColor = ""
	}
	return nil
}

// Rename moves the values of the attribute to a unique name derived
// from name, which it returns. Required attributes cannot be renamed.
// The active attribute and color names follow the rename.
func (e *Editor) Rename(id ID, name string) (string, error) {
	if !e.a.Contains(id) {
		return "", fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	if !e.NameEditable(id) {
		return "", fmt.Errorf("%w: %v", ErrRequired, id)
	}
	if name == id.Name() {
		return name, nil
	}
	wasActive := e.state.ActiveIndex >= 0 && e.state.ActiveIndex == indexOf(e.IDs(), id.Name())
	meta, _ := e.a.LookupMetaData(id)
	r := e.a.Lookup(id)
	to := Named(e.UniqueName(name))
	if !e.a.Add(to, meta.Domain, meta.DataType, InitVArray{VArray: r.VArray}) {
		return "", fmt.Errorf("cannot rename attribute %v to %q", id, to.Name())
	}
	if !e.a.Remove(id) {
		e.a.Remove(to)
		return "", fmt.Errorf("cannot rename attribute %v", id)
	}
	if wasActive {
		e.state.ActiveIndex = indexOf(e.IDs(), to.Name())
	}
	if e.state.ActiveColor == id.Name() {
		e.state.ActiveColor = to.Name()
	}
	if e.state.DefaultColor == id.Name() {
		e.state.DefaultColor = to.Name()
	}
	return to.Name(), nil
}

// ActiveIndex returns the index of the active attribute in
// [Editor.IDs], or -1.
func (e *Editor) ActiveIndex() int {
	e.clampActive()
	return e.state.ActiveIndex
}

// SetActiveIndex sets the active attribute by index. Values outside
// the valid range are clamped, with negative values giving -1.
func (e *Editor) SetActiveIndex(index int) {
	e.state.ActiveIndex = max(-1, index)
	e.clampActive()
}

func (e *Editor) clampActive() {
	e.state.ActiveIndex = min(e.state.ActiveIndex, len(e.IDs())-1)
}

// Active returns the active attribute.
func (e *Editor) Active() (ID, bool) {
	i := e.ActiveIndex()
	if i < 0 {
		return ID{}, false
	}
	return e.IDs()[i], true
}

// SetActive makes id the active attribute. An invalid id clears it.
func (e *Editor) SetActive(id ID) error {
	if !id.Valid() {
		e.state.ActiveIndex = -1
		return nil
	}
	i := indexOf(e.IDs(), id.Name())
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	e.state.ActiveIndex = i
	return nil
}

// colorIndex returns the index of the named color attribute in
// [Editor.ColorIDs], or -1.
func (e *Editor) colorIndex(name string) int {
	if name == "" {
		return -1
	}
	return indexOf(e.ColorIDs(), name)
}

func (e *Editor) colorByIndex(index int) (string, error) {
	ids := e.ColorIDs()
	if index < 0 || index >= len(ids) {
		return "", fmt.Errorf("color attribute index %d out of range [0, %d)", index, len(ids))
	}
	return ids[index].Name(), nil
}

func (e *Editor) checkColor(name string) error {
	if name == "" {
		return nil
	}
	meta, ok := e.a.LookupMetaData(Named(name))
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if !IsColor(meta.Domain, meta.DataType) {
		return fmt.Errorf("%w: %s", ErrNotColor, name)
	}
	return nil
}

// ActiveColorIndex returns the index of the active color attribute
// in [Editor.ColorIDs], or -1.
func (e *Editor) ActiveColorIndex() int { return e.colorIndex(e.state.ActiveColor) }

// SetActiveColorIndex makes the color attribute at index active.
func (e *Editor) SetActiveColorIndex(index int) error {
	name, err := e.colorByIndex(index)
	if err != nil {
		return err
	}
	e.state.ActiveColor = name
	return nil
}

// SetActiveColor makes the named color attribute active. An empty
// name clears it.
func (e *Editor) SetActiveColor(name string) error {
	if err := e.checkColor(name); err != nil {
		return err
	}
	e.state.ActiveColor = name
	return nil
}

// RenderColorIndex returns the index of the default color attribute
// in [Editor.ColorIDs], or -1.
func (e *Editor) RenderColorIndex() int { return e.colorIndex(e.state.DefaultColor) }

// SetRenderColorIndex makes the color attribute at index the default.
func (e *Editor) SetRenderColorIndex(index int) error {
	name, err := e.colorByIndex(index)
	if err != nil {
		return err
	}
	e.state.DefaultColor = name
	return nil
}

// SetDefaultColor makes the named color attribute the default. An
// empty name clears it.
func (e *Editor) SetDefaultColor(name string) error {
	if err := e.checkColor(name); err != nil {
		return err
	}
	e.state.DefaultColor = name
	return nil
}
