// Package audit models Discord audit log entries: per-attribute before/after
// change values with presence tracked in a flag set, and entries assembling
// those changes through per-event conversion tables.
package audit

import (
	"reflect"

	"cordcore/pkg/codec"
)

// ChangeFlags packs which sides of a change were observed together with the
// change kind derived from them at construction time. One integer carries
// what would otherwise take two presence booleans and a kind field.
type ChangeFlags uint8

const (
	// ChangeHasBefore marks the before value as observed. An observed nil
	// is a real value, not absence.
	ChangeHasBefore ChangeFlags = 1 << 0
	// ChangeHasAfter marks the after value as observed.
	ChangeHasAfter ChangeFlags = 1 << 1
	// ChangeIsAddition marks a change constructed from an after side only.
	ChangeIsAddition ChangeFlags = 1 << 2
	// ChangeIsRemoval marks a change constructed from a before side only.
	ChangeIsRemoval ChangeFlags = 1 << 3
	// ChangeIsModification marks a change constructed from both sides.
	ChangeIsModification ChangeFlags = 1 << 4
)

// Has reports whether every bit of mask is set.
func (f ChangeFlags) Has(mask ChangeFlags) bool { return f&mask == mask }

// Change is one attribute's delta inside an audit log entry. Either side may
// be legitimately unobserved; a merged change remembers everything both
// fragments saw. The zero Change carries nothing.
type Change struct {
	name   string
	before any
	after  any
	flags  ChangeFlags
}

// NewAddition builds a change that only saw the new value.
func NewAddition(name string, after any) (Change, error) {
	if err := validateChangeName(name); err != nil {
		return Change{}, err
	}
	return Change{name: name, after: after, flags: ChangeHasAfter | ChangeIsAddition}, nil
}

// NewRemoval builds a change that only saw the old value.
func NewRemoval(name string, before any) (Change, error) {
	if err := validateChangeName(name); err != nil {
		return Change{}, err
	}
	return Change{name: name, before: before, flags: ChangeHasBefore | ChangeIsRemoval}, nil
}

// NewModification builds a change that saw both sides.
func NewModification(name string, before, after any) (Change, error) {
	if err := validateChangeName(name); err != nil {
		return Change{}, err
	}
	return Change{
		name:   name,
		before: before,
		after:  after,
		flags:  ChangeHasBefore | ChangeHasAfter | ChangeIsModification,
	}, nil
}

func validateChangeName(name string) error {
	if name == "" {
		return &codec.ValueError{Name: "name", Requirement: "a non-empty attribute name", Value: name}
	}
	return nil
}

// Name returns the attribute the change describes.
func (c Change) Name() string { return c.name }

// Before returns the old value and whether it was observed.
func (c Change) Before() (any, bool) { return c.before, c.flags.Has(ChangeHasBefore) }

// After returns the new value and whether it was observed.
func (c Change) After() (any, bool) { return c.after, c.flags.Has(ChangeHasAfter) }

// Flags returns the raw flag set.
func (c Change) Flags() ChangeFlags { return c.flags }

// HasBefore reports whether the old value was observed.
func (c Change) HasBefore() bool { return c.flags.Has(ChangeHasBefore) }

// HasAfter reports whether the new value was observed.
func (c Change) HasAfter() bool { return c.flags.Has(ChangeHasAfter) }

// IsAddition reports whether the change was constructed from an after side
// only.
func (c Change) IsAddition() bool { return c.flags.Has(ChangeIsAddition) }

// IsRemoval reports whether the change was constructed from a before side
// only.
func (c Change) IsRemoval() bool { return c.flags.Has(ChangeIsRemoval) }

// IsModification reports whether the change was constructed from both sides.
func (c Change) IsModification() bool { return c.flags.Has(ChangeIsModification) }

// Merge combines two fragments describing the same attribute. Each side
// comes from whichever operand observed it, the receiver winning when both
// did; the flag sets are ored. A known value is never overwritten by an
// unknown one, so fragments can be assembled in any order.
func (c Change) Merge(other Change) Change {
	merged := Change{name: c.name, flags: c.flags | other.flags}
	if merged.name == "" {
		merged.name = other.name
	}
	switch {
	case c.HasBefore():
		merged.before = c.before
	case other.HasBefore():
		merged.before = other.before
	}
	switch {
	case c.HasAfter():
		merged.after = c.after
	case other.HasAfter():
		merged.after = other.after
	}
	return merged
}

// Equal reports structural equality over the attribute name, the flag set
// and both observed sides.
func (c Change) Equal(other Change) bool {
	return c.name == other.name &&
		c.flags == other.flags &&
		reflect.DeepEqual(c.before, other.before) &&
		reflect.DeepEqual(c.after, other.after)
}
