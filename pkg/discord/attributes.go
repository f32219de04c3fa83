package discord

import (
	"slices"

	"dirpx.dev/rxmerr"

	"cordcore/pkg/codec"
)

// Attributes carries precreate attribute values keyed by attribute name.
// Values pass through the same validators the typed option constructors
// use, so both construction paths enforce one contract.
type Attributes map[string]any

// attrSetter adapts a field codec into a validating attribute setter.
func attrSetter[E, T any](field codec.Field[T], assign func(*E, T)) func(*E, any) error {
	return func(entity *E, value any) error {
		validated, err := field.Validate(value)
		if err != nil {
			return err
		}
		assign(entity, validated)
		return nil
	}
}

// applyAttributes runs every attribute through the entity's setter table in
// name order, collecting all failures instead of stopping at the first.
// Unknown names fail the whole call; silently dropping them would hide
// typos in fixture definitions.
func applyAttributes[E any](kind string, table map[string]func(*E, any) error, entity *E, attrs Attributes) error {
	c := rxmerr.NewCollector()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		set, ok := table[name]
		if !ok {
			c.Append(&codec.TypeError{Name: name, Expected: "a settable " + kind + " attribute", Value: attrs[name]})
			continue
		}
		if err := set(entity, attrs[name]); err != nil {
			c.Append(err)
		}
	}
	return c.Err()
}

// applyOptions applies construction options in order, collecting all
// failures.
func applyOptions[E any, O ~func(*E) error](entity *E, options []O) error {
	c := rxmerr.NewCollector()
	for _, option := range options {
		if err := option(entity); err != nil {
			c.Append(err)
		}
	}
	return c.Err()
}
