// Package codec generates per-field wire codecs for Discord entity schemas.
//
// Every serializable attribute of an entity is described by a Field value
// bundling three behaviors: Parse reads the attribute out of a wire payload,
// Put writes it into one, and Validate normalizes a caller-supplied value
// into canonical form. Fields are built once per schema by the family
// factories in this package (Bool, OptionalEntityID, Enum, ...) and reused
// for every payload.
//
// Parse and Put trust the wire: missing or mistyped keys fall back to the
// field default and never fail. Validate is the strict surface and returns
// *TypeError for wrong input types and *ValueError for domain violations.
package codec

// Payload is a decoded JSON object as exchanged with the wire layer.
type Payload map[string]any

// ParseFunc reads one field from a wire payload, applying the field default
// when the key is absent or malformed.
type ParseFunc[T any] func(data Payload) T

// PutFunc writes one field into data and returns data. When defaults is
// false, optional fields equal to their default are omitted entirely.
type PutFunc[T any] func(value T, data Payload, defaults bool) Payload

// ValidateFunc normalizes a caller-supplied value into the field's canonical
// in-memory form.
type ValidateFunc[T any] func(value any) (T, error)

// Field bundles the codec triple of a single wire field. Zero behaviors are
// filled by the family factory constructing the field; With* return a
// derived field for the schemas that need a custom behavior on one side.
type Field[T any] struct {
	key      string
	parse    ParseFunc[T]
	put      PutFunc[T]
	validate ValidateFunc[T]
}

// NewField assembles a field from explicit behaviors. Schemas normally use a
// family factory instead.
func NewField[T any](key string, parse ParseFunc[T], put PutFunc[T], validate ValidateFunc[T]) Field[T] {
	return Field[T]{key: key, parse: parse, put: put, validate: validate}
}

// Key returns the wire key the field reads and writes.
func (f Field[T]) Key() string { return f.key }

// Parse reads the field from data.
func (f Field[T]) Parse(data Payload) T { return f.parse(data) }

// Put writes value into data and returns data.
func (f Field[T]) Put(value T, data Payload, defaults bool) Payload {
	return f.put(value, data, defaults)
}

// Validate normalizes value into the field's canonical form.
func (f Field[T]) Validate(value any) (T, error) { return f.validate(value) }

// WithParse returns a copy of the field with its parse behavior replaced.
func (f Field[T]) WithParse(parse ParseFunc[T]) Field[T] {
	f.parse = parse
	return f
}

// WithPut returns a copy of the field with its put behavior replaced.
func (f Field[T]) WithPut(put PutFunc[T]) Field[T] {
	f.put = put
	return f
}

// WithValidate returns a copy of the field with its validate behavior
// replaced.
func (f Field[T]) WithValidate(validate ValidateFunc[T]) Field[T] {
	f.validate = validate
	return f
}

// Identifiable is implemented by entities whose identifier may stand in for
// the entity itself in validator input.
type Identifiable interface {
	RawID() uint64
}

// Serializable is implemented by entities whose wire form carries no
// library-internal fields.
type Serializable interface {
	ToData(defaults bool) Payload
}

// InternalSerializable is implemented by entities whose wire form includes
// fields that are only meaningful when round-tripping through this library's
// own persistence, gated behind the includeInternals argument.
type InternalSerializable interface {
	ToData(defaults, includeInternals bool) Payload
}
