package codec

import "math"

// Int returns the codec for a mandatory integer field. Put always writes the
// key.
func Int(key string, def int) Field[int] {
	return Field[int]{
		key:      key,
		parse:    parseInt(key, def),
		put:      putIntAlways(key),
		validate: IntValidator(key),
	}
}

// OptionalInt returns the codec for an omittable integer field. Put skips
// the default value unless defaults is set.
func OptionalInt(key string, def int) Field[int] {
	return Field[int]{
		key:      key,
		parse:    parseInt(key, def),
		put:      putIntOptional(key, def),
		validate: IntValidator(key),
	}
}

// OptionalIntPostprocess behaves like OptionalInt with post applied to the
// value before it is written.
func OptionalIntPostprocess(key string, def int, post func(int) any) Field[int] {
	return Field[int]{
		key:   key,
		parse: parseInt(key, def),
		put: func(value int, data Payload, defaults bool) Payload {
			if defaults || value != def {
				data[key] = post(value)
			}
			return data
		},
		validate: IntValidator(key),
	}
}

// NullableInt returns the codec for an omittable integer field whose default
// is transmitted as null. Absent keys and wire null both parse back to the
// default, a collapse the wire protocol treats as equivalent.
func NullableInt(key string, def int) Field[int] {
	return Field[int]{
		key:   key,
		parse: parseInt(key, def),
		put: func(value int, data Payload, defaults bool) Payload {
			if defaults || value != def {
				if value == def {
					data[key] = nil
				} else {
					data[key] = value
				}
			}
			return data
		},
		validate: IntValidator(key),
	}
}

// Bool returns the codec for an omittable boolean field. Put skips the
// default value unless defaults is set.
func Bool(key string, def bool) Field[bool] {
	return Field[bool]{
		key: key,
		parse: func(data Payload) bool {
			if value, ok := WireBool(data[key]); ok {
				return value
			}
			return def
		},
		put: func(value bool, data Payload, defaults bool) Payload {
			if defaults || value != def {
				data[key] = value
			}
			return data
		},
		validate: BoolValidator(key),
	}
}

// NegatedBool returns the codec for a boolean attribute stored negated on
// the wire, such as an availability attribute transmitted under an
// "un"-prefixed key. def is the attribute default, not the wire default.
func NegatedBool(key string, def bool) Field[bool] {
	return Field[bool]{
		key: key,
		parse: func(data Payload) bool {
			if value, ok := WireBool(data[key]); ok {
				return !value
			}
			return def
		},
		put: func(value bool, data Payload, defaults bool) Payload {
			if defaults || value != def {
				data[key] = !value
			}
			return data
		},
		validate: BoolValidator(key),
	}
}

// IntValidator returns a validator accepting integers of any width.
func IntValidator(name string) ValidateFunc[int] {
	return func(value any) (int, error) {
		n, ok := validatorInt(value)
		if !ok {
			return 0, typeErr(name, "an integer", value)
		}
		return n, nil
	}
}

// IntCondValidator returns a validator that additionally requires cond to
// hold; requirement describes the condition in error messages.
func IntCondValidator(name string, cond func(int) bool, requirement string) ValidateFunc[int] {
	return func(value any) (int, error) {
		n, ok := validatorInt(value)
		if !ok {
			return 0, typeErr(name, "an integer", value)
		}
		if !cond(n) {
			return 0, valueErr(name, requirement, n)
		}
		return n, nil
	}
}

// IntOptionsValidator returns a validator accepting only members of the
// given option set.
func IntOptionsValidator(name string, options ...int) ValidateFunc[int] {
	allowed := make(map[int]struct{}, len(options))
	for _, option := range options {
		allowed[option] = struct{}{}
	}
	return func(value any) (int, error) {
		n, ok := validatorInt(value)
		if !ok {
			return 0, typeErr(name, "an integer", value)
		}
		if _, ok := allowed[n]; !ok {
			return 0, valueErr(name, "a member of the allowed option set", n)
		}
		return n, nil
	}
}

// BoolValidator returns a validator accepting booleans only.
func BoolValidator(name string) ValidateFunc[bool] {
	return func(value any) (bool, error) {
		b, ok := WireBool(value)
		if !ok {
			return false, typeErr(name, "a boolean", value)
		}
		return b, nil
	}
}

func parseInt(key string, def int) ParseFunc[int] {
	return func(data Payload) int {
		if value, ok := WireInt(data[key]); ok {
			return int(value)
		}
		return def
	}
}

func putIntAlways(key string) PutFunc[int] {
	return func(value int, data Payload, defaults bool) Payload {
		data[key] = value
		return data
	}
}

func putIntOptional(key string, def int) PutFunc[int] {
	return func(value int, data Payload, defaults bool) Payload {
		if defaults || value != def {
			data[key] = value
		}
		return data
	}
}

func validatorInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
