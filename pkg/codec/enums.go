package codec

import "slices"

// Enumerations are small integers or short strings on the wire and named
// members in memory. Parsing never rejects an unlisted wire value: the value
// converts into an unlisted member that round-trips unchanged, keeping old
// clients compatible with server-side additions.

// Enum returns the codec for a mandatory integer enumeration field. Put
// always writes the member value.
func Enum[E ~int](key string, def E) Field[E] {
	return Field[E]{
		key:   key,
		parse: parseEnum(key, def),
		put: func(value E, data Payload, defaults bool) Payload {
			data[key] = int(value)
			return data
		},
		validate: EnumValidator[E](key),
	}
}

// OptionalEnum returns the codec for an omittable integer enumeration
// field. Put skips the default member unless defaults is set.
func OptionalEnum[E ~int](key string, def E) Field[E] {
	return Field[E]{
		key:   key,
		parse: parseEnum(key, def),
		put: func(value E, data Payload, defaults bool) Payload {
			if defaults || value != def {
				data[key] = int(value)
			}
			return data
		},
		validate: EnumValidator[E](key),
	}
}

// StringEnum returns the codec for an omittable string enumeration field.
// Put skips the default member unless defaults is set.
func StringEnum[E ~string](key string, def E) Field[E] {
	return Field[E]{
		key: key,
		parse: func(data Payload) E {
			if value, ok := WireString(data[key]); ok && value != "" {
				return E(value)
			}
			return def
		},
		put: func(value E, data Payload, defaults bool) Payload {
			if defaults || value != def {
				data[key] = string(value)
			}
			return data
		},
		validate: StringEnumValidator[E](key),
	}
}

// ForceStringEnum returns the codec for a string enumeration field that is
// always written, default member or not.
func ForceStringEnum[E ~string](key string, def E) Field[E] {
	return StringEnum(key, def).WithPut(func(value E, data Payload, defaults bool) Payload {
		data[key] = string(value)
		return data
	})
}

// StringEnumArray returns the codec for an array of string enumeration
// members. Absent, null and empty arrays parse to nil; Put emits an empty
// array only when defaults is set. Canonical order is ascending.
func StringEnumArray[E ~string](key string) Field[[]E] {
	return Field[[]E]{
		key: key,
		parse: func(data Payload) []E {
			raw, ok := WireArray(data[key])
			if !ok || len(raw) == 0 {
				return nil
			}
			out := make([]E, 0, len(raw))
			for _, element := range raw {
				if value, ok := WireString(element); ok && value != "" {
					out = append(out, E(value))
				}
			}
			if len(out) == 0 {
				return nil
			}
			slices.Sort(out)
			return out
		},
		put: func(value []E, data Payload, defaults bool) Payload {
			if defaults || value != nil {
				raw := make([]string, len(value))
				for i, member := range value {
					raw[i] = string(member)
				}
				data[key] = raw
			}
			return data
		},
		validate: StringEnumArrayValidator[E](key),
	}
}

// EnumValidator returns a validator accepting a member or its raw integer
// value. Unlisted values are accepted; enumerations stay forward
// compatible on the validation surface too.
func EnumValidator[E ~int](name string) ValidateFunc[E] {
	return func(value any) (E, error) {
		switch v := value.(type) {
		case E:
			return v, nil
		default:
			if n, ok := validatorInt(value); ok {
				return E(n), nil
			}
			return E(0), typeErr(name, "an enumeration member or its integer value", value)
		}
	}
}

// StringEnumValidator returns a validator accepting a member or its raw
// string value.
func StringEnumValidator[E ~string](name string) ValidateFunc[E] {
	return func(value any) (E, error) {
		switch v := value.(type) {
		case nil:
			return E(""), nil
		case E:
			return v, nil
		case string:
			return E(v), nil
		default:
			return E(""), typeErr(name, "an enumeration member or its string value", value)
		}
	}
}

// StringEnumArrayValidator returns a validator accepting nil or a sequence
// of members or raw strings, normalizing to an ascending slice.
func StringEnumArrayValidator[E ~string](name string) ValidateFunc[[]E] {
	element := StringEnumValidator[E](name)
	return func(value any) ([]E, error) {
		if value == nil {
			return nil, nil
		}
		var elements []any
		switch v := value.(type) {
		case []E:
			elements = make([]any, len(v))
			for i, member := range v {
				elements[i] = member
			}
		default:
			raw, ok := WireArray(value)
			if !ok {
				return nil, typeErr(name, "nil or a sequence of enumeration members", value)
			}
			elements = raw
		}
		if len(elements) == 0 {
			return nil, nil
		}
		out := make([]E, 0, len(elements))
		for _, raw := range elements {
			member, err := element(raw)
			if err != nil {
				return nil, err
			}
			if member != "" {
				out = append(out, member)
			}
		}
		if len(out) == 0 {
			return nil, nil
		}
		slices.Sort(out)
		return out, nil
	}
}

func parseEnum[E ~int](key string, def E) ParseFunc[E] {
	return func(data Payload) E {
		if value, ok := WireInt(data[key]); ok {
			return E(value)
		}
		return def
	}
}
