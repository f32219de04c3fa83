package codec

import (
	"math"
	"slices"
	"strconv"
)

// Snowflake identifiers are decimal strings on the wire because they exceed
// the 53-bit integer precision of JSON consumers, and native integers in
// memory. The factories below are generic over the concrete id type.

// EntityID returns the codec for a mandatory id field. Put always writes the
// key, emitting null for the zero id.
func EntityID[ID ~uint64](key string) Field[ID] {
	return Field[ID]{
		key: key,
		parse: func(data Payload) ID {
			return parseID[ID](data[key])
		},
		put: func(value ID, data Payload, defaults bool) Payload {
			if value == 0 {
				data[key] = nil
			} else {
				data[key] = strconv.FormatUint(uint64(value), 10)
			}
			return data
		},
		validate: validateID[ID](key),
	}
}

// OptionalEntityID returns the codec for an omittable id field. Put skips
// the zero id unless defaults is set, in which case it emits null.
func OptionalEntityID[ID ~uint64](key string) Field[ID] {
	return Field[ID]{
		key: key,
		parse: func(data Payload) ID {
			return parseID[ID](data[key])
		},
		put: func(value ID, data Payload, defaults bool) Payload {
			if defaults || value != 0 {
				if value == 0 {
					data[key] = nil
				} else {
					data[key] = strconv.FormatUint(uint64(value), 10)
				}
			}
			return data
		},
		validate: validateID[ID](key),
	}
}

// EntityIDArray returns the codec for an ordered id array field. The empty
// array, wire null and an absent key all parse to nil; Put emits an empty
// array only when defaults is set. Canonical order is ascending.
func EntityIDArray[ID ~uint64](key string) Field[[]ID] {
	return Field[[]ID]{
		key: key,
		parse: func(data Payload) []ID {
			raw, ok := WireArray(data[key])
			if !ok || len(raw) == 0 {
				return nil
			}
			out := make([]ID, 0, len(raw))
			for _, element := range raw {
				if id := parseID[ID](element); id != 0 {
					out = append(out, id)
				}
			}
			if len(out) == 0 {
				return nil
			}
			slices.Sort(out)
			return out
		},
		put: func(value []ID, data Payload, defaults bool) Payload {
			if defaults || value != nil {
				raw := make([]string, len(value))
				for i, id := range value {
					raw[i] = strconv.FormatUint(uint64(id), 10)
				}
				data[key] = raw
			}
			return data
		},
		validate: EntityIDArrayValidator[ID](key),
	}
}

// EntityIDValidator returns a validator accepting an id value, a numeric
// string, an untyped integer or an entity exposing its raw id. Nil
// normalizes to the zero id.
func EntityIDValidator[ID ~uint64](name string) ValidateFunc[ID] {
	return validateID[ID](name)
}

// EntityIDArrayValidator returns a validator accepting nil or a sequence of
// id-convertible values, normalizing to an ascending slice.
func EntityIDArrayValidator[ID ~uint64](name string) ValidateFunc[[]ID] {
	element := validateID[ID](name)
	return func(value any) ([]ID, error) {
		if value == nil {
			return nil, nil
		}
		var elements []any
		switch v := value.(type) {
		case []ID:
			elements = make([]any, len(v))
			for i, id := range v {
				elements[i] = id
			}
		case []uint64:
			elements = make([]any, len(v))
			for i, id := range v {
				elements[i] = id
			}
		default:
			raw, ok := WireArray(value)
			if !ok {
				return nil, typeErr(name, "nil or a sequence of entity ids", value)
			}
			elements = raw
		}
		if len(elements) == 0 {
			return nil, nil
		}
		out := make([]ID, 0, len(elements))
		for _, raw := range elements {
			id, err := element(raw)
			if err != nil {
				return nil, err
			}
			if id != 0 {
				out = append(out, id)
			}
		}
		if len(out) == 0 {
			return nil, nil
		}
		slices.Sort(out)
		return out, nil
	}
}

func parseID[ID ~uint64](raw any) ID {
	switch v := raw.(type) {
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0
		}
		return ID(id)
	default:
		if id, ok := WireUint(raw); ok {
			return ID(id)
		}
		return 0
	}
}

func validateID[ID ~uint64](name string) ValidateFunc[ID] {
	return func(value any) (ID, error) {
		switch v := value.(type) {
		case nil:
			return 0, nil
		case ID:
			return v, nil
		case uint64:
			return ID(v), nil
		case int:
			if v < 0 {
				return 0, valueErr(name, "a non-negative identifier", v)
			}
			return ID(v), nil
		case int64:
			if v < 0 {
				return 0, valueErr(name, "a non-negative identifier", v)
			}
			return ID(v), nil
		case float64:
			if v < 0 || v != math.Trunc(v) {
				return 0, valueErr(name, "a non-negative integral identifier", v)
			}
			return ID(v), nil
		case string:
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return 0, valueErr(name, "a decimal snowflake string", v)
			}
			return ID(id), nil
		case Identifiable:
			return ID(v.RawID()), nil
		default:
			return 0, typeErr(name, "an entity, integer or decimal string", value)
		}
	}
}
