package codec

import "fmt"

// Strings collapse wire null and the empty string into "" in memory; the
// library cannot express "explicitly null but present" separately, matching
// the wire protocol's treatment of the two.

// ForceString returns the codec for a string field that is always written,
// empty or not.
func ForceString(key string) Field[string] {
	return Field[string]{
		key:      key,
		parse:    parseString(key),
		put:      putStringAlways(key),
		validate: StringValidator(key, 0, 0),
	}
}

// NullableString returns the codec for a string field whose empty value is
// transmitted as null and omitted when defaults is not set.
func NullableString(key string) Field[string] {
	return Field[string]{
		key:   key,
		parse: parseString(key),
		put: func(value string, data Payload, defaults bool) Payload {
			if defaults || value != "" {
				if value == "" {
					data[key] = nil
				} else {
					data[key] = value
				}
			}
			return data
		},
		validate: StringValidator(key, 0, 0),
	}
}

// StringValidator returns a validator accepting nil or a string. The empty
// string is the unset default and always passes; a non-empty value must have
// a rune count within [minLength, maxLength] when maxLength is positive.
func StringValidator(name string, minLength, maxLength int) ValidateFunc[string] {
	return func(value any) (string, error) {
		var s string
		switch v := value.(type) {
		case nil:
			return "", nil
		case string:
			s = v
		default:
			return "", typeErr(name, "nil or a string", value)
		}
		if s == "" {
			return "", nil
		}
		if maxLength > 0 {
			length := len([]rune(s))
			if length < minLength || length > maxLength {
				return "", valueErr(
					name, fmt.Sprintf("a length within [%d, %d]", minLength, maxLength), s,
				)
			}
		}
		return s, nil
	}
}

func parseString(key string) ParseFunc[string] {
	return func(data Payload) string {
		if value, ok := WireString(data[key]); ok {
			return value
		}
		return ""
	}
}

func putStringAlways(key string) PutFunc[string] {
	return func(value string, data Payload, defaults bool) Payload {
		data[key] = value
		return data
	}
}
