package codec

import "strconv"

// Bitflag fields are integers on the wire, except where 64-bit width forces
// a decimal string representation to survive JSON number precision.

// Flag returns the codec for a bitflag field transmitted as an integer. Put
// skips the zero flag unless defaults is set.
func Flag[F ~uint64](key string) Field[F] {
	return Field[F]{
		key: key,
		parse: func(data Payload) F {
			if value, ok := WireUint(data[key]); ok {
				return F(value)
			}
			return 0
		},
		put: func(value F, data Payload, defaults bool) Payload {
			if defaults || value != 0 {
				data[key] = uint64(value)
			}
			return data
		},
		validate: FlagValidator[F](key),
	}
}

// ForceFlag returns the codec for a bitflag field that is always written as
// an integer, zero or not.
func ForceFlag[F ~uint64](key string) Field[F] {
	return Field[F]{
		key: key,
		parse: func(data Payload) F {
			if value, ok := WireUint(data[key]); ok {
				return F(value)
			}
			return 0
		},
		put: func(value F, data Payload, defaults bool) Payload {
			data[key] = uint64(value)
			return data
		},
		validate: FlagValidator[F](key),
	}
}

// StringFlag returns the codec for a bitflag field transmitted as a decimal
// string. Put skips the zero flag unless defaults is set.
func StringFlag[F ~uint64](key string) Field[F] {
	return Field[F]{
		key: key,
		parse: func(data Payload) F {
			switch v := data[key].(type) {
			case string:
				n, err := strconv.ParseUint(v, 10, 64)
				if err != nil {
					return 0
				}
				return F(n)
			default:
				if n, ok := WireUint(data[key]); ok {
					return F(n)
				}
				return 0
			}
		},
		put: func(value F, data Payload, defaults bool) Payload {
			if defaults || value != 0 {
				data[key] = strconv.FormatUint(uint64(value), 10)
			}
			return data
		},
		validate: FlagValidator[F](key),
	}
}

// FlagValidator returns a validator accepting a flag value, an untyped
// integer or a decimal string.
func FlagValidator[F ~uint64](name string) ValidateFunc[F] {
	return func(value any) (F, error) {
		switch v := value.(type) {
		case nil:
			return 0, nil
		case F:
			return v, nil
		case string:
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return 0, valueErr(name, "a decimal flag string", v)
			}
			return F(n), nil
		default:
			if n, ok := WireUint(value); ok {
				return F(n), nil
			}
			return 0, typeErr(name, "a flag, integer or decimal string", value)
		}
	}
}
