package codec

import "time"

// timestampLayout matches the wire timestamp form: ISO-8601 with
// microsecond precision and a numeric UTC offset.
const timestampLayout = "2006-01-02T15:04:05.000000-07:00"

// NullableTime returns the codec for an omittable timestamp field. The zero
// time is the unset default: it parses back from absence or null and is
// transmitted as null when defaults is set. Canonical values carry
// microsecond precision, the finest the wire format preserves.
func NullableTime(key string) Field[time.Time] {
	return Field[time.Time]{
		key: key,
		parse: func(data Payload) time.Time {
			raw, ok := WireString(data[key])
			if !ok || raw == "" {
				return time.Time{}
			}
			if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
				return t
			}
			return time.Time{}
		},
		put: func(value time.Time, data Payload, defaults bool) Payload {
			if defaults || !value.IsZero() {
				if value.IsZero() {
					data[key] = nil
				} else {
					data[key] = value.Format(timestampLayout)
				}
			}
			return data
		},
		validate: TimeValidator(key),
	}
}

// TimeValidator returns a validator accepting nil, a time.Time or a wire
// timestamp string, truncating to the microsecond precision the wire
// format can represent.
func TimeValidator(name string) ValidateFunc[time.Time] {
	return func(value any) (time.Time, error) {
		switch v := value.(type) {
		case nil:
			return time.Time{}, nil
		case time.Time:
			return v.Truncate(time.Microsecond), nil
		case string:
			t, err := time.Parse(time.RFC3339Nano, v)
			if err != nil {
				return time.Time{}, valueErr(name, "an ISO-8601 timestamp", v)
			}
			return t.Truncate(time.Microsecond), nil
		default:
			return time.Time{}, typeErr(name, "nil, a time or a timestamp string", value)
		}
	}
}
