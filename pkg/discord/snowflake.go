package discord

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DiscordEpoch is the Unix millisecond timestamp snowflake identifiers count
// from, 2015-01-01T00:00:00Z.
const DiscordEpoch int64 = 1420070400000

// Snowflake identifies a Discord entity. The wire carries identifiers as
// decimal strings; JSON numbers above 2^53 would round. The zero value means
// no entity.
type Snowflake uint64

// ParseSnowflake reads a decimal identifier string.
func ParseSnowflake(s string) (Snowflake, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cordcore: invalid snowflake %q", s)
	}
	return Snowflake(n), nil
}

// SnowflakeFromTime returns the lowest identifier minted at t, usable as a
// range boundary when filtering entities by creation time.
func SnowflakeFromTime(t time.Time) Snowflake {
	ms := t.UnixMilli() - DiscordEpoch
	if ms < 0 {
		ms = 0
	}
	return Snowflake(uint64(ms) << 22)
}

// IsZero reports whether the identifier is unset.
func (s Snowflake) IsZero() bool { return s == 0 }

// RawID implements codec.Identifiable.
func (s Snowflake) RawID() uint64 { return uint64(s) }

// Time returns the creation instant encoded in the identifier.
func (s Snowflake) Time() time.Time {
	return time.UnixMilli(int64(s>>22) + DiscordEpoch).UTC()
}

// String formats the identifier the way the wire carries it.
func (s Snowflake) String() string { return strconv.FormatUint(uint64(s), 10) }

// MarshalJSON writes the identifier as a decimal string.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a decimal string, a plain number or null.
func (s *Snowflake) UnmarshalJSON(raw []byte) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return err
	}
	switch v := value.(type) {
	case nil:
		*s = 0
		return nil
	case string:
		parsed, err := ParseSnowflake(v)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case float64:
		*s = Snowflake(v)
		return nil
	default:
		return fmt.Errorf("cordcore: invalid snowflake token %s", raw)
	}
}
