package codec

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

// The codec contract: parsing what the putter wrote under forced defaults
// reconstructs exactly what the validator canonicalized.

func roundTrip[T any](t *testing.T, field Field[T], input any, equal func(a, b T) bool) {
	t.Helper()
	canonical, err := field.Validate(input)
	if err != nil {
		t.Fatalf("validate(%v): %v", input, err)
	}
	direct := field.Parse(field.Put(canonical, Payload{}, true))
	if !equal(direct, canonical) {
		t.Fatalf("in-process round trip: got %v, want %v", direct, canonical)
	}

	// Through encoding/json, numbers come back as float64 and arrays as
	// []any; parsers must absorb both shapes.
	raw, err := json.Marshal(field.Put(canonical, Payload{}, true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Payload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := field.Parse(decoded); !equal(got, canonical) {
		t.Fatalf("json round trip: got %v, want %v", got, canonical)
	}
}

func eq[T comparable](a, b T) bool { return a == b }

func TestRoundTripEntityID(t *testing.T) {
	roundTrip(t, OptionalEntityID[testID]("channel_id"), testID(202501110013), eq[testID])
	roundTrip(t, OptionalEntityID[testID]("channel_id"), nil, eq[testID])
	roundTrip(t, EntityID[testID]("id"), "202501110014", eq[testID])
}

func TestRoundTripEntityIDArray(t *testing.T) {
	field := EntityIDArray[testID]("role_ids")
	roundTrip(t, field, []any{"30", "10"}, func(a, b []testID) bool { return reflect.DeepEqual(a, b) })
	roundTrip(t, field, nil, func(a, b []testID) bool { return reflect.DeepEqual(a, b) })
}

func TestRoundTripInts(t *testing.T) {
	roundTrip(t, Int("position", 0), 22, eq[int])
	roundTrip(t, OptionalInt("afk_timeout", 0), 300, eq[int])
	roundTrip(t, OptionalInt("afk_timeout", 0), 0, eq[int])
	roundTrip(t, NullableInt("max_presences", 0), 25000, eq[int])
	roundTrip(t, NullableInt("max_presences", 0), 0, eq[int])
}

func TestRoundTripBools(t *testing.T) {
	roundTrip(t, Bool("animated", false), true, eq[bool])
	roundTrip(t, Bool("animated", false), false, eq[bool])
	roundTrip(t, NegatedBool("unavailable", true), false, eq[bool])
	roundTrip(t, NegatedBool("unavailable", true), true, eq[bool])
}

func TestRoundTripStrings(t *testing.T) {
	roundTrip(t, ForceString("name"), "rose", eq[string])
	roundTrip(t, ForceString("name"), "", eq[string])
	roundTrip(t, NullableString("description"), "about", eq[string])
	roundTrip(t, NullableString("description"), nil, eq[string])
}

func TestRoundTripEnums(t *testing.T) {
	roundTrip(t, Enum("verification_level", testLevelNone), testLevelHigh, eq[testLevel])
	roundTrip(t, OptionalEnum("mfa_level", testLevelNone), testLevelNone, eq[testLevel])
	roundTrip(t, StringEnum("preferred_locale", testFeature("en-US")), testFeature("hu"), eq[testFeature])
	roundTrip(t, StringEnumArray[testFeature]("features"), []any{"B", "A"}, func(a, b []testFeature) bool {
		return reflect.DeepEqual(a, b)
	})
}

func TestRoundTripFlags(t *testing.T) {
	roundTrip(t, Flag[testFlags]("flags"), testFlags(6), eq[testFlags])
	roundTrip(t, Flag[testFlags]("flags"), testFlags(0), eq[testFlags])
	roundTrip(t, StringFlag[testFlags]("permissions"), testFlags(1071698529857), eq[testFlags])
}

func TestRoundTripTime(t *testing.T) {
	field := NullableTime("joined_at")
	moment := time.Date(2024, 11, 5, 16, 20, 9, 500000000, time.UTC)
	roundTrip(t, field, moment, func(a, b time.Time) bool { return a.Equal(b) })
	roundTrip(t, field, nil, func(a, b time.Time) bool { return a.Equal(b) })
}
