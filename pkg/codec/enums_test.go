package codec

import (
	"reflect"
	"testing"
)

type testLevel int

const (
	testLevelNone testLevel = 0
	testLevelLow  testLevel = 1
	testLevelHigh testLevel = 3
)

type testFeature string

func TestEnumField(t *testing.T) {
	field := Enum("verification_level", testLevelNone)

	if got := field.Parse(Payload{"verification_level": float64(3)}); got != testLevelHigh {
		t.Fatalf("parse = %d", got)
	}
	if got := field.Parse(Payload{}); got != testLevelNone {
		t.Fatalf("parse(absent) = %d, want default", got)
	}
	if got := field.Put(testLevelLow, Payload{}, false); !reflect.DeepEqual(got, Payload{"verification_level": 1}) {
		t.Fatalf("put = %v", got)
	}
	if got := field.Put(testLevelNone, Payload{}, false); !reflect.DeepEqual(got, Payload{"verification_level": 0}) {
		t.Fatalf("mandatory enum must always write, got %v", got)
	}
}

func TestOptionalEnumPut(t *testing.T) {
	field := OptionalEnum("mfa_level", testLevelNone)
	if got := field.Put(testLevelNone, Payload{}, false); !reflect.DeepEqual(got, Payload{}) {
		t.Fatalf("default hidden = %v", got)
	}
	if got := field.Put(testLevelNone, Payload{}, true); !reflect.DeepEqual(got, Payload{"mfa_level": 0}) {
		t.Fatalf("default forced = %v", got)
	}
}

func TestEnumForwardCompatibility(t *testing.T) {
	field := Enum("type", testLevelNone)

	// A wire value this client version has never seen must neither fail nor
	// lose its numeric identity.
	unknown := field.Parse(Payload{"type": float64(127)})
	if unknown == testLevelNone || unknown == testLevelLow || unknown == testLevelHigh {
		t.Fatalf("unknown value collapsed into a known member: %d", unknown)
	}
	if got := field.Put(unknown, Payload{}, true); !reflect.DeepEqual(got, Payload{"type": 127}) {
		t.Fatalf("unknown member did not round-trip: %v", got)
	}
}

func TestEnumValidator(t *testing.T) {
	validate := EnumValidator[testLevel]("verification_level")

	if got, err := validate(testLevelHigh); err != nil || got != testLevelHigh {
		t.Fatalf("validate(member) = %d, %v", got, err)
	}
	if got, err := validate(2); err != nil || got != testLevel(2) {
		t.Fatalf("validate(raw) = %d, %v", got, err)
	}
	if _, err := validate("3"); err == nil {
		t.Fatalf("expected TypeError for string input")
	}
	type otherEnum int
	if _, err := validate(otherEnum(1)); err == nil {
		t.Fatalf("expected TypeError for foreign enum type")
	}
}

func TestStringEnumField(t *testing.T) {
	field := StringEnum("preferred_locale", testFeature("en-US"))

	if got := field.Parse(Payload{"preferred_locale": "hu"}); got != "hu" {
		t.Fatalf("parse = %q", got)
	}
	if got := field.Parse(Payload{}); got != "en-US" {
		t.Fatalf("parse(absent) = %q, want default", got)
	}
	if got := field.Put("en-US", Payload{}, false); !reflect.DeepEqual(got, Payload{}) {
		t.Fatalf("default hidden = %v", got)
	}
	if got := field.Put("hu", Payload{}, false); !reflect.DeepEqual(got, Payload{"preferred_locale": "hu"}) {
		t.Fatalf("put = %v", got)
	}
}

func TestForceStringEnumPutsDefault(t *testing.T) {
	field := ForceStringEnum("preferred_locale", testFeature("en-US"))
	got := field.Put("en-US", Payload{}, false)
	if !reflect.DeepEqual(got, Payload{"preferred_locale": "en-US"}) {
		t.Fatalf("default = %v, want forced", got)
	}
}

func TestStringEnumArrayField(t *testing.T) {
	field := StringEnumArray[testFeature]("features")

	if got := field.Parse(Payload{"features": []any{"VERIFIED", "ANIMATED_ICON"}}); !reflect.DeepEqual(
		got, []testFeature{"ANIMATED_ICON", "VERIFIED"},
	) {
		t.Fatalf("parse = %v, want ascending", got)
	}
	if got := field.Parse(Payload{"features": []any{}}); got != nil {
		t.Fatalf("empty = %v, want nil", got)
	}
	if got := field.Put(nil, Payload{}, true); !reflect.DeepEqual(got, Payload{"features": []string{}}) {
		t.Fatalf("nil forced = %v", got)
	}
	if got := field.Put(nil, Payload{}, false); !reflect.DeepEqual(got, Payload{}) {
		t.Fatalf("nil hidden = %v", got)
	}

	validated, err := field.Validate([]any{"B", "A"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !reflect.DeepEqual(validated, []testFeature{"A", "B"}) {
		t.Fatalf("validate = %v", validated)
	}
	if _, err := field.Validate(42); err == nil {
		t.Fatalf("expected TypeError for scalar")
	}
}
