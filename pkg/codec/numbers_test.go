package codec

import (
	"errors"
	"reflect"
	"testing"
)

func TestOptionalIntPut(t *testing.T) {
	field := OptionalInt("afk_timeout", 0)

	cases := []struct {
		name     string
		value    int
		defaults bool
		want     Payload
	}{
		{name: "default hidden", value: 0, defaults: false, want: Payload{}},
		{name: "default forced", value: 0, defaults: true, want: Payload{"afk_timeout": 0}},
		{name: "set", value: 300, defaults: false, want: Payload{"afk_timeout": 300}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := field.Put(tc.value, Payload{}, tc.defaults)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("put(%d, defaults=%v) = %v, want %v", tc.value, tc.defaults, got, tc.want)
			}
		})
	}
}

func TestIntPutAlwaysWrites(t *testing.T) {
	field := Int("position", 0)
	if got := field.Put(0, Payload{}, false); !reflect.DeepEqual(got, Payload{"position": 0}) {
		t.Fatalf("force put = %v", got)
	}
}

func TestNullableIntPut(t *testing.T) {
	field := NullableInt("max_presences", 0)
	if got := field.Put(0, Payload{}, false); !reflect.DeepEqual(got, Payload{}) {
		t.Fatalf("default hidden = %v", got)
	}
	if got := field.Put(0, Payload{}, true); !reflect.DeepEqual(got, Payload{"max_presences": nil}) {
		t.Fatalf("default forced = %v, want null", got)
	}
	if got := field.Put(25000, Payload{}, false); !reflect.DeepEqual(got, Payload{"max_presences": 25000}) {
		t.Fatalf("set = %v", got)
	}
}

func TestOptionalIntPostprocessPut(t *testing.T) {
	field := OptionalIntPostprocess("days", 0, func(v int) any { return v * 2 })
	if got := field.Put(3, Payload{}, false); !reflect.DeepEqual(got, Payload{"days": 6}) {
		t.Fatalf("postprocess = %v", got)
	}
	if got := field.Put(0, Payload{}, false); !reflect.DeepEqual(got, Payload{}) {
		t.Fatalf("default hidden = %v", got)
	}
}

func TestIntParseDefaults(t *testing.T) {
	field := OptionalInt("afk_timeout", 300)
	if got := field.Parse(Payload{}); got != 300 {
		t.Fatalf("absent = %d, want default", got)
	}
	if got := field.Parse(Payload{"afk_timeout": float64(900)}); got != 900 {
		t.Fatalf("json number = %d", got)
	}
	if got := field.Parse(Payload{"afk_timeout": "bad"}); got != 300 {
		t.Fatalf("malformed = %d, want default", got)
	}
}

func TestBoolField(t *testing.T) {
	field := Bool("animated", false)
	if got := field.Parse(Payload{"animated": true}); !got {
		t.Fatalf("parse(true) = %v", got)
	}
	if got := field.Parse(Payload{}); got {
		t.Fatalf("parse(absent) = %v, want default", got)
	}
	if got := field.Put(false, Payload{}, false); !reflect.DeepEqual(got, Payload{}) {
		t.Fatalf("default hidden = %v", got)
	}
	if got := field.Put(false, Payload{}, true); !reflect.DeepEqual(got, Payload{"animated": false}) {
		t.Fatalf("default forced = %v", got)
	}

	defaultTrue := Bool("require_colons", true)
	if got := defaultTrue.Put(true, Payload{}, false); !reflect.DeepEqual(got, Payload{}) {
		t.Fatalf("true default hidden = %v", got)
	}
	if got := defaultTrue.Put(false, Payload{}, false); !reflect.DeepEqual(got, Payload{"require_colons": false}) {
		t.Fatalf("non default emitted = %v", got)
	}
}

func TestNegatedBoolField(t *testing.T) {
	field := NegatedBool("unavailable", true)

	if got := field.Parse(Payload{"unavailable": true}); got {
		t.Fatalf("parse(unavailable=true) = %v, want false", got)
	}
	if got := field.Parse(Payload{}); !got {
		t.Fatalf("parse(absent) = %v, want default true", got)
	}
	if got := field.Put(false, Payload{}, false); !reflect.DeepEqual(got, Payload{"unavailable": true}) {
		t.Fatalf("put(false) = %v", got)
	}
	if got := field.Put(true, Payload{}, false); !reflect.DeepEqual(got, Payload{}) {
		t.Fatalf("put(default) = %v, want hidden", got)
	}
}

func TestIntOptionsValidator(t *testing.T) {
	options := []int{0, 60, 300, 900, 1800, 3600}
	validate := IntOptionsValidator("afk_timeout", options...)

	for _, option := range options {
		if got, err := validate(option); err != nil || got != option {
			t.Fatalf("validate(%d) = %d, %v", option, got, err)
		}
	}

	var wrongValue *ValueError
	if _, err := validate(42); !errors.As(err, &wrongValue) {
		t.Fatalf("expected ValueError for non member, got %v", err)
	}
	var wrongType *TypeError
	if _, err := validate("60"); !errors.As(err, &wrongType) {
		t.Fatalf("expected TypeError for string, got %v", err)
	}
}

func TestIntCondValidator(t *testing.T) {
	validate := IntCondValidator("position", func(v int) bool { return v >= 0 }, "a non-negative integer")
	if got, err := validate(4); err != nil || got != 4 {
		t.Fatalf("validate(4) = %d, %v", got, err)
	}
	var wrongValue *ValueError
	if _, err := validate(-1); !errors.As(err, &wrongValue) {
		t.Fatalf("expected ValueError, got %v", err)
	}
}

func TestBoolValidator(t *testing.T) {
	validate := BoolValidator("animated")
	if got, err := validate(true); err != nil || !got {
		t.Fatalf("validate(true) = %v, %v", got, err)
	}
	if _, err := validate(1); err == nil {
		t.Fatalf("expected TypeError for int")
	}
}
