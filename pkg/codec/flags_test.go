package codec

import (
	"reflect"
	"testing"
)

type testFlags uint64

func TestFlagPut(t *testing.T) {
	field := Flag[testFlags]("flags")

	cases := []struct {
		name     string
		value    testFlags
		defaults bool
		want     Payload
	}{
		{name: "zero without defaults", value: 0, defaults: false, want: Payload{}},
		{name: "zero with defaults", value: 0, defaults: true, want: Payload{"flags": uint64(0)}},
		{name: "set without defaults", value: 1, defaults: false, want: Payload{"flags": uint64(1)}},
		{name: "set with defaults", value: 1, defaults: true, want: Payload{"flags": uint64(1)}},
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

func TestFlagParse(t *testing.T) {
	field := Flag[testFlags]("flags")
	if got := field.Parse(Payload{"flags": float64(5)}); got != 5 {
		t.Fatalf("parse = %d", got)
	}
	if got := field.Parse(Payload{}); got != 0 {
		t.Fatalf("parse(absent) = %d", got)
	}
}

func TestForceFlagPutsZero(t *testing.T) {
	field := ForceFlag[testFlags]("system_channel_flags")
	got := field.Put(0, Payload{}, false)
	if !reflect.DeepEqual(got, Payload{"system_channel_flags": uint64(0)}) {
		t.Fatalf("zero flag = %v, want forced 0", got)
	}
	got = field.Put(4, Payload{}, false)
	if !reflect.DeepEqual(got, Payload{"system_channel_flags": uint64(4)}) {
		t.Fatalf("flag = %v", got)
	}
}

func TestStringFlagField(t *testing.T) {
	field := StringFlag[testFlags]("permissions")

	if got := field.Put(1071698529857, Payload{}, false); !reflect.DeepEqual(
		got, Payload{"permissions": "1071698529857"},
	) {
		t.Fatalf("put = %v", got)
	}
	if got := field.Put(0, Payload{}, false); !reflect.DeepEqual(got, Payload{}) {
		t.Fatalf("zero hidden = %v", got)
	}
	if got := field.Put(0, Payload{}, true); !reflect.DeepEqual(got, Payload{"permissions": "0"}) {
		t.Fatalf("zero forced = %v", got)
	}
	if got := field.Parse(Payload{"permissions": "1071698529857"}); got != 1071698529857 {
		t.Fatalf("parse string = %d", got)
	}
	if got := field.Parse(Payload{"permissions": float64(8)}); got != 8 {
		t.Fatalf("parse legacy int = %d", got)
	}
}

func TestFlagValidator(t *testing.T) {
	validate := FlagValidator[testFlags]("permissions")

	if got, err := validate(testFlags(8)); err != nil || got != 8 {
		t.Fatalf("validate(flag) = %d, %v", got, err)
	}
	if got, err := validate(8); err != nil || got != 8 {
		t.Fatalf("validate(int) = %d, %v", got, err)
	}
	if got, err := validate("8"); err != nil || got != 8 {
		t.Fatalf("validate(string) = %d, %v", got, err)
	}
	if got, err := validate(nil); err != nil || got != 0 {
		t.Fatalf("validate(nil) = %d, %v", got, err)
	}
	if _, err := validate("eight"); err == nil {
		t.Fatalf("expected ValueError for non decimal string")
	}
	if _, err := validate(3.5); err == nil {
		t.Fatalf("expected TypeError for float")
	}
}
