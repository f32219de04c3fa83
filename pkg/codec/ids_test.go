package codec

import (
	"errors"
	"reflect"
	"testing"
)

type testID uint64

type identifiableStub struct {
	id uint64
}

func (s identifiableStub) RawID() uint64 { return s.id }

func TestOptionalEntityIDPut(t *testing.T) {
	field := OptionalEntityID[testID]("safety_alerts_channel_id")

	cases := []struct {
		name     string
		value    testID
		defaults bool
		want     Payload
	}{
		{name: "zero without defaults", value: 0, defaults: false, want: Payload{}},
		{name: "zero with defaults", value: 0, defaults: true, want: Payload{"safety_alerts_channel_id": nil}},
		{name: "set without defaults", value: 20250101, defaults: false, want: Payload{"safety_alerts_channel_id": "20250101"}},
		{name: "set with defaults", value: 20250101, defaults: true, want: Payload{"safety_alerts_channel_id": "20250101"}},
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

func TestEntityIDPutAlwaysWrites(t *testing.T) {
	field := EntityID[testID]("id")
	if got := field.Put(0, Payload{}, false); !reflect.DeepEqual(got, Payload{"id": nil}) {
		t.Fatalf("zero id = %v, want explicit null", got)
	}
	if got := field.Put(7, Payload{}, false); !reflect.DeepEqual(got, Payload{"id": "7"}) {
		t.Fatalf("nonzero id = %v", got)
	}
}

func TestEntityIDParse(t *testing.T) {
	field := EntityID[testID]("id")

	cases := []struct {
		name string
		data Payload
		want testID
	}{
		{name: "absent", data: Payload{}, want: 0},
		{name: "null", data: Payload{"id": nil}, want: 0},
		{name: "decimal string", data: Payload{"id": "202502180001"}, want: 202502180001},
		{name: "non numeric string", data: Payload{"id": "abc"}, want: 0},
		{name: "json number", data: Payload{"id": float64(42)}, want: 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := field.Parse(tc.data); got != tc.want {
				t.Fatalf("parse(%v) = %d, want %d", tc.data, got, tc.want)
			}
		})
	}
}

func TestEntityIDValidate(t *testing.T) {
	validate := EntityIDValidator[testID]("channel_id")

	if got, err := validate(nil); err != nil || got != 0 {
		t.Fatalf("validate(nil) = %d, %v", got, err)
	}
	if got, err := validate(testID(5)); err != nil || got != 5 {
		t.Fatalf("validate(testID) = %d, %v", got, err)
	}
	if got, err := validate(12); err != nil || got != 12 {
		t.Fatalf("validate(int) = %d, %v", got, err)
	}
	if got, err := validate("360"); err != nil || got != 360 {
		t.Fatalf("validate(string) = %d, %v", got, err)
	}
	if got, err := validate(identifiableStub{id: 99}); err != nil || got != 99 {
		t.Fatalf("validate(entity) = %d, %v", got, err)
	}

	var wrongType *TypeError
	if _, err := validate(1.5); err == nil {
		t.Fatalf("expected error for fractional input")
	}
	if _, err := validate([]int{1}); !errors.As(err, &wrongType) {
		t.Fatalf("expected TypeError for slice input, got %v", err)
	}
	var wrongValue *ValueError
	if _, err := validate("not-a-number"); !errors.As(err, &wrongValue) {
		t.Fatalf("expected ValueError for non numeric string, got %v", err)
	}
	if _, err := validate(-3); !errors.As(err, &wrongValue) {
		t.Fatalf("expected ValueError for negative id, got %v", err)
	}
}

func TestEntityIDArrayPut(t *testing.T) {
	field := EntityIDArray[testID]("roles")

	cases := []struct {
		name     string
		value    []testID
		defaults bool
		want     Payload
	}{
		{name: "nil without defaults", value: nil, defaults: false, want: Payload{}},
		{name: "nil with defaults", value: nil, defaults: true, want: Payload{"roles": []string{}}},
		{name: "one element", value: []testID{31}, defaults: false, want: Payload{"roles": []string{"31"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := field.Put(tc.value, Payload{}, tc.defaults)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("put(%v, defaults=%v) = %v, want %v", tc.value, tc.defaults, got, tc.want)
			}
		})
	}
}

func TestEntityIDArrayParseSortsAndCollapses(t *testing.T) {
	field := EntityIDArray[testID]("roles")

	if got := field.Parse(Payload{}); got != nil {
		t.Fatalf("absent key = %v, want nil", got)
	}
	if got := field.Parse(Payload{"roles": nil}); got != nil {
		t.Fatalf("null = %v, want nil", got)
	}
	if got := field.Parse(Payload{"roles": []any{}}); got != nil {
		t.Fatalf("empty array = %v, want nil", got)
	}
	got := field.Parse(Payload{"roles": []any{"30", "10", "20"}})
	if !reflect.DeepEqual(got, []testID{10, 20, 30}) {
		t.Fatalf("parse order = %v, want ascending", got)
	}
}

func TestEntityIDArrayValidate(t *testing.T) {
	validate := EntityIDArrayValidator[testID]("role_ids")

	got, err := validate([]any{"3", 1, identifiableStub{id: 2}})
	if err != nil {
		t.Fatalf("validate mixed: %v", err)
	}
	if !reflect.DeepEqual(got, []testID{1, 2, 3}) {
		t.Fatalf("validate mixed = %v", got)
	}
	if out, err := validate(nil); err != nil || out != nil {
		t.Fatalf("validate(nil) = %v, %v", out, err)
	}
	if out, err := validate([]testID{}); err != nil || out != nil {
		t.Fatalf("validate(empty) = %v, %v", out, err)
	}
	if _, err := validate("30"); err == nil {
		t.Fatalf("expected TypeError for scalar input")
	}
	if _, err := validate([]any{"x"}); err == nil {
		t.Fatalf("expected ValueError for bad element")
	}
}
