package codec

import "fmt"

// TypeError reports a validator input of an unacceptable type.
type TypeError struct {
	// Name identifies the field being validated.
	Name string
	// Expected describes the acceptable input forms.
	Expected string
	// Value is the rejected input.
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cordcore: %s: expected %s, got %T", e.Name, e.Expected, e.Value)
}

// ValueError reports a validator input of acceptable type whose value falls
// outside the field's domain.
type ValueError struct {
	// Name identifies the field being validated.
	Name string
	// Requirement describes the violated constraint.
	Requirement string
	// Value is the rejected input.
	Value any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("cordcore: %s: %v does not satisfy: %s", e.Name, e.Value, e.Requirement)
}

func typeErr(name, expected string, value any) error {
	return &TypeError{Name: name, Expected: expected, Value: value}
}

func valueErr(name, requirement string, value any) error {
	return &ValueError{Name: name, Requirement: requirement, Value: value}
}
