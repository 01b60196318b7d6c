package testing

import (
	"reflect"
	"testing"

	"github.com/Edwardok/C-codes/linkedlist"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// Violation runs f and returns the *linkedlist.Error it panicked with,
// or nil if f returned normally. Other panics are propagated.
func Violation(f func()) (err *linkedlist.Error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*linkedlist.Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	f()

	return nil
}

// AssertViolation asserts that f panics with a violation of kind reported by op.
func AssertViolation(t testing.TB, kind linkedlist.Kind, op string, f func()) *linkedlist.Error {
	t.Helper()

	err := Violation(f)
	if err == nil {
		t.Fatalf("expected %s violation in %s", kind, op)
	}
	if err.Kind != kind || err.Op != op {
		t.Fatalf("expected %s violation in %s, got '%v'", kind, op, err)
	}

	return err
}
