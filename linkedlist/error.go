package linkedlist

import (
	"errors"
	"fmt"
)

// Kind is a category of fatal precondition violation.
type Kind int

// Violation kinds. The numeric value of a kind is its process exit status.
const (
	NullHandle Kind = iota + 1
	IndexOutOfRange
	NoSuchElement
	IllegalState
	StaleIterator
)

// Sentinel errors matched by errors.Is against a recovered *Error.
var (
	ErrNullHandle      = errors.New("nil pointer")
	ErrIndexOutOfRange = errors.New("index out of bounds")
	ErrNoSuchElement   = errors.New("no such element")
	ErrIllegalState    = errors.New("illegal state")
	ErrStaleIterator   = errors.New("stale iterator")
)

// ExitCode returns the process exit status for violations of kind k.
func (k Kind) ExitCode() int {
	return int(k)
}

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case NullHandle:
		return ErrNullHandle
	case IndexOutOfRange:
		return ErrIndexOutOfRange
	case NoSuchElement:
		return ErrNoSuchElement
	case IllegalState:
		return ErrIllegalState
	case StaleIterator:
		return ErrStaleIterator
	default:
		return nil
	}
}

// Error describes a violated precondition. Operations on List and Iterator
// never return it; they panic with it.
type Error struct {
	// Op is the name of the operation that detected the violation.
	Op   string
	Kind Kind

	// Index and Size are set for IndexOutOfRange.
	Index int
	Size  int

	subject string
}

func (e *Error) Error() string {
	switch e.Kind {
	case NullHandle:
		return fmt.Sprintf("linkedlist: %s: %s: %s must not be nil", e.Op, e.Kind, e.subject)
	case IndexOutOfRange:
		return fmt.Sprintf("linkedlist: %s: %s: index=%d, size=%d", e.Op, e.Kind, e.Index, e.Size)
	case NoSuchElement:
		return fmt.Sprintf("linkedlist: %s: %s: use HasNext()", e.Op, e.Kind)
	case IllegalState:
		return fmt.Sprintf("linkedlist: %s: %s: must call Next()", e.Op, e.Kind)
	case StaleIterator:
		return fmt.Sprintf("linkedlist: %s: %s: list was modified outside the iterator", e.Op, e.Kind)
	default:
		return fmt.Sprintf("linkedlist: %s: %s", e.Op, e.Kind)
	}
}

// Unwrap returns the sentinel error for the violation kind.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// fatal releases the nodes of l, if any, and panics with err.
func fatal(l *List, err *Error) {
	if l != nil {
		l.Clear()
	}
	panic(err)
}
