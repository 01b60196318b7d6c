package scenario

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/Edwardok/C-codes/linkedlist"
)

// ErrMismatch indicates a step produced an unexpected result.
var ErrMismatch = errors.New("unexpected result")

// Result is the outcome of a scenario run.
type Result struct {
	// Outputs holds the output of each executed step: an int, a bool or nil.
	Outputs []interface{}
	// Values is the final list contents.
	Values []int
}

// Run executes s against a new list.
//
// A precondition violation panics with a *linkedlist.Error unless the
// WithRecover option is set, in which case it is returned as the error.
// The result holds the outputs of the steps executed before the failure.
func Run(s *Scenario, opts ...Option) (res *Result, err error) {
	o := newDefaultRunOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	r := &runner{
		opts: o,
		list: linkedlist.New(),
	}
	res = &Result{}

	defer func() {
		res.Values = r.list.Values()
	}()

	if o.recover {
		defer func() {
			if v := recover(); v != nil {
				lerr, ok := v.(*linkedlist.Error)
				if !ok {
					panic(v)
				}
				err = lerr
			}
		}()
	}

	for i, step := range s.Steps {
		if o.trace {
			fmt.Fprintf(o.output, "%d: %s\n", i, step)
		}

		out, err := r.exec(step)
		if err != nil {
			return res, err
		}
		res.Outputs = append(res.Outputs, out)

		if step.Want != nil && !reflect.DeepEqual(out, step.Want) {
			return res, fmt.Errorf("scenario %q: step %d (%s): %w: want %v, got %v", s.Name, i, step, ErrMismatch, step.Want, out)
		}

		if step.Expect != nil {
			if got := r.list.Values(); !slices.Equal(got, *step.Expect) {
				return res, fmt.Errorf("scenario %q: step %d (%s): %w: expected list %v, got %v", s.Name, i, step, ErrMismatch, *step.Expect, got)
			}
		}
	}

	return res, nil
}

type runner struct {
	opts runOptions
	list *linkedlist.List
	it   *linkedlist.Iterator
}

// exec performs a single step. Iterator steps before iter_init operate on a
// nil iterator and so fail as a precondition violation.
func (r *runner) exec(step Step) (interface{}, error) {
	l := r.list

	switch step.Op {
	case OpAdd:
		l.Add(*step.Value)
	case OpAddAt:
		l.AddAt(*step.Index, *step.Value)
	case OpRemove:
		return l.Remove(*step.Value), nil
	case OpRemoveAt:
		return l.RemoveAt(*step.Index), nil
	case OpGet:
		return l.Get(*step.Index), nil
	case OpSet:
		return l.Set(*step.Index, *step.Value), nil
	case OpContains:
		return l.Contains(*step.Value), nil
	case OpClear:
		l.Clear()
	case OpIsEmpty:
		return l.IsEmpty(), nil
	case OpSize:
		return l.Len(), nil
	case OpPrint:
		if _, err := fmt.Fprintf(r.opts.output, "Values: %s\nSize: %d\n", l, l.Len()); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
	case OpIterInit:
		r.it = l.Iterator()
	case OpIterHasNext:
		return r.it.HasNext(), nil
	case OpIterNext:
		return r.it.Next(), nil
	case OpIterRemove:
		r.it.Remove()
	case OpIterAdd:
		r.it.Add(*step.Value)
	case OpIterSet:
		r.it.Set(*step.Value)
	default:
		return nil, fmt.Errorf("%w: unknown op %q", ErrInvalid, step.Op)
	}

	return nil, nil
}
