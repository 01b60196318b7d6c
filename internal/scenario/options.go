package scenario

import (
	"io"
)

// Option is a scenario run option.
type Option interface {
	apply(*runOptions)
}

type runOptions struct {
	output  io.Writer
	trace   bool
	recover bool
}

func newDefaultRunOptions() runOptions {
	return runOptions{
		output:  io.Discard,
		trace:   false,
		recover: false,
	}
}

// WithOutput option configures where print steps and traces are written.
//
// The zero value discards output.
func WithOutput(w io.Writer) Option {
	return funcOption(func(opts *runOptions) {
		if w == nil {
			w = io.Discard
		}
		opts.output = w
	})
}

// WithTrace option configures the run to write each step before executing it.
func WithTrace(enabled bool) Option {
	return funcOption(func(opts *runOptions) {
		opts.trace = enabled
	})
}

// WithRecover option configures the run to return a precondition violation
// as a *linkedlist.Error instead of letting the panic propagate.
func WithRecover(enabled bool) Option {
	return funcOption(func(opts *runOptions) {
		opts.recover = enabled
	})
}

type funcOption func(*runOptions)

func (o funcOption) apply(opts *runOptions) {
	o(opts)
}
