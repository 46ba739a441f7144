// Package wrap brackets arbitrary callables with observational side effects.
//
// A wrapped callable runs its Before hook, forwards all arguments to the
// original callable, runs its After hook, and returns the original result
// unchanged. Hooks never see or alter arguments or results.
//
// Failure policy: the After hook is GUARANTEED to run exactly once per
// invocation, even when the wrapped callable panics or returns an error.
// The guarantee is implemented with defer, so a panic still unwinds through
// the wrapper after the hook has fired. This is a deliberate, tested
// contract; callers relying on "after is skipped on failure" semantics
// should not use this package.
package wrap

// Hooks holds the bracketing actions applied around a wrapped call.
//
// Either hook may be nil, in which case that side of the bracket is skipped.
// Hooks must be observational only: they receive nothing and return nothing.
type Hooks struct {
	Before func()
	After  func()
}

func (h Hooks) before() {
	if h.Before != nil {
		h.Before()
	}
}

func (h Hooks) after() {
	if h.After != nil {
		h.After()
	}
}

// Func0 wraps a no-argument callable.
func Func0[R any](fn func() R, h Hooks) func() R {
	return func() R {
		h.before()
		defer h.after()
		return fn()
	}
}

// Func1 wraps a single-argument callable.
func Func1[A, R any](fn func(A) R, h Hooks) func(A) R {
	return func(a A) R {
		h.before()
		defer h.after()
		return fn(a)
	}
}

// Func2 wraps a two-argument callable.
func Func2[A, B, R any](fn func(A, B) R, h Hooks) func(A, B) R {
	return func(a A, b B) R {
		h.before()
		defer h.after()
		return fn(a, b)
	}
}

// Func1E wraps a single-argument callable that can fail.
//
// The error is forwarded untouched; the After hook runs whether or not the
// call failed.
func Func1E[A, R any](fn func(A) (R, error), h Hooks) func(A) (R, error) {
	return func(a A) (R, error) {
		h.before()
		defer h.after()
		return fn(a)
	}
}

// Variadic wraps a callable taking any number of loosely typed arguments.
//
// It forwards the argument slice as-is, without inspecting or copying it.
func Variadic(fn func(args ...any) any, h Hooks) func(args ...any) any {
	return func(args ...any) any {
		h.before()
		defer h.after()
		return fn(args...)
	}
}
