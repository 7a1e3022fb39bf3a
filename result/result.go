/*
Package result provides a carrier for the outcome of a computation that may
fail, in the style of Elm's

	module Result exposing (Result(Ok,Err), withDefault, toMaybe, fromMaybe)

Within this module it is the return type of checked dispatch: Ok of the
handler's result for a bound choice, Err of a missing-handler error for an
unbound one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package result

import "github.com/fpkit/dispatch/maybe"

// Result wraps either a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. err must be non-nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Match lets clients decompose a Result with a switch:
//
//	var v int
//	var e error
//	switch m := r.Match(); m {
//	case m.Ok(&v):
//		// use v
//	case m.Err(&e):
//		// handle e
//	}
func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault returns the wrapped value, or def if r is an Err.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// IsOk reports whether r wraps a value.
func (r result[T]) IsOk() bool {
	return r.err == nil
}

// ToMaybe forgets the error: Ok becomes Just, Err becomes Nothing.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	case m.Err(&e):
	}
	return maybe.Nothing[T]()
}

// FromMaybe turns an absent value into a failure: Just becomes Ok, Nothing
// becomes Err(err).
func FromMaybe[T any](m maybe.Maybe[T], err error) Result[T] {
	var v T
	switch mm := m.Match(); mm {
	case mm.Just(&v):
		return Ok(v)
	case mm.Nothing():
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-based decomposition of a Result; see Result.Match.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
