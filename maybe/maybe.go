/*
Package maybe provides an optional-value type in the style of Elm's

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

Within this module it serves as the absence marker of partial dispatch:
a partial dispatcher answers maybe.Just of the handler's result for a bound
choice, and maybe.Nothing for an unbound one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package maybe

// Maybe wraps an optional value of type T: either Just a value, or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsJust() bool
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Match lets clients decompose a Maybe with a switch:
//
//	var v int
//	switch m := x.Match(); m {
//	case m.Just(&v):
//		// use v
//	case m.Nothing():
//		// absent
//	}
func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault returns the wrapped value, or def if m is Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value, if present.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// IsJust reports whether m wraps a value.
func (m maybe[T]) IsJust() bool {
	return m.tag
}

// IsNothing reports whether m is absent.
func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains computations which may fail to produce a value: it applies
// f to the wrapped value of x, if present, and returns Nothing otherwise.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map is the function form of Maybe.Map, allowing f to change the value
// type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-based decomposition of a Maybe; see Maybe.Match.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
