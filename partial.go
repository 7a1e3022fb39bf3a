package dispatch

import "github.com/fpkit/dispatch/maybe"

// PartialDispatcher is a callable closure over a partial dispatch table.
// A choice without a handler is a normal outcome, answered with
// maybe.Nothing; see Partial.
type PartialDispatcher[C comparable, R any] func(choice C, extra ...interface{}) maybe.Maybe[R]

// Partial builds a dispatcher from a table which may bind any subset of the
// choice domain. Lookup and invocation work exactly as with Exhaustive; the
// sole difference is the absence policy: a bound choice yields
// maybe.Just of the handler's result, an unbound choice yields
// maybe.Nothing and never panics.
//
//	lucky := dispatch.Partial(dispatch.Table[int, string]{
//		3: announce,
//		5: announce,
//		7: announce,
//	})
//	m := lucky(4)   // maybe.Nothing[string]()
func Partial[C comparable, R any](table Table[C, R]) PartialDispatcher[C, R] {
	t := make(Table[C, R], len(table))
	for choice, handler := range table {
		t[choice] = handler
	}
	tracer().Debugf("partial dispatch table binds %d choices", len(t))
	return func(choice C, extra ...interface{}) maybe.Maybe[R] {
		handler, ok := t[choice]
		if !ok {
			return maybe.Nothing[R]()
		}
		return maybe.Just(handler(choice, extra...))
	}
}

// Sparse is a synonym for Partial. Both names resolve to the identical
// behavior.
func Sparse[C comparable, R any](table Table[C, R]) PartialDispatcher[C, R] {
	return Partial(table)
}
