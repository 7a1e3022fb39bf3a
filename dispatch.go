package dispatch

import "fmt"

// Handler is a function bound to a choice value. The matched choice is
// always the handler's first argument; extra arguments given at dispatch
// time follow positionally and unchanged.
type Handler[C comparable, R any] func(choice C, extra ...interface{}) R

// Table maps choice values to handlers. Constructors copy the table they
// are given, so a table literal may be reused or modified by the caller
// without affecting dispatchers already built from it.
type Table[C comparable, R any] map[C]Handler[C, R]

// Dispatcher is a callable closure over an exhaustive dispatch table.
// Invoking it with a choice outside the declared domain panics with
// *MissingHandlerError; see Exhaustive.
type Dispatcher[C comparable, R any] func(choice C, extra ...interface{}) R

// MissingHandlerError is the panic value of an exhaustive dispatcher that
// was invoked with a choice its table does not bind. With a correctly
// declared domain this can only happen for choices arriving dynamically,
// e.g. from external input.
type MissingHandlerError[C comparable] struct {
	Choice C
}

func (e *MissingHandlerError[C]) Error() string {
	return fmt.Sprintf("dispatch: no handler registered for choice %v", e.Choice)
}

// Exhaustive builds a dispatcher from a table which must cover the complete
// choice domain: every domain member needs a handler, and every table key
// must be a domain member. Violations panic at construction, i.e. before
// the first dispatch.
//
// Use it like this:
//
//	d := dispatch.Exhaustive([]int{1, 2, 3}, dispatch.Table[int, string]{
//		1: dispatch.Constantly[int]("one"),
//		2: dispatch.Constantly[int]("two"),
//		3: dispatch.Constantly[int]("three"),
//	})
//	s := d(1)   // "one"
//
// The returned dispatcher calls the matched handler with
// (choice, extra...) and hands back its result unchanged.
func Exhaustive[C comparable, R any](domain []C, table Table[C, R]) Dispatcher[C, R] {
	t := checkedCopy(domain, table)
	return func(choice C, extra ...interface{}) R {
		handler, ok := t[choice]
		if !ok {
			panic(&MissingHandlerError[C]{Choice: choice})
		}
		return handler(choice, extra...)
	}
}

// Total is a synonym for Exhaustive. Both names resolve to the identical
// behavior.
func Total[C comparable, R any](domain []C, table Table[C, R]) Dispatcher[C, R] {
	return Exhaustive(domain, table)
}

// checkedCopy verifies that table's key set equals the domain and returns a
// private copy of table.
func checkedCopy[C comparable, R any](domain []C, table Table[C, R]) Table[C, R] {
	members := make(map[C]struct{}, len(domain))
	t := make(Table[C, R], len(domain))
	for _, choice := range domain {
		members[choice] = struct{}{}
		handler, ok := table[choice]
		assertThat(ok, "table is missing a handler for choice %v", choice)
		t[choice] = handler
	}
	for key := range table {
		_, ok := members[key]
		assertThat(ok, "table binds choice %v, which is not a domain member", key)
	}
	tracer().Debugf("dispatch table covers all %d choices of the domain", len(t))
	return t
}
