/*
Package dispatch offers a functional-style alternative to a multi-branch
switch statement: a table maps choice values to handler functions, and a
dispatcher built from the table invokes the matched handler, forwarding the
choice plus any extra arguments.

Two construction modes exist.

Exhaustive dispatchers require the table to bind every member of a closed
choice domain. Go's type system cannot check totality of a map literal, so
the domain is passed explicitly and coverage is verified at construction,
failing fast before any dispatch happens:

	weekday := dispatch.Exhaustive([]string{"mon", "tue", "wed", "thu", "fri"},
		dispatch.Table[string, string]{
			"mon": openShop,
			"tue": openShop,
			"wed": openShop,
			"thu": openShop,
			"fri": closeEarly,
		})
	msg := weekday("tue")

Partial dispatchers tolerate gaps. A choice without a handler is not an
error; the dispatcher answers with maybe.Nothing instead:

	lucky := dispatch.Partial(dispatch.Table[int, string]{
		3: announce,
		5: announce,
		7: announce,
	})
	m := lucky(4)            // maybe.Nothing[string]()
	s := m.WithDefault("no") // "no"

Both modes run the same algorithm: one map lookup, then a call to the
matched handler with the choice prepended to the extra arguments. The
dispatcher is transparent to the handler's return value and to anything the
handler panics with. Tables are copied at construction and never mutated
afterwards, so a dispatcher may be shared freely between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dispatch

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.dispatch'.
func tracer() tracing.Trace {
	return tracing.Select("fp.dispatch")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dispatch: "+msg, msgargs...)
		panic(msg)
	}
}
