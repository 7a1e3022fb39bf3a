package dispatch

import "github.com/fpkit/dispatch/result"

// CheckedDispatcher is the error-returning rendering of an exhaustive
// dispatcher, meant for choices that arrive dynamically (from user input,
// the wire, …) and therefore bypass the domain declaration; see Checked.
type CheckedDispatcher[C comparable, R any] func(choice C, extra ...interface{}) result.Result[R]

// Checked builds a dispatcher with the same construction-time coverage
// check as Exhaustive, but instead of panicking on an out-of-domain choice
// at call time it returns result.Err carrying a *MissingHandlerError. A
// bound choice yields result.Ok of the handler's result.
//
// Checked is not a third dispatch mode: same table contract, same
// algorithm, only the missing-handler signal is an error value instead of
// a panic.
func Checked[C comparable, R any](domain []C, table Table[C, R]) CheckedDispatcher[C, R] {
	t := checkedCopy(domain, table)
	return func(choice C, extra ...interface{}) result.Result[R] {
		handler, ok := t[choice]
		if !ok {
			return result.Err[R](&MissingHandlerError[C]{Choice: choice})
		}
		return result.Ok(handler(choice, extra...))
	}
}
