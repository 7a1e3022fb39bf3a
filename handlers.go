package dispatch

// Handler lifts. Handlers always receive the matched choice first, but many
// table entries do not care about it (think of a table mapping 1 to "one").
// These helpers adapt plainer function shapes to the Handler signature.

// Constantly returns a handler producing v, ignoring the choice and any
// extra arguments.
func Constantly[C comparable, R any](v R) Handler[C, R] {
	return func(C, ...interface{}) R {
		return v
	}
}

// Of lifts a function of the choice alone into a handler.
func Of[C comparable, R any](f func(C) R) Handler[C, R] {
	return func(choice C, _ ...interface{}) R {
		return f(choice)
	}
}

// Thunk lifts a nullary function into a handler.
func Thunk[C comparable, R any](f func() R) Handler[C, R] {
	return func(C, ...interface{}) R {
		return f()
	}
}
