package result

// Map applies fn to the success payload. Err and invalid inputs are carried
// over with their payload untouched and fn is not called.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	switch r.kind {
	case KindOk:
		return Ok[U, E](fn(r.ok))
	case KindErr:
		return Err[U](r.err)
	default:
		return Result[U, E]{raw: r.raw}
	}
}

// MapErr applies fn to the failure payload. Ok and invalid inputs are
// carried over and fn is not called.
func MapErr[T, E, U any](r Result[T, E], fn func(E) U) Result[T, U] {
	switch r.kind {
	case KindErr:
		return Err[T](fn(r.err))
	case KindOk:
		return Ok[T, U](r.ok)
	default:
		return Result[T, U]{raw: r.raw}
	}
}

// AndThen calls fn with the success payload and returns its Result.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	switch r.kind {
	case KindOk:
		return fn(r.ok)
	case KindErr:
		return Err[U](r.err)
	default:
		return Result[U, E]{raw: r.raw}
	}
}

// IfOk calls fn with the success payload and returns what fn returns.
// The boolean is false, and fn is not called, when r is not Ok.
//
// fn may return a completion handle such as a channel; it is handed back
// to the caller as is.
func IfOk[T, E, R any](r Result[T, E], fn func(T) R) (R, bool) {
	if r.kind != KindOk {
		var zero R
		return zero, false
	}
	return fn(r.ok), true
}

// IfOkOr calls okFn when r is Ok and errFn otherwise. An invalid Result
// gives errFn the zero E.
func IfOkOr[T, E, R any](r Result[T, E], okFn func(T) R, errFn func(E) R) R {
	if r.kind == KindOk {
		return okFn(r.ok)
	}
	return errFn(r.err)
}
