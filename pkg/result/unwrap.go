package result

// TryUnwrap returns the success payload of r. It fails with *UnwrapError
// when r is Err and with *NonResultError when r is not a valid Result.
func TryUnwrap[T, E any](r Result[T, E]) (T, error) {
	var zero T
	switch r.kind {
	case KindOk:
		return r.ok, nil
	case KindErr:
		return zero, newUnwrapError(r.err, "")
	default:
		return zero, newNonResultError(r.raw, "")
	}
}

// TryUnwrapErr returns the failure payload of r. It fails with
// *UnwrapOkError when r is Ok and with *NonResultError when r is not valid.
func TryUnwrapErr[T, E any](r Result[T, E]) (E, error) {
	var zero E
	switch r.kind {
	case KindErr:
		return r.err, nil
	case KindOk:
		return zero, newUnwrapOkError(r.ok)
	default:
		return zero, newNonResultError(r.raw, "")
	}
}

// TryExpect is TryUnwrap with message used as the prefix of the error text.
func TryExpect[T, E any](r Result[T, E], message string) (T, error) {
	var zero T
	switch r.kind {
	case KindOk:
		return r.ok, nil
	case KindErr:
		return zero, newUnwrapError(r.err, message)
	default:
		return zero, newNonResultError(r.raw, message)
	}
}

// Unwrap returns the success payload of r and panics with the error of
// TryUnwrap otherwise.
func Unwrap[T, E any](r Result[T, E]) T {
	v, err := TryUnwrap(r)
	if err != nil {
		panic(err)
	}
	return v
}

func UnwrapErr[T, E any](r Result[T, E]) E {
	e, err := TryUnwrapErr(r)
	if err != nil {
		panic(err)
	}
	return e
}

// Expect is like Unwrap, but the panic message of an Err starts with message.
func Expect[T, E any](r Result[T, E], message string) T {
	v, err := TryExpect(r, message)
	if err != nil {
		panic(err)
	}
	return v
}
