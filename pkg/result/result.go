package result

// Kind is the variant tag of a Result.
type Kind uint8

const (
	// KindInvalid marks a value that is not a Result: the zero value, or the
	// outcome of narrowing something that does not have a Result shape.
	KindInvalid Kind = iota
	KindOk
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return OkField
	case KindErr:
		return ErrField
	default:
		return "Invalid"
	}
}

// Field names of the wire representation. A Result is encoded as a record
// holding exactly one of them.
const (
	OkField  = "Ok"
	ErrField = "Err"
)

// Result holds either a success payload of type T or a failure payload of
// type E. The zero value is not a valid Result.
type Result[T, E any] struct {
	kind Kind
	ok   T
	err  E
	raw  any // offending input of a failed narrowing, kept for error messages
}

// Any is a Result whose failure payload is not constrained.
type Any[T any] = Result[T, any]

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		kind: KindOk,
		ok:   value,
	}
}

func Err[T, E any](value E) Result[T, E] {
	return Result[T, E]{
		kind: KindErr,
		err:  value,
	}
}

// Try converts the usual (value, error) pair into a Result.
func Try[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

func (r Result[T, E]) Kind() Kind {
	return r.kind
}

func (r Result[T, E]) IsOk() bool {
	return r.kind == KindOk
}

func (r Result[T, E]) IsErr() bool {
	return r.kind == KindErr
}

// IsValid reports whether r is either Ok or Err.
func (r Result[T, E]) IsValid() bool {
	return r.kind == KindOk || r.kind == KindErr
}

// Value returns the success payload and whether r is Ok.
func (r Result[T, E]) Value() (T, bool) {
	return r.ok, r.kind == KindOk
}

// ErrValue returns the failure payload and whether r is Err.
func (r Result[T, E]) ErrValue() (E, bool) {
	return r.err, r.kind == KindErr
}

func (r Result[T, E]) String() string {
	return r.kind.String() + "(" + render(r.payload()) + ")"
}

func (r Result[T, E]) payload() any {
	switch r.kind {
	case KindOk:
		return r.ok
	case KindErr:
		return r.err
	default:
		return r.raw
	}
}
