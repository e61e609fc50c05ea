package result

// variant is satisfied by every Result instantiation. It lets the untyped
// predicates look inside a Result without knowing its type parameters.
type variant interface {
	// Kind returns the variant tag
	Kind() Kind
	// payload returns the active payload, or the raw input of an invalid Result
	payload() any
}

var (
	_ variant = Result[int, error]{}
	_ variant = (*Result[string, any])(nil)
)
