package chain

import (
	"github.com/ib-77/rsresult/pkg/result"
)

// Chain wraps a result.Result to enable fluent chaining
type Chain[T, E any] struct {
	result result.Result[T, E]
}

// Start creates a new chain from a result.Result
func Start[T, E any](r result.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: r,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) *Chain[T, E] {
	return &Chain[T, E]{
		result: result.Ok[T, E](value),
	}
}

// Result returns the underlying result.Result
func (c *Chain[T, E]) Result() result.Result[T, E] {
	return c.result
}

// Then chains a function that returns result.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onOk func(T) result.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		result: result.AndThen(c.result, onOk),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnOk func(T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		result: result.AndThen(c.result, func(v T) result.Result[U, error] {
			u, err := tryOnOk(v)
			return result.Try(u, err)
		}),
	}
}

// Map chains a pure transformation of the success payload
func Map[T, U, E any](c *Chain[T, E], onOk func(T) U) *Chain[U, E] {
	return &Chain[U, E]{
		result: result.Map(c.result, onOk),
	}
}

// MapErr chains a pure transformation of the failure payload
func MapErr[T, E, F any](c *Chain[T, E], onErr func(E) F) *Chain[T, F] {
	return &Chain[T, F]{
		result: result.MapErr(c.result, onErr),
	}
}

// Ensure performs a side effect on the success payload without changing the result
func (c *Chain[T, E]) Ensure(onOk func(T)) *Chain[T, E] {
	result.IfOk(c.result, func(v T) struct{} {
		onOk(v)
		return struct{}{}
	})
	return c
}

// Or returns the first Ok chain, else the first Err chain, else c.
func (c *Chain[T, E]) Or(alternatives ...*Chain[T, E]) *Chain[T, E] {
	var firstErr *Chain[T, E]
	for _, ch := range append([]*Chain[T, E]{c}, alternatives...) {
		if ch.result.IsOk() {
			return ch
		}
		if ch.result.IsErr() && firstErr == nil {
			firstErr = ch
		}
	}

	if firstErr != nil {
		return firstErr
	}
	return c
}

// Finally collapses the chain into a final value using result.IfOkOr
func Finally[T, E, U any](c *Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return result.IfOkOr(c.result, onOk, onErr)
}
