package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

func TestUnwrap_Ok(t *testing.T) {
	t.Parallel()

	if got := Unwrap(Ok[int, string](123)); got != 123 {
		t.Fatalf("expected 123, got %v", got)
	}
}

func TestUnwrap_Err(t *testing.T) {
	t.Parallel()

	err := recoverError(t, func() { Unwrap(Err[int]("error message")) })

	assert.EqualError(t, err, `Unwrapping an error result: "error message"`)
	var unwrapErr *UnwrapError
	require.ErrorAs(t, err, &unwrapErr)
	assert.Equal(t, "error message", unwrapErr.Payload)
	assert.ErrorIs(t, err, ErrUnwrapErr)
}

func TestUnwrap_NonResult(t *testing.T) {
	t.Parallel()

	err := recoverError(t, func() { Unwrap(Result[int, string]{}) })
	assert.EqualError(t, err, "Unwrapping a non-result value: null")

	err = recoverError(t, func() { Unwrap(Narrow[int, string](map[string]any{})) })
	assert.EqualError(t, err, "Unwrapping a non-result value: {}")
	var nonResult *NonResultError
	require.ErrorAs(t, err, &nonResult)
	assert.Equal(t, map[string]any{}, nonResult.Value)
	assert.ErrorIs(t, err, ErrNotResult)
}

func TestUnwrap_NonResultRawBytes(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "Unwrapping a non-result value: nope", func() {
		Unwrap(Narrow[int, string](json.RawMessage("nope")))
	})
}

func TestUnwrap_RendersStructuredPayload(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, `Unwrapping an error result: {"code":7,"reason":"denied"}`, func() {
		Unwrap(Err[int](map[string]any{"reason": "denied", "code": 7}))
	})
	assert.PanicsWithError(t, `Unwrapping an error result: "boom"`, func() {
		Unwrap(Err[int, error](errors.New("boom")))
	})
}

func TestUnwrapErr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error message", UnwrapErr(Err[int]("error message")))

	err := recoverError(t, func() { UnwrapErr(Ok[int, string](123)) })
	assert.EqualError(t, err, "Unwrapping an ok result: 123")
	var okErr *UnwrapOkError
	require.ErrorAs(t, err, &okErr)
	assert.Equal(t, 123, okErr.Payload)
	assert.ErrorIs(t, err, ErrUnwrapOk)

	err = recoverError(t, func() { UnwrapErr(Narrow[int, string]("nope")) })
	assert.EqualError(t, err, `Unwrapping a non-result value: "nope"`)
	assert.ErrorIs(t, err, ErrNotResult)
}

func TestExpect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 123, Expect(Ok[int, string](123), "msg"))

	err := recoverError(t, func() { Expect(Err[int]("error message"), "msg") })
	assert.EqualError(t, err, `msg: "error message"`)
	assert.ErrorIs(t, err, ErrUnwrapErr)

	err = recoverError(t, func() { Expect(Narrow[int, string](123), "msg") })
	assert.EqualError(t, err, "msg: Expecting result from a non-result value: 123")
	assert.ErrorIs(t, err, ErrNotResult)
}

func TestTryUnwrap(t *testing.T) {
	t.Parallel()

	v, err := TryUnwrap(Ok[string, error]("value"))
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = TryUnwrap(Err[string, error](fmt.Errorf("reading: %w", io.EOF)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnwrapErr)
	assert.ErrorIs(t, err, io.EOF)
	assert.EqualError(t, err, `Unwrapping an error result: "reading: EOF"`)

	_, err = TryUnwrap(Result[string, error]{})
	assert.ErrorIs(t, err, ErrNotResult)
}

func TestTryUnwrapErr(t *testing.T) {
	t.Parallel()

	e, err := TryUnwrapErr(Err[int]("bad"))
	require.NoError(t, err)
	assert.Equal(t, "bad", e)

	_, err = TryUnwrapErr(Ok[int, string](1))
	assert.ErrorIs(t, err, ErrUnwrapOk)
	assert.NotErrorIs(t, err, ErrUnwrapErr)

	_, err = TryUnwrapErr(Result[int, string]{})
	assert.ErrorIs(t, err, ErrNotResult)
}

func TestTryExpect(t *testing.T) {
	t.Parallel()

	v, err := TryExpect(Ok[int, string](5), "loading config")
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = TryExpect(Err[int]("missing"), "loading config")
	assert.EqualError(t, err, `loading config: "missing"`)
}
