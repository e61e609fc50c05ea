package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// MarshalJSON encodes r as a record with a single field named after its
// variant. An error payload without its own JSON encoding is written as its
// message. An invalid Result encodes the value it was narrowed from, or null.
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case KindOk:
		return json.Marshal(map[string]any{OkField: wireValue(r.ok)})
	case KindErr:
		return json.Marshal(map[string]any{ErrField: wireValue(r.err)})
	default:
		return json.Marshal(r.raw)
	}
}

// UnmarshalJSON accepts only a record with exactly one field, OkField or
// ErrField. Records with both fields, extra fields or no fields fail with
// an error matching ErrNotResult. A JSON null leaves r unchanged.
func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrNotResult, err)
	}
	if len(fields) != 1 {
		return fmt.Errorf("%w: expected a single %s or %s field, got %q",
			ErrNotResult, OkField, ErrField, slices.Sorted(maps.Keys(fields)))
	}

	if raw, ok := fields[OkField]; ok {
		v, err := decodePayload[T](raw)
		if err != nil {
			return fmt.Errorf("decoding %s payload: %w", OkField, err)
		}
		*r = Ok[T, E](v)
		return nil
	}
	if raw, ok := fields[ErrField]; ok {
		e, err := decodePayload[E](raw)
		if err != nil {
			return fmt.Errorf("decoding %s payload: %w", ErrField, err)
		}
		*r = Err[T](e)
		return nil
	}

	return fmt.Errorf("%w: expected a single %s or %s field, got %q",
		ErrNotResult, OkField, ErrField, slices.Sorted(maps.Keys(fields)))
}

// Decode parses data as the wire form of a Result.
func Decode[T, E any](data []byte) (Result[T, E], error) {
	var r Result[T, E]
	if err := r.UnmarshalJSON(data); err != nil {
		return Result[T, E]{}, err
	}
	if !r.IsValid() {
		return Result[T, E]{}, fmt.Errorf("%w: %s", ErrNotResult, bytes.TrimSpace(data))
	}
	return r, nil
}

// decodePayload unmarshals raw into a T. When T is the error interface a
// JSON string becomes an error with that message.
func decodePayload[T any](raw json.RawMessage) (T, error) {
	var out T
	err := json.Unmarshal(raw, &out)
	if err == nil {
		return out, nil
	}

	if target, ok := any(&out).(*error); ok {
		var msg string
		if json.Unmarshal(raw, &msg) == nil {
			*target = errors.New(msg)
			return out, nil
		}
	}
	return out, err
}
