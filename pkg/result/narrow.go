package result

import (
	"encoding/json"
	"reflect"
)

// IsOk reports whether value has the shape of an Ok result: a typed Ok
// Result, or a string-keyed map (json.RawMessage included) whose only key
// is OkField. A map carrying any other key is rejected.
//
// Payloads read from a json.RawMessage are decoded the way json.Unmarshal
// decodes into an any: numbers become float64.
func IsOk(value any) bool {
	kind, _ := inspect(value)
	return kind == KindOk
}

// IsErr is the ErrField counterpart of IsOk.
func IsErr(value any) bool {
	kind, _ := inspect(value)
	return kind == KindErr
}

func IsResult(value any) bool {
	return IsOk(value) || IsErr(value)
}

// Narrow turns an untyped value into a Result[T, E] following the rules of
// IsOk and IsErr. A payload that is not a T (or E) is converted through its
// JSON encoding, so numbers decoded as float64 still narrow into an int.
// Anything that cannot be narrowed yields an invalid Result remembering
// value for error messages.
func Narrow[T, E any](value any) Result[T, E] {
	switch r := value.(type) {
	case Result[T, E]:
		return r
	case *Result[T, E]:
		if r != nil {
			return *r
		}
	}

	kind, payload := inspect(value)
	switch kind {
	case KindOk:
		if v, ok := convert[T](payload); ok {
			return Ok[T, E](v)
		}
	case KindErr:
		if e, ok := convert[E](payload); ok {
			return Err[T](e)
		}
	default:
		if v, ok := value.(variant); ok && !IsNil(v) {
			value = v.payload()
		}
	}
	return Result[T, E]{raw: value}
}

// IfOkOrAny calls okFn with the success payload when value is Ok. Otherwise
// errFn receives the failure payload of an Err, or value itself when value
// is not a Result at all. A payload read from a json.RawMessage is decoded
// as json.Unmarshal does into an any.
func IfOkOrAny[R any](value any, okFn func(any) R, errFn func(any) R) R {
	kind, payload := inspect(value)
	if _, isRaw := value.(json.RawMessage); isRaw && kind != KindInvalid {
		payload, _ = convert[any](payload)
	}
	switch kind {
	case KindOk:
		return okFn(payload)
	case KindErr:
		return errFn(payload)
	default:
		return errFn(value)
	}
}

// inspect returns the variant value has and its payload.
func inspect(value any) (Kind, any) {
	if IsNil(value) {
		return KindInvalid, nil
	}

	switch v := value.(type) {
	case variant:
		if k := v.Kind(); k != KindInvalid {
			return k, v.payload()
		}
		return KindInvalid, nil
	case json.RawMessage:
		// payloads stay raw so Narrow can decode them straight into their type
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(v, &fields); err != nil {
			return KindInvalid, nil
		}
		return inspect(fields)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.Len() != 1 {
		return KindInvalid, nil
	}

	iter := rv.MapRange()
	iter.Next()
	switch iter.Key().String() {
	case OkField:
		return KindOk, iter.Value().Interface()
	case ErrField:
		return KindErr, iter.Value().Interface()
	}
	return KindInvalid, nil
}

func convert[T any](payload any) (T, bool) {
	if raw, ok := payload.(json.RawMessage); ok {
		out, err := decodePayload[T](raw)
		return out, err == nil
	}
	if v, ok := payload.(T); ok {
		return v, true
	}
	if payload == nil {
		var zero T
		return zero, true
	}

	data, err := json.Marshal(wireValue(payload))
	if err != nil {
		var zero T
		return zero, false
	}
	out, err := decodePayload[T](data)
	return out, err == nil
}
