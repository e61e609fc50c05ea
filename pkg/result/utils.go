package result

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// IsNil reports whether i is nil or a typed nil pointer, map, slice,
// channel, func or interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// wireValue replaces an error without its own JSON encoding by its message.
func wireValue(v any) any {
	if e, ok := v.(error); ok && !IsNil(e) {
		if _, custom := v.(json.Marshaler); !custom {
			return e.Error()
		}
	}
	return v
}

// render produces the JSON text of v for error messages.
func render(v any) string {
	v = wireValue(v)

	data, err := json.Marshal(v)
	if err != nil {
		switch b := v.(type) {
		case json.RawMessage:
			return string(b)
		case []byte:
			return string(b)
		}
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
