// Package result contains a two-variant Result[T, E] type: Ok carrying a
// success payload, or Err carrying a failure payload.
//
// Highlights:
// - Ok/Err/Try: construct Result[T, E]
// - IsOk/IsErr/IsResult: strict shape checks on untyped values, e.g. data
// decoded from JSON; a record with extra fields is never a Result
// - Narrow/Decode: turn untyped or wire data into a typed Result
// - Unwrap/UnwrapErr/Expect: extract a payload or panic
// - TryUnwrap/TryUnwrapErr/TryExpect: the same without panicking
// - Map/MapErr/AndThen: transform one side, carry the other over untouched
// - IfOk/IfOkOr/IfOkOrAny: dispatch to callbacks, returning what they return
//
// On the wire a Result is a record with a single field, "Ok" or "Err".
package result
