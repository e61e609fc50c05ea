// Package chain provides a fluent Chain[T, E] for synchronous composition
// of result.Result values.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapErr: transform one side of the result
// - Ensure: trigger side effects on success only
// - Or: pick the first successful alternative
// - Finally: reduce to a concrete value via handlers
package chain
