// Package chain provides a fluent wrapper around Maybe[T]
// for building synchronous pipelines using solo primitives.
//
// It composes functions like Switch, Map, Try, and Finally behind a
// convenient Chain[T] type. Same-type steps are methods on Chain[T];
// steps that change the value type are package-level functions.
//
// Key operations:
// - Start/FromValue: begin a chain from a Maybe[T] or value
// - Then: switch to a new Maybe via a function
// - ThenTry: call a function (T, error) and convert error to absence
// - Map/Filter: transform the present value or drop it by predicate
// - Ensure: run side effects without changing the chain
// - Or/And: combine chains by presence
// - Finally/To: collapse the chain into a final value
package chain
