// Package fallback converts an absence signal into a usable value by
// substituting a default behind a single capability-typed handle.
//
// A Holder[C] records whether a source value satisfying interface C was
// present. Its To operation returns one C-typed value backed by either
// the original value or the supplied default; downstream code never
// learns which. The concrete source and default types need no
// relationship beyond both satisfying C, and both conversions are
// checked by the compiler, never at run time.
//
// Key operations:
// - From/FromProvider: adopt a Maybe[C] or any WithPresence source
// - Of/Try: capture a comma-ok pair or a (value, error) outcome
// - To: resolve to the captured value, or the given default
// - ToElse: resolve with a lazily constructed default
package fallback
