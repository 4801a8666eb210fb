// Package solo contains single-value, synchronous primitives that operate
// on Maybe[T]. These functions form the core building blocks for
// presence-aware flows without branching at every step.
//
// Highlights:
// - Present/Absent: construct Maybe[T]
// - Switch: move from Maybe[In] to Maybe[Out]
// - Map: transform present values
// - Try: call a function (Out, error) and convert error to absence
// - Filter/AbsentOnError: turn rejected present values into absence
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - DoubleMap: transform present values with an absence hook
// - Or: pick the first present candidate
// - Finally: reduce to a concrete value via present/absent handlers
package solo
