// Package sim provides the combinational simulation engine behind truthtable.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - gate.go: the closed set of gate variants and their evaluation rules
//   - loader.go: netlist tokens → Circuit, resolving names through symbols.go
//   - evaluate.go: a single in-order pass over the gates (Stimulate)
//   - truthtable.go: enumeration of all 2^N input rows (Enumerate)
//
// # Value vector
//
// Every wire name and numeric literal owns one slot of a []bool. Slots
// [0, N) hold the declared inputs, [N, N+M) the declared outputs, and the
// remaining slots internal wires and constants in order of first mention.
//
// Gates run in declaration order with no dependency analysis. Between rows
// the ResetIO policy clears only the input and output slots, so internal
// wires carry their previous value into the next row; ResetAll restores the
// seeded vector instead.
//
// # Sub-packages
//   - sim/trace/: per-gate evaluation records and their summary
//   - sim/sat/: and-inverter graph compilation and SAT queries (gini)
package sim
