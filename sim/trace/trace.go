// Package trace provides per-gate evaluation recording for truth table runs.
// This package has no dependencies on sim/. It stores pure data types.
package trace

// TraceLevel controls the verbosity of evaluation tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelGates captures every gate execution of every row.
	TraceLevelGates TraceLevel = "gates"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelGates: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
	// MaxRecords caps the number of stored records; 0 means unlimited.
	// Records past the cap are counted in Dropped.
	MaxRecords int
}

// SlotValue is the value a gate left in one slot.
type SlotValue struct {
	Slot  int
	Value bool
}

// GateRecord captures a single gate execution.
type GateRecord struct {
	Row    uint64 // truth table row index
	Index  int    // position of the gate in declaration order
	Kind   string
	Writes []SlotValue
}

// EvaluationTrace collects gate records during a truth table run.
type EvaluationTrace struct {
	Config  TraceConfig
	Gates   []GateRecord
	Dropped int
}

// NewEvaluationTrace creates an EvaluationTrace ready for recording.
func NewEvaluationTrace(config TraceConfig) *EvaluationTrace {
	return &EvaluationTrace{
		Config: config,
		Gates:  make([]GateRecord, 0),
	}
}

// Enabled reports whether records should be produced at all.
// Safe on a nil trace.
func (et *EvaluationTrace) Enabled() bool {
	return et != nil && et.Config.Level == TraceLevelGates
}

// RecordGate appends a gate execution record.
func (et *EvaluationTrace) RecordGate(record GateRecord) {
	if et.Config.MaxRecords > 0 && len(et.Gates) >= et.Config.MaxRecords {
		et.Dropped++
		return
	}
	et.Gates = append(et.Gates, record)
}
