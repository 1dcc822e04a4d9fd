package sim

import (
	"fmt"

	"github.com/inference-sim/truthtable/sim/trace"
)

// DefaultMaxGates is the gate capacity used when none is configured.
const DefaultMaxGates = 100

// MaxInputs bounds the declared input count so that the row counter fits in a uint64.
const MaxInputs = 62

// LoadConfig groups the capacity limits applied while loading a netlist.
type LoadConfig struct {
	MaxSymbols int // symbol table capacity (<= 0 means DefaultMaxSymbols)
	MaxGates   int // gate list capacity (<= 0 means DefaultMaxGates)
}

// ResetPolicy selects which slots are restored between truth table rows.
type ResetPolicy string

const (
	// ResetIO clears only the input and output slots between rows. Internal
	// wires and constants outside that range keep the value left by the
	// previous row, which matches the behavior of the original tool.
	ResetIO ResetPolicy = "io"
	// ResetAll restores the whole value vector to its seeded state each row.
	ResetAll ResetPolicy = "all"
)

// validResetPolicies maps accepted reset policy strings.
var validResetPolicies = map[ResetPolicy]bool{
	ResetIO:  true,
	ResetAll: true,
	"":       true, // empty defaults to io
}

// IsValidResetPolicy returns true if the given string is a recognized reset policy.
func IsValidResetPolicy(policy string) bool {
	return validResetPolicies[ResetPolicy(policy)]
}

// EvalConfig controls truth table enumeration.
type EvalConfig struct {
	Reset ResetPolicy
	// Trace receives one record per executed gate when enabled (nil = off).
	Trace *trace.EvaluationTrace
}

// NewLoadConfig creates a LoadConfig. Zero values select the defaults.
func NewLoadConfig(maxSymbols, maxGates int) LoadConfig {
	return LoadConfig{MaxSymbols: maxSymbols, MaxGates: maxGates}
}

func (c LoadConfig) maxGates() int {
	if c.MaxGates <= 0 {
		return DefaultMaxGates
	}
	return c.MaxGates
}

func (c EvalConfig) validate() error {
	if !IsValidResetPolicy(string(c.Reset)) {
		return fmt.Errorf("unknown reset policy %q; valid: io, all", c.Reset)
	}
	return nil
}
