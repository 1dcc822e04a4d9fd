package sim

import "fmt"

// Circuit is a loaded netlist: gates in evaluation order plus the symbol
// table that owns their slots. Slots [0, NumInputs) are the declared inputs and
// [NumInputs, NumInputs+NumOutputs) the declared outputs.
type Circuit struct {
	Gates      []Gate
	Symbols    *SymbolTable
	NumInputs  int
	NumOutputs int
	// Skipped lists unrecognized gate tokens dropped during loading.
	Skipped []string
}

// InputNames returns the declared input names in slot order.
func (c *Circuit) InputNames() []string {
	return c.names(0, c.NumInputs)
}

// OutputNames returns the declared output names in slot order.
func (c *Circuit) OutputNames() []string {
	return c.names(c.NumInputs, c.NumInputs+c.NumOutputs)
}

func (c *Circuit) names(from, to int) []string {
	names := make([]string, 0, to-from)
	for slot := from; slot < to; slot++ {
		names = append(names, c.Symbols.Name(slot))
	}
	return names
}

// Validate checks that every gate references slots inside the value vector.
// Gates are not checked for forward references: declaration order is trusted
// to be a valid evaluation order.
func (c *Circuit) Validate() error {
	n := c.Symbols.Len()
	if c.NumInputs+c.NumOutputs > n {
		return fmt.Errorf("%d ports declared but only %d symbols: %w", c.NumInputs+c.NumOutputs, n, ErrInvalidReference)
	}
	for i, g := range c.Gates {
		for _, slot := range g.Params() {
			if slot < 0 || slot >= n {
				return fmt.Errorf("gate %d (%s) references slot %d of %d: %w", i, g.Kind(), slot, n, ErrInvalidReference)
			}
		}
	}
	return nil
}
