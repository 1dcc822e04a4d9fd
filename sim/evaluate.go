package sim

import (
	"fmt"

	"github.com/inference-sim/truthtable/sim/trace"
)

// Stimulate writes inputs into slots [0, NumInputs) of values and executes every
// gate once in declaration order, mutating values in place.
//
// Precondition: no gate reads a slot that is only written by a later gate.
// Such a read observes whatever the slot already holds; it is not detected.
func Stimulate(c *Circuit, values, inputs []bool) error {
	if err := checkVector(c, values, inputs); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	stimulate(c, values, inputs, nil, 0)
	return nil
}

// Evaluate runs the circuit once on a freshly seeded value vector and returns
// the declared outputs.
func Evaluate(c *Circuit, inputs []bool) ([]bool, error) {
	values := c.Symbols.Seeds()
	if err := Stimulate(c, values, inputs); err != nil {
		return nil, err
	}
	return outputsOf(c, values), nil
}

func checkVector(c *Circuit, values, inputs []bool) error {
	if len(inputs) != c.NumInputs {
		return fmt.Errorf("got %d input bits, circuit declares %d", len(inputs), c.NumInputs)
	}
	if len(values) < c.Symbols.Len() {
		return fmt.Errorf("value vector has %d slots, circuit needs %d: %w", len(values), c.Symbols.Len(), ErrInvalidReference)
	}
	return nil
}

// stimulate is Stimulate without the reference checks; callers validate once.
func stimulate(c *Circuit, values, inputs []bool, tr *trace.EvaluationTrace, row uint64) {
	copy(values[:c.NumInputs], inputs)
	tracing := tr.Enabled()
	for i, g := range c.Gates {
		g.apply(values)
		if tracing {
			tr.RecordGate(trace.GateRecord{
				Row:    row,
				Index:  i,
				Kind:   g.Kind().String(),
				Writes: writesOf(g, values),
			})
		}
	}
}

// writtenSlots returns the slots a gate assigns.
func writtenSlots(g Gate) []int {
	switch g := g.(type) {
	case AndGate:
		return []int{g.Out}
	case OrGate:
		return []int{g.Out}
	case NandGate:
		return []int{g.Out}
	case NorGate:
		return []int{g.Out}
	case XorGate:
		return []int{g.Out}
	case NotGate:
		return []int{g.Out}
	case PassGate:
		return []int{g.Out}
	case DecoderGate:
		return g.Outputs
	case MultiplexerGate:
		return []int{g.Out}
	}
	return nil
}

func writesOf(g Gate, values []bool) []trace.SlotValue {
	slots := writtenSlots(g)
	writes := make([]trace.SlotValue, len(slots))
	for i, s := range slots {
		writes[i] = trace.SlotValue{Slot: s, Value: values[s]}
	}
	return writes
}

func outputsOf(c *Circuit, values []bool) []bool {
	out := make([]bool, c.NumOutputs)
	copy(out, values[c.NumInputs:c.NumInputs+c.NumOutputs])
	return out
}
