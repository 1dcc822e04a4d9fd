// Package sat answers reachability questions about a loaded circuit with the
// gini SAT solver instead of enumerating every row.
//
// The circuit is compiled into an and-inverter graph (gini logic.C) that
// models one evaluation on a freshly seeded value vector, i.e. the "all"
// reset policy: internal wires start at their seed value in every row.
package sat

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/inference-sim/truthtable/sim"
)

// Model is a circuit compiled to an and-inverter graph.
type Model struct {
	C *logic.C
	// Inputs holds the free literal of each declared input, in slot order.
	Inputs []z.Lit
	// Outputs holds the literal driven into each declared output, in slot order.
	Outputs []z.Lit
	circuit *sim.Circuit
}

// Compile builds the and-inverter graph of c. Gates are folded in
// declaration order, each one replacing the literals of the slots it writes.
func Compile(c *sim.Circuit) (*Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	aig := logic.NewCCap(4 * (c.Symbols.Len() + len(c.Gates) + 1))

	lits := make([]z.Lit, c.Symbols.Len())
	for slot := range lits {
		lits[slot] = aig.F
		if v, ok := c.Symbols.IsConstant(slot); ok && v {
			lits[slot] = aig.T
		}
	}
	inputs := make([]z.Lit, c.NumInputs)
	for i := range inputs {
		inputs[i] = aig.Lit()
		lits[i] = inputs[i]
	}

	for _, g := range c.Gates {
		fold(aig, lits, g)
	}

	outputs := make([]z.Lit, c.NumOutputs)
	copy(outputs, lits[c.NumInputs:c.NumInputs+c.NumOutputs])
	return &Model{C: aig, Inputs: inputs, Outputs: outputs, circuit: c}, nil
}

func fold(aig *logic.C, lits []z.Lit, g sim.Gate) {
	switch g := g.(type) {
	case sim.AndGate:
		lits[g.Out] = aig.And(lits[g.A], lits[g.B])
	case sim.OrGate:
		lits[g.Out] = aig.Or(lits[g.A], lits[g.B])
	case sim.NandGate:
		lits[g.Out] = aig.And(lits[g.A], lits[g.B]).Not()
	case sim.NorGate:
		lits[g.Out] = aig.Or(lits[g.A], lits[g.B]).Not()
	case sim.XorGate:
		lits[g.Out] = aig.Xor(lits[g.A], lits[g.B])
	case sim.NotGate:
		lits[g.Out] = lits[g.In].Not()
	case sim.PassGate:
		lits[g.Out] = lits[g.In]
	case sim.DecoderGate:
		// Outputs are cleared before the address is read.
		for _, o := range g.Outputs {
			lits[o] = aig.F
		}
		addr := snapshot(lits, g.Address)
		for k, o := range g.Outputs {
			lits[o] = aig.Or(lits[o], matches(aig, addr, k))
		}
	case sim.MultiplexerGate:
		sel := snapshot(lits, g.Select)
		out := aig.F
		for k, d := range g.Data {
			out = aig.Or(out, aig.And(matches(aig, sel, k), lits[d]))
		}
		lits[g.Out] = out
	}
}

func snapshot(lits []z.Lit, slots []int) []z.Lit {
	out := make([]z.Lit, len(slots))
	for i, s := range slots {
		out[i] = lits[s]
	}
	return out
}

// matches returns a literal true when bits, read most significant first, equal k.
func matches(aig *logic.C, bits []z.Lit, k int) z.Lit {
	m := aig.T
	for i, b := range bits {
		if k>>uint(len(bits)-1-i)&1 == 1 {
			m = aig.And(m, b)
		} else {
			m = aig.And(m, b.Not())
		}
	}
	return m
}

// Eval evaluates the compiled model on one input assignment and returns the
// declared outputs. It mirrors sim.Evaluate and exists to cross-check the AIG.
func (m *Model) Eval(inputs []bool) []bool {
	vs := make([]bool, m.C.Len())
	for i, lit := range m.Inputs {
		vs[lit.Var()] = inputs[i]
	}
	m.C.Eval(vs)
	out := make([]bool, len(m.Outputs))
	for i, lit := range m.Outputs {
		v := vs[lit.Var()]
		if !lit.IsPos() {
			v = !v
		}
		out[i] = v
	}
	return out
}
