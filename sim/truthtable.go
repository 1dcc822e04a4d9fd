package sim

import (
	"iter"

	"github.com/sirupsen/logrus"
)

// Row is one line of a truth table.
type Row struct {
	Index   uint64 // the inputs read as a binary number, first input most significant
	Inputs  []bool
	Outputs []bool
}

// RowCount returns the number of rows Enumerate produces for c: 2^NumInputs.
func RowCount(c *Circuit) uint64 {
	return uint64(1) << uint(c.NumInputs)
}

// Enumerate returns the truth table of c as a lazy sequence, in increasing
// binary order of the inputs. Each call starts from a freshly seeded value
// vector, so the sequence can be ranged over repeatedly.
//
// If the circuit or config is invalid the sequence yields a single error.
func Enumerate(c *Circuit, cfg EvalConfig) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		if err := cfg.validate(); err != nil {
			yield(Row{}, err)
			return
		}
		if err := c.Validate(); err != nil {
			yield(Row{}, err)
			return
		}

		seeds := c.Symbols.Seeds()
		values := make([]bool, len(seeds))
		copy(values, seeds)
		n := c.NumInputs
		ports := n + c.NumOutputs
		total := RowCount(c)
		logrus.Debugf("enumerating %d rows over %d gates (reset=%s)", total, len(c.Gates), cfg.Reset)

		for i := uint64(0); i < total; i++ {
			inputs := make([]bool, n)
			for j := range inputs {
				inputs[j] = i>>uint(n-1-j)&1 == 1
			}
			stimulate(c, values, inputs, cfg.Trace, i)
			if !yield(Row{Index: i, Inputs: inputs, Outputs: outputsOf(c, values)}, nil) {
				return
			}
			if cfg.Reset == ResetAll {
				copy(values, seeds)
			} else {
				clear(values[:ports])
			}
		}
	}
}

// Table collects every row of the truth table of c.
func Table(c *Circuit, cfg EvalConfig) ([]Row, error) {
	rows := make([]Row, 0)
	for row, err := range Enumerate(c, cfg) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
