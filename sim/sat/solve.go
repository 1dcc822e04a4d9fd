package sat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/sirupsen/logrus"
)

// Incomplete is returned when the context ends before the solver decides.
var Incomplete = errors.New("cancelled before a solution could be found")

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Result is the answer to a Satisfy query.
type Result struct {
	Satisfiable bool
	// Inputs is a witness assignment of the declared inputs when Satisfiable.
	Inputs []bool
}

// Satisfy searches for an input assignment that drives the named output to want.
func (m *Model) Satisfy(ctx context.Context, output string, want bool) (*Result, error) {
	idx := -1
	for i, name := range m.circuit.OutputNames() {
		if name == output {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("no declared output named %q", output)
	}
	target := m.Outputs[idx]
	if !want {
		target = target.Not()
	}

	g := gini.New()
	m.C.ToCnf(g)
	// Inputs no gate reads appear in no clause; register them so Value is defined.
	for _, lit := range m.Inputs {
		g.Add(lit)
		g.Add(lit.Not())
		g.Add(0)
	}
	g.Assume(target)
	logrus.Debugf("solving for %s=%v over %d AIG nodes", output, want, m.C.Len())

	switch waitForSolution(ctx, g.GoSolve()) {
	case satisfiable:
		inputs := make([]bool, len(m.Inputs))
		for i, lit := range m.Inputs {
			inputs[i] = g.Value(lit)
		}
		return &Result{Satisfiable: true, Inputs: inputs}, nil
	case unsatisfiable:
		return &Result{Satisfiable: false}, nil
	}
	return nil, Incomplete
}

func waitForSolution(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(10 * time.Millisecond)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if result, ok := gs.Test(); ok {
				return result
			}
		}
	}
}
