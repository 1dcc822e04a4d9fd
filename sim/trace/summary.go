package trace

// TraceSummary aggregates statistics from an EvaluationTrace.
type TraceSummary struct {
	TotalEvaluations int
	RowsEvaluated    int
	HighWrites       int
	LowWrites        int
	Dropped          int
	KindDistribution map[string]int // gate kind → number of executions
}

// Summarize computes aggregate statistics from an EvaluationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(et *EvaluationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindDistribution: make(map[string]int),
	}
	if et == nil {
		return summary
	}

	summary.TotalEvaluations = len(et.Gates)
	summary.Dropped = et.Dropped
	rows := make(map[uint64]struct{})
	for _, g := range et.Gates {
		rows[g.Row] = struct{}{}
		summary.KindDistribution[g.Kind]++
		for _, w := range g.Writes {
			if w.Value {
				summary.HighWrites++
			} else {
				summary.LowWrites++
			}
		}
	}
	summary.RowsEvaluated = len(rows)

	return summary
}
