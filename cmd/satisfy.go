package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/truthtable/sim"
	"github.com/inference-sim/truthtable/sim/sat"
)

var (
	satOutput  string        // Declared output to drive
	satValue   bool          // Value the output must take
	satTimeout time.Duration // Solver deadline
)

// satisfyCmd finds one input row producing a requested output value
var satisfyCmd = &cobra.Command{
	Use:   "satisfy <netlist>",
	Short: "Find an input assignment that drives an output to a value",
	Long: `Compiles the netlist to an and-inverter graph and asks a SAT solver for an
input row that sets --output to --value. Internal wires start from their seed
value, as with --reset all.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if satTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, satTimeout)
			defer cancel()
		}
		return runSatisfy(ctx, cmd.OutOrStdout(), args[0], satOutput, satValue, settings)
	},
}

// runSatisfy prints a witness row in the table layout, or "unsatisfiable".
func runSatisfy(ctx context.Context, out io.Writer, path, output string, want bool, s Settings) error {
	if output == "" {
		return fmt.Errorf("--output is required")
	}
	c, err := sim.LoadFile(path, s.LoadConfig())
	if err != nil {
		return err
	}
	model, err := sat.Compile(c)
	if err != nil {
		return err
	}
	res, err := model.Satisfy(ctx, output, want)
	if err != nil {
		return err
	}
	if !res.Satisfiable {
		logrus.Infof("%s can never be %v", output, want)
		_, err = fmt.Fprintln(out, "unsatisfiable")
		return err
	}

	outputs, err := sim.Evaluate(c, res.Inputs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n%s\n",
		strings.Join(append(c.InputNames(), "|"), " ")+" "+strings.Join(c.OutputNames(), " "),
		sim.FormatRow(sim.Row{Inputs: res.Inputs, Outputs: outputs}))
	return err
}

func init() {
	satisfyCmd.Flags().StringVar(&satOutput, "output", "", "Declared output name to drive")
	satisfyCmd.Flags().BoolVar(&satValue, "value", true, "Value the output must take")
	satisfyCmd.Flags().DurationVar(&satTimeout, "timeout", 30*time.Second, "Solver deadline (0 = none)")
}
