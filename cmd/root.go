package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/truthtable/sim"
	"github.com/inference-sim/truthtable/sim/trace"
)

var (
	configPath      string // Optional YAML settings file
	logLevel        string // Log verbosity level
	maxSymbols      int    // Symbol table capacity
	maxGates        int    // Gate list capacity
	resetPolicy     string // Slots restored between rows: io or all
	outputFormat    string // text, json or yaml
	traceLevel      string // none or gates
	traceMaxRecords int    // Cap on stored gate records (0 = unlimited)

	settings Settings // resolved once per invocation by PersistentPreRunE
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "truthtable",
	Short:         "Truth table simulator for combinational gate netlists",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		level, _ := logrus.ParseLevel(s.LogLevel) // checked by Validate
		logrus.SetLevel(level)
		settings = s
		return nil
	},
}

// runCmd prints the truth table of a netlist
var runCmd = &cobra.Command{
	Use:   "run <netlist>",
	Short: "Evaluate every input combination and print the truth table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTable(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], settings)
	},
}

// runTable loads the netlist at path and writes its truth table to out.
// Nothing is written to out if loading fails.
func runTable(out, diag io.Writer, path string, s Settings) error {
	c, err := sim.LoadFile(path, s.LoadConfig())
	if err != nil {
		return err
	}
	if len(c.Skipped) > 0 {
		logrus.Warnf("skipped %d unrecognized gate token(s)", len(c.Skipped))
	}

	var tr *trace.EvaluationTrace
	if trace.TraceLevel(s.Trace) == trace.TraceLevelGates {
		tr = trace.NewEvaluationTrace(trace.TraceConfig{Level: trace.TraceLevelGates, MaxRecords: s.TraceMaxRecords})
	}
	cfg := sim.EvalConfig{Reset: sim.ResetPolicy(s.Reset), Trace: tr}

	logrus.Infof("evaluating %s: %d inputs, %d outputs, %d gates, %d rows, reset=%s",
		path, c.NumInputs, c.NumOutputs, len(c.Gates), sim.RowCount(c), s.Reset)
	if err := sim.WriteTable(out, c, cfg, sim.OutputFormat(s.Format)); err != nil {
		return err
	}
	if tr != nil {
		printTraceSummary(diag, trace.Summarize(tr))
	}
	return nil
}

func printTraceSummary(w io.Writer, sum *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Evaluation Trace ===")
	fmt.Fprintf(w, "Rows evaluated   : %d\n", sum.RowsEvaluated)
	fmt.Fprintf(w, "Gate executions  : %d\n", sum.TotalEvaluations)
	fmt.Fprintf(w, "High / low writes: %d / %d\n", sum.HighWrites, sum.LowWrites)
	if sum.Dropped > 0 {
		fmt.Fprintf(w, "Dropped records  : %d\n", sum.Dropped)
	}
	for _, kind := range sortedKinds(sum.KindDistribution) {
		fmt.Fprintf(w, "  %-11s %d\n", kind, sum.KindDistribution[kind])
	}
}

func sortedKinds(m map[string]int) []string {
	return slices.Sorted(maps.Keys(m))
}

// resolveSettings layers defaults, the --config file and explicitly set flags.
func resolveSettings(cmd *cobra.Command) (Settings, error) {
	s := DefaultSettings()
	if configPath != "" {
		var err error
		if s, err = LoadSettings(configPath, s); err != nil {
			return s, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("log") {
		s.LogLevel = logLevel
	}
	if flags.Changed("max-symbols") {
		s.MaxSymbols = maxSymbols
	}
	if flags.Changed("max-gates") {
		s.MaxGates = maxGates
	}
	if flags.Changed("reset") {
		s.Reset = resetPolicy
	}
	if flags.Changed("format") {
		s.Format = outputFormat
	}
	if flags.Changed("trace") {
		s.Trace = traceLevel
	}
	if flags.Changed("trace-max-records") {
		s.TraceMaxRecords = traceMaxRecords
	}
	return s, s.Validate()
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	d := DefaultSettings()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", d.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&maxSymbols, "max-symbols", d.MaxSymbols, "Maximum number of distinct wire names")
	rootCmd.PersistentFlags().IntVar(&maxGates, "max-gates", d.MaxGates, "Maximum number of gates")
	rootCmd.PersistentFlags().StringVar(&resetPolicy, "reset", d.Reset, "Slots cleared between rows: io (inputs/outputs only) or all")

	runCmd.Flags().StringVar(&outputFormat, "format", d.Format, "Output format (text, json, yaml)")
	runCmd.Flags().StringVar(&traceLevel, "trace", d.Trace, "Evaluation trace level (none, gates)")
	runCmd.Flags().IntVar(&traceMaxRecords, "trace-max-records", 0, "Maximum gate records kept by --trace gates (0 = unlimited)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(satisfyCmd)
}
