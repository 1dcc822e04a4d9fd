package sim

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// LoadFile opens path and loads the netlist it contains.
func LoadFile(path string, cfg LoadConfig) (*Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening netlist: %w", err)
	}
	defer f.Close()
	c, err := Load(NewTokenScanner(f), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads a netlist from tokens:
//
//	<word> N in_1 ... in_N
//	<word> M out_1 ... out_M
//	{ GATE [size] param_1 ... param_k }*
//
// Unrecognized gate tokens are logged and skipped without consuming further
// tokens; every other problem aborts the load.
func Load(tokens TokenStream, cfg LoadConfig) (*Circuit, error) {
	c := &Circuit{
		Gates:   make([]Gate, 0),
		Symbols: NewSymbolTable(cfg.MaxSymbols),
	}

	n, err := readPorts(tokens, c.Symbols, "input")
	if err != nil {
		return nil, err
	}
	if n > MaxInputs {
		return nil, fmt.Errorf("%d inputs declared, at most %d supported: %w", n, MaxInputs, ErrCapacityExceeded)
	}
	c.NumInputs = n

	m, err := readPorts(tokens, c.Symbols, "output")
	if err != nil {
		return nil, err
	}
	c.NumOutputs = m

	if err := readGates(tokens, c, cfg.maxGates()); err != nil {
		return nil, err
	}
	if err := tokens.Err(); err != nil {
		return nil, fmt.Errorf("reading netlist: %w", err)
	}
	logrus.Debugf("loaded %d gates over %d symbols (%d inputs, %d outputs)",
		len(c.Gates), c.Symbols.Len(), c.NumInputs, c.NumOutputs)
	return c, nil
}

// readPorts reads one header section: a word, a count and that many names.
func readPorts(tokens TokenStream, st *SymbolTable, what string) (int, error) {
	if _, ok := tokens.Next(); !ok {
		return 0, fmt.Errorf("missing %s header: %w", what, ErrMalformedHeader)
	}
	tok, ok := tokens.Next()
	if !ok {
		return 0, fmt.Errorf("missing %s count: %w", what, ErrMalformedHeader)
	}
	count, err := strconv.Atoi(tok)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%s count %q is not a non-negative integer: %w", what, tok, ErrMalformedHeader)
	}
	for i := 0; i < count; i++ {
		name, ok := tokens.Next()
		if !ok {
			return 0, fmt.Errorf("%s list ended after %d of %d names: %w", what, i, count, ErrMalformedHeader)
		}
		if _, err := st.Declare(name); err != nil {
			return 0, err
		}
	}
	return count, nil
}

func readGates(tokens TokenStream, c *Circuit, maxGates int) error {
	for {
		tok, ok := tokens.Next()
		if !ok {
			return nil
		}
		kind, ok := ParseGateKind(tok)
		if !ok {
			logrus.Warnf("%v: %s", ErrUnknownGateType, tok)
			c.Skipped = append(c.Skipped, tok)
			continue
		}
		if len(c.Gates) >= maxGates {
			return fmt.Errorf("gate %d (%s): at most %d gates: %w", len(c.Gates), kind, maxGates, ErrCapacityExceeded)
		}
		g, err := readGate(tokens, c.Symbols, kind)
		if err != nil {
			return fmt.Errorf("gate %d: %w", len(c.Gates), err)
		}
		c.Gates = append(c.Gates, g)
	}
}

// readGate reads the optional size and the parameters of one gate whose kind
// token has already been consumed.
func readGate(tokens TokenStream, st *SymbolTable, kind GateKind) (Gate, error) {
	size := 0
	if kind.Sized() {
		tok, ok := tokens.Next()
		if !ok {
			return nil, fmt.Errorf("%s missing size: %w", kind, ErrMalformedGate)
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 || v > MaxSelectorBits {
			return nil, fmt.Errorf("%s size %q must be an integer in [0, %d]: %w", kind, tok, MaxSelectorBits, ErrMalformedGate)
		}
		size = v
	}

	count := ParamCount(kind, size)
	params := make([]int, 0, count)
	for i := 0; i < count; i++ {
		tok, ok := tokens.Next()
		if !ok {
			return nil, fmt.Errorf("%s ended after %d of %d parameters: %w", kind, i, count, ErrMalformedGate)
		}
		slot, err := st.Resolve(tok)
		if err != nil {
			return nil, err
		}
		params = append(params, slot)
	}
	return NewGate(kind, size, params)
}
