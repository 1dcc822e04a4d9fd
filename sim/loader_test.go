package sim

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(src string, cfg LoadConfig) (*Circuit, error) {
	return Load(NewSliceTokens(strings.Fields(src)...), cfg)
}

func TestLoad_PortsOccupyLeadingSlots(t *testing.T) {
	// GIVEN a netlist whose gates introduce an internal wire and a literal
	c := mustLoad(t, `INPUT 2 a b
OUTPUT 1 y
AND a b t
OR t 1 y`)

	// THEN inputs and outputs come first, then wires in order of first mention
	assert.Equal(t, 2, c.NumInputs)
	assert.Equal(t, 1, c.NumOutputs)
	assert.Equal(t, []string{"a", "b"}, c.InputNames())
	assert.Equal(t, []string{"y"}, c.OutputNames())
	slot, ok := c.Symbols.Lookup("t")
	require.True(t, ok)
	assert.Equal(t, 3, slot)
	slot, _ = c.Symbols.Lookup("1")
	assert.Equal(t, 4, slot)
	require.Len(t, c.Gates, 2)
	assert.Equal(t, AndGate{A: 0, B: 1, Out: 3}, c.Gates[0])
	assert.Equal(t, OrGate{A: 3, B: 4, Out: 2}, c.Gates[1])
}

func TestLoad_MalformedHeader(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"missing input count", "INPUT"},
		{"non-integer input count", "INPUT two a b OUTPUT 1 c"},
		{"negative count", "INPUT -1 OUTPUT 1 c"},
		{"truncated input list", "INPUT 3 a b"},
		{"missing output header", "INPUT 1 a"},
		{"non-integer output count", "INPUT 1 a OUTPUT x c"},
		{"truncated output list", "INPUT 1 a OUTPUT 2 c"},
		{"duplicate port", "INPUT 1 a OUTPUT 1 a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.src, LoadConfig{})
			assert.True(t, errors.Is(err, ErrMalformedHeader), "got %v", err)
		})
	}
}

func TestLoad_UnknownGateTokenSkippedWithoutConsuming(t *testing.T) {
	// GIVEN an unrecognized token between two gates
	c := mustLoad(t, "INPUT 1 a OUTPUT 1 b NOT a t bogus PASS t b")

	// THEN only the bogus token is dropped and loading continues
	assert.Equal(t, []string{"bogus"}, c.Skipped)
	require.Len(t, c.Gates, 2)
	assert.Equal(t, KindNot, c.Gates[0].Kind())
	assert.Equal(t, KindPass, c.Gates[1].Kind())
}

func TestLoad_UnknownGateTokenCanDesynchronize(t *testing.T) {
	// After a skipped token the next token is read as a gate type again:
	// "ONE" parses as OR and swallows "a b PASS", leaving "a b" to be skipped.
	c := mustLoad(t, "INPUT 1 a OUTPUT 1 b bad ONE a b PASS a b")
	assert.Equal(t, []string{"bad", "a", "b"}, c.Skipped)
	require.Len(t, c.Gates, 1)
	assert.Equal(t, KindOr, c.Gates[0].Kind())
}

func TestLoad_MalformedGate(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"decoder missing size", "INPUT 0 OUTPUT 0 DECODER"},
		{"decoder non-integer size", "INPUT 0 OUTPUT 0 DECODER x a b"},
		{"multiplexer negative size", "INPUT 0 OUTPUT 0 MULTIPLEXER -1 a"},
		{"multiplexer oversized", "INPUT 0 OUTPUT 0 MULTIPLEXER 17 a"},
		{"truncated parameters", "INPUT 1 a OUTPUT 1 b AND a"},
		{"truncated decoder outputs", "INPUT 1 a OUTPUT 1 b DECODER 1 a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.src, LoadConfig{})
			assert.True(t, errors.Is(err, ErrMalformedGate), "got %v", err)
		})
	}
}

func TestLoad_CapacityLimits(t *testing.T) {
	// Symbols: two ports plus one wire exceed a capacity of two.
	_, err := load("INPUT 1 a OUTPUT 1 b NOT a t PASS t b", NewLoadConfig(2, 0))
	assert.True(t, errors.Is(err, ErrCapacityExceeded), "symbols: got %v", err)

	// Gates: the second gate exceeds a capacity of one.
	_, err = load("INPUT 1 a OUTPUT 1 b NOT a b NOT b a", NewLoadConfig(0, 1))
	assert.True(t, errors.Is(err, ErrCapacityExceeded), "gates: got %v", err)

	// Inputs: the row counter cannot exceed 2^62.
	names := make([]string, MaxInputs+1)
	for i := range names {
		names[i] = "i" + strings.Repeat("x", i)
	}
	src := "INPUT 63 " + strings.Join(names, " ") + " OUTPUT 0"
	_, err = load(src, NewLoadConfig(1000, 0))
	assert.True(t, errors.Is(err, ErrCapacityExceeded), "inputs: got %v", err)
}

func TestLoadFile_ReadsWhitespaceTokens(t *testing.T) {
	// GIVEN a netlist spread unevenly over lines and tabs
	path := filepath.Join(t.TempDir(), "xor.txt")
	src := "INPUTVAR 2 a\tb\n\nOUTPUTVAR 1\n  y XOR\na b y\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	c, err := LoadFile(path, LoadConfig{})
	require.NoError(t, err)
	require.Len(t, c.Gates, 1)
	assert.Equal(t, XorGate{A: 0, B: 1, Out: 2}, c.Gates[0])
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), LoadConfig{})
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}
