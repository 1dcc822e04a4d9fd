package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_TwoInputGates(t *testing.T) {
	tests := []struct {
		gate string
		want [4]bool // rows 00, 01, 10, 11
	}{
		{"AND", [4]bool{false, false, false, true}},
		{"OR", [4]bool{false, true, true, true}},
		{"NAND", [4]bool{true, true, true, false}},
		{"NOR", [4]bool{true, false, false, false}},
		{"XOR", [4]bool{false, true, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.gate, func(t *testing.T) {
			c := mustLoad(t, "IN 2 a b OUT 1 c "+tt.gate+" a b c")
			for i, in := range [][]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
				out, err := Evaluate(c, in)
				require.NoError(t, err)
				assert.Equal(t, tt.want[i], out[0], "%s%v", tt.gate, in)
			}
		})
	}
}

func TestEvaluate_NotAndPass(t *testing.T) {
	c := mustLoad(t, "IN 1 a OUT 2 n p NOT a n PASS a p")
	out, err := Evaluate(c, []bool{false})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, out)
	out, err = Evaluate(c, []bool{true})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, out)
}

func TestEvaluate_DecoderSetsExactlyAddressedOutput(t *testing.T) {
	// GIVEN a 2-bit decoder
	c := mustLoad(t, "IN 2 a b OUT 4 o0 o1 o2 o3 DECODER 2 a b o0 o1 o2 o3")

	// WHEN the address is binary 10 (first input most significant)
	out, err := Evaluate(c, []bool{true, false})
	require.NoError(t, err)

	// THEN only output 2 is set
	assert.Equal(t, []bool{false, false, true, false}, out)
}

func TestEvaluate_DecoderClearsStaleOutputs(t *testing.T) {
	// GIVEN a vector where every decoder output is already high
	c := mustLoad(t, "IN 1 a OUT 2 o0 o1 DECODER 1 a o0 o1")
	values := []bool{false, true, true}

	// WHEN stimulated with address 1
	require.NoError(t, Stimulate(c, values, []bool{true}))

	// THEN the unaddressed output is cleared
	assert.Equal(t, []bool{true, false, true}, values)
}

func TestEvaluate_MultiplexerRoutesSelectedDataLine(t *testing.T) {
	// GIVEN a 1-bit multiplexer: data d0 d1, selector s, output y
	c := mustLoad(t, "IN 3 d0 d1 s OUT 1 y MULTIPLEXER 1 d0 d1 s y")

	// selector 0 routes d0
	out, _ := Evaluate(c, []bool{true, false, false})
	assert.Equal(t, []bool{true}, out)
	out, _ = Evaluate(c, []bool{false, true, false})
	assert.Equal(t, []bool{false}, out)

	// selector 1 routes d1
	out, _ = Evaluate(c, []bool{false, true, true})
	assert.Equal(t, []bool{true}, out)
	out, _ = Evaluate(c, []bool{true, false, true})
	assert.Equal(t, []bool{false}, out)
}

func TestEvaluate_WideMultiplexerSelectorMostSignificantFirst(t *testing.T) {
	// data lines are constants 0 0 1 0, so only selector 10 yields 1
	c := mustLoad(t, "IN 2 s1 s0 OUT 1 y MULTIPLEXER 2 0 0 1 0 s1 s0 y")
	for i, in := range [][]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
		out, err := Evaluate(c, in)
		require.NoError(t, err)
		assert.Equal(t, i == 2, out[0], "selector %v", in)
	}
}

func TestStimulate_InvalidReference(t *testing.T) {
	// GIVEN a hand-built circuit whose gate points past the symbol table
	st := NewSymbolTable(4)
	_, _ = st.Declare("a")
	_, _ = st.Declare("b")
	c := &Circuit{
		Gates:      []Gate{NotGate{In: 0, Out: 9}},
		Symbols:    st,
		NumInputs:  1,
		NumOutputs: 1,
	}

	// WHEN stimulated THEN the reference is rejected instead of written
	values := make([]bool, 10)
	err := Stimulate(c, values, []bool{true})
	assert.True(t, errors.Is(err, ErrInvalidReference), "got %v", err)
	assert.False(t, values[9])
}

func TestStimulate_ShortValueVector(t *testing.T) {
	c := mustLoad(t, "IN 1 a OUT 1 b NOT a t PASS t b")
	err := Stimulate(c, make([]bool, 2), []bool{true})
	assert.True(t, errors.Is(err, ErrInvalidReference), "got %v", err)
}

func TestStimulate_WrongInputCount(t *testing.T) {
	c := mustLoad(t, "IN 2 a b OUT 1 c AND a b c")
	_, err := Evaluate(c, []bool{true})
	assert.Error(t, err)
}
