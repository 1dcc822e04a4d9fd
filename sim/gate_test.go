package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGateKind_DispatchByLeadingCharacters(t *testing.T) {
	tests := []struct {
		token string
		want  GateKind
		ok    bool
	}{
		{"AND", KindAnd, true},
		{"A", KindAnd, true},
		{"OR", KindOr, true},
		{"XOR", KindXor, true},
		{"NAND", KindNand, true},
		{"NOR", KindNor, true},
		{"NOT", KindNot, true},
		{"NO", KindNor, true},
		{"N", KindNand, true},
		{"PASS", KindPass, true},
		{"DECODER", KindDecoder, true},
		{"MULTIPLEXER", KindMultiplexer, true},
		{"and", 0, false},
		{"FOO", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseGateKind(tt.token)
		assert.Equal(t, tt.ok, ok, "token %q", tt.token)
		if tt.ok {
			assert.Equal(t, tt.want, got, "token %q", tt.token)
		}
	}
}

func TestParamCount_SizedKindsFollowFormula(t *testing.T) {
	assert.Equal(t, 3, ParamCount(KindXor, 0))
	assert.Equal(t, 2, ParamCount(KindNot, 0))
	assert.Equal(t, 1, ParamCount(KindDecoder, 0))
	assert.Equal(t, 2+4, ParamCount(KindDecoder, 2))
	assert.Equal(t, 3+8, ParamCount(KindDecoder, 3))
	assert.Equal(t, 2, ParamCount(KindMultiplexer, 0))
	assert.Equal(t, 4+2+1, ParamCount(KindMultiplexer, 2))
}

func TestNewGate_SplitsSizedParameters(t *testing.T) {
	g, err := NewGate(KindDecoder, 2, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	dec := g.(DecoderGate)
	assert.Equal(t, []int{0, 1}, dec.Address)
	assert.Equal(t, []int{2, 3, 4, 5}, dec.Outputs)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, g.Params())

	g, err = NewGate(KindMultiplexer, 1, []int{7, 8, 9, 10})
	require.NoError(t, err)
	mux := g.(MultiplexerGate)
	assert.Equal(t, []int{7, 8}, mux.Data)
	assert.Equal(t, []int{9}, mux.Select)
	assert.Equal(t, 10, mux.Out)
	assert.Equal(t, []int{7, 8, 9, 10}, g.Params())
}

func TestNewGate_WrongArityIsConstructionError(t *testing.T) {
	_, err := NewGate(KindAnd, 0, []int{0, 1})
	assert.True(t, errors.Is(err, ErrMalformedGate), "got %v", err)

	_, err = NewGate(KindDecoder, 2, []int{0, 1, 2, 3, 4})
	assert.True(t, errors.Is(err, ErrMalformedGate), "got %v", err)

	_, err = NewGate(KindMultiplexer, MaxSelectorBits+1, nil)
	assert.True(t, errors.Is(err, ErrMalformedGate), "got %v", err)
}

func TestGateKind_String(t *testing.T) {
	assert.Equal(t, "MULTIPLEXER", KindMultiplexer.String())
	assert.Equal(t, "GateKind(42)", GateKind(42).String())
}
