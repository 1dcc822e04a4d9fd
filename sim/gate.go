package sim

import (
	"fmt"
	"strings"
)

// GateKind identifies one of the nine supported gate variants.
type GateKind int

const (
	KindAnd GateKind = iota
	KindOr
	KindNand
	KindNor
	KindXor
	KindNot
	KindPass
	KindDecoder
	KindMultiplexer
)

// MaxSelectorBits bounds the size of a DECODER or MULTIPLEXER.
const MaxSelectorBits = 16

var gateKindNames = map[GateKind]string{
	KindAnd:         "AND",
	KindOr:          "OR",
	KindNand:        "NAND",
	KindNor:         "NOR",
	KindXor:         "XOR",
	KindNot:         "NOT",
	KindPass:        "PASS",
	KindDecoder:     "DECODER",
	KindMultiplexer: "MULTIPLEXER",
}

func (k GateKind) String() string {
	if name, ok := gateKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("GateKind(%d)", int(k))
}

// Sized reports whether the kind takes a size token before its parameters.
func (k GateKind) Sized() bool {
	return k == KindDecoder || k == KindMultiplexer
}

// ParseGateKind maps a netlist gate token to its kind by leading characters:
// A=AND, O=OR, X=XOR, P=PASS, D=DECODER, M=MULTIPLEXER. Tokens starting with
// N are NOT when the token begins with "NOT", NOR when the second character
// is 'O', and NAND otherwise.
func ParseGateKind(token string) (GateKind, bool) {
	if token == "" {
		return 0, false
	}
	switch token[0] {
	case 'A':
		return KindAnd, true
	case 'O':
		return KindOr, true
	case 'X':
		return KindXor, true
	case 'N':
		if strings.HasPrefix(token, "NOT") {
			return KindNot, true
		}
		if len(token) > 1 && token[1] == 'O' {
			return KindNor, true
		}
		return KindNand, true
	case 'P':
		return KindPass, true
	case 'D':
		return KindDecoder, true
	case 'M':
		return KindMultiplexer, true
	}
	return 0, false
}

// ParamCount returns how many parameter tokens a gate of this kind and size reads.
func ParamCount(kind GateKind, size int) int {
	switch kind {
	case KindAnd, KindOr, KindNand, KindNor, KindXor:
		return 3
	case KindNot, KindPass:
		return 2
	case KindDecoder:
		return size + 1<<size
	case KindMultiplexer:
		return 1<<size + size + 1
	}
	return 0
}

// Gate is a single netlist element. The set of implementations is closed:
// AndGate, OrGate, NandGate, NorGate, XorGate, NotGate, PassGate,
// DecoderGate and MultiplexerGate.
type Gate interface {
	Kind() GateKind
	// Params returns the referenced slots in netlist order.
	Params() []int
	// apply evaluates the gate against values. Slots are assumed valid.
	apply(values []bool)
}

type AndGate struct{ A, B, Out int }

func (g AndGate) Kind() GateKind      { return KindAnd }
func (g AndGate) Params() []int       { return []int{g.A, g.B, g.Out} }
func (g AndGate) apply(values []bool) { values[g.Out] = values[g.A] && values[g.B] }

type OrGate struct{ A, B, Out int }

func (g OrGate) Kind() GateKind      { return KindOr }
func (g OrGate) Params() []int       { return []int{g.A, g.B, g.Out} }
func (g OrGate) apply(values []bool) { values[g.Out] = values[g.A] || values[g.B] }

type NandGate struct{ A, B, Out int }

func (g NandGate) Kind() GateKind      { return KindNand }
func (g NandGate) Params() []int       { return []int{g.A, g.B, g.Out} }
func (g NandGate) apply(values []bool) { values[g.Out] = !(values[g.A] && values[g.B]) }

type NorGate struct{ A, B, Out int }

func (g NorGate) Kind() GateKind      { return KindNor }
func (g NorGate) Params() []int       { return []int{g.A, g.B, g.Out} }
func (g NorGate) apply(values []bool) { values[g.Out] = !(values[g.A] || values[g.B]) }

type XorGate struct{ A, B, Out int }

func (g XorGate) Kind() GateKind      { return KindXor }
func (g XorGate) Params() []int       { return []int{g.A, g.B, g.Out} }
func (g XorGate) apply(values []bool) { values[g.Out] = values[g.A] != values[g.B] }

type NotGate struct{ In, Out int }

func (g NotGate) Kind() GateKind      { return KindNot }
func (g NotGate) Params() []int       { return []int{g.In, g.Out} }
func (g NotGate) apply(values []bool) { values[g.Out] = !values[g.In] }

type PassGate struct{ In, Out int }

func (g PassGate) Kind() GateKind      { return KindPass }
func (g PassGate) Params() []int       { return []int{g.In, g.Out} }
func (g PassGate) apply(values []bool) { values[g.Out] = values[g.In] }

// DecoderGate drives exactly one of its 2^Size outputs high: the one addressed
// by Address read as a binary number, Address[0] most significant.
type DecoderGate struct {
	Size    int
	Address []int // len Size
	Outputs []int // len 1<<Size
}

func (g DecoderGate) Kind() GateKind { return KindDecoder }

func (g DecoderGate) Params() []int {
	params := make([]int, 0, len(g.Address)+len(g.Outputs))
	params = append(params, g.Address...)
	return append(params, g.Outputs...)
}

// Outputs are cleared before the address is read, so an address bit wired to
// one of the outputs observes the cleared value.
func (g DecoderGate) apply(values []bool) {
	for _, o := range g.Outputs {
		values[o] = false
	}
	values[g.Outputs[selectIndex(values, g.Address)]] = true
}

// MultiplexerGate copies Data[idx] to Out, where idx is Select read as a
// binary number with Select[0] most significant.
type MultiplexerGate struct {
	Size   int
	Data   []int // len 1<<Size
	Select []int // len Size
	Out    int
}

func (g MultiplexerGate) Kind() GateKind { return KindMultiplexer }

func (g MultiplexerGate) Params() []int {
	params := make([]int, 0, len(g.Data)+len(g.Select)+1)
	params = append(params, g.Data...)
	params = append(params, g.Select...)
	return append(params, g.Out)
}

func (g MultiplexerGate) apply(values []bool) {
	values[g.Out] = values[g.Data[selectIndex(values, g.Select)]]
}

func selectIndex(values []bool, bits []int) int {
	idx := 0
	for _, slot := range bits {
		idx <<= 1
		if values[slot] {
			idx |= 1
		}
	}
	return idx
}

// NewGate builds a gate of the given kind from its parameters in netlist order.
// size is ignored for kinds that are not Sized.
func NewGate(kind GateKind, size int, params []int) (Gate, error) {
	if kind.Sized() && (size < 0 || size > MaxSelectorBits) {
		return nil, fmt.Errorf("%s size %d outside [0, %d]: %w", kind, size, MaxSelectorBits, ErrMalformedGate)
	}
	if want := ParamCount(kind, size); len(params) != want {
		return nil, fmt.Errorf("%s takes %d parameters, got %d: %w", kind, want, len(params), ErrMalformedGate)
	}
	p := params
	switch kind {
	case KindAnd:
		return AndGate{A: p[0], B: p[1], Out: p[2]}, nil
	case KindOr:
		return OrGate{A: p[0], B: p[1], Out: p[2]}, nil
	case KindNand:
		return NandGate{A: p[0], B: p[1], Out: p[2]}, nil
	case KindNor:
		return NorGate{A: p[0], B: p[1], Out: p[2]}, nil
	case KindXor:
		return XorGate{A: p[0], B: p[1], Out: p[2]}, nil
	case KindNot:
		return NotGate{In: p[0], Out: p[1]}, nil
	case KindPass:
		return PassGate{In: p[0], Out: p[1]}, nil
	case KindDecoder:
		return DecoderGate{
			Size:    size,
			Address: append([]int(nil), p[:size]...),
			Outputs: append([]int(nil), p[size:]...),
		}, nil
	case KindMultiplexer:
		n := 1 << size
		return MultiplexerGate{
			Size:   size,
			Data:   append([]int(nil), p[:n]...),
			Select: append([]int(nil), p[n:n+size]...),
			Out:    p[n+size],
		}, nil
	}
	return nil, fmt.Errorf("gate kind %d: %w", int(kind), ErrUnknownGateType)
}
