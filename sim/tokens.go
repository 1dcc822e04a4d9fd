package sim

import (
	"bufio"
	"io"
)

// TokenStream yields whitespace-delimited netlist tokens.
// Next returns false once the stream is exhausted or fails; Err reports the failure.
type TokenStream interface {
	Next() (string, bool)
	Err() error
}

// scannerTokens reads words from an io.Reader. Line structure is irrelevant.
type scannerTokens struct {
	sc *bufio.Scanner
}

// NewTokenScanner returns a TokenStream over r.
func NewTokenScanner(r io.Reader) TokenStream {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &scannerTokens{sc: sc}
}

func (t *scannerTokens) Next() (string, bool) {
	if !t.sc.Scan() {
		return "", false
	}
	return t.sc.Text(), true
}

func (t *scannerTokens) Err() error { return t.sc.Err() }

// sliceTokens serves tokens from memory.
type sliceTokens struct {
	tokens []string
	pos    int
}

// NewSliceTokens returns a TokenStream over an already split token list.
func NewSliceTokens(tokens ...string) TokenStream {
	return &sliceTokens{tokens: tokens}
}

func (t *sliceTokens) Next() (string, bool) {
	if t.pos >= len(t.tokens) {
		return "", false
	}
	tok := t.tokens[t.pos]
	t.pos++
	return tok, true
}

func (t *sliceTokens) Err() error { return nil }
