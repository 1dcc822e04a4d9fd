package sim

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects how WriteTable renders rows.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ValidFormats is the set of recognized output format names.
var ValidFormats = map[string]bool{"": true, "text": true, "json": true, "yaml": true}

// TableDocument is the structured form of a truth table used by the json and
// yaml formats.
type TableDocument struct {
	Inputs  []string      `json:"inputs" yaml:"inputs"`
	Outputs []string      `json:"outputs" yaml:"outputs"`
	Rows    []RowDocument `json:"rows" yaml:"rows"`
}

// RowDocument holds one row with bits as 0/1 integers.
type RowDocument struct {
	In  []int `json:"in" yaml:"in,flow"`
	Out []int `json:"out" yaml:"out,flow"`
}

// WriteTable evaluates c and writes its truth table to w.
// The text format streams rows as they are produced:
//
//	0 1 | 0 1
//
// every input bit followed by a space, then "| " and the space-separated outputs.
func WriteTable(w io.Writer, c *Circuit, cfg EvalConfig, format OutputFormat) error {
	switch format {
	case FormatText, "":
		return writeText(w, c, cfg)
	case FormatJSON, FormatYAML:
		rows, err := Table(c, cfg)
		if err != nil {
			return err
		}
		doc := NewTableDocument(c, rows)
		if format == FormatJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q; valid: text, json, yaml", format)
}

func writeText(w io.Writer, c *Circuit, cfg EvalConfig) error {
	bw := bufio.NewWriter(w)
	for row, err := range Enumerate(c, cfg) {
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(FormatRow(row)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatRow renders a row in the text layout without the trailing newline.
func FormatRow(row Row) string {
	buf := make([]byte, 0, 2*len(row.Inputs)+2*len(row.Outputs)+2)
	for _, b := range row.Inputs {
		buf = append(buf, bit(b), ' ')
	}
	buf = append(buf, '|', ' ')
	for i, b := range row.Outputs {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, bit(b))
	}
	return string(buf)
}

func bit(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// NewTableDocument converts rows into their structured form.
func NewTableDocument(c *Circuit, rows []Row) TableDocument {
	doc := TableDocument{
		Inputs:  c.InputNames(),
		Outputs: c.OutputNames(),
		Rows:    make([]RowDocument, 0, len(rows)),
	}
	for _, r := range rows {
		doc.Rows = append(doc.Rows, RowDocument{In: bits(r.Inputs), Out: bits(r.Outputs)})
	}
	return doc
}

func bits(bs []bool) []int {
	out := make([]int, len(bs))
	for i, b := range bs {
		if b {
			out[i] = 1
		}
	}
	return out
}
