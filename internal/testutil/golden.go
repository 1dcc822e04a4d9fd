// Package testutil provides shared test infrastructure for the truthtable
// simulator. It holds the golden netlist dataset types and assertion helpers
// used across the sim/, sim/sat/ and cmd/ test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is a netlist together with its expected text truth table.
type GoldenTestCase struct {
	Name    string   `json:"name"`
	Netlist string   `json:"netlist"`
	Reset   string   `json:"reset"` // "" = default (io)
	Rows    []string `json:"rows"`
}

// Tokens splits the netlist the way the file tokenizer does.
func (tc GoldenTestCase) Tokens() []string {
	return strings.Fields(tc.Netlist)
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// WriteNetlist writes src to a file in a fresh temp dir and returns its path.
func WriteNetlist(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.txt")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// AssertRowsEqual compares text truth table rows line by line.
func AssertRowsEqual(t *testing.T, name string, want, got []string) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: got %d rows, want %d\ngot:\n%s", name, len(got), len(want), strings.Join(got, "\n"))
		return
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("%s: row %d = %q, want %q", name, i, got[i], want[i])
		}
	}
}
