package sim

import (
	"fmt"
	"strconv"
)

// DefaultMaxSymbols is the symbol capacity used when none is configured.
const DefaultMaxSymbols = 100

// SymbolTable interns wire names to slot indices in the value vector.
// Slots are handed out in order of first appearance and never freed.
type SymbolTable struct {
	names    []string
	slots    map[string]int
	seeds    map[int]bool // constant slots created from numeric literal tokens
	capacity int
}

// NewSymbolTable creates an empty table holding at most capacity symbols.
// A non-positive capacity falls back to DefaultMaxSymbols.
func NewSymbolTable(capacity int) *SymbolTable {
	if capacity <= 0 {
		capacity = DefaultMaxSymbols
	}
	return &SymbolTable{
		names:    make([]string, 0),
		slots:    make(map[string]int),
		seeds:    make(map[int]bool),
		capacity: capacity,
	}
}

// Resolve returns the slot for name, allocating the next free slot on first use.
// A name that parses as an integer literal ("0", "1") becomes a constant slot
// seeded with value != 0.
func (st *SymbolTable) Resolve(name string) (int, error) {
	if slot, ok := st.slots[name]; ok {
		return slot, nil
	}
	if len(st.names) >= st.capacity {
		return -1, fmt.Errorf("symbol %q: table holds %d symbols: %w", name, st.capacity, ErrCapacityExceeded)
	}
	slot := len(st.names)
	st.names = append(st.names, name)
	st.slots[name] = slot
	if v, err := strconv.Atoi(name); err == nil {
		st.seeds[slot] = v != 0
	}
	return slot, nil
}

// Declare interns a port name from the input/output header. Unlike Resolve it
// never seeds a constant and rejects names that are already interned, so that
// declared ports occupy consecutive slots.
func (st *SymbolTable) Declare(name string) (int, error) {
	if _, ok := st.slots[name]; ok {
		return -1, fmt.Errorf("port %q declared twice: %w", name, ErrMalformedHeader)
	}
	if len(st.names) >= st.capacity {
		return -1, fmt.Errorf("port %q: table holds %d symbols: %w", name, st.capacity, ErrCapacityExceeded)
	}
	slot := len(st.names)
	st.names = append(st.names, name)
	st.slots[name] = slot
	return slot, nil
}

// Lookup returns the slot for an already interned name.
func (st *SymbolTable) Lookup(name string) (int, bool) {
	slot, ok := st.slots[name]
	return slot, ok
}

// Name returns the wire name stored at slot, or "" if slot is out of range.
func (st *SymbolTable) Name(slot int) string {
	if slot < 0 || slot >= len(st.names) {
		return ""
	}
	return st.names[slot]
}

// Len returns the number of interned symbols.
func (st *SymbolTable) Len() int { return len(st.names) }

// Capacity returns the configured symbol limit.
func (st *SymbolTable) Capacity() int { return st.capacity }

// IsConstant reports whether slot was created from a numeric literal, and its value.
func (st *SymbolTable) IsConstant(slot int) (value bool, ok bool) {
	value, ok = st.seeds[slot]
	return value, ok
}

// Seeds returns a fresh value vector with every constant slot set to its literal value.
func (st *SymbolTable) Seeds() []bool {
	values := make([]bool, len(st.names))
	for slot, v := range st.seeds {
		values[slot] = v
	}
	return values
}
