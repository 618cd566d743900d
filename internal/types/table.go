package types

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps names to symbols. A module has one Table for its top-level
// declarations and one per function for parameters and type parameters.
// Tables do not nest: a lookup never falls through to another Table.
type Table struct {
	elems   map[string]*Symbol
	comment string // debugging comment (e.g., "module", "function f")
}

// NewTable creates an empty table.
func NewTable(comment string) *Table {
	return &Table{
		elems:   make(map[string]*Symbol),
		comment: comment,
	}
}

// Comment returns the table's comment (for debugging).
func (t *Table) Comment() string {
	return t.comment
}

// Lookup returns the symbol named name, or nil.
func (t *Table) Lookup(name string) *Symbol {
	return t.elems[name]
}

// Insert adds sym to the table.
// If a symbol with the same name already exists, returns the existing symbol
// and leaves the table unchanged. Otherwise, returns nil.
func (t *Table) Insert(sym *Symbol) *Symbol {
	if existing := t.elems[sym.Name]; existing != nil {
		return existing
	}
	t.elems[sym.Name] = sym
	return nil
}

// Names returns the names of all symbols in the table, sorted alphabetically.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.elems))
	for name := range t.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.elems)
}

// String returns a string representation of the table for debugging.
func (t *Table) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "table %s {\n", t.comment)
	for _, name := range t.Names() {
		fmt.Fprintf(&buf, "  %s\n", t.elems[name])
	}
	buf.WriteString("}\n")
	return buf.String()
}
