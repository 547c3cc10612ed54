package table

import "fmt"

// Canonical table names of an energy network description.
const (
	Buses      = "buses"
	Sources    = "sources"
	Sinks      = "sinks"
	Converters = "converters"
	Storages   = "storages"
)

// DuplicateLabelError is returned when a row reuses a label already present
// in the same table.
type DuplicateLabelError struct {
	Table string
	Label string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("table %q: duplicate row label %q", e.Table, e.Label)
}

// MissingLabelError is returned when a row arrives without a label.
type MissingLabelError struct {
	Table string
}

func (e *MissingLabelError) Error() string {
	return fmt.Sprintf("table %q: row without a label", e.Table)
}

// Table is an ordered collection of labeled rows.
type Table struct {
	Name  string
	rows  []Row
	index map[string]int
}

// NewTable creates an empty table.
func NewTable(name string) *Table {
	return &Table{Name: name, index: make(map[string]int)}
}

// Append adds a row, enforcing the shape rules: label present, label unique.
func (t *Table) Append(r Row) error {
	if r.Label == "" {
		return &MissingLabelError{Table: t.Name}
	}
	if _, exists := t.index[r.Label]; exists {
		return &DuplicateLabelError{Table: t.Name, Label: r.Label}
	}
	t.index[r.Label] = len(t.rows)
	t.rows = append(t.rows, r)
	return nil
}

// Rows returns all rows in append order.
func (t *Table) Rows() []Row { return t.rows }

// Row returns the row with the given label.
func (t *Table) Row(label string) (Row, bool) {
	i, ok := t.index[label]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.rows) }

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool { return len(t.rows) == 0 }

// Set maps table names to tables. Missing tables read as empty.
type Set map[string]*Table

// NewSet creates an empty set.
func NewSet() Set { return make(Set) }

// Table returns the named table, or an empty placeholder when absent, so
// callers can range over rows without nil checks.
func (s Set) Table(name string) *Table {
	if t, ok := s[name]; ok {
		return t
	}
	return NewTable(name)
}

// Add inserts or replaces a table.
func (s Set) Add(t *Table) { s[t.Name] = t }
