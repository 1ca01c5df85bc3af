// SPDX-License-Identifier: MIT
// Package table: the SurvivalTable container.
// This file defines Series (one named numeric column) and Table (an ordered
// collection of equal-length Series with a name index), plus the constructors
// and accessors the rest of the module builds on.
//
// Design goals:
//   - Deterministic behavior: column order is insertion order, always.
//   - No hidden sharing across tables: Clone/Select produce deep copies.
//   - Safe by construction: New validates names and lengths up front.

package table

// Series is one named numeric column.
//
// Values are plain float64s: survival times, 0/1 event indicators and model
// covariates are all numeric in this module. A Series is a value type; copying
// the struct shares the backing slice, use clone() where isolation matters.
type Series struct {
	Name   string
	Values []float64
}

// clone returns a deep copy of s (fresh backing slice).
func (s Series) clone() Series {
	out := Series{Name: s.Name, Values: make([]float64, len(s.Values))}
	copy(out.Values, s.Values)

	return out
}

// Table is an ordered, named-column numeric frame: one row per subject,
// one column per covariate plus (conventionally) a time and an event column.
//
// Invariants, enforced by New and every mutator-free derivation:
//   - column names are unique and non-empty;
//   - all columns have the same length (the row count).
//
// The zero value is not usable; construct via New.
type Table struct {
	cols   []Series
	byName map[string]int
}

// New builds a Table from the given columns, preserving their order.
//
// Returns:
//   - ErrEmptyName       — a column has an empty name.
//   - ErrDuplicateColumn — two columns share a name.
//   - ErrColumnLength    — columns differ in length.
//
// A call with no columns yields a valid empty table (0 rows, 0 columns).
// Column slices are adopted as-is; callers that keep writing to the input
// slices should pass clones.
func New(cols ...Series) (*Table, error) {
	t := &Table{
		cols:   make([]Series, 0, len(cols)),
		byName: make(map[string]int, len(cols)),
	}

	rows := -1 // -1 until the first column fixes the row count
	for _, s := range cols {
		if s.Name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := t.byName[s.Name]; dup {
			return nil, ErrDuplicateColumn
		}
		if rows >= 0 && len(s.Values) != rows {
			return nil, ErrColumnLength
		}
		rows = len(s.Values)
		t.byName[s.Name] = len(t.cols)
		t.cols = append(t.cols, s)
	}

	return t, nil
}

// Rows returns the number of rows (0 for an empty table).
func (t *Table) Rows() int {
	if t == nil || len(t.cols) == 0 {
		return 0
	}

	return len(t.cols[0].Values)
}

// Cols returns the number of columns.
func (t *Table) Cols() int {
	if t == nil {
		return 0
	}

	return len(t.cols)
}

// Names returns the column names in table order (a fresh slice).
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, s := range t.cols {
		names[i] = s.Name
	}

	return names
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.byName[name]

	return ok
}

// Column returns the named column or ErrColumnNotFound.
//
// The returned Series is a read-only view: its Values slice is shared with
// the table. Derivations that need isolation (Select, Clone, label.Encode)
// copy internally; callers must not write through the view.
func (t *Table) Column(name string) (Series, error) {
	if t == nil {
		return Series{}, ErrNilTable
	}
	i, ok := t.byName[name]
	if !ok {
		return Series{}, ErrColumnNotFound
	}

	return t.cols[i], nil
}

// Select returns a new table holding deep copies of the named columns,
// in the order given. Returns ErrColumnNotFound if any name is absent.
func (t *Table) Select(names ...string) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	picked := make([]Series, 0, len(names))
	for _, name := range names {
		s, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		picked = append(picked, s.clone())
	}

	return New(picked...)
}

// Clone returns a deep copy of the table: new column slices, new index.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}

	out := &Table{
		cols:   make([]Series, len(t.cols)),
		byName: make(map[string]int, len(t.byName)),
	}
	for i, s := range t.cols {
		out.cols[i] = s.clone()
		out.byName[s.Name] = i
	}

	return out
}

// Equal reports deep equality: same column names in the same order and
// bitwise-equal values. Two nil tables are equal; NaN != NaN as in Go.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	if len(t.cols) != len(other.cols) || t.Rows() != other.Rows() {
		return false
	}
	for i, s := range t.cols {
		o := other.cols[i]
		if s.Name != o.Name {
			return false
		}
		for j, v := range s.Values {
			if v != o.Values[j] {
				return false
			}
		}
	}

	return true
}
