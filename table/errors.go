// SPDX-License-Identifier: MIT
// Package table: sentinel error set (unified, consistent).
// Every operation in this package and its consumers (stats, label, simulate)
// returns these sentinels and tests match them via errors.Is. No operation
// panics on user-triggered conditions; invalid data fails loudly with a typed
// error rather than producing a silently corrupted table.

package table

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "table: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilTable indicates that a nil *Table (receiver or argument) was used.
	ErrNilTable = errors.New("table: nil table")

	// ErrEmptyName is returned when a column is constructed with an empty name.
	ErrEmptyName = errors.New("table: empty column name")

	// ErrDuplicateColumn signals that two columns share the same name, or that
	// a new column's name collides with an existing one.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrColumnLength signals that columns of a single table differ in length.
	ErrColumnLength = errors.New("table: column length mismatch")

	// ErrColumnNotFound indicates that a referenced column name is absent.
	ErrColumnNotFound = errors.New("table: column not found")

	// ErrEmptyTable is returned where at least one row is required
	// (e.g. ratio computations dividing by the row count).
	ErrEmptyTable = errors.New("table: table has no rows")

	// ErrNoColumns is returned by decoders when the source carries no header.
	ErrNoColumns = errors.New("table: no columns")

	// ErrTimeValue signals a time cell that is NaN, ±Inf or negative.
	ErrTimeValue = errors.New("table: time value must be finite and >= 0")

	// ErrEventValue signals an event cell outside {0, 1}.
	ErrEventValue = errors.New("table: event value must be 0 or 1")

	// ErrBadCell indicates a cell that could not be parsed as a number.
	ErrBadCell = errors.New("table: cell is not a number")
)
