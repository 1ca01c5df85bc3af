// SPDX-License-Identifier: MIT
// Package table: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for the guards shared by stats, label
//     and simulate, so call sites never duplicate ad hoc checks.
//   - Return plain sentinel errors wrapped with a validator tag; callers match
//     with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; row scans run in fixed 0..N-1 order.

package table

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Keeps error labeling consistent across all validation paths.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the table reference is non-nil.
// Complexity: O(1). Use as the first step in composite validations.
func ValidateNotNil(t *Table) error {
	if t == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTable)
	}

	return nil
}

// ValidateColumns ensures every named column exists in t.
// Assumes t is not nil (compose after ValidateNotNil).
// Returns ErrColumnNotFound naming the first missing column.
// Complexity: O(len(names)).
func ValidateColumns(t *Table, names ...string) error {
	for _, name := range names {
		if !t.Has(name) {
			return fmt.Errorf("ValidateColumns: %q: %w", name, ErrColumnNotFound)
		}
	}

	return nil
}

// ValidateNotEmpty ensures the table has at least one row.
// Assumes t is not nil. Returns ErrEmptyTable otherwise.
// Complexity: O(1).
func ValidateNotEmpty(t *Table) error {
	if t.Rows() == 0 {
		return validatorErrorf("ValidateNotEmpty", ErrEmptyTable)
	}

	return nil
}

// ValidateSurvival runs the full survival-data contract in a fixed sequence:
// NotNil → Columns(timeCol, eventCol) → time cells finite and >= 0 →
// event cells ∈ {0, 1}.
//
// Returns:
//   - ErrNilTable / ErrColumnNotFound from the structural stage;
//   - ErrTimeValue naming the first offending row;
//   - ErrEventValue naming the first offending row.
//
// Complexity: O(N) over the two inspected columns.
func ValidateSurvival(t *Table, timeCol, eventCol string) error {
	if err := ValidateNotNil(t); err != nil {
		return err
	}
	if err := ValidateColumns(t, timeCol, eventCol); err != nil {
		return err
	}

	times, _ := t.Column(timeCol)
	for i, v := range times.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("ValidateSurvival: row %d: %w", i, ErrTimeValue)
		}
	}

	events, _ := t.Column(eventCol)
	for i, v := range events.Values {
		if v != 0 && v != 1 {
			return fmt.Errorf("ValidateSurvival: row %d: %w", i, ErrEventValue)
		}
	}

	return nil
}
