// Package stats: per-covariate descriptive statistics.
//
// Purpose:
//   - Summarize every covariate column (everything except the time/event
//     columns and an explicit exclusion set) with deterministic accumulation.
//
// Determinism & Performance:
//   - Fixed column→row traversal; stable output order = table column order.
//   - Single pass per column for min/max/mean, second pass for the sample std.
package stats

import (
	"math"

	"github.com/survtab/survtab/table"
)

// Covariates computes a ColumnSummary for every covariate column of t,
// preserving table column order. The time and event columns and every name in
// exclude are skipped; all referenced names must exist (no silent no-ops).
//
// Returns:
//   - table.ErrNilTable / table.ErrColumnNotFound — structural failures,
//     including unknown names in exclude;
//   - table.ErrEmptyTable — zero rows (means are undefined).
//
// A table whose every column is excluded yields an empty, non-nil slice.
func Covariates(t *table.Table, timeCol, eventCol string, exclude ...string) ([]ColumnSummary, error) {
	if err := table.ValidateNotNil(t); err != nil {
		return nil, err
	}
	if err := table.ValidateColumns(t, timeCol, eventCol); err != nil {
		return nil, err
	}
	if err := table.ValidateColumns(t, exclude...); err != nil {
		return nil, err
	}
	if err := table.ValidateNotEmpty(t); err != nil {
		return nil, err
	}

	skip := make(map[string]struct{}, 2+len(exclude))
	skip[timeCol] = struct{}{}
	skip[eventCol] = struct{}{}
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	n := t.Rows()
	out := make([]ColumnSummary, 0, t.Cols()-len(skip))
	for _, name := range t.Names() {
		if _, drop := skip[name]; drop {
			continue
		}
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}

		cs := ColumnSummary{Name: name, Min: col.Values[0], Max: col.Values[0]}
		var total float64
		for _, v := range col.Values {
			total += v
			if v < cs.Min {
				cs.Min = v
			}
			if v > cs.Max {
				cs.Max = v
			}
		}
		cs.Mean = total / float64(n)

		if n > 1 {
			var sq float64
			for _, v := range col.Values {
				d := v - cs.Mean
				sq += d * d
			}
			cs.Std = math.Sqrt(sq / float64(n-1))
		}

		out = append(out, cs)
	}

	return out, nil
}
