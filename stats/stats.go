// Package stats: Summarize and Report.
package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/survtab/survtab/table"
)

// reportBanner opens every report block; downstream tooling greps for it.
const reportBanner = "--------------- Survival Data Statistics ---------------"

// Summarize computes the descriptive statistics of a survival table.
//
// Validation runs in a fixed sequence: table present → columns present →
// survival data contract (finite non-negative times, 0/1 events) → at least
// one row.
//
// Returns:
//   - table.ErrNilTable / table.ErrColumnNotFound — structural failures;
//   - table.ErrTimeValue / table.ErrEventValue — contract violations;
//   - table.ErrEmptyTable — zero rows (the event ratio divides by N).
//
// Complexity: O(rows), single pass over the time and event columns.
func Summarize(t *table.Table, timeCol, eventCol string) (Summary, error) {
	if err := table.ValidateSurvival(t, timeCol, eventCol); err != nil {
		return Summary{}, err
	}
	if err := table.ValidateNotEmpty(t); err != nil {
		return Summary{}, err
	}

	times, _ := t.Column(timeCol)
	events, _ := t.Column(eventCol)

	sum := Summary{
		Rows:       t.Rows(),
		Covariates: t.Cols() - 2,
		TimeCol:    timeCol,
		EventCol:   eventCol,
		MinTime:    times.Values[0],
		MaxTime:    times.Values[0],
	}

	for _, v := range times.Values {
		if v < sum.MinTime {
			sum.MinTime = v
		}
		if v > sum.MaxTime {
			sum.MaxTime = v
		}
	}
	for _, e := range events.Values {
		sum.Events += e
	}
	sum.EventRatio = sum.Events / float64(sum.Rows)

	return sum, nil
}

// Report writes the fixed-format statistics block for a survival table to w,
// then — when a plotter was injected via WithPlotter — delegates the
// Kaplan–Meier rendering to it.
//
// The block layout is frozen (order, wording, and the raw-fraction percent
// line; see package doc):
//
//	--------------- Survival Data Statistics ---------------
//	# Rows: 100
//	# Columns: 2 + e + t
//	# Events Ratio: 0.30%
//	# Min Time: 1
//	# Max Time: 15
//
// Errors mirror Summarize; write and plot failures are wrapped with context.
// The input table is never mutated.
func Report(w io.Writer, t *table.Table, timeCol, eventCol string, opts ...Option) error {
	sum, err := Summarize(t, timeCol, eventCol)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w,
		"%s\n# Rows: %d\n# Columns: %d + %s + %s\n# Events Ratio: %.2f%%\n# Min Time: %s\n# Max Time: %s\n\n",
		reportBanner,
		sum.Rows,
		sum.Covariates, sum.EventCol, sum.TimeCol,
		sum.EventRatio,
		formatTime(sum.MinTime),
		formatTime(sum.MaxTime),
	); err != nil {
		return fmt.Errorf("stats: write report: %w", err)
	}

	o := gatherOptions(opts)
	if o.plotter != nil {
		if err = o.plotter.PlotKM(t, timeCol, eventCol); err != nil {
			return fmt.Errorf("stats: plot survival curve: %w", err)
		}
	}

	return nil
}

// formatTime renders a time bound in the shortest exact form (5 not 5.00).
func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
