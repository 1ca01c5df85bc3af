// Package stats: result types and functional options.
package stats

import "github.com/survtab/survtab/table"

// Summary holds the descriptive statistics of one survival table.
//
// EventRatio is the plain fraction events/rows in [0, 1]; the Report text
// prints this raw fraction under a percent sign for compatibility with the
// original reporting format (see package doc). Use EventPercent for the
// conventionally scaled value.
type Summary struct {
	Rows       int     // number of rows (subjects)
	Covariates int     // number of columns minus the time and event columns
	TimeCol    string  // name of the time column
	EventCol   string  // name of the event column
	Events     float64 // sum of the event column (observed events)
	EventRatio float64 // Events / Rows, a fraction in [0, 1]
	MinTime    float64 // minimum of the time column
	MaxTime    float64 // maximum of the time column
}

// EventPercent returns the event ratio scaled to percent (×100).
func (s Summary) EventPercent() float64 {
	return 100 * s.EventRatio
}

// ColumnSummary holds the descriptive statistics of a single covariate column.
// Std is the sample standard deviation (n−1 denominator); it is 0 when the
// table has fewer than two rows.
type ColumnSummary struct {
	Name string
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// CurvePlotter renders a Kaplan–Meier survival curve for a table.
// Estimation and rendering are delegated: this module ships
// no implementation, callers inject their own (terminal, PNG, notebook, ...).
type CurvePlotter interface {
	PlotKM(t *table.Table, timeCol, eventCol string) error
}

// Option configures Report. Options follow the functional-option pattern;
// the zero configuration (no options) reports text only.
type Option func(*options)

type options struct {
	plotter CurvePlotter
}

// WithPlotter attaches a Kaplan–Meier plotter to the report. After the text
// block is written, Report invokes p.PlotKM on the same table and columns.
func WithPlotter(p CurvePlotter) Option {
	return func(o *options) { o.plotter = p }
}

// gatherOptions folds opts over the default configuration.
func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
