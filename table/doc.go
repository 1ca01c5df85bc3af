// Package table defines the SurvivalTable: an ordered, numeric, named-column
// frame holding right-censored time-to-event data.
//
// 🚀 What is a SurvivalTable?
//
//	One row per subject; zero or more covariate columns; one time column
//	(observed or censoring time, finite and >= 0); one event column
//	(1 = event observed, 0 = right-censored).
//
// ✨ Key features:
//   - deterministic column order (insertion order, always)
//   - deep-copy derivations: Clone and Select never share backing slices
//   - centralized validators (ValidateSurvival) with typed sentinel errors
//   - a lossless CSV codec for file-based workflows
//
// ⚙️ Usage:
//
//	import "github.com/survtab/survtab/table"
//
//	tbl, err := table.New(
//	    table.Series{Name: "age", Values: []float64{61, 47}},
//	    table.Series{Name: "t", Values: []float64{5, 10}},
//	    table.Series{Name: "e", Values: []float64{1, 0}},
//	)
//	if err != nil { ... }
//	if err := table.ValidateSurvival(tbl, "t", "e"); err != nil { ... }
//
// All failures surface as sentinel errors (ErrColumnNotFound, ErrTimeValue,
// ErrEventValue, ...) matched via errors.Is; nothing in this package panics
// on user input.
package table
