// Package survtab is an in-memory toolkit for shaping right-censored
// time-to-event (survival) datasets before they reach a model.
//
// 🚀 What is survtab?
//
//	A small, deterministic library that brings together:
//		• table/    — the SurvivalTable: an ordered, numeric, named-column frame
//		• stats/    — descriptive statistics & a fixed-format survival report
//		• label/    — the signed-label transform (negative = right-censored)
//		• simulate/ — a seeded Cox-exponential synthetic data generator
//
// ✨ Why choose survtab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed traversal orders, seeded randomness, no globals
//   - Pure Go library core – the CLI is the only place with heavier deps
//   - Loud failures – typed sentinel errors, never silently corrupted labels
//
// The signed-label contract, used by downstream survival models:
//
//	label =  t   when the event was observed    (e = 1)
//	label = -t   when the row is right-censored (e = 0)
//
// Quick example:
//
//	tbl, _ := table.New(
//	    table.Series{Name: "x_0", Values: []float64{1, 3}},
//	    table.Series{Name: "t", Values: []float64{5, 10}},
//	    table.Series{Name: "e", Values: []float64{1, 0}},
//	)
//	out, _ := label.Encode(tbl, "t", "e", "Y")
//	// out columns: x_0, Y — rows (1, 5) and (3, -10)
//
// A command-line front end lives in cmd/survtab for CSV-file workflows:
//
//	survtab stats data.csv --time t --event e
//	survtab encode data.csv --time t --event e --label Y -o labeled.csv
//	survtab simulate --hr 2.0 -n 1000 -o sim.csv
//
// See each subpackage's doc.go and example_test.go for walkthroughs.
package survtab
