// Package stats computes and reports descriptive statistics over a labeled
// survival table: row count, covariate count, event ratio and observed time
// range, plus per-covariate summaries.
//
// ✨ Key features:
//   - Summarize — the numbers, as a value struct for programmatic callers
//   - Report    — the numbers, as the fixed plain-text block downstream
//     tooling greps for (order and wording are frozen)
//   - Covariates — per-covariate mean / sample std / min / max
//   - optional Kaplan–Meier rendering via an injected CurvePlotter; this
//     package ships no estimator of its own
//
// ⚙️ Usage:
//
//	import "github.com/survtab/survtab/stats"
//
//	sum, err := stats.Summarize(tbl, "t", "e")
//	_ = stats.Report(os.Stdout, tbl, "t", "e")
//
// A historical wart, kept on purpose: the reported "Events Ratio" line prints
// the raw fraction events/N under a percent sign (30 events in 100 rows reads
// "0.30%"). Output compatibility with the original reporting tool wins over
// arithmetic taste; Summary.EventRatio and Summary.EventPercent expose the
// honest values.
//
// Complexity: every operation is a fixed-order O(rows·columns) scan; no
// allocation beyond the returned summaries.
package stats
