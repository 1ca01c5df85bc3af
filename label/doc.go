// Package label transforms a raw survival table (time + event columns) into
// the single signed-label column downstream survival models train on.
//
// 🚀 The signed-label contract:
//
//	label =  t   when the event was observed    (e = 1)
//	label = -t   when the row is right-censored (e = 0)
//
// The sign encodes censoring status losslessly, with one boundary collapse:
// a censored row at t = 0 encodes to 0, indistinguishable from an observed
// event at t = 0. This ambiguity is inherent to the encoding; Ambiguous
// reports how many rows of a table are affected so callers can decide what
// to do with them.
//
// ✨ Key features:
//   - pure: the caller's table is never mutated, output columns own
//     their memory
//   - deterministic: output covariates keep the input column order, output
//     rows keep the input row order
//   - strict: every referenced column name (time, event, exclusions) must
//     exist, and a label-name collision with a retained covariate is a typed
//     error — never a silent overwrite
//
// ⚙️ Usage:
//
//	import "github.com/survtab/survtab/label"
//
//	out, err := label.Encode(tbl, "t", "e", "Y", label.WithExclude("id"))
//	// out columns: covariates (original order) ... then "Y"
package label
