// Package simulate generates synthetic right-censored survival datasets from
// an exponential Cox proportional-hazards model, mirroring the classic
// construction of Austin (2012): covariates drive a per-subject risk score,
// death times are exponential draws scaled by that risk, and an end-of-study
// horizon censors whatever survives past it.
//
// 🚀 Generation, step by step:
//
//  1. draw an N × NumFeatures covariate matrix, each cell ~ Uniform(-1, 1);
//  2. score each row with a risk function of the first NumVar covariates:
//     • Linear:   risk = log(HazardRatio)/NumVar · Σ x_j
//     • Gaussian: risk = log(HazardRatio) · exp(−Σ x_j² / (2·Scale²))
//  3. draw a death time ~ Exponential(mean AverageDeath) · exp(−risk),
//     so higher risk means proportionally shorter survival;
//  4. censor at EndTime: longer times are clipped to EndTime with event = 0.
//
// ✨ Key features:
//   - fully deterministic under Config.Seed (fixed draw order, own rand.Rand,
//     no shared state between calls)
//   - Raw output matching the {x, e, t} simulator contract, plus Load to get
//     a ready table with columns x_0..x_{k-1}, e, t
//   - typed validation of every parameter before the first draw
//
// ⚙️ Usage:
//
//	import "github.com/survtab/survtab/simulate"
//
//	cfg := simulate.DefaultConfig(2.0) // hazard ratio 2.0, defaults elsewhere
//	tbl, err := simulate.Load(cfg)
//
// Reference: Peter C. Austin. Generating survival times to simulate Cox
// proportional hazards models with time-varying covariates. Statistics in
// Medicine, 31(29):3946–3958, 2012.
package simulate
