// Package simulate: configuration, defaults and the raw output contract.
package simulate

import "errors"

// Method selects the risk function applied to each covariate row.
type Method string

const (
	// Linear scores a row by the scaled sum of its first NumVar covariates.
	Linear Method = "linear"

	// Gaussian scores a row by a radial kernel over its first NumVar
	// covariates: rows near the origin carry the full log-hazard, rows far
	// away nearly none.
	Gaussian Method = "gaussian"
)

// DEFAULTS - single source of truth for DefaultConfig.
const (
	// DefaultN is the number of generated observations.
	DefaultN = 1000

	// DefaultNumFeatures is the size of each covariate vector.
	DefaultNumFeatures = 10

	// DefaultNumVar is how many leading covariates the risk depends on.
	DefaultNumVar = 2

	// DefaultAverageDeath is the mean of the baseline exponential death time.
	DefaultAverageDeath = 5.0

	// DefaultEndTime is the end-of-study horizon; longer death times are
	// censored (clipped to this value with event = 0).
	DefaultEndTime = 15.0

	// DefaultSeed seeds the generator's private random source.
	DefaultSeed int64 = 42

	// DefaultGaussianScale is the Gaussian kernel width used when
	// GaussianConfig.Scale is left at its zero value.
	DefaultGaussianScale = 0.5
)

var (
	// ErrBadConfig signals a non-positive or inconsistent Config field.
	ErrBadConfig = errors.New("simulate: invalid configuration")

	// ErrUnknownMethod signals a Method other than Linear or Gaussian.
	ErrUnknownMethod = errors.New("simulate: unknown method")
)

// GaussianConfig carries the Gaussian risk kernel's parameters. It is a value
// struct: the zero value means "use defaults", and no configuration state is
// ever shared between calls.
type GaussianConfig struct {
	// Scale is the kernel width; 0 selects DefaultGaussianScale.
	Scale float64
}

// scale resolves the effective kernel width.
func (g GaussianConfig) scale() float64 {
	if g.Scale == 0 {
		return DefaultGaussianScale
	}

	return g.Scale
}

// Config fully determines one synthetic dataset. Equal configs produce
// identical output.
type Config struct {
	HazardRatio  float64        // maximum hazard ratio between subjects; must be > 0
	N            int            // number of observations
	NumFeatures  int            // covariate vector size
	NumVar       int            // leading covariates the risk depends on (<= NumFeatures)
	AverageDeath float64        // mean baseline death time
	EndTime      float64        // censoring horizon
	Method       Method         // risk function
	Gaussian     GaussianConfig // Gaussian kernel parameters (Method == Gaussian)
	Seed         int64          // random source seed
}

// DefaultConfig returns the documented default configuration for the given
// hazard ratio, with the Linear risk method.
func DefaultConfig(hazardRatio float64) Config {
	return Config{
		HazardRatio:  hazardRatio,
		N:            DefaultN,
		NumFeatures:  DefaultNumFeatures,
		NumVar:       DefaultNumVar,
		AverageDeath: DefaultAverageDeath,
		EndTime:      DefaultEndTime,
		Method:       Linear,
		Seed:         DefaultSeed,
	}
}

// validate checks every field before the first random draw.
func (c Config) validate() error {
	switch {
	case c.HazardRatio <= 0:
		return errBadConfigf("HazardRatio must be > 0")
	case c.N <= 0:
		return errBadConfigf("N must be > 0")
	case c.NumFeatures <= 0:
		return errBadConfigf("NumFeatures must be > 0")
	case c.NumVar <= 0 || c.NumVar > c.NumFeatures:
		return errBadConfigf("NumVar must be in [1, NumFeatures]")
	case c.AverageDeath <= 0:
		return errBadConfigf("AverageDeath must be > 0")
	case c.EndTime <= 0:
		return errBadConfigf("EndTime must be > 0")
	case c.Gaussian.Scale < 0:
		return errBadConfigf("Gaussian.Scale must be >= 0")
	}

	switch c.Method {
	case Linear, Gaussian:
		return nil
	default:
		return ErrUnknownMethod
	}
}

// Raw is the simulator's output contract: a covariate matrix X (N rows),
// the event indicators E (1 = observed, 0 = censored) and the observed or
// censoring times T, all index-aligned.
type Raw struct {
	X [][]float64
	E []int
	T []float64
}
