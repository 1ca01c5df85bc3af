package label

import (
	"errors"
	"fmt"

	"github.com/survtab/survtab/table"
)

// ErrLabelCollision indicates that the requested label column name is already
// taken by a covariate that would be retained in the output.
var ErrLabelCollision = errors.New("label: label name collides with a retained covariate")

// Option configures Encode.
type Option func(*options)

type options struct {
	exclude []string
}

// WithExclude drops the named covariate columns from the encoded output.
// Every name must exist in the input table; unknown names fail with
// table.ErrColumnNotFound rather than being silently ignored.
func WithExclude(names ...string) Option {
	return func(o *options) { o.exclude = append(o.exclude, names...) }
}

// Encode builds a labeled survival table from t:
//
//  1. covariates = all columns except {timeCol, eventCol} and the exclusion
//     set, in their original order;
//  2. label[i] = time[i] when event[i] = 1, -time[i] when event[i] = 0;
//  3. result = covariates followed by the label column, named labelCol.
//
// Encode is pure: t is left exactly as it was, and the returned table shares
// no memory with it. Row count and row order are preserved.
//
// Returns:
//   - table.ErrNilTable / table.ErrColumnNotFound — t missing, or any of
//     timeCol, eventCol, exclusions absent;
//   - table.ErrTimeValue / table.ErrEventValue — survival contract violations
//     (an event cell outside {0,1} would corrupt the sign, so it is rejected);
//   - ErrLabelCollision — labelCol names a retained covariate.
//
// Complexity: O(rows · columns) for the copies; no other allocation.
func Encode(t *table.Table, timeCol, eventCol, labelCol string, opts ...Option) (*table.Table, error) {
	if err := table.ValidateSurvival(t, timeCol, eventCol); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := table.ValidateColumns(t, o.exclude...); err != nil {
		return nil, err
	}

	skip := make(map[string]struct{}, 2+len(o.exclude))
	skip[timeCol] = struct{}{}
	skip[eventCol] = struct{}{}
	for _, name := range o.exclude {
		skip[name] = struct{}{}
	}

	covariates := make([]string, 0, t.Cols())
	for _, name := range t.Names() {
		if _, drop := skip[name]; drop {
			continue
		}
		if name == labelCol {
			return nil, fmt.Errorf("%q: %w", labelCol, ErrLabelCollision)
		}
		covariates = append(covariates, name)
	}

	out, err := t.Select(covariates...) // deep copies, original order
	if err != nil {
		return nil, err
	}

	times, _ := t.Column(timeCol)
	events, _ := t.Column(eventCol)

	labels := make([]float64, len(times.Values))
	copy(labels, times.Values)
	for i, e := range events.Values {
		// labels[i] != 0 keeps the t=0 collapse an exact 0, not a -0
		// that would leak censoring status through the sign bit.
		if e == 0 && labels[i] != 0 {
			labels[i] = -labels[i]
		}
	}

	cols := make([]table.Series, 0, out.Cols()+1)
	for _, name := range out.Names() {
		s, _ := out.Column(name)
		cols = append(cols, s)
	}
	cols = append(cols, table.Series{Name: labelCol, Values: labels})

	return table.New(cols...)
}

// Ambiguous counts the rows whose signed label collapses: censored rows with
// t = 0 encode to 0 and cannot be told apart from an observed event at t = 0.
//
// Errors mirror the structural/contract stages of Encode.
func Ambiguous(t *table.Table, timeCol, eventCol string) (int, error) {
	if err := table.ValidateSurvival(t, timeCol, eventCol); err != nil {
		return 0, err
	}

	times, _ := t.Column(timeCol)
	events, _ := t.Column(eventCol)

	n := 0
	for i, v := range times.Values {
		if v == 0 && events.Values[i] == 0 {
			n++
		}
	}

	return n, nil
}
