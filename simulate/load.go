package simulate

import (
	"fmt"

	"github.com/survtab/survtab/table"
)

// Load generates a dataset from cfg and reshapes it into a survival table
// with the conventional column layout: covariates named by positional index
// (x_0 .. x_{NumFeatures-1}), then the event column "e", then the time
// column "t".
//
// The result always satisfies table.ValidateSurvival(tbl, "t", "e").
func Load(cfg Config) (*table.Table, error) {
	raw, err := Generate(cfg)
	if err != nil {
		return nil, err
	}

	cols := make([]table.Series, 0, cfg.NumFeatures+2)
	for j := 0; j < cfg.NumFeatures; j++ {
		values := make([]float64, cfg.N)
		for i := range values {
			values[i] = raw.X[i][j]
		}
		cols = append(cols, table.Series{Name: fmt.Sprintf("x_%d", j), Values: values})
	}

	events := make([]float64, cfg.N)
	for i, e := range raw.E {
		events[i] = float64(e)
	}
	cols = append(cols,
		table.Series{Name: "e", Values: events},
		table.Series{Name: "t", Values: raw.T},
	)

	return table.New(cols...)
}
