package table_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/survtab/survtab/table"
)

// TestValidateNotNil covers both the nil and non-nil branches.
func TestValidateNotNil(t *testing.T) {
	assert.ErrorIs(t, table.ValidateNotNil(nil), table.ErrNilTable, "nil table must error")
	assert.NoError(t, table.ValidateNotNil(sampleTable(t)), "real table must pass")
}

// TestValidateColumns verifies presence checks and the typed miss.
func TestValidateColumns(t *testing.T) {
	tbl := sampleTable(t)

	assert.NoError(t, table.ValidateColumns(tbl, "t", "e", "x_0"), "existing columns pass")

	err := table.ValidateColumns(tbl, "t", "ghost")
	assert.ErrorIs(t, err, table.ErrColumnNotFound, "missing column must error")
	assert.Contains(t, err.Error(), "ghost", "error names the missing column")
}

// TestValidateNotEmpty checks the zero-row guard.
func TestValidateNotEmpty(t *testing.T) {
	empty, err := table.New(table.Series{Name: "t", Values: nil})
	require.NoError(t, err)

	assert.ErrorIs(t, table.ValidateNotEmpty(empty), table.ErrEmptyTable, "zero rows must error")
	assert.NoError(t, table.ValidateNotEmpty(sampleTable(t)), "populated table passes")
}

// TestValidateSurvival_Valid passes a well-formed survival table.
func TestValidateSurvival_Valid(t *testing.T) {
	assert.NoError(t, table.ValidateSurvival(sampleTable(t), "t", "e"))
}

// TestValidateSurvival_StructuralFailures exercises the nil and missing-column stages.
func TestValidateSurvival_StructuralFailures(t *testing.T) {
	assert.ErrorIs(t, table.ValidateSurvival(nil, "t", "e"), table.ErrNilTable)

	tbl := sampleTable(t)
	assert.ErrorIs(t, table.ValidateSurvival(tbl, "missing", "e"), table.ErrColumnNotFound)
	assert.ErrorIs(t, table.ValidateSurvival(tbl, "t", "missing"), table.ErrColumnNotFound)
}

// TestValidateSurvival_TimeContract rejects negative, NaN and Inf times.
func TestValidateSurvival_TimeContract(t *testing.T) {
	for name, bad := range map[string]float64{
		"negative": -1,
		"nan":      math.NaN(),
		"pos-inf":  math.Inf(1),
		"neg-inf":  math.Inf(-1),
	} {
		tbl, err := table.New(
			table.Series{Name: "t", Values: []float64{1, bad}},
			table.Series{Name: "e", Values: []float64{1, 0}},
		)
		require.NoError(t, err, name)
		assert.ErrorIs(t, table.ValidateSurvival(tbl, "t", "e"), table.ErrTimeValue, name)
	}
}

// TestValidateSurvival_EventContract rejects event cells outside {0,1}.
func TestValidateSurvival_EventContract(t *testing.T) {
	tbl, err := table.New(
		table.Series{Name: "t", Values: []float64{1, 2}},
		table.Series{Name: "e", Values: []float64{1, 0.5}},
	)
	require.NoError(t, err)
	assert.ErrorIs(t, table.ValidateSurvival(tbl, "t", "e"), table.ErrEventValue)
}
