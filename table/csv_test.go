package table_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/survtab/survtab/table"
)

// TestReadCSV_Basic decodes a small headered stream and checks shape/values.
func TestReadCSV_Basic(t *testing.T) {
	in := "x_0,t,e\n1.5,5,1\n3,10,0\n"

	tbl, err := table.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"x_0", "t", "e"}, tbl.Names(), "header order")
	assert.Equal(t, 2, tbl.Rows(), "row count")

	s, err := tbl.Column("x_0")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3}, s.Values)
}

// TestReadCSV_HeaderOnly yields a valid zero-row table.
func TestReadCSV_HeaderOnly(t *testing.T) {
	tbl, err := table.ReadCSV(strings.NewReader("t,e\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Rows())
	assert.Equal(t, 2, tbl.Cols())
}

// TestReadCSV_Empty rejects a stream without a header.
func TestReadCSV_Empty(t *testing.T) {
	_, err := table.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, table.ErrNoColumns)
}

// TestReadCSV_BadCell rejects non-numeric cells with location context.
func TestReadCSV_BadCell(t *testing.T) {
	_, err := table.ReadCSV(strings.NewReader("t,e\n5,yes\n"))
	assert.ErrorIs(t, err, table.ErrBadCell, "non-numeric cell must error")
	assert.Contains(t, err.Error(), `"e"`, "error names the column")
}

// TestReadCSV_DuplicateHeader surfaces the table constructor's sentinel.
func TestReadCSV_DuplicateHeader(t *testing.T) {
	_, err := table.ReadCSV(strings.NewReader("t,t\n1,2\n"))
	assert.ErrorIs(t, err, table.ErrDuplicateColumn)
}

// TestWriteCSV_RoundTrip confirms WriteCSV→ReadCSV is lossless.
func TestWriteCSV_RoundTrip(t *testing.T) {
	tbl := sampleTable(t)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf, tbl))

	back, err := table.ReadCSV(&buf)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(back), "round-trip preserves the table")
}

// TestWriteCSV_NilTable rejects a nil argument.
func TestWriteCSV_NilTable(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, table.WriteCSV(&buf, nil), table.ErrNilTable)
}
