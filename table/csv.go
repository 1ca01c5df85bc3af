// SPDX-License-Identifier: MIT
// Package table: CSV codec.
// ReadCSV/WriteCSV round-trip a Table through the plain-text CSV layout the
// cmd/survtab front end (and any downstream trainer) consumes: first record is
// the header, every following record is one row of float64 cells.

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReadCSV decodes a headered CSV stream into a Table.
//
// The first record fixes column names and order; every cell below it must
// parse as a float64.
//
// Returns:
//   - ErrNoColumns       — the stream has no header record;
//   - ErrEmptyName / ErrDuplicateColumn — invalid header;
//   - ErrBadCell         — a cell failed numeric parsing (row/column named);
//   - the underlying csv error on malformed framing.
func ReadCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoColumns
	}

	header := records[0]
	cols := make([]Series, len(header))
	for j, name := range header {
		cols[j] = Series{Name: name, Values: make([]float64, 0, len(records)-1)}
	}

	for i, record := range records[1:] {
		// csv.ReadAll already enforces a uniform field count per record.
		for j, cell := range record {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, fmt.Errorf("table: row %d column %q: %w", i, header[j], ErrBadCell)
			}
			cols[j].Values = append(cols[j].Values, v)
		}
	}

	return New(cols...)
}

// WriteCSV encodes t as headered CSV. Values use the shortest float64
// representation ('g', -1), so WriteCSV→ReadCSV is lossless.
func WriteCSV(w io.Writer, t *Table) error {
	if err := ValidateNotNil(t); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("table: write csv header: %w", err)
	}

	rows, cols := t.Rows(), t.Cols()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(t.cols[j].Values[i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("table: write csv row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
