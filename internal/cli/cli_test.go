package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/survtab/survtab/table"
)

const sampleCSV = "x_0,x_1,t,e\n1,2,5,1\n3,4,10,0\n"

// writeSample drops the canonical two-row dataset into a temp file.
func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	return path
}

// execute runs the root command with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

// TestStatsCommand runs `survtab stats` on a file and checks the report block.
func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "stats", writeSample(t), "--time", "t", "--event", "e")
	require.NoError(t, err)

	assert.Contains(t, out, "# Rows: 2")
	assert.Contains(t, out, "# Columns: 2 + e + t")
	assert.Contains(t, out, "# Events Ratio: 0.50%", "raw-fraction scaling preserved")
	assert.Contains(t, out, "# Max Time: 10")
}

// TestStatsCommand_Stdin reads the dataset from stdin when no FILE is given.
func TestStatsCommand_Stdin(t *testing.T) {
	rootCmd.SetIn(strings.NewReader(sampleCSV))
	out, err := execute(t, "stats", "--time", "t", "--event", "e")
	require.NoError(t, err)
	assert.Contains(t, out, "# Rows: 2")
}

// TestStatsCommand_MissingColumn fails loudly with the typed error text.
func TestStatsCommand_MissingColumn(t *testing.T) {
	_, err := execute(t, "stats", writeSample(t), "--time", "duration", "--event", "e")
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

// TestEncodeCommand transforms a file and checks the labeled CSV.
func TestEncodeCommand(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "labeled.csv")
	_, err := execute(t, "encode", writeSample(t),
		"--time", "t", "--event", "e", "--label", "Y", "--output", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "x_0,x_1,Y\n1,2,5\n3,4,-10\n", string(data))
}

// TestEncodeCommand_Exclude drops a covariate and writes to stdout.
func TestEncodeCommand_Exclude(t *testing.T) {
	out, err := execute(t, "encode", writeSample(t),
		"--time", "t", "--event", "e", "--label", "Y", "--exclude", "x_0", "--output", "")
	require.NoError(t, err)
	assert.Equal(t, "x_1,Y\n2,5\n4,-10\n", out)
}

// TestSimulateCommand generates a small dataset and round-trips it.
func TestSimulateCommand(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "sim.csv")
	_, err := execute(t, "simulate",
		"--hr", "2.0", "--rows", "50", "--features", "3", "--var", "2",
		"--seed", "7", "--output", outFile)
	require.NoError(t, err)

	f, err := os.Open(outFile)
	require.NoError(t, err)
	defer f.Close()

	tbl, err := table.ReadCSV(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"x_0", "x_1", "x_2", "e", "t"}, tbl.Names())
	assert.Equal(t, 50, tbl.Rows())
	assert.NoError(t, table.ValidateSurvival(tbl, "t", "e"))
}

// TestSimulateCommand_BadMethod surfaces the generator's typed error.
func TestSimulateCommand_BadMethod(t *testing.T) {
	_, err := execute(t, "simulate", "--hr", "2.0", "--rows", "10", "--method", "weibull")
	require.Error(t, err)
}
