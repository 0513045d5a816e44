package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/seqalign/report"
	"github.com/katalvlaran/seqalign/seqio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeOutputs stores outputs under dir with the given file names.
func writeOutputs(t *testing.T, dir string, files map[string]seqio.Output) {
	t.Helper()
	for name, o := range files {
		require.NoError(t, seqio.WriteOutputFile(filepath.Join(dir, name), o))
	}
}

// TestLoad reads matching files in index order and ignores the rest.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeOutputs(t, dir, map[string]seqio.Output{
		"output10.txt":  {Cost: 10, A: "A", B: "A", Elapsed: time.Millisecond, MemoryKB: 1},
		"output2.txt":   {Cost: 2, A: "A", B: "A", Elapsed: time.Millisecond, MemoryKB: 1},
		"outputin3.txt": {Cost: 3, A: "A", B: "A", Elapsed: time.Millisecond, MemoryKB: 1},
		"notes.txt":     {Cost: 99},
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "output7.txt.d"), 0o755))

	entries, err := report.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{2, 3, 10}, []int{entries[0].Index, entries[1].Index, entries[2].Index})
	assert.Equal(t, 10, entries[2].Output.Cost)
}

// TestLoad_CollectsErrors keeps good files and reports every bad one.
func TestLoad_CollectsErrors(t *testing.T) {
	dir := t.TempDir()
	writeOutputs(t, dir, map[string]seqio.Output{
		"output1.txt": {Cost: 1, A: "A", B: "A"},
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "output2.txt"), []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "output3.txt"), []byte("1\nA\nA\n"), 0o644))

	entries, err := report.Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, seqio.ErrMalformedOutput)
	assert.Contains(t, err.Error(), "output2.txt")
	assert.Contains(t, err.Error(), "output3.txt")
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Index)

	_, err = report.Load(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestCompare joins on index and derives the problem size.
func TestCompare(t *testing.T) {
	basic := []report.Entry{
		{Index: 1, Output: seqio.Output{Cost: 60, A: "_A", B: "C_", Elapsed: 2 * time.Millisecond, MemoryKB: 900}},
		{Index: 2, Output: seqio.Output{Cost: 0, A: "ACTG", B: "ACTG"}},
		{Index: 5, Output: seqio.Output{Cost: 7}},
	}
	efficient := []report.Entry{
		{Index: 2, Output: seqio.Output{Cost: 0, A: "ACTG", B: "ACTG"}},
		{Index: 1, Output: seqio.Output{Cost: 61, A: "_A", B: "C_", Elapsed: 3 * time.Millisecond, MemoryKB: 300}},
	}

	rows := report.Compare(basic, efficient)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, 2, rows[0].Size)
	assert.False(t, rows[0].CostsAgree())
	assert.Equal(t, 2*time.Millisecond, rows[0].BasicTime)
	assert.Equal(t, 3*time.Millisecond, rows[0].EfficientTime)
	assert.Equal(t, int64(900), rows[0].BasicKB)
	assert.Equal(t, int64(300), rows[0].EfficientKB)

	assert.Equal(t, 2, rows[1].Index)
	assert.Equal(t, 8, rows[1].Size)
	assert.True(t, rows[1].CostsAgree())
}

// TestRender prints one header and one line per row.
func TestRender(t *testing.T) {
	rows := []report.Row{
		{Index: 1, Size: 12345, BasicCost: 60, EfficientCost: 60, BasicTime: 1500 * time.Microsecond, EfficientTime: 2 * time.Millisecond, BasicKB: 1024, EfficientKB: 2},
		{Index: 2, Size: 8, BasicCost: 5, EfficientCost: 6},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, rows))

	out := buf.String()
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 3, lines)
	assert.Contains(t, out, "efficient time")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "1.500ms")
	assert.Contains(t, out, "1.0 MiB")
	assert.Contains(t, out, "5/6")
	assert.Contains(t, out, "false")
}
