package ecd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DouglasWWolf/ecd-sample-prep/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		CellsPerFrame:    RowSize,
		ContigSize:       1 << 30,
		DiagnosticValues: []int{3},
		DataFrames:       2,
		Quiescent:        5,
		OutputFile:       filepath.Join(t.TempDir(), "sim_data.bin"),
	}
}

// One fragment of three values on cell 1 with two data frames per group:
// the file holds two groups of [diagnostic, data, data] and the global data
// frame numbering runs 0..3 across them.
func Test_WriteFile_RawOrder(t *testing.T) {
	conf := testConfig(t)
	distributions := []Distribution{
		{First: 1, Last: 1, Step: 1, Values: []byte{10, 20, 30}},
	}

	plan, err := PlanCapacity(conf, distributions)
	require.NoError(t, err)
	require.Equal(t, 2, plan.FrameGroupCount)
	require.Equal(t, 6, plan.TotalFrames)

	table := NewLVDSTable()
	require.NoError(t, WriteFile(conf, distributions, table, false, plan.FrameGroupCount))

	data, err := os.ReadFile(conf.OutputFile)
	require.NoError(t, err)
	require.Len(t, data, 6*conf.CellsPerFrame)

	frame := func(n int) []byte {
		return data[n*conf.CellsPerFrame : (n+1)*conf.CellsPerFrame]
	}

	quiet := bytes.Repeat([]byte{5}, conf.CellsPerFrame)
	diagnostic := bytes.Repeat([]byte{3}, conf.CellsPerFrame)

	require.Equal(t, diagnostic, frame(0))
	require.Equal(t, byte(10), frame(1)[0])
	require.Equal(t, byte(20), frame(2)[0])
	require.Equal(t, diagnostic, frame(3))
	require.Equal(t, byte(30), frame(4)[0])
	require.Equal(t, quiet, frame(5)) // the sequence ended at frame 2

	// cells not covered by the distribution stay quiescent
	require.Equal(t, quiet[1:], frame(1)[1:])
}

func Test_WriteFile_LVDSOrder(t *testing.T) {
	conf := testConfig(t)
	distributions := []Distribution{
		{First: 1, Last: 1, Step: 1, Values: []byte{10, 20, 30}},
	}

	table := NewLVDSTable()
	require.NoError(t, WriteFile(conf, distributions, table, true, 2))

	data, err := os.ReadFile(conf.OutputFile)
	require.NoError(t, err)

	// raw cell 0 lands at the reordered position RawToLVDS reports
	pos, err := table.RawToLVDS(0)
	require.NoError(t, err)

	firstDataFrame := data[conf.CellsPerFrame : 2*conf.CellsPerFrame]
	require.Equal(t, byte(10), firstDataFrame[pos])

	// diagnostic frames are constant, so reordering does not disturb them
	require.Equal(t, bytes.Repeat([]byte{3}, conf.CellsPerFrame), data[:conf.CellsPerFrame])
}

func Test_WriteFile_UnwritablePath(t *testing.T) {
	conf := testConfig(t)
	conf.OutputFile = filepath.Join(conf.OutputFile, "not", "creatable")

	err := WriteFile(conf, nil, NewLVDSTable(), true, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "can't create")
}
