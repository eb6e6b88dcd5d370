package config

import (
	"testing"

	"github.com/spf13/viper"
)

func setViper(t *testing.T, settings map[string]interface{}) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	for k, v := range settings {
		viper.Set(k, v)
	}
}

func Test_New(t *testing.T) {
	setViper(t, map[string]interface{}{
		"cells_per_frame":   uint32(40960),
		"contig_size":       uint64(1) << 32,
		"diagnostic_values": []int{0, 16, 32},
		"data_frames":       4582,
		"quiescent":         6,
		"fragment_file":     "fragments.csv",
		"distribution_file": "distribution.csv",
		"output_file":       "sim_data.bin",
	})

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	if c.CellsPerFrame != 40960 {
		t.Errorf("CellsPerFrame = %d, want 40960", c.CellsPerFrame)
	}
	if c.ContigSize != 1<<32 {
		t.Errorf("ContigSize = %d, want %d", c.ContigSize, uint64(1)<<32)
	}
	if len(c.DiagnosticValues) != 3 {
		t.Errorf("DiagnosticValues = %v, want 3 entries", c.DiagnosticValues)
	}
	if c.OutputFile != "sim_data.bin" {
		t.Errorf("OutputFile = %q, want sim_data.bin", c.OutputFile)
	}
}

func Test_New_ValueWidth(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
	}{
		{"quiescent too wide", map[string]interface{}{"quiescent": 300}},
		{"quiescent negative", map[string]interface{}{"quiescent": -1}},
		{"diagnostic value too wide", map[string]interface{}{"diagnostic_values": []int{0, 256}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setViper(t, tt.settings)
			if _, err := New(); err == nil {
				t.Error("expected a byte-width error")
			}
		})
	}
}
