// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config mirrors the keys of the configuration file. Field names should
// exactly match the keys in that file.
type Config struct {
	// the number of cells (bytes) in a single frame
	CellsPerFrame int `mapstructure:"cells_per_frame"`

	// the size, in bytes, of the contiguous buffer the output must fit into
	ContigSize uint64 `mapstructure:"contig_size"`

	// the constant fill value for each diagnostic frame, one frame per entry
	DiagnosticValues []int `mapstructure:"diagnostic_values"`

	// the number of data frames in each frame group
	DataFrames int `mapstructure:"data_frames"`

	// the fill value for cells with no active fragment assignment
	Quiescent int `mapstructure:"quiescent"`

	// the path to the fragment definitions file
	FragmentFile string `mapstructure:"fragment_file"`

	// the path to the fragment distribution definitions file
	DistributionFile string `mapstructure:"distribution_file"`

	// the path of the file to create (or, for trace, to read)
	OutputFile string `mapstructure:"output_file"`
}

// New returns a Config populated from Viper settings (either from the
// configuration file and/or command line arguments)
func New() (*Config, error) {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %v", err)
	}

	// Quiescent and diagnostic values become single bytes in each frame
	if c.Quiescent < 0 || c.Quiescent > 255 {
		return nil, fmt.Errorf("config value 'quiescent' must fit in a byte, got %d", c.Quiescent)
	}
	for _, v := range c.DiagnosticValues {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("config value 'diagnostic_values' must fit in bytes, got %d", v)
		}
	}

	return &c, nil
}
