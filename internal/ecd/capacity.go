package ecd

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DouglasWWolf/ecd-sample-prep/config"
)

// CapacityPlan holds the sizing figures for one run of the generator.
type CapacityPlan struct {
	// the number of frames required by the longest fragment sequence
	LongestSequence int

	// diagnostic frames plus data frames
	FrameGroupLength int

	// how many frame groups the longest sequence requires
	FrameGroupCount int

	// how many frames fit into the contiguous buffer
	MaxFrames uint64

	// FrameGroupCount * FrameGroupLength
	TotalFrames int

	// TotalFrames * cells_per_frame
	TotalBytes uint64
}

// PlanCapacity computes the number of frame groups the distribution list
// requires and checks that they fit into the contiguous buffer. The returned
// plan is populated even when the capacity check fails, so the figures can
// still be reported.
//
// FrameGroupCount is longestSequence/dataFrames + 1. That is not a ceiling
// division: an exact multiple still gets one extra group. Downstream buffer
// sizing depends on this, so it must not be "fixed".
func PlanCapacity(conf *config.Config, distributions []Distribution) (CapacityPlan, error) {
	if conf.CellsPerFrame%RowSize != 0 {
		return CapacityPlan{}, fmt.Errorf("config value 'cells_per_frame' must be a multiple of %d", RowSize)
	}
	if conf.DataFrames < 1 {
		return CapacityPlan{}, fmt.Errorf("config value 'data_frames' must be at least 1, got %d", conf.DataFrames)
	}

	var p CapacityPlan
	for _, d := range distributions {
		if len(d.Values) > p.LongestSequence {
			p.LongestSequence = len(d.Values)
		}
	}

	p.FrameGroupLength = len(conf.DiagnosticValues) + conf.DataFrames
	p.FrameGroupCount = p.LongestSequence/conf.DataFrames + 1
	p.TotalFrames = p.FrameGroupCount * p.FrameGroupLength
	p.TotalBytes = uint64(p.TotalFrames) * uint64(conf.CellsPerFrame)
	p.MaxFrames = conf.ContigSize / uint64(conf.CellsPerFrame)

	if uint64(p.TotalFrames) > p.MaxFrames {
		return p, fmt.Errorf(
			"the fragment distribution won't fit into the contiguous buffer: %d frames (%d bytes) required, %d frames fit",
			p.TotalFrames, p.TotalBytes, p.MaxFrames,
		)
	}

	return p, nil
}

// figures groups digits so large frame counts stay readable
var figures = message.NewPrinter(language.English)

// Report writes the operator-facing summary of the plan's figures.
func (p CapacityPlan) Report(w io.Writer) {
	figures.Fprintf(w, "%16d Frames in the longest fragment sequence\n", p.LongestSequence)
	figures.Fprintf(w, "%16d Frames in a frame group\n", p.FrameGroupLength)
	figures.Fprintf(w, "%16d Frame group(s) required\n", p.FrameGroupCount)
	figures.Fprintf(w, "%16d Frames will fit into the contig buffer\n", p.MaxFrames)
	figures.Fprintf(w, "%16d Frames required in total\n", p.TotalFrames)
	figures.Fprintf(w, "%16d Bytes required in total\n", p.TotalBytes)
}
