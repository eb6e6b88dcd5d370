package ecd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/DouglasWWolf/ecd-sample-prep/config"
)

// WriteFile creates the output file: frameGroupCount frame groups, each one
// diagnostic frame per configured diagnostic value followed by the configured
// number of data frames. Data frame numbering is global, not reset per group.
// When reorder is true every data frame's rows are translated into LVDS
// order before being written.
func WriteFile(conf *config.Config, distributions []Distribution, table *LVDSTable, reorder bool, frameGroupCount int) error {
	f, err := os.Create(conf.OutputFile)
	if err != nil {
		return fmt.Errorf("can't create %s", conf.OutputFile)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1<<20)
	builder := NewFrameBuilder(distributions, conf.CellsPerFrame, byte(conf.Quiescent))
	diagnostic := make([]byte, conf.CellsPerFrame)

	frameNumber := 0
	for group := 0; group < frameGroupCount; group++ {
		for _, v := range conf.DiagnosticValues {
			fill(diagnostic, byte(v))
			if _, err := w.Write(diagnostic); err != nil {
				return fmt.Errorf("writing %s: %v", conf.OutputFile, err)
			}
		}

		for i := 0; i < conf.DataFrames; i++ {
			frame := builder.Build(frameNumber)
			frameNumber++

			if reorder {
				table.Reorder(frame)
			}
			if _, err := w.Write(frame); err != nil {
				return fmt.Errorf("writing %s: %v", conf.OutputFile, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %v", conf.OutputFile, err)
	}
	return nil
}
