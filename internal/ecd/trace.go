package ecd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DouglasWWolf/ecd-sample-prep/config"
)

// Trace writes the value of one cell for every frame of an existing output
// file, as a comma joined sequence terminated by a newline. cellNumber is an
// absolute 0-based cell index within a frame; when reorder is true it is
// first translated to the position that cell occupies after LVDS reordering.
// A short trailing chunk ends the scan.
func Trace(w io.Writer, conf *config.Config, table *LVDSTable, cellNumber int, reorder bool) error {
	if cellNumber < 0 || cellNumber >= conf.CellsPerFrame {
		return fmt.Errorf("invalid cell number %d", cellNumber)
	}

	if reorder {
		row := cellNumber / RowSize
		offset, err := table.RawToLVDS(cellNumber % RowSize)
		if err != nil {
			return err
		}
		cellNumber = row*RowSize + offset
	}

	f, err := os.Open(conf.OutputFile)
	if err != nil {
		return fmt.Errorf("can't open %s", conf.OutputFile)
	}
	defer f.Close()

	frame := make([]byte, conf.CellsPerFrame)
	first := true
	for {
		if _, err := io.ReadFull(f, frame); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return fmt.Errorf("reading %s: %v", conf.OutputFile, err)
		}

		if !first {
			fmt.Fprint(w, ", ")
		}
		first = false
		fmt.Fprintf(w, "%d", frame[cellNumber])
	}

	fmt.Fprintln(w)
	return nil
}
