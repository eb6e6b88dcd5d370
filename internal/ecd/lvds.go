package ecd

import (
	"fmt"
	"io"
)

// RowSize is the number of cells in a single data row on the chip.
const RowSize = 2048

// Wiring constants for a single row: 8 cell-groups of 256 cells, each group
// holding 4 sub-rows of 64 cells. These describe the chip itself and are not
// user-configurable.
const (
	cellGroups   = 8
	groupSpan    = 256
	subRows      = 4
	subRowSize   = 64
	subRowStride = 512
)

// LVDSTable translates cell positions within a row into the order the chip's
// LVDS logic transmits them in.
//
// Think of a row of cell data as existing in a "raw" order (the order we
// think of it logically being in) and an "lvds" order (the order it has to be
// in for transmission to the FPGA). The value 'x' at index 'i' means: at
// location 'i' in the lvds-ordered row you will find the value from location
// 'x' in the raw-ordered row. Stated another way: lvds[i] = raw[table[i]].
type LVDSTable [RowSize]int

// NewLVDSTable builds the translation table from the wiring constants. The
// result is a bijection on [0, RowSize).
func NewLVDSTable() *LVDSTable {
	var t LVDSTable

	for group := 0; group < cellGroups; group++ {
		// the offset, within a row, of the first cell in this group
		groupOffset := group*groupSpan + subRowSize - 1

		for sub := 0; sub < subRows; sub++ {
			base := groupOffset + sub*subRowSize
			value := sub*subRowStride + group

			// cells in a sub-row are filled walking backward from its end
			for i := 0; i < subRowSize; i++ {
				t[base-i] = value
				value += cellGroups
			}
		}
	}

	return &t
}

// Reorder translates every row of the frame from raw order into LVDS order,
// in place. Rows are independent; len(frame) must be a multiple of RowSize.
func (t *LVDSTable) Reorder(frame []byte) {
	var lvdsRow [RowSize]byte

	for off := 0; off+RowSize <= len(frame); off += RowSize {
		raw := frame[off : off+RowSize]
		for i := 0; i < RowSize; i++ {
			lvdsRow[i] = raw[t[i]]
		}
		copy(raw, lvdsRow[:])
	}
}

// RawToLVDS returns the offset that a raw in-row cell offset occupies in a
// row that has been reordered for LVDS. A miss means the table itself is
// malformed, which is a defect, not a user error.
func (t *LVDSTable) RawToLVDS(rawOffset int) (int, error) {
	for i, v := range t {
		if v == rawOffset {
			return i, nil
		}
	}
	return 0, fmt.Errorf("BUG: no LVDS position for raw cell offset %d", rawOffset)
}

// WriteMap prints the reorder map as 32 lines of 64 comma separated entries.
func (t *LVDSTable) WriteMap(w io.Writer) error {
	i := 0
	for row := 0; row < RowSize/subRowSize; row++ {
		for col := 0; col < subRowSize; col++ {
			sep := ","
			if col == subRowSize-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%4d%s", t[i], sep); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}
