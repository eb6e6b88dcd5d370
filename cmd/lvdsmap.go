package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/DouglasWWolf/ecd-sample-prep/internal/ecd"
)

// lvdsmapCmd represents the lvdsmap command
var lvdsmapCmd = &cobra.Command{
	Use:   "lvdsmap",
	Short: "Display the LVDS cell reordering map",
	Long: `Display the LVDS cell reordering map, then exit.

The map covers one row of cells. The value printed at position i is the
raw-order cell offset whose value appears at position i after reordering.`,
	Run: func(cmd *cobra.Command, args []string) {
		table := ecd.NewLVDSTable()
		if err := table.WriteMap(os.Stdout); err != nil {
			stderr.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(lvdsmapCmd)
}
