package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DouglasWWolf/ecd-sample-prep/config"
	"github.com/DouglasWWolf/ecd-sample-prep/internal/ecd"
)

var traceNoLVDS bool

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace <cell>",
	Short: "Trace the value of a single cell through an existing output file",
	Long: `Trace the value of a single cell through an existing output file.

Instead of creating an output file, trace reads the file named by
'output_file' in the configuration and prints the value that the given cell
holds in every frame, comma separated on a single line. Unless --no-lvds is
given, the cell number is translated to the position that cell occupies after
LVDS reordering, so the trace follows the same cell the generator wrote.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cellNumber, err := strconv.Atoi(args[0])
		if err != nil {
			stderr.Fatalf("invalid cell number '%s'", args[0])
		}

		conf, err := config.New()
		if err != nil {
			stderr.Fatal(err)
		}

		table := ecd.NewLVDSTable()
		if err := ecd.Trace(os.Stdout, conf, table, cellNumber, !traceNoLVDS); err != nil {
			stderr.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().BoolVar(&traceNoLVDS, "no-lvds", false, "assume the file was written without LVDS reordering")
}
