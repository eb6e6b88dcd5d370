package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DouglasWWolf/ecd-sample-prep/config"
	"github.com/DouglasWWolf/ecd-sample-prep/internal/ecd"
)

var makeNoLVDS bool

// makeCmd represents the make command
var makeCmd = &cobra.Command{
	Use:   "make",
	Short: "Make the sample data file from fragment and distribution definitions",
	Long: `Make the sample data file from fragment and distribution definitions.

"ecd_sample_prep make" reads the fragment definitions and the fragment
distribution definitions named in the configuration file, verifies that the
frames they imply will fit into the contiguous buffer, and writes the output
file as a sequence of frame groups: the configured diagnostic frames followed
by the configured number of data frames, repeated once per frame group.

Within each data frame, rows of cells are reordered into the order the ECD's
LVDS logic transmits them in; pass --no-lvds (on the command line or as a
'no-lvds' key in the configuration file) to keep frames in raw order.`,
	Run: makeExec,
}

// makeExec generates the output file. The no-lvds switch is read back
// through Viper so the configuration file can set it as well as the flag.
func makeExec(cmd *cobra.Command, args []string) {
	conf, err := config.New()
	if err != nil {
		stderr.Fatal(err)
	}

	fragments, err := ecd.ReadFragments(conf.FragmentFile)
	if err != nil {
		stderr.Fatal(err)
	}

	distributions, err := ecd.ReadDistributions(conf.DistributionFile, fragments, conf.CellsPerFrame)
	if err != nil {
		stderr.Fatal(err)
	}

	plan, err := ecd.PlanCapacity(conf, distributions)
	if plan.TotalFrames > 0 {
		plan.Report(os.Stdout)
	}
	if err != nil {
		stderr.Fatal(err)
	}

	table := ecd.NewLVDSTable()
	if err := ecd.WriteFile(conf, distributions, table, !viper.GetBool("no-lvds"), plan.FrameGroupCount); err != nil {
		stderr.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(makeCmd)

	makeCmd.Flags().BoolVar(&makeNoLVDS, "no-lvds", false, "skip the intra-row LVDS cell reordering")

	viper.BindPFlag("no-lvds", makeCmd.Flags().Lookup("no-lvds"))
}
