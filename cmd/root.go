// Package cmd is for command line interactions with the ecd-sample-prep
// application
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// the configuration file named with --config
	configFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "ecd_sample_prep",
	Short: `Synthesize sample data files for the ECD capture path.
Fragment value sequences are distributed across frame cells, interleaved
with diagnostic frames, and reordered for LVDS transmission`,
	Version: "1.0.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return readConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "ecd_sample_prep.conf", "path to the configuration file")
}

// readConfig points Viper at the configuration file so that config.New can
// unmarshal it. The file is YAML regardless of its extension.
func readConfig() error {
	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("can't read %s", configFile)
	}
	return nil
}
