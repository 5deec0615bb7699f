package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "carbonc",
	Short:   "Semantic front-end for the Carbon-like toy language",
	Long:    `carbonc runs semantic resolution passes over pre-parsed program ASTs and reports diagnostics.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets Flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".carbonc.yaml", "config file")
}
