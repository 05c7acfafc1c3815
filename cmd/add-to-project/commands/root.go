// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

// Package commands implements the add-to-project command line.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time using the -X linker flag.
var Version = "dev"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "add-to-project",
	Short: "Add issues and pull requests to a GitHub project",
	Long: `add-to-project adds the issue or pull request that triggered a workflow
to a GitHub project (V2), optionally filtered by labels, and can set the
item's Status field afterwards.

Inputs are read from the Actions runner environment (INPUT_PROJECT-URL,
INPUT_GITHUB-TOKEN, ...), an optional .github/add-to-project.yaml file, or
the equivalent flags.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "add-to-project %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: .github/add-to-project.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print the run summary")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
