package cmd

import (
	"fmt"
	"os"

	"github.com/dirforge/dirindex/dirindex/version"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dirindex",
	Short: "Hierarchical directory indexer",
	Long: `dirindex walks a directory subtree and produces a deterministic,
hierarchically numbered index (1, 1.1, 1.1.1) of every directory and file,
rendered as JSON, XML and indented text artifacts.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("dirindex %s\n", version.String()))
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
