package main

import "github.com/spf13/cobra"

var flagJSON bool

var rootCmd = &cobra.Command{
	Use:          "langitems",
	Short:        "Inspect the fernc language-item catalog",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON output")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lookupCmd)
}
