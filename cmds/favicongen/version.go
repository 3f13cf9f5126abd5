package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avantgarde/favicongen/base/info"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and related metadata.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), info.FullVersion())
		return nil
	},
}
