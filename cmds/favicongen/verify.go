package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avantgarde/favicongen/favicon"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the written favicon assets have their expected dimensions",
	Args:  cobra.NoArgs,
	RunE:  verify,
}

func verify(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest()
	if err != nil {
		return err
	}

	if err := favicon.Verify(outDir, manifest); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Verified %d artifacts in %s\n", len(manifest.Artifacts), outDir)
	return nil
}
