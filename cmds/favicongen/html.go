package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avantgarde/favicongen/favicon"
)

var (
	urlPrefix  string
	inlineHTML bool
)

func init() {
	rootCmd.AddCommand(htmlCmd)

	flags := htmlCmd.Flags()
	flags.StringVar(&urlPrefix, "prefix", "/", "URL path the assets are served from")
	flags.BoolVar(&inlineHTML, "inline", false, "embed the written assets as data URLs")
}

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Print the <link> tags referencing the favicon assets",
	Args:  cobra.NoArgs,
	RunE:  printHTML,
}

func printHTML(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest()
	if err != nil {
		return err
	}

	snippet, err := favicon.HTMLSnippet(manifest, favicon.HTMLOptions{
		Prefix: urlPrefix,
		Inline: inlineHTML,
		Dir:    outDir,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), snippet)
	return nil
}
