package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/avantgarde/favicongen/favicon"
)

var (
	sourcePath string
	filterName string
	fitName    string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.StringVar(&sourcePath, "source", "favicon-source.png", "source image to derive the favicons from")
	flags.StringVar(&filterName, "filter", "", "override the resampling filter [lanczos|catmullrom|bilinear]")
	flags.StringVar(&fitName, "fit", "", "override how non-square sources are squared [stretch|pad]")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Resize the source image into every favicon asset",
	Args:  cobra.NoArgs,
	RunE:  generate,
}

func generate(cmd *cobra.Command, args []string) error {
	manifest, err := loadManifest()
	if err != nil {
		return err
	}
	if filterName != "" {
		manifest.Filter = favicon.Filter(filterName)
	}
	if fitName != "" {
		manifest.Fit = favicon.Fit(fitName)
	}

	gen := favicon.NewGenerator(manifest)
	gen.OnSaved = func(r favicon.Result) {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", r.Artifact.Name, humanize.Bytes(uint64(r.Bytes)))
	}

	_, err = gen.Generate(sourcePath, outDir)
	return err
}
