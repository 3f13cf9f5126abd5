package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avantgarde/favicongen/base/info"
	"github.com/avantgarde/favicongen/base/log"
	"github.com/avantgarde/favicongen/favicon"
)

var (
	logLevel     string
	outDir       string
	manifestPath string
)

var rootCmd = &cobra.Command{
	Use:   "favicongen",
	Short: "Generate website favicon assets from a single source image",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Start(logLevel)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log", "warning", "set log level to [trace|debug|info|warning|error|critical]")
	flags.StringVar(&outDir, "out", "public", "directory the favicon assets are written to, must exist")
	flags.StringVar(&manifestPath, "manifest", "", "YAML file defining the artifacts, defaults to the standard favicon set")
}

func main() {
	info.Set("favicongen", "1.0.0", "MIT")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), errorLine(err))
		os.Exit(1)
	}
}

// errorLine formats a failed run as a single console line.
func errorLine(err error) string {
	var perr *favicon.ProcessingError
	switch {
	case errors.Is(err, favicon.ErrSourceNotFound):
		return fmt.Sprintf("Error: %s", err)
	case errors.As(err, &perr):
		return fmt.Sprintf("Error processing images: %s", err)
	default:
		return fmt.Sprintf("Error: %s", err)
	}
}

func loadManifest() (*favicon.Manifest, error) {
	if manifestPath == "" {
		return favicon.DefaultManifest(), nil
	}
	return favicon.LoadManifest(manifestPath)
}
