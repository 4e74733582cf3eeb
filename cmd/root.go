package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "imgconv",
	Short: "Convert raster images between JPEG, PNG, WebP and AVIF",
	Long: `imgconv converts images between JPEG, PNG, WebP and AVIF,
either one file at a time or as a directory batch sweep that keeps
going when individual files fail.

WebP and AVIF support uses the reference tools (cwebp, avifenc,
avifdec) when installed; run "imgconv formats" to check availability.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgconv %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[imgconv] "+format+"\n", args...)
	}
}
