package cmd

import (
	"fmt"

	"github.com/SpikyGames1/image-converter/internal/codec"
	"github.com/SpikyGames1/image-converter/internal/format"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Show supported formats and encoder availability",
	Args:  cobra.NoArgs,
	Run:   runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

// install hints for encoders backed by external tools.
var formatHints = map[format.Format]string{
	format.WebP: "install cwebp (apt install webp)",
	format.AVIF: "install avifenc (apt install libavif-bin)",
}

func runFormats(_ *cobra.Command, _ []string) {
	registry := codec.NewRegistry()

	fmt.Println("Supported formats:")
	for _, f := range format.All() {
		status := "available"
		if !registry.Get(f).Available() {
			status = "unavailable — " + formatHints[f]
		}
		fmt.Printf("  %-5s (.%s)  %s\n", f, f.Extension(), status)
	}
}
