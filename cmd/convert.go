package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/SpikyGames1/image-converter/internal/convert"
	"github.com/SpikyGames1/image-converter/internal/format"
	"github.com/spf13/cobra"
)

var convertQuality int

var convertCmd = &cobra.Command{
	Use:   "convert <input_file> <output_file>",
	Short: "Convert a single image to the format implied by the output extension",
	Long: `Converts one image file. The target format is inferred from the
output file's extension (jpg, jpeg, png, webp, avif).

Examples:
  imgconv convert image.png image.webp
  imgconv convert input.jpg output.avif`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().IntVarP(&convertQuality, "quality", "q", convert.DefaultQuality,
		"encoding quality 0-100 (lossy formats only)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	ext := filepath.Ext(outputPath)
	if ext == "" {
		return fmt.Errorf("output file %s must have a valid extension", outputPath)
	}
	target, err := format.Parse(ext)
	if err != nil {
		return err
	}

	logVerbose("input:   %s", inputPath)
	logVerbose("output:  %s", outputPath)
	logVerbose("quality: %d", convertQuality)

	engine := convert.New(convert.Config{Quality: convertQuality})

	fmt.Printf("Loading image: %s\n", inputPath)
	res, err := engine.Convert(convert.Request{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Target:     target,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Image dimensions: %dx%d\n", res.Width, res.Height)
	fmt.Printf("Converting to %s format...\n", target.Extension())
	logVerbose("wrote %d bytes (hash %s)", res.OutputBytes, res.Hash)
	fmt.Printf("Conversion completed: %s\n", outputPath)
	return nil
}
