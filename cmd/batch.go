package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SpikyGames1/image-converter/internal/convert"
	"github.com/SpikyGames1/image-converter/internal/format"
	"github.com/spf13/cobra"
)

var (
	batchQuality       int
	batchWorkers       int
	batchReportSkipped bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir> <output_dir> <format>",
	Short: "Convert every supported image in a directory",
	Long: `Converts all supported images (jpg, jpeg, png, webp, avif) found
directly inside input_dir into output_dir, encoded as the given format.
Output files are named <stem>.<format extension>. Files that fail to
convert are reported and skipped; the batch always runs to completion
unless a directory-level error occurs.

Example:
  imgconv batch ./input ./output webp`,
	Args: cobra.ExactArgs(3),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchQuality, "quality", "q", convert.DefaultQuality,
		"encoding quality 0-100 (lossy formats only)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 1,
		"parallel workers (1 = sequential)")
	batchCmd.Flags().BoolVar(&batchReportSkipped, "report-skipped", false,
		"report files skipped for unsupported extensions")
	rootCmd.AddCommand(batchCmd)
}

// consoleNotifier prints per-file progress as it happens.
type consoleNotifier struct{}

func (consoleNotifier) Converted(inputPath, _ string, res convert.Result) {
	fmt.Printf("✓ Converted: %s (%dx%d)\n", filepath.Base(inputPath), res.Width, res.Height)
}

func (consoleNotifier) Failed(inputPath string, err error) {
	fmt.Fprintf(os.Stderr, "✗ Failed to convert %s: %v\n", inputPath, err)
}

func (consoleNotifier) Skipped(inputPath string) {
	fmt.Printf("- Skipped: %s (unsupported format)\n", filepath.Base(inputPath))
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir, outputDir, formatArg := args[0], args[1], args[2]

	target, err := format.Parse(formatArg)
	if err != nil {
		return err
	}

	info, err := os.Stat(inputDir)
	if err != nil {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", inputDir)
	}

	logVerbose("input:   %s", inputDir)
	logVerbose("output:  %s", outputDir)
	logVerbose("target:  %s (quality %d, workers %d)", target, batchQuality, batchWorkers)

	engine := convert.New(convert.Config{
		Quality:       batchQuality,
		Workers:       batchWorkers,
		ReportSkipped: batchReportSkipped,
		Notifier:      consoleNotifier{},
	})

	res, err := engine.BatchConvert(cmd.Context(), inputDir, outputDir, target)
	if err != nil {
		return fmt.Errorf("batch conversion: %w", err)
	}

	fmt.Printf("\nBatch conversion completed! %d files converted.\n", res.Converted)
	if res.Failed > 0 {
		fmt.Printf("%d files failed.\n", res.Failed)
	}
	logVerbose("skipped %d unsupported entries", res.Skipped)
	return nil
}
