package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/SpikyGames1/image-converter/internal/format"
)

// BatchResult aggregates one batch run. Converted equals the number of
// Converted notifications; a run over an empty directory and a run
// where every file failed both report zero, distinguishable only via
// the per-file notifications.
type BatchResult struct {
	Converted int
	Failed    int
	Skipped   int
}

// BatchConvert converts every supported file directly inside inputDir
// into outputDir, encoded as target. Subdirectories are not descended
// into; entries with unsupported extensions are skipped. A single
// file's failure is reported through the notifier and the run
// continues. The only fatal failures are directory-level: outputDir
// cannot be created or inputDir cannot be listed, both surfaced as
// *DirectoryError before any per-file work starts.
//
// Output filenames are derived as <input-stem>.<target extension>,
// discarding the original extension.
//
// Cancellation is checked between files; a canceled run returns the
// progress made so far together with ctx.Err().
func (e *Engine) BatchConvert(ctx context.Context, inputDir, outputDir string, target format.Format) (BatchResult, error) {
	// Output dir must exist before any worker touches it.
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return BatchResult{}, &DirectoryError{Path: outputDir, Err: err}
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchResult{}, &DirectoryError{Path: inputDir, Err: err}
	}

	var result BatchResult
	var pending []Request

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(inputDir, entry.Name())

		if _, err := format.Parse(filepath.Ext(entry.Name())); err != nil {
			result.Skipped++
			if e.cfg.ReportSkipped {
				e.cfg.Notifier.Skipped(path)
			}
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		pending = append(pending, Request{
			InputPath:  path,
			OutputPath: filepath.Join(outputDir, stem+"."+target.Extension()),
			Target:     target,
		})
	}

	if e.cfg.Workers <= 1 {
		for _, req := range pending {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			e.convertOne(req, &result.Converted, &result.Failed)
		}
		return result, nil
	}

	// Bounded worker pool; counters reduced atomically.
	var converted, failed atomic.Int64
	var wg sync.WaitGroup
	sem := make(chan struct{}, e.cfg.Workers)

	for _, req := range pending {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(r Request) {
			defer wg.Done()
			sem <- struct{}{} // acquire
			defer func() { <-sem }() // release

			var c, f int
			e.convertOne(r, &c, &f)
			converted.Add(int64(c))
			failed.Add(int64(f))
		}(req)
	}
	wg.Wait()

	result.Converted = int(converted.Load())
	result.Failed = int(failed.Load())
	return result, ctx.Err()
}

func (e *Engine) convertOne(req Request, converted, failed *int) {
	res, err := e.Convert(req)
	if err != nil {
		*failed++
		e.cfg.Notifier.Failed(req.InputPath, err)
		return
	}
	*converted++
	e.cfg.Notifier.Converted(req.InputPath, req.OutputPath, res)
}
