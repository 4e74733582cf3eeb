// Package convert implements the conversion engine: single file-to-file
// conversion and the directory batch sweep built on top of it.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SpikyGames1/image-converter/internal/codec"
	"github.com/SpikyGames1/image-converter/internal/format"
	"github.com/SpikyGames1/image-converter/internal/hasher"
)

// DefaultQuality is the encoder hint used when the caller does not
// choose one.
const DefaultQuality = 85

// Config holds all parameters for an engine.
type Config struct {
	// Quality is the encoder hint for lossy formats, 0-100. Values
	// above 100 are silently capped; PNG ignores it.
	Quality int

	// Workers bounds batch parallelism. Values below 1 mean sequential.
	Workers int

	// ReportSkipped notifies entries skipped for unsupported extensions
	// instead of passing them over silently.
	ReportSkipped bool

	// Notifier receives per-file batch events. Nil means discard.
	Notifier Notifier
}

// Request groups the inputs of one conversion. Transient, created per
// invocation.
type Request struct {
	InputPath  string
	OutputPath string
	Target     format.Format
}

// Result describes a completed conversion. Width and Height are the
// decoded raster's dimensions, recorded for progress reporting only.
type Result struct {
	Width       int
	Height      int
	OutputBytes int64
	Hash        string // first 16 hex chars of xxhash64 of the encoded output
}

// Engine performs image conversions at a fixed quality.
type Engine struct {
	cfg      Config
	registry *codec.Registry
}

// New creates a configured engine. Quality is clamped into [0,100] and
// Workers into [1,∞).
func New(cfg Config) *Engine {
	if cfg.Quality > 100 {
		cfg.Quality = 100
	}
	if cfg.Quality < 0 {
		cfg.Quality = 0
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Notifier == nil {
		cfg.Notifier = NopNotifier{}
	}
	return &Engine{
		cfg:      cfg,
		registry: codec.NewRegistry(),
	}
}

// Convert decodes req.InputPath and encodes it to req.Target at
// req.OutputPath. The target format is the sole source of truth for the
// output encoding; the output path's extension is only the destination
// name. The output file is staged in a temp file next to the
// destination and renamed on success, so a failed conversion never
// leaves a truncated output behind.
func (e *Engine) Convert(req Request) (Result, error) {
	// Pure validation, before any file I/O.
	if filepath.Ext(req.OutputPath) == "" {
		return Result{}, fmt.Errorf("output path %s has no extension", req.OutputPath)
	}

	img, w, h, err := codec.Decode(req.InputPath)
	if err != nil {
		return Result{}, &DecodeError{Path: req.InputPath, Err: err}
	}

	enc := e.registry.Get(req.Target)
	data, err := enc.Encode(img, e.cfg.Quality)
	if err != nil {
		return Result{}, &EncodeError{Path: req.OutputPath, Err: err}
	}

	if err := writeAtomic(req.OutputPath, data); err != nil {
		return Result{}, &EncodeError{Path: req.OutputPath, Err: err}
	}

	return Result{
		Width:       w,
		Height:      h,
		OutputBytes: int64(len(data)),
		Hash:        hasher.ContentHash(data, 16),
	}, nil
}

// writeAtomic stages data in a temp file in the destination directory
// and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
