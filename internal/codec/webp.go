package codec

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/SpikyGames1/image-converter/internal/format"
)

// Atomic counter for unique temp file names across goroutines.
var tempCounter atomic.Int64

// tempPair creates a source/destination temp file pair for an external
// tool invocation. The source is left open for writing; the destination
// is closed so the tool can recreate it. Caller removes both.
func tempPair(srcPattern, dstPattern string) (src *os.File, dstPath string, err error) {
	id := tempCounter.Add(1)
	src, err = os.CreateTemp("", fmt.Sprintf(srcPattern, id))
	if err != nil {
		return nil, "", fmt.Errorf("create temp: %w", err)
	}
	dst, err := os.CreateTemp("", fmt.Sprintf(dstPattern, id))
	if err != nil {
		src.Close()
		os.Remove(src.Name())
		return nil, "", fmt.Errorf("create temp: %w", err)
	}
	dstPath = dst.Name()
	dst.Close()
	return src, dstPath, nil
}

// WebPEncoder encodes images to WebP by shelling out to cwebp.
// This approach avoids CGO while still producing optimized WebP.
// Install: brew install webp / apt install webp
type WebPEncoder struct {
	once      sync.Once
	available bool
	cwebpPath string
}

func (e *WebPEncoder) Format() format.Format { return format.WebP }

func (e *WebPEncoder) Available() bool {
	e.once.Do(func() {
		path, err := exec.LookPath("cwebp")
		if err == nil {
			e.available = true
			e.cwebpPath = path
		}
	})
	return e.available
}

func (e *WebPEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("cwebp not found in PATH; install with: apt install webp")
	}

	// Write source as PNG to temp file (cwebp reads files).
	srcFile, dstPath, err := tempPair("imgconv_src_%d_*.png", "imgconv_dst_%d_*.webp")
	if err != nil {
		return nil, err
	}
	srcPath := srcFile.Name()
	defer os.Remove(srcPath)
	defer os.Remove(dstPath)

	if err := png.Encode(srcFile, img); err != nil {
		srcFile.Close()
		return nil, fmt.Errorf("encode temp png: %w", err)
	}
	srcFile.Close()

	cmd := exec.Command(e.cwebpPath,
		"-q", fmt.Sprintf("%d", quality),
		"-m", "6", // compression method (0=fast, 6=best)
		"-mt",     // multi-threaded
		"-quiet",
		srcPath,
		"-o", dstPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("cwebp: %w: %s", err, string(out))
	}

	return os.ReadFile(dstPath)
}
