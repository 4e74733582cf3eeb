package codec

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"sync"

	"github.com/SpikyGames1/image-converter/internal/format"
)

// AVIFEncoder encodes images to AVIF by shelling out to avifenc.
// Install: brew install libavif / apt install libavif-bin
type AVIFEncoder struct {
	once        sync.Once
	available   bool
	avifencPath string
}

func (e *AVIFEncoder) Format() format.Format { return format.AVIF }

func (e *AVIFEncoder) Available() bool {
	e.once.Do(func() {
		path, err := exec.LookPath("avifenc")
		if err == nil {
			e.available = true
			e.avifencPath = path
		}
	})
	return e.available
}

func (e *AVIFEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("avifenc not found in PATH; install with: apt install libavif-bin")
	}

	// avifenc uses a different quality scale: lower = better, 0-63.
	// Map our 0-100 to avifenc's scale.
	avifQ := 63 - (quality * 63 / 100)
	speed := 6 // 0=slowest, 10=fastest

	srcFile, dstPath, err := tempPair("imgconv_avif_src_%d_*.png", "imgconv_avif_dst_%d_*.avif")
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

	cmd := exec.Command(e.avifencPath,
		"--min", fmt.Sprintf("%d", avifQ),
		"--max", fmt.Sprintf("%d", avifQ),
		"--speed", fmt.Sprintf("%d", speed),
		"-j", "all",
		srcPath,
		dstPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("avifenc: %w: %s", err, string(out))
	}

	return os.ReadFile(dstPath)
}

// avifDecoder decodes AVIF files by shelling out to avifdec, since no
// AVIF decoder is registered with image.Decode.
type avifDecoder struct {
	once        sync.Once
	available   bool
	avifdecPath string
}

var avifDec avifDecoder

func (d *avifDecoder) Available() bool {
	d.once.Do(func() {
		path, err := exec.LookPath("avifdec")
		if err == nil {
			d.available = true
			d.avifdecPath = path
		}
	})
	return d.available
}

// Decode converts the AVIF file at path to PNG via avifdec and decodes
// the intermediate.
func (d *avifDecoder) Decode(path string) (image.Image, error) {
	if !d.Available() {
		return nil, fmt.Errorf("avifdec not found in PATH; install with: apt install libavif-bin")
	}

	dst, err := os.CreateTemp("", fmt.Sprintf("imgconv_dec_%d_*.png", tempCounter.Add(1)))
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	dstPath := dst.Name()
	dst.Close()
	defer os.Remove(dstPath)

	cmd := exec.Command(d.avifdecPath, "-j", "all", path, dstPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("avifdec: %w: %s", err, string(out))
	}

	f, err := os.Open(dstPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
