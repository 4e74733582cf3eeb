// Package codec provides decode and per-format encode capabilities for
// the supported image formats. JPEG and PNG use the standard library;
// WebP and AVIF shell out to the reference tools (cwebp, avifenc,
// avifdec), which keeps the binary CGO-free.
package codec

import (
	"image"

	"github.com/SpikyGames1/image-converter/internal/format"
)

// Encoder encodes a decoded raster to one specific format.
type Encoder interface {
	// Format returns the output format this encoder produces.
	Format() format.Format

	// Encode converts the image to bytes at the given quality (0-100).
	// PNG ignores quality.
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp, avifenc) may not be installed.
	Available() bool
}
