package codec

import (
	"bytes"
	"image"
	"image/png"

	"github.com/SpikyGames1/image-converter/internal/format"
)

// PNGEncoder encodes images to PNG using Go's standard library.
// PNG is lossless; the quality hint is ignored.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() format.Format { return format.PNG }
func (e *PNGEncoder) Available() bool       { return true }

func (e *PNGEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(512 * 1024) // pre-alloc 512KB

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	err := enc.Encode(&buf, img)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
