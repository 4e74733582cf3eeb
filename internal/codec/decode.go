package codec

import (
	"bytes"
	"image"
	"os"

	"github.com/disintegration/imaging"

	// Register WebP decoding with image.Decode. JPEG, PNG and GIF are
	// registered by imaging's own imports.
	_ "golang.org/x/image/webp"
)

// avifBrands are the ISO-BMFF ftyp major brands used by AVIF files.
var avifBrands = [][]byte{
	[]byte("avif"),
	[]byte("avis"),
}

// isAVIF sniffs the leading bytes of a file for an AVIF ftyp box.
// Layout: 4-byte box size, "ftyp", 4-byte major brand.
func isAVIF(header []byte) bool {
	if len(header) < 12 || !bytes.Equal(header[4:8], []byte("ftyp")) {
		return false
	}
	for _, brand := range avifBrands {
		if bytes.Equal(header[8:12], brand) {
			return true
		}
	}
	return false
}

// Decode opens and decodes the image at path, returning the raster and
// its dimensions. The decoder is selected by sniffing the file's own
// content, never by the caller's intended output format: AVIF is routed
// through avifdec, everything else through the decoders registered with
// image.Decode.
func Decode(path string) (image.Image, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}

	header := make([]byte, 12)
	n, _ := f.Read(header)
	f.Close()

	var img image.Image
	if isAVIF(header[:n]) {
		img, err = avifDec.Decode(path)
	} else {
		img, err = imaging.Open(path)
	}
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := img.Bounds()
	return img, bounds.Dx(), bounds.Dy(), nil
}
