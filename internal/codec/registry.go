package codec

import (
	"fmt"
	"strings"

	"github.com/SpikyGames1/image-converter/internal/format"
)

// Registry holds one encoder per supported format.
type Registry struct {
	jpeg Encoder
	png  Encoder
	webp Encoder
	avif Encoder
}

// NewRegistry creates a registry over all built-in encoders. Encoders
// that depend on external tools report their readiness via Available;
// the registry keeps them either way so callers can produce a precise
// error instead of a nil lookup.
func NewRegistry() *Registry {
	return &Registry{
		jpeg: &JPEGEncoder{},
		png:  &PNGEncoder{},
		webp: &WebPEncoder{},
		avif: &AVIFEncoder{},
	}
}

// Get returns the encoder for the given format. The switch is
// exhaustive over the closed format set.
func (r *Registry) Get(f format.Format) Encoder {
	switch f {
	case format.JPEG:
		return r.jpeg
	case format.PNG:
		return r.png
	case format.WebP:
		return r.webp
	case format.AVIF:
		return r.avif
	}
	panic(fmt.Sprintf("codec: unknown format %d", int(f)))
}

// Available returns the formats whose encoder is ready to use, in
// priority order.
func (r *Registry) Available() []format.Format {
	var result []format.Format
	for _, f := range format.All() {
		if r.Get(f).Available() {
			result = append(result, f)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	names := make([]string, len(avail))
	for i, f := range avail {
		names[i] = f.String()
	}
	return fmt.Sprintf("encoders: %s", strings.Join(names, ", "))
}
