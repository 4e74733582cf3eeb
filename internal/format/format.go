// Package format maps filename extensions to the closed set of image
// formats the converter understands, and back to canonical extensions.
package format

import (
	"fmt"
	"strings"
)

// Format identifies one of the supported image encodings.
type Format int

const (
	JPEG Format = iota
	PNG
	WebP
	AVIF
)

// UnsupportedFormatError reports an extension outside the supported set.
// It carries the string as given by the caller, before normalization.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q", e.Extension)
}

// Parse resolves an extension string to a Format. Matching is
// case-insensitive and tolerates a leading dot, so "PNG", ".png" and
// "png" all resolve to PNG. Anything else, including the empty string,
// fails with *UnsupportedFormatError.
func Parse(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	case "avif":
		return AVIF, nil
	default:
		return 0, &UnsupportedFormatError{Extension: ext}
	}
}

// Extension returns the canonical lowercase extension, without dot.
// Exactly one extension per format; "jpg" wins over "jpeg" to match
// the filenames the batch converter writes.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return "jpg"
	case PNG:
		return "png"
	case WebP:
		return "webp"
	case AVIF:
		return "avif"
	}
	panic(fmt.Sprintf("format: unknown Format(%d)", int(f)))
}

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case PNG:
		return "png"
	case WebP:
		return "webp"
	case AVIF:
		return "avif"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// All lists the supported formats in encoder priority order.
func All() []Format {
	return []Format{AVIF, WebP, JPEG, PNG}
}
