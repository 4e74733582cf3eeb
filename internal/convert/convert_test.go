package convert

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpikyGames1/image-converter/internal/format"
)

// fixture builds a small gradient raster, same shape as the e2e
// fixture generator.
func fixture(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func writeJPEG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

// recorder collects notifier events; safe for concurrent batches.
type recorder struct {
	mu        sync.Mutex
	converted []string
	failed    []string
	skipped   []string
}

func (r *recorder) Converted(in, out string, _ Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converted = append(r.converted, in)
}

func (r *recorder) Failed(in string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, in)
}

func (r *recorder) Skipped(in string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped = append(r.skipped, in)
}

func TestConvert_PNGToJPEG(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.jpg")
	writePNG(t, in, fixture(80, 60))

	e := New(Config{Quality: DefaultQuality})
	res, err := e.Convert(Request{InputPath: in, OutputPath: out, Target: format.JPEG})
	require.NoError(t, err)

	assert.Equal(t, 80, res.Width)
	assert.Equal(t, 60, res.Height)
	assert.NotEmpty(t, res.Hash)
	assert.Greater(t, res.OutputBytes, int64(0))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	decoded, name, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", name)
	assert.Equal(t, 80, decoded.Bounds().Dx())
	assert.Equal(t, 60, decoded.Bounds().Dy())
}

func TestConvert_TargetFormatIsAuthority(t *testing.T) {
	// The output path's extension must never decide the encoding: a
	// .png destination with a JPEG target yields JPEG bytes.
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "mislabeled.png")
	writePNG(t, in, fixture(16, 16))

	e := New(Config{Quality: DefaultQuality})
	_, err := e.Convert(Request{InputPath: in, OutputPath: out, Target: format.JPEG})
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	_, name, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", name)
}

func TestConvert_OutputWithoutExtension(t *testing.T) {
	// Pure validation failure, before any file I/O: the input path
	// does not exist and must never be touched.
	dir := t.TempDir()
	e := New(Config{Quality: DefaultQuality})

	_, err := e.Convert(Request{
		InputPath:  filepath.Join(dir, "does-not-exist.png"),
		OutputPath: filepath.Join(dir, "noext"),
		Target:     format.PNG,
	})
	require.Error(t, err)

	var de *DecodeError
	assert.False(t, errors.As(err, &de), "validation must fail before decode")
}

func TestConvert_MissingInput(t *testing.T) {
	dir := t.TempDir()
	e := New(Config{Quality: DefaultQuality})

	_, err := e.Convert(Request{
		InputPath:  filepath.Join(dir, "missing.png"),
		OutputPath: filepath.Join(dir, "out.jpg"),
		Target:     format.JPEG,
	})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestConvert_CorruptInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(in, []byte("definitely not a png"), 0o644))

	e := New(Config{Quality: DefaultQuality})
	_, err := e.Convert(Request{
		InputPath:  in,
		OutputPath: filepath.Join(dir, "out.jpg"),
		Target:     format.JPEG,
	})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, in, de.Path)
}

func TestConvert_FailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "corrupt.jpg")
	out := filepath.Join(dir, "out.png")
	require.NoError(t, os.WriteFile(in, []byte("junk"), 0o644))

	e := New(Config{Quality: DefaultQuality})
	_, err := e.Convert(Request{InputPath: in, OutputPath: out, Target: format.PNG})
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "failed conversion must not leave an output file")
}

func TestQuality_ClampAbove100(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writePNG(t, in, fixture(48, 48))

	convertAt := func(quality int, name string) string {
		out := filepath.Join(dir, name)
		e := New(Config{Quality: quality})
		res, err := e.Convert(Request{InputPath: in, OutputPath: out, Target: format.JPEG})
		require.NoError(t, err)
		return res.Hash
	}

	// 150 is silently capped to 100; identical output proves it.
	assert.Equal(t, convertAt(100, "q100.jpg"), convertAt(150, "q150.jpg"))
}

func TestQuality_ZeroAccepted(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writePNG(t, in, fixture(32, 32))

	e := New(Config{Quality: 0})
	_, err := e.Convert(Request{
		InputPath:  in,
		OutputPath: filepath.Join(dir, "out.jpg"),
		Target:     format.JPEG,
	})
	assert.NoError(t, err)
}
