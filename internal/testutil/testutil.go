// Package testutil provides test helpers for CLI tests, including FITS
// fixture generation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/astrogo/fitsio"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ImageSpec describes one image HDU of a generated FITS fixture.
type ImageSpec struct {
	// Bitpix is the FITS BITPIX value (8, 16, 32, 64, -32, -64).
	Bitpix int

	// Axes are the NAXISn lengths in FITS order (fastest axis first).
	// An empty slice produces a header-only HDU.
	Axes []int

	// Cards are appended to the HDU header after the mandatory keywords.
	Cards []fitsio.Card
}

// WriteFITS generates a FITS file at dir/name containing one image HDU per
// spec, in order, and returns its path.
func WriteFITS(t *testing.T, dir, name string, specs ...ImageSpec) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	w, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture %s: %v", path, err)
	}
	defer w.Close()

	f, err := fitsio.Create(w)
	if err != nil {
		t.Fatalf("failed to create FITS fixture %s: %v", path, err)
	}
	defer f.Close()

	for _, spec := range specs {
		writeImageHDU(t, f, spec)
	}
	return path
}

func writeImageHDU(t *testing.T, f *fitsio.File, spec ImageSpec) {
	t.Helper()

	img := fitsio.NewImage(spec.Bitpix, spec.Axes)
	defer img.Close()

	if len(spec.Cards) > 0 {
		if err := img.Header().Append(spec.Cards...); err != nil {
			t.Fatalf("failed to append header cards: %v", err)
		}
	}

	if n := pixelCount(spec.Axes); n > 0 {
		if err := img.Write(zeroPixels(spec.Bitpix, n)); err != nil {
			t.Fatalf("failed to write image data: %v", err)
		}
	}

	if err := f.Write(img); err != nil {
		t.Fatalf("failed to write HDU: %v", err)
	}
}

func pixelCount(axes []int) int {
	if len(axes) == 0 {
		return 0
	}
	n := 1
	for _, a := range axes {
		n *= a
	}
	return n
}

// zeroPixels allocates a zero-filled pixel buffer of the element type
// matching bitpix.
func zeroPixels(bitpix, n int) interface{} {
	switch bitpix {
	case 8:
		data := make([]int8, n)
		return &data
	case 16:
		data := make([]int16, n)
		return &data
	case 32:
		data := make([]int32, n)
		return &data
	case 64:
		data := make([]int64, n)
		return &data
	case -32:
		data := make([]float32, n)
		return &data
	default:
		data := make([]float64, n)
		return &data
	}
}
