// Package imageio decodes and encodes the raster files that pixel
// comparison consumes and produces.
//
// Supported formats: PNG, JPEG, BMP and TIFF in both directions, WebP for
// decoding only. Decoding auto-detects the format from the content;
// encoding picks it from the file extension or an explicit format name.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // decode only, registered for sniffing

	"github.com/gopix/pixelmatch"
)

// ErrUnsupportedFormat is returned when no encoder exists for the
// requested output format.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// jpegQuality is the encoding quality for JPEG output.
const jpegQuality = 90

// Load reads an image file into a straight-alpha pixmap, auto-detecting
// the format from the file content.
func Load(path string) (*pixelmatch.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode reads an image from r, auto-detecting the format, and converts it
// to a straight-alpha pixmap.
func Decode(r io.Reader) (*pixelmatch.Pixmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return pixelmatch.FromImage(img), nil
}

// Save writes the pixmap to path, picking the encoder from the file
// extension.
func Save(path string, p *pixelmatch.Pixmap) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if _, ok := encoderFor(format); !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, p, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes the pixmap to w in the named format: "png", "jpg", "jpeg",
// "bmp", "tif" or "tiff".
func Encode(w io.Writer, p *pixelmatch.Pixmap, format string) error {
	enc, ok := encoderFor(format)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := enc(w, p.ToImage()); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", strings.ToLower(format), err)
	}
	return nil
}

// encoderFor returns the encoding function for a format name.
func encoderFor(format string) (func(io.Writer, image.Image) error, bool) {
	switch strings.ToLower(format) {
	case "png":
		return func(w io.Writer, m image.Image) error {
			return png.Encode(w, m)
		}, true
	case "jpg", "jpeg":
		return func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: jpegQuality})
		}, true
	case "bmp":
		return bmp.Encode, true
	case "tif", "tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, nil)
		}, true
	default:
		return nil, false
	}
}
