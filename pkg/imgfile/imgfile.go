// Package imgfile writes grayscale frame buffers to image files.
package imgfile

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/joshvictor1024/mandelbands/pkg/types"
)

var ErrUnknownFormat = errors.New("unknown image format")

type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFor picks the format from the file extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Gray wraps buf as an 8-bit grayscale image without copying it.
func Gray(buf []byte, b types.Bounds) (*image.Gray, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if len(buf) != b.Pixels() {
		return nil, fmt.Errorf("buffer has %d bytes, %s image needs %d", len(buf), b, b.Pixels())
	}
	return &image.Gray{Pix: buf, Stride: b.W, Rect: image.Rect(0, 0, b.W, b.H)}, nil
}

// Encode writes buf, one intensity byte per pixel in row-major order, to w.
func Encode(w io.Writer, f Format, buf []byte, b types.Bounds) error {
	img, err := Gray(buf, b)
	if err != nil {
		return err
	}
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Write creates path and encodes buf into it in the format named by its
// extension.
func Write(path string, buf []byte, b types.Bounds) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	return Encode(file, f, buf, b)
}
