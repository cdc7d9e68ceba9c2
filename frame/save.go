package frame

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// The output path that selects PPM on standard output.
const StdoutPath = "-"

type imageEncoder func(w io.Writer, img image.Image) error

var encoders = map[string]imageEncoder{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tga":  tga.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".webp": func(w io.Writer, img image.Image) error {
		return nativewebp.Encode(w, img, nil)
	},
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Get the list of supported output file extensions.
func Formats() []string {
	return []string{".bmp", ".png", ".ppm", ".tga", ".tif", ".tiff", ".webp"}
}

// Save the frame to path choosing the encoder from the file extension. The
// PPM format always receives the full resolution buffer while the raster
// formats are resized by scale.
func Save(path string, b *Buffer, scale float64) error {
	if path == StdoutPath {
		return WritePPM(os.Stdout, b)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".ppm" {
		return writeFile(path, func(w io.Writer) error { return WritePPM(w, b) })
	}

	encode, supported := encoders[ext]
	if !supported {
		return fmt.Errorf("frame: unsupported output format %q", ext)
	}

	img := Resize(b.ToRGBA(), scale)
	return writeFile(path, func(w io.Writer) error { return encode(w, img) })
}

// Encode the frame to w using the encoder registered for ext.
func Encode(w io.Writer, ext string, b *Buffer) error {
	ext = strings.ToLower(ext)
	if ext == ".ppm" {
		return WritePPM(w, b)
	}
	encode, supported := encoders[ext]
	if !supported {
		return fmt.Errorf("frame: unsupported output format %q", ext)
	}
	return encode(w, b.ToRGBA())
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}

	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("frame: could not encode %q: %w", path, err)
	}
	return f.Close()
}
