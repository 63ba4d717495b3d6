package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

// Format names an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ErrUnknownFormat is returned for an output format with no encoder
var ErrUnknownFormat = errors.New("canvas: unknown image format")

// PPMMaxValue is the channel scale used when saving PPM files
const PPMMaxValue = 255

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("extension %q: %w", ext, ErrUnknownFormat)
	}
}

// ToImage converts the canvas to an opaque 8-bit image, clamping each channel to [0, 1]
func (c *Canvas[T]) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(scaleChannel(p.R(), 255)),
				G: uint8(scaleChannel(p.G(), 255)),
				B: uint8(scaleChannel(p.B(), 255)),
				A: 255,
			})
		}
	}
	return img
}

// Encode writes the canvas in the given format
func (c *Canvas[T]) Encode(w io.Writer, format Format) error {
	if format == FormatPPM {
		return c.WritePPM(w, PPMMaxValue)
	}
	return EncodeImage(w, c.ToImage(), format)
}

// Save writes the canvas to path, choosing the format by extension
func (c *Canvas[T]) Save(path string) error {
	return saveAs(path, c.Encode)
}

// EncodeImage writes an already converted image, such as a labelled or
// scaled render, in the given format
func EncodeImage(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPPM:
		c, err := FromImage[float64](img)
		if err != nil {
			return err
		}
		return c.WritePPM(w, PPMMaxValue)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// SaveImage writes img to path, choosing the format by extension
func SaveImage(path string, img image.Image) error {
	return saveAs(path, func(w io.Writer, format Format) error {
		return EncodeImage(w, img, format)
	})
}

func saveAs(path string, encode func(io.Writer, Format) error) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := encode(file, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return file.Close()
}

// Scaled resamples the canvas to width×height with Catmull-Rom filtering
func (c *Canvas[T]) Scaled(width, height int) (*image.RGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	src := c.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// FromImage converts any image into a canvas with the default alpha
func FromImage[T core.Float](img image.Image) (*Canvas[T], error) {
	bounds := img.Bounds()
	c, err := New[T](bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			c.pixels[y*c.width+x] = core.NewRGB(T(r)/65535, T(g)/65535, T(b)/65535)
		}
	}
	return c, nil
}
