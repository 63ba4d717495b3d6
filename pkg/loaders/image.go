package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-raytracer-challenge/pkg/canvas"
)

// LoadImage loads a PPM, PNG, JPEG, BMP or TIFF image into a canvas
func LoadImage(filename string) (*canvas.Canvas[float64], error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".ppm") {
		c, err := canvas.ReadPPM[float64](file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		return c, nil
	}

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return canvas.FromImage[float64](img)
}
