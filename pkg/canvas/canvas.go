// Package canvas holds rendered pixels and writes them out as PPM, PNG, BMP
// or TIFF.
package canvas

import (
	"errors"
	"fmt"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

var (
	// ErrInvalidSize is returned for a canvas with no pixels
	ErrInvalidSize = errors.New("canvas: width and height must be positive")

	// ErrOutOfBounds is returned when addressing a pixel outside the canvas
	ErrOutOfBounds = errors.New("canvas: pixel out of bounds")
)

// Canvas is a width×height grid of colors, row-major with y growing downwards
type Canvas[T core.Float] struct {
	width  int
	height int
	pixels []core.Color[T]
}

// New creates a canvas with every pixel black at the default alpha
func New[T core.Float](width, height int) (*Canvas[T], error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	c := &Canvas[T]{
		width:  width,
		height: height,
		pixels: make([]core.Color[T], width*height),
	}
	c.Fill(core.Black[T]())
	return c, nil
}

func (c *Canvas[T]) Width() int  { return c.width }
func (c *Canvas[T]) Height() int { return c.height }

func (c *Canvas[T]) index(x, y int) (int, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, fmt.Errorf("(%d, %d) on %dx%d: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	return y*c.width + x, nil
}

// At returns the color of pixel (x, y)
func (c *Canvas[T]) At(x, y int) (core.Color[T], error) {
	i, err := c.index(x, y)
	if err != nil {
		return core.Color[T]{}, err
	}
	return c.pixels[i], nil
}

// Set stores the color of pixel (x, y). Values are kept unclamped.
func (c *Canvas[T]) Set(x, y int, color core.Color[T]) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = color
	return nil
}

// Fill sets every pixel to color
func (c *Canvas[T]) Fill(color core.Color[T]) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}
