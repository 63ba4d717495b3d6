package renderer

import (
	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/geometry"
)

// Camera is a pinhole looking down +Z at a flat wall. Rays start at the
// pinhole and pass through the wall point matching each pixel.
type Camera[T core.Float] struct {
	origin   core.Point[T]
	wallZ    T
	wallSize T
}

// NewCamera creates a pinhole at origin aimed at a wall at depth wallZ.
// wallSize is the wall height covered by the image.
func NewCamera[T core.Float](origin core.Point[T], wallZ, wallSize T) *Camera[T] {
	return &Camera[T]{
		origin:   origin,
		wallZ:    wallZ,
		wallSize: wallSize,
	}
}

// NewDefaultCamera returns a camera at (0, 0, -5) looking at a 7 unit wall at z = 10
func NewDefaultCamera[T core.Float]() *Camera[T] {
	return NewCamera(core.NewPoint[T](0, 0, -5), 10, 7)
}

func (c *Camera[T]) Origin() core.Point[T] { return c.origin }

// GetRay generates a ray for wall coordinates (s, t) where 0 <= s,t <= 1,
// s growing right and t growing up. aspect is width over height.
func (c *Camera[T]) GetRay(s, t, aspect T) geometry.Ray[T] {
	half := c.wallSize / 2
	target := core.NewPoint(
		(2*s-1)*half*aspect,
		(2*t-1)*half,
		c.wallZ,
	)
	return geometry.NewRay(c.origin, target.Subtract(c.origin).Normalize())
}

// RayForPixel returns the ray through the center of pixel (x, y) of a
// width×height image, with y growing downwards
func (c *Camera[T]) RayForPixel(x, y, width, height int) geometry.Ray[T] {
	s := (T(x) + 0.5) / T(width)
	t := 1 - (T(y)+0.5)/T(height)
	return c.GetRay(s, t, T(width)/T(height))
}
