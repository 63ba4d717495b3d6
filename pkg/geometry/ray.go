package geometry

import (
	"fmt"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/transform"
)

// Ray represents a ray with an origin and direction
type Ray[T core.Float] struct {
	Origin    core.Point[T]
	Direction core.Vector[T]
}

// NewRay creates a new ray
func NewRay[T core.Float](origin core.Point[T], direction core.Vector[T]) Ray[T] {
	return Ray[T]{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray[T]) Position(t T) core.Point[T] {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Normalize scales the direction to unit length in place.
// A zero direction is left untouched and reported as core.ErrZeroVector.
func (r *Ray[T]) Normalize() error {
	d, err := r.Direction.TryNormalize()
	if err != nil {
		return fmt.Errorf("ray direction: %w", err)
	}
	r.Direction = d
	return nil
}

// Transform maps the origin as a point and the direction as a vector
func (r Ray[T]) Transform(t transform.Transform[T]) Ray[T] {
	return Ray[T]{
		Origin:    t.ApplyPoint(r.Origin),
		Direction: t.ApplyVector(r.Direction),
	}
}
