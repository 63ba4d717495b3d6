package material

import "github.com/df07/go-raytracer-challenge/pkg/core"

// Material interface for surfaces that can be shaded by a point light
type Material[T core.Float] interface {
	// BaseColor is the unlit surface color
	BaseColor() core.Color[T]

	// Shade returns the color seen from the eye at point, lit by light
	Shade(light LightOmni[T], point core.Point[T], normal core.Vector[T], eyePosition core.Point[T], eyeDirection core.Vector[T]) core.Color[T]
}
