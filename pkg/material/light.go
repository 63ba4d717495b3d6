package material

import "github.com/df07/go-raytracer-challenge/pkg/core"

// LightOmni is a point light with no size and no attenuation
type LightOmni[T core.Float] struct {
	Position  core.Point[T]
	Intensity core.Color[T]
}

// NewLightOmni creates a new point light
func NewLightOmni[T core.Float](position core.Point[T], intensity core.Color[T]) LightOmni[T] {
	return LightOmni[T]{Position: position, Intensity: intensity}
}
