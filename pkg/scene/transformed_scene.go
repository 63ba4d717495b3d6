package scene

import (
	"math"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/material"
	"github.com/df07/go-raytracer-challenge/pkg/renderer"
	"github.com/df07/go-raytracer-challenge/pkg/transform"
)

// NewTransformedScene creates three spheres, each deformed by a different
// chain of transforms
func NewTransformedScene() *Scene {
	s := New("transformed", 300, 200)
	s.Camera = renderer.NewCamera(core.NewPoint(0.0, 0, -8), 10, 10)

	spheres := []struct {
		color     core.Color[float64]
		transform transform.Transform[float64]
	}{
		{
			// flattened and tipped
			color: core.NewRGB(0.2, 0.6, 1),
			transform: transform.Chain(
				transform.Scaling(1.0, 0.5, 1),
				transform.RotationZ(math.Pi/6),
			),
		},
		{
			color: core.NewRGB(0.1, 1, 0.5),
			transform: transform.Chain(
				transform.Scaling(0.6, 0.6, 0.6),
				transform.Shearing(1.0, 0, 0, 0, 0, 0),
				transform.Translation(-2.2, 0.3, 0.5),
			),
		},
		{
			color: core.NewRGB(1, 0.8, 0.1),
			transform: transform.Chain(
				transform.Scaling(0.5, 0.5, 0.5),
				transform.Rotation(math.Pi/4, 0, math.Pi/3),
				transform.Translation(2.0, -0.5, 0),
			),
		},
	}

	for _, sp := range spheres {
		mat := material.DefaultPhong[float64]()
		mat.Color = sp.color
		_, _ = s.AddSphere(1, core.Point[float64]{}, sp.transform, mat)
	}

	s.AddLight(core.NewPoint(-10.0, 10, -10), core.White[float64]())
	s.AddLight(core.NewPoint(10.0, 5, -10), core.NewRGB(0.3, 0.3, 0.3))
	return s
}
