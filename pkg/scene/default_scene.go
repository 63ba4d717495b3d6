package scene

import (
	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/material"
	"github.com/df07/go-raytracer-challenge/pkg/transform"
)

// NewDefaultScene creates a single purple unit sphere at the origin with a
// white light behind and to the left of the camera
func NewDefaultScene() *Scene {
	s := New("default", 200, 200)

	purple := material.DefaultPhong[float64]()
	purple.Color = core.NewRGB(1, 0.2, 1)

	// a unit sphere cannot fail
	_, _ = s.AddSphere(1, core.Point[float64]{}, transform.Identity[float64](), purple)
	s.AddLight(core.NewPoint(-10.0, 10, -10), core.White[float64]())
	return s
}
