package scene

import (
	"math"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/material"
	"github.com/df07/go-raytracer-challenge/pkg/projectile"
	"github.com/df07/go-raytracer-challenge/pkg/transform"
)

const (
	projectileTrailSpheres = 40
	projectileTrailRadius  = 0.05
)

// NewProjectileScene fires a projectile and marks its path with small
// spheres, scaled to fit in front of the default camera
func NewProjectileScene() *Scene {
	s := New("projectile", 300, 200)

	env := projectile.Environment[float64]{
		Gravity: core.NewVector(0.0, -0.1, 0),
		Wind:    core.NewVector(-0.01, 0, 0),
	}
	p := projectile.New(core.NewPoint(0.0, 1, 0), core.NewVector(1.0, 1.8, 0).Normalize().Multiply(11.25))
	points := projectile.Trajectory(env, p, 0)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, pt := range points {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}

	// The default camera sees roughly 3.5×2.3 units at z = 0 for a 3:2 image
	scale := math.Min(3/math.Max(maxX-minX, 1), 2/math.Max(maxY-minY, 1))
	fit := transform.Chain(
		transform.Translation(-(minX+maxX)/2, -(minY+maxY)/2, 0),
		transform.Scaling(scale, scale, scale),
	)

	step := max(1, len(points)/projectileTrailSpheres)
	for i := 0; i < len(points); i += step {
		mat := material.DefaultPhong[float64]()
		f := float64(i) / float64(len(points))
		mat.Color = core.NewRGB(1, 0.2+0.7*f, 0.1)
		_, _ = s.AddSphere(projectileTrailRadius, fit.ApplyPoint(points[i]), transform.Identity[float64](), mat)
	}

	s.AddLight(core.NewPoint(-10.0, 10, -10), core.White[float64]())
	return s
}
