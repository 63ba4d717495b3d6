package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

func TestCamera_RayForPixel(t *testing.T) {
	camera := NewCamera(core.NewPoint(0.0, 0, -5), 10, 7)

	tests := []struct {
		name          string
		x, y          int
		width, height int
		target        core.Point[float64]
	}{
		{"center", 5, 5, 11, 11, core.NewPoint(0.0, 0, 10)},
		{"top left", 0, 0, 10, 10, core.NewPoint(-3.15, 3.15, 10)},
		{"bottom right", 9, 9, 10, 10, core.NewPoint(3.15, -3.15, 10)},
		{"wide image", 0, 0, 20, 10, core.NewPoint(-6.65, 3.15, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.RayForPixel(tt.x, tt.y, tt.width, tt.height)
			want := tt.target.Subtract(core.NewPoint(0.0, 0, -5)).Normalize()

			const tolerance = 1e-9
			if ray.Direction.Subtract(want).Magnitude() > tolerance {
				t.Errorf("Expected direction %v, got %v", want, ray.Direction)
			}
			if !ray.Origin.Equals(camera.Origin()) {
				t.Errorf("ray origin = %v", ray.Origin)
			}
			if math.Abs(ray.Direction.Magnitude()-1) > tolerance {
				t.Errorf("direction not normalized: %v", ray.Direction.Magnitude())
			}
		})
	}
}

func TestCamera_GetRayCorners(t *testing.T) {
	camera := NewDefaultCamera[float64]()
	up := camera.GetRay(0.5, 1, 1)
	down := camera.GetRay(0.5, 0, 1)

	if up.Direction.Y <= 0 || down.Direction.Y >= 0 {
		t.Errorf("t should grow upwards: up %v, down %v", up.Direction, down.Direction)
	}
	if math.Abs(up.Direction.Y+down.Direction.Y) > 1e-12 {
		t.Errorf("corners should be symmetric: %v, %v", up.Direction, down.Direction)
	}
}
