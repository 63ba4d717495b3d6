package loaders

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/geometry"
	"github.com/df07/go-raytracer-challenge/pkg/material"
)

const twoSpheres = `{
	"name": "Two Spheres",
	"width": 64,
	"height": 32,
	"camera": {"origin": [0, 0, -6], "wallZ": 10, "wallSize": 8},
	"lights": [
		{"position": [-10, 10, -10], "intensity": [1, 1, 1]},
		{"position": [10, 10, -10]}
	],
	"spheres": [
		{
			"material": {"color": [1, 0.2, 1], "shininess": 50}
		},
		{
			"radius": 0.5,
			"position": [1, 0, 0],
			"transform": [
				{"type": "scale", "values": [2, 1, 1]},
				{"type": "rotateZ", "values": [1.5707963267948966]},
				{"type": "translate", "values": [0, 1, 0]}
			]
		}
	]
}`

func TestParseScene(t *testing.T) {
	s, err := ParseScene(strings.NewReader(twoSpheres), "fallback")
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}

	if s.Name != "Two Spheres" || s.Width != 64 || s.Height != 32 {
		t.Errorf("header = %q %dx%d", s.Name, s.Width, s.Height)
	}
	if !s.Camera.Origin().Equals(core.NewPoint(0.0, 0, -6)) {
		t.Errorf("camera origin = %v", s.Camera.Origin())
	}
	if len(s.World.Lights()) != 2 {
		t.Fatalf("lights = %d", len(s.World.Lights()))
	}
	if !s.World.Lights()[1].Intensity.EqualsWithin(core.White[float64](), 1e-12) {
		t.Errorf("default intensity = %v", s.World.Lights()[1].Intensity)
	}

	objects := s.World.Objects()
	if len(objects) != 2 {
		t.Fatalf("objects = %d", len(objects))
	}

	first := objects[0].Shape.(*geometry.Sphere[float64])
	phong := first.Material().(*material.Phong[float64])
	if phong.Shininess != 50 || phong.Ambient != 0.1 {
		t.Errorf("material overrides = %+v", phong)
	}
	if !phong.Color.EqualsWithin(core.NewRGB(1, 0.2, 1), 1e-12) {
		t.Errorf("material color = %v", phong.Color)
	}

	second := objects[1].Shape.(*geometry.Sphere[float64])
	if second.Radius() != 0.5 {
		t.Errorf("radius = %v", second.Radius())
	}
	// scale x by 2, quarter turn about z, then lift by 1
	got := second.Transform().ApplyPoint(core.NewPoint(1.0, 0, 0))
	if got.Subtract(core.NewPoint(0.0, 3, 0)).Magnitude() > 1e-9 {
		t.Errorf("transform maps (1,0,0) to %v", got)
	}
	if !second.Center().Equals(core.NewPoint(1.0, 1, 0)) {
		t.Errorf("center = %v", second.Center())
	}
}

func TestParseSceneDefaults(t *testing.T) {
	s, err := ParseScene(strings.NewReader(`{"spheres": [{}]}`), "bare")
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}
	if s.Name != "bare" || s.Width != DefaultSceneWidth || s.Height != DefaultSceneHeight {
		t.Errorf("defaults = %q %dx%d", s.Name, s.Width, s.Height)
	}
	sphere := s.World.Objects()[0].Shape.(*geometry.Sphere[float64])
	if sphere.Radius() != 1 || sphere.Material() == nil {
		t.Errorf("default sphere = radius %v, material %v", sphere.Radius(), sphere.Material())
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"unknown transform", `{"spheres": [{"transform": [{"type": "twist", "values": [1]}]}]}`, ErrSceneFile},
		{"wrong value count", `{"spheres": [{"transform": [{"type": "scale", "values": [1, 2]}]}]}`, ErrSceneFile},
		{"short position", `{"spheres": [{"position": [1, 2]}]}`, ErrSceneFile},
		{"bad color", `{"spheres": [{"material": {"color": [1]}}]}`, ErrSceneFile},
		{"bad light", `{"lights": [{"position": []}]}`, ErrSceneFile},
		{"flat camera", `{"camera": {"origin": [0, 0, -5], "wallZ": 10, "wallSize": 0}}`, ErrSceneFile},
		{"negative radius", `{"spheres": [{"radius": -1}]}`, geometry.ErrNegativeRadius},
		{"unknown field", `{"cubes": []}`, nil},
		{"not json", `{`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tt.input), "bad")
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransformStepMatrix(t *testing.T) {
	step := TransformStep{Type: "matrix", Values: []float64{
		1, 0, 0, 5,
		0, 1, 0, -3,
		0, 0, 1, 2,
		0, 0, 0, 1,
	}}
	tr, err := step.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := tr.ApplyPoint(core.NewPoint(-3.0, 4, 5))
	if !got.Equals(core.NewPoint(2.0, 1, 7)) {
		t.Errorf("matrix step maps to %v", got)
	}

	rot, err := TransformStep{Type: "rotateX", Values: []float64{math.Pi / 2}}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if v := rot.ApplyVector(core.NewVector(0.0, 1, 0)); v.Subtract(core.NewVector(0.0, 0, 1)).Magnitude() > 1e-9 {
		t.Errorf("rotateX maps y to %v", v)
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two-spheres.json")
	if err := os.WriteFile(path, []byte(`{"spheres": [{}], "lights": [{"position": [0, 0, -5]}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if s.Name != "two-spheres" {
		t.Errorf("name = %q", s.Name)
	}

	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}
