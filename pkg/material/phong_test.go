package material

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

func TestPhong_Values(t *testing.T) {
	m1 := NewPhong(0.1, 0.9, 0.9, 200.0)
	m2 := &Phong[float64]{}
	m2.SetValue(Ambient, 0.1)
	m2.SetValue(Diffuse, 0.9)
	m2.SetValue(Specular, 0.9)
	m2.SetValue(Shininess, 200)

	for _, v := range []PhongValue{Ambient, Diffuse, Specular, Shininess} {
		if m1.Value(v) != m2.Value(v) {
			t.Errorf("%s: constructor %v, setter %v", v, m1.Value(v), m2.Value(v))
		}
	}

	d := DefaultPhong[float32]()
	if d.Ambient != 0.1 || d.Diffuse != 0.9 || d.Specular != 0.9 || d.Shininess != 200 {
		t.Errorf("DefaultPhong() = %+v", d)
	}
	if !d.BaseColor().Equals(core.White[float32]()) {
		t.Errorf("default color = %v, want white", d.BaseColor())
	}
}

func TestLightOmni(t *testing.T) {
	pos := core.NewPoint(0.0, 0, 0)
	intensity := core.NewColor(1.0, 1, 1, 0.5)
	light := NewLightOmni(pos, intensity)

	if !light.Position.Equals(pos) || !light.Intensity.Equals(intensity) {
		t.Errorf("NewLightOmni() = %+v", light)
	}
}

func TestLighting(t *testing.T) {
	s := math.Sqrt2 / 2
	point := core.NewPoint(0.0, 0, 0)
	normal := core.NewVector(0.0, 0, -1)
	eyePosition := core.NewPoint(0.0, 0, -1)

	tests := []struct {
		name     string
		eyeDir   core.Vector[float64]
		lightPos core.Point[float64]
		expected float64
	}{
		{"eye between light and surface", core.NewVector(0.0, 0, 1), core.NewPoint(0.0, 0, -10), 1.9},
		{"eye offset 45 degrees", core.NewVector(0, s, -s), core.NewPoint(0.0, 0, -10), 1.0},
		{"light offset 45 degrees", core.NewVector(0.0, 0, 1), core.NewPoint(0.0, 10, -10), 0.7364},
		{"eye in the reflection path", core.NewVector(0, s, s), core.NewPoint(0.0, 10, -10), 1.6364},
		{"light behind the surface", core.NewVector(0.0, 0, 1), core.NewPoint(0.0, 0, 10), 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewLightOmni(tt.lightPos, core.White[float64]())
			got := Lighting(DefaultPhong[float64](), light, point, normal, eyePosition, tt.eyeDir)

			const tolerance = 1e-4
			want := core.NewRGB(tt.expected, tt.expected, tt.expected)
			if !got.EqualsWithin(want, tolerance) {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestLighting_DerivedEyeDirection(t *testing.T) {
	light := NewLightOmni(core.NewPoint(0.0, 0, -10), core.White[float64]())
	m := DefaultPhong[float64]()
	point := core.NewPoint(0.0, 0, 0)
	normal := core.NewVector(0.0, 0, -1)

	explicit := Lighting(m, light, point, normal, core.NewPoint(0.0, 0, -1), core.NewVector(0.0, 0, 1))
	derived := m.Shade(light, point, normal, core.NewPoint(0.0, 0, -5), core.Vector[float64]{})

	if !derived.EqualsWithin(explicit, 1e-9) {
		t.Errorf("derived eye direction = %v, explicit = %v", derived, explicit)
	}
}

func TestLighting_TintsByLightAndMaterial(t *testing.T) {
	m := DefaultPhong[float64]()
	m.Color = core.NewColor(1.0, 0.2, 1, 0.8)
	m.Specular = 0
	light := NewLightOmni(core.NewPoint(0.0, 0, -10), core.NewRGB(1.0, 1, 0))

	got := Lighting(m, light, core.NewPoint(0.0, 0, 0), core.NewVector(0.0, 0, -1), core.NewPoint(0.0, 0, -1), core.NewVector(0.0, 0, 1))
	want := core.NewRGB(1.0, 0.2, 0)
	if !got.EqualsWithin(want, 1e-9) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got.A() != 0.8 {
		t.Errorf("alpha = %v, want material alpha 0.8", got.A())
	}
}
