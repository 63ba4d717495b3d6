package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/material"
	"github.com/df07/go-raytracer-challenge/pkg/matrix"
	"github.com/df07/go-raytracer-challenge/pkg/renderer"
	"github.com/df07/go-raytracer-challenge/pkg/scene"
	"github.com/df07/go-raytracer-challenge/pkg/transform"
)

// ErrSceneFile is returned for scene files with missing or malformed entries
var ErrSceneFile = errors.New("loaders: invalid scene file")

// Default image size for scene files that omit it
const (
	DefaultSceneWidth  = 200
	DefaultSceneHeight = 200
)

// SceneFile is the JSON layout of a scene
type SceneFile struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Camera      *CameraEntry  `json:"camera"`
	Lights      []LightEntry  `json:"lights"`
	Spheres     []SphereEntry `json:"spheres"`
}

// CameraEntry places the pinhole camera
type CameraEntry struct {
	Origin   []float64 `json:"origin"`
	WallZ    float64   `json:"wallZ"`
	WallSize float64   `json:"wallSize"`
}

// LightEntry is a point light
type LightEntry struct {
	Position  []float64 `json:"position"`
	Intensity []float64 `json:"intensity"`
}

// SphereEntry is a sphere with an optional transform chain and material.
// Transform steps apply in the order listed.
type SphereEntry struct {
	Radius    *float64        `json:"radius"`
	Position  []float64       `json:"position"`
	Transform []TransformStep `json:"transform"`
	Material  *MaterialEntry  `json:"material"`
}

// TransformStep is one factory call: translate, scale, rotateX, rotateY,
// rotateZ, rotate, shear or matrix
type TransformStep struct {
	Type   string    `json:"type"`
	Values []float64 `json:"values"`
}

// MaterialEntry overrides the default Phong coefficients
type MaterialEntry struct {
	Color     []float64 `json:"color"`
	Ambient   *float64  `json:"ambient"`
	Diffuse   *float64  `json:"diffuse"`
	Specular  *float64  `json:"specular"`
	Shininess *float64  `json:"shininess"`
}

// LoadScene reads a JSON scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	s, err := ParseScene(file, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ParseScene decodes a JSON scene. fallbackName is used when the file has no name.
func ParseScene(r io.Reader, fallbackName string) (*scene.Scene, error) {
	var f SceneFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return f.Build(fallbackName)
}

// Build converts the decoded file into a scene
func (f *SceneFile) Build(fallbackName string) (*scene.Scene, error) {
	name := f.Name
	if name == "" {
		name = fallbackName
	}
	width, height := f.Width, f.Height
	if width == 0 {
		width = DefaultSceneWidth
	}
	if height == 0 {
		height = DefaultSceneHeight
	}
	s := scene.New(name, width, height)

	if f.Camera != nil {
		origin, err := point(f.Camera.Origin)
		if err != nil {
			return nil, fmt.Errorf("camera origin: %w", err)
		}
		if f.Camera.WallSize <= 0 {
			return nil, fmt.Errorf("camera wall size %g: %w", f.Camera.WallSize, ErrSceneFile)
		}
		s.Camera = renderer.NewCamera(origin, f.Camera.WallZ, f.Camera.WallSize)
	}

	for i, l := range f.Lights {
		position, err := point(l.Position)
		if err != nil {
			return nil, fmt.Errorf("light %d position: %w", i, err)
		}
		intensity, err := rgb(l.Intensity, core.White[float64]())
		if err != nil {
			return nil, fmt.Errorf("light %d intensity: %w", i, err)
		}
		s.AddLight(position, intensity)
	}

	for i, sp := range f.Spheres {
		if err := addSphere(s, sp); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func addSphere(s *scene.Scene, sp SphereEntry) error {
	radius := 1.0
	if sp.Radius != nil {
		radius = *sp.Radius
	}
	var position core.Point[float64]
	if sp.Position != nil {
		p, err := point(sp.Position)
		if err != nil {
			return fmt.Errorf("position: %w", err)
		}
		position = p
	}

	steps := make([]transform.Transform[float64], 0, len(sp.Transform))
	for j, step := range sp.Transform {
		t, err := step.Build()
		if err != nil {
			return fmt.Errorf("transform %d: %w", j, err)
		}
		steps = append(steps, t)
	}

	var mat material.Material[float64]
	if sp.Material != nil {
		p, err := sp.Material.Build()
		if err != nil {
			return fmt.Errorf("material: %w", err)
		}
		mat = p
	}

	_, err := s.AddSphere(radius, position, transform.Chain(steps...), mat)
	return err
}

// Build returns the transform the step describes
func (step TransformStep) Build() (transform.Transform[float64], error) {
	want := map[string]int{
		"translate": 3, "scale": 3, "rotate": 3, "shear": 6, "matrix": 16,
		"rotateX": 1, "rotateY": 1, "rotateZ": 1,
	}
	n, ok := want[step.Type]
	if !ok {
		return transform.Transform[float64]{}, fmt.Errorf("unknown transform %q: %w", step.Type, ErrSceneFile)
	}
	if len(step.Values) != n {
		return transform.Transform[float64]{}, fmt.Errorf("%s takes %d values, got %d: %w",
			step.Type, n, len(step.Values), ErrSceneFile)
	}

	v := step.Values
	switch step.Type {
	case "translate":
		return transform.Translation(v[0], v[1], v[2]), nil
	case "scale":
		return transform.Scaling(v[0], v[1], v[2]), nil
	case "rotateX":
		return transform.RotationX(v[0]), nil
	case "rotateY":
		return transform.RotationY(v[0]), nil
	case "rotateZ":
		return transform.RotationZ(v[0]), nil
	case "rotate":
		return transform.Rotation(v[0], v[1], v[2]), nil
	case "shear":
		return transform.Shearing(v[0], v[1], v[2], v[3], v[4], v[5]), nil
	}

	m, err := matrix.New(4, v...)
	if err != nil {
		return transform.Transform[float64]{}, err
	}
	return transform.FromMatrix(m)
}

// Build returns the default Phong material with the entry's overrides applied
func (m *MaterialEntry) Build() (*material.Phong[float64], error) {
	p := material.DefaultPhong[float64]()
	if m.Color != nil {
		c, err := rgb(m.Color, p.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		p.Color = c
	}
	overrides := []struct {
		value *float64
		slot  material.PhongValue
	}{
		{m.Ambient, material.Ambient},
		{m.Diffuse, material.Diffuse},
		{m.Specular, material.Specular},
		{m.Shininess, material.Shininess},
	}
	for _, o := range overrides {
		if o.value != nil {
			p.SetValue(o.slot, *o.value)
		}
	}
	return p, nil
}

func point(values []float64) (core.Point[float64], error) {
	if len(values) != 3 {
		return core.Point[float64]{}, fmt.Errorf("expected 3 coordinates, got %d: %w", len(values), ErrSceneFile)
	}
	return core.NewPoint(values[0], values[1], values[2]), nil
}

// rgb reads [r, g, b] or [r, g, b, a]; nil keeps fallback
func rgb(values []float64, fallback core.Color[float64]) (core.Color[float64], error) {
	switch len(values) {
	case 0:
		return fallback, nil
	case 3:
		return core.NewColor(values[0], values[1], values[2], fallback.A()), nil
	case 4:
		return core.NewColor(values[0], values[1], values[2], values[3]), nil
	}
	return fallback, fmt.Errorf("expected 3 or 4 channels, got %d: %w", len(values), ErrSceneFile)
}
