package material

import (
	"fmt"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

// PhongValue selects one of the scalar Phong coefficients
type PhongValue int

const (
	Ambient PhongValue = iota
	Diffuse
	Specular
	Shininess
)

func (v PhongValue) String() string {
	switch v {
	case Ambient:
		return "ambient"
	case Diffuse:
		return "diffuse"
	case Specular:
		return "specular"
	case Shininess:
		return "shininess"
	}
	return fmt.Sprintf("PhongValue(%d)", int(v))
}

// Phong is a material lit by the ambient + diffuse + specular model
type Phong[T core.Float] struct {
	Color     core.Color[T]
	Ambient   T
	Diffuse   T
	Specular  T
	Shininess T
}

// NewPhong creates a white Phong material with the given coefficients
func NewPhong[T core.Float](ambient, diffuse, specular, shininess T) *Phong[T] {
	return &Phong[T]{
		Color:     core.White[T](),
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// DefaultPhong returns a white material with ambient 0.1, diffuse 0.9,
// specular 0.9 and shininess 200
func DefaultPhong[T core.Float]() *Phong[T] {
	return NewPhong[T](0.1, 0.9, 0.9, 200)
}

// Value returns the coefficient selected by v. Unknown selectors read ambient.
func (p *Phong[T]) Value(v PhongValue) T {
	return *p.slot(v)
}

// SetValue updates the coefficient selected by v
func (p *Phong[T]) SetValue(v PhongValue, value T) {
	*p.slot(v) = value
}

func (p *Phong[T]) slot(v PhongValue) *T {
	switch v {
	case Diffuse:
		return &p.Diffuse
	case Specular:
		return &p.Specular
	case Shininess:
		return &p.Shininess
	default:
		return &p.Ambient
	}
}

// BaseColor implements the Material interface
func (p *Phong[T]) BaseColor() core.Color[T] {
	return p.Color
}

// Shade implements the Material interface
func (p *Phong[T]) Shade(light LightOmni[T], point core.Point[T], normal core.Vector[T], eyePosition core.Point[T], eyeDirection core.Vector[T]) core.Color[T] {
	return Lighting(p, light, point, normal, eyePosition, eyeDirection)
}

// Lighting evaluates the Phong model at point.
//
// eyeDirection is the direction the eye looks along, toward the point. When it
// is the zero vector it is derived from eyePosition. The result is not clamped
// and keeps the alpha of the material color.
func Lighting[T core.Float](m *Phong[T], light LightOmni[T], point core.Point[T], normal core.Vector[T], eyePosition core.Point[T], eyeDirection core.Vector[T]) core.Color[T] {
	if eyeDirection.IsZero() {
		eyeDirection = point.Subtract(eyePosition)
	}
	eyeDirection = eyeDirection.Normalize()

	effective := m.Color.Hadamard(light.Intensity)
	lightDir := light.Position.Subtract(point).Normalize()

	result := effective.Multiply(m.Ambient)

	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal >= 0 {
		result = addRGB(result, effective.Multiply(m.Diffuse*lightDotNormal))

		reflectDir := lightDir.Negate().Reflect(normal)
		reflectDotEye := reflectDir.Dot(eyeDirection.Negate())
		if reflectDotEye > 0 {
			factor := core.Pow(reflectDotEye, m.Shininess)
			result = addRGB(result, light.Intensity.Multiply(m.Specular*factor))
		}
	}

	return core.NewColor(result.R(), result.G(), result.B(), m.Color.A())
}

func addRGB[T core.Float](a, b core.Color[T]) core.Color[T] {
	return core.NewColor(a.R()+b.R(), a.G()+b.G(), a.B()+b.B(), a.A())
}
