package core

import "fmt"

// Channel indexes a color slot
type Channel uint8

const (
	R Channel = iota
	G
	B
	A
)

// DefaultAlpha is used when a color is created without an explicit alpha
const DefaultAlpha = 0.5

// Color is an RGBA value sharing the tuple layout, alpha in the w slot.
// Channels are not clamped; values above 1 are expected from lighting.
type Color[T Float] struct {
	r, g, b, a T
}

// NewColor creates a new Color
func NewColor[T Float](r, g, b, a T) Color[T] {
	return Color[T]{r: r, g: g, b: b, a: a}
}

// NewRGB creates a color with DefaultAlpha
func NewRGB[T Float](r, g, b T) Color[T] {
	return Color[T]{r: r, g: g, b: b, a: DefaultAlpha}
}

// ColorFromTuple reads r, g, b, a from x, y, z, w
func ColorFromTuple[T Float](t Tuple[T]) Color[T] {
	return Color[T]{r: t.X, g: t.Y, b: t.Z, a: t.W}
}

// Black is (0, 0, 0) with DefaultAlpha
func Black[T Float]() Color[T] { return NewRGB[T](0, 0, 0) }

// White is (1, 1, 1) with DefaultAlpha
func White[T Float]() Color[T] { return NewRGB[T](1, 1, 1) }

func (c Color[T]) R() T { return c.r }
func (c Color[T]) G() T { return c.g }
func (c Color[T]) B() T { return c.b }
func (c Color[T]) A() T { return c.a }

// Get returns the slot at ch
func (c Color[T]) Get(ch Channel) T {
	return c.Tuple().Get(Coordinate(ch))
}

// Tuple returns the color as an (r, g, b, a) tuple
func (c Color[T]) Tuple() Tuple[T] {
	return Tuple[T]{c.r, c.g, c.b, c.a}
}

// Add returns the channel-wise sum, alpha included
func (c Color[T]) Add(other Color[T]) Color[T] {
	return Color[T]{c.r + other.r, c.g + other.g, c.b + other.b, c.a + other.a}
}

// Subtract returns the channel-wise difference, alpha included
func (c Color[T]) Subtract(other Color[T]) Color[T] {
	return Color[T]{c.r - other.r, c.g - other.g, c.b - other.b, c.a - other.a}
}

// Multiply scales r, g and b. Alpha is kept.
func (c Color[T]) Multiply(scalar T) Color[T] {
	return Color[T]{c.r * scalar, c.g * scalar, c.b * scalar, c.a}
}

// Divide divides r, g and b. Alpha is kept.
func (c Color[T]) Divide(scalar T) Color[T] {
	return Color[T]{c.r / scalar, c.g / scalar, c.b / scalar, c.a}
}

// Hadamard returns the channel-wise product, used to tint by a light
func (c Color[T]) Hadamard(other Color[T]) Color[T] {
	return Color[T]{c.r * other.r, c.g * other.g, c.b * other.b, c.a * other.a}
}

// Clamp limits r, g and b to [lo, hi]
func (c Color[T]) Clamp(lo, hi T) Color[T] {
	clamp := func(v T) T {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return Color[T]{clamp(c.r), clamp(c.g), clamp(c.b), c.a}
}

// Equals compares all four channels within epsilon
func (c Color[T]) Equals(other Color[T]) bool {
	return c.Tuple().Equals(other.Tuple())
}

// EqualsWithin compares r, g and b within tolerance
func (c Color[T]) EqualsWithin(other Color[T], tolerance T) bool {
	return EqualsWithin(c.r, other.r, tolerance) &&
		EqualsWithin(c.g, other.g, tolerance) &&
		EqualsWithin(c.b, other.b, tolerance)
}

// String implements fmt.Stringer
func (c Color[T]) String() string {
	return fmt.Sprintf("color(%g, %g, %g, %g)", float64(c.r), float64(c.g), float64(c.b), float64(c.a))
}
