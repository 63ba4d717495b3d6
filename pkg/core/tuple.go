package core

import "fmt"

// Coordinate indexes a tuple slot by its geometric name
type Coordinate uint8

const (
	X Coordinate = iota
	Y
	Z
	W
)

// Tuple is the raw 4-slot homogeneous value underlying Point, Vector and Color.
// Y is up and Z points away from the viewer.
type Tuple[T Float] struct {
	X, Y, Z, W T
}

// NewTuple creates a new Tuple
func NewTuple[T Float](x, y, z, w T) Tuple[T] {
	return Tuple[T]{X: x, Y: y, Z: z, W: w}
}

// Get returns the slot at c. It panics on an unknown coordinate.
func (t Tuple[T]) Get(c Coordinate) T {
	switch c {
	case X:
		return t.X
	case Y:
		return t.Y
	case Z:
		return t.Z
	case W:
		return t.W
	}
	panic(fmt.Sprintf("core: tuple coordinate %d out of range", c))
}

// Set returns a copy of t with the slot at c replaced
func (t Tuple[T]) Set(c Coordinate, value T) Tuple[T] {
	switch c {
	case X:
		t.X = value
	case Y:
		t.Y = value
	case Z:
		t.Z = value
	case W:
		t.W = value
	default:
		panic(fmt.Sprintf("core: tuple coordinate %d out of range", c))
	}
	return t
}

// Add returns the component-wise sum, w included
func (t Tuple[T]) Add(other Tuple[T]) Tuple[T] {
	return Tuple[T]{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference, w included
func (t Tuple[T]) Subtract(other Tuple[T]) Tuple[T] {
	return Tuple[T]{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate flips every slot, w included. Use Vector.Negate to keep a direction.
func (t Tuple[T]) Negate() Tuple[T] {
	return Tuple[T]{-t.X, -t.Y, -t.Z, -t.W}
}

// Equals compares all four slots within epsilon
func (t Tuple[T]) Equals(other Tuple[T]) bool {
	return Equals(t.X, other.X) && Equals(t.Y, other.Y) &&
		Equals(t.Z, other.Z) && Equals(t.W, other.W)
}

// IsPoint reports whether the discriminant marks a position
func (t Tuple[T]) IsPoint() bool {
	return Equals(t.W, 1)
}

// IsVector reports whether the discriminant marks a direction
func (t Tuple[T]) IsVector() bool {
	return Equals(t.W, 0)
}

// Point is a position in space (w = 1)
type Point[T Float] struct {
	X, Y, Z T
}

// NewPoint creates a new Point
func NewPoint[T Float](x, y, z T) Point[T] {
	return Point[T]{X: x, Y: y, Z: z}
}

// PointFromTuple drops the discriminant of t and treats it as a position
func PointFromTuple[T Float](t Tuple[T]) Point[T] {
	return Point[T]{X: t.X, Y: t.Y, Z: t.Z}
}

// Tuple returns the homogeneous form of p
func (p Point[T]) Tuple() Tuple[T] {
	return Tuple[T]{p.X, p.Y, p.Z, 1}
}

// Add translates the point by a vector
func (p Point[T]) Add(v Vector[T]) Point[T] {
	return Point[T]{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector going from other to p
func (p Point[T]) Subtract(other Point[T]) Vector[T] {
	return Vector[T]{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubtractVector translates the point backwards along v
func (p Point[T]) SubtractVector(v Vector[T]) Point[T] {
	return Point[T]{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equals compares x, y and z within epsilon
func (p Point[T]) Equals(other Point[T]) bool {
	return Equals(p.X, other.X) && Equals(p.Y, other.Y) && Equals(p.Z, other.Z)
}

// String implements fmt.Stringer
func (p Point[T]) String() string {
	return fmt.Sprintf("point(%g, %g, %g)", float64(p.X), float64(p.Y), float64(p.Z))
}

// Vector is a direction in space (w = 0)
type Vector[T Float] struct {
	X, Y, Z T
}

// NewVector creates a new Vector
func NewVector[T Float](x, y, z T) Vector[T] {
	return Vector[T]{X: x, Y: y, Z: z}
}

// VectorFromTuple drops the discriminant of t and treats it as a direction
func VectorFromTuple[T Float](t Tuple[T]) Vector[T] {
	return Vector[T]{X: t.X, Y: t.Y, Z: t.Z}
}

// Tuple returns the homogeneous form of v
func (v Vector[T]) Tuple() Tuple[T] {
	return Tuple[T]{v.X, v.Y, v.Z, 0}
}

// Add returns the sum of two vectors
func (v Vector[T]) Add(other Vector[T]) Vector[T] {
	return Vector[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector[T]) Subtract(other Vector[T]) Vector[T] {
	return Vector[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector[T]) Multiply(scalar T) Vector[T] {
	return Vector[T]{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vector[T]) Divide(scalar T) Vector[T] {
	return Vector[T]{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Negate returns the negative of the vector
func (v Vector[T]) Negate() Vector[T] {
	return Vector[T]{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vector[T]) Dot(other Vector[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector[T]) Cross(other Vector[T]) Vector[T] {
	return Vector[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// MagnitudeSquared returns the squared length of the vector
func (v Vector[T]) MagnitudeSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the length of the vector
func (v Vector[T]) Magnitude() T {
	return Sqrt(v.MagnitudeSquared())
}

// IsZero reports whether every component is zero within epsilon
func (v Vector[T]) IsZero() bool {
	return Equals(v.X, 0) && Equals(v.Y, 0) && Equals(v.Z, 0)
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector normalizes to the zero vector.
func (v Vector[T]) Normalize() Vector[T] {
	n, err := v.TryNormalize()
	if err != nil {
		return Vector[T]{}
	}
	return n
}

// TryNormalize returns a unit vector in the same direction, or ErrZeroVector
// when v has no length to divide by.
func (v Vector[T]) TryNormalize() (Vector[T], error) {
	length := v.Magnitude()
	if length == 0 || !IsFinite(length) {
		Log().Debug("normalizing degenerate vector", "vector", v.String())
		return Vector[T]{}, ErrZeroVector
	}
	return v.Divide(length), nil
}

// Reflect mirrors v around normal: v - 2(v·n)n
func (v Vector[T]) Reflect(normal Vector[T]) Vector[T] {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Equals compares x, y and z within epsilon
func (v Vector[T]) Equals(other Vector[T]) bool {
	return Equals(v.X, other.X) && Equals(v.Y, other.Y) && Equals(v.Z, other.Z)
}

// String implements fmt.Stringer
func (v Vector[T]) String() string {
	return fmt.Sprintf("vector(%g, %g, %g)", float64(v.X), float64(v.Y), float64(v.Z))
}
