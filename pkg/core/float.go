package core

import (
	"math"
	"unsafe"
)

// Float is the scalar type every algebra value is parameterized by
type Float interface {
	~float32 | ~float64
}

const (
	float32MachineEpsilon = 1.0 / (1 << 23)
	float64MachineEpsilon = 1.0 / (1 << 52)
)

// Epsilon returns the comparison tolerance for T: ten times its machine epsilon
func Epsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(float32MachineEpsilon * 10)
	}
	return T(float64MachineEpsilon * 10)
}

// Equals reports whether a and b differ by less than Epsilon[T]()
func Equals[T Float](a, b T) bool {
	return EqualsWithin(a, b, Epsilon[T]())
}

// EqualsWithin reports whether a and b differ by less than tolerance
func EqualsWithin[T Float](a, b, tolerance T) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}

// Sqrt returns the square root of x
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Pow returns x**y
func Pow[T Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Abs returns the absolute value of x
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sincos returns the sine and cosine of angle (radians)
func Sincos[T Float](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

// IsFinite reports whether x is neither NaN nor an infinity
func IsFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
