package geometry

import "github.com/df07/go-raytracer-challenge/pkg/core"

// SolveQuadratic returns the real roots of a·x² + b·x + c = 0 in ascending order:
// none, one for a zero discriminant, or two. It uses the form that avoids
// cancellation between b and the square root.
func SolveQuadratic[T core.Float](a, b, c T) []T {
	if a == 0 {
		return nil
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []T{-0.5 * b / a}
	}

	sqrtDisc := core.Sqrt(disc)
	var q T
	if b > 0 {
		q = -0.5 * (b + sqrtDisc)
	} else {
		q = -0.5 * (b - sqrtDisc)
	}
	x0, x1 := q/a, c/q
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	return []T{x0, x1}
}
