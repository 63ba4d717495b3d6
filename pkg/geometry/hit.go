package geometry

import "github.com/df07/go-raytracer-challenge/pkg/core"

// RayHit holds the roots of one ray/shape intersection split by sign.
// Roots with t >= 0 are hits; roots behind the origin are negative hits.
// Both lists are in ascending t order.
type RayHit[T core.Float] struct {
	Distances         []T
	Points            []core.Point[T]
	NegativeDistances []T
	NegativePoints    []core.Point[T]
}

func (h *RayHit[T]) add(t T, p core.Point[T]) {
	if t >= 0 {
		h.Distances = append(h.Distances, t)
		h.Points = append(h.Points, p)
		return
	}
	h.NegativeDistances = append(h.NegativeDistances, t)
	h.NegativePoints = append(h.NegativePoints, p)
}

// Hit returns the nearest non-negative intersection
func (h RayHit[T]) Hit() (T, core.Point[T], bool) {
	if len(h.Distances) == 0 {
		return 0, core.Point[T]{}, false
	}
	return h.Distances[0], h.Points[0], true
}

// Count returns the number of non-negative hits
func (h RayHit[T]) Count() int {
	return len(h.Distances)
}

// OriginInside reports whether the ray starts inside the shape
func (h RayHit[T]) OriginInside() bool {
	return len(h.Distances) > 0 && len(h.NegativeDistances) > 0
}

// Behind reports whether the shape lies entirely behind the ray origin
func (h RayHit[T]) Behind() bool {
	return len(h.Distances) == 0 && len(h.NegativeDistances) > 0
}

// Empty reports whether the ray's line misses the shape
func (h RayHit[T]) Empty() bool {
	return len(h.Distances) == 0 && len(h.NegativeDistances) == 0
}
