// Package projectile is a small ballistic toy used to exercise the tuple
// algebra and the canvas: a point moved by a velocity under gravity and wind.
package projectile

import (
	"github.com/df07/go-raytracer-challenge/pkg/canvas"
	"github.com/df07/go-raytracer-challenge/pkg/core"
)

// DefaultMaxSteps bounds a trajectory that never reaches the ground
const DefaultMaxSteps = 10000

// Environment holds the constant forces applied on every tick
type Environment[T core.Float] struct {
	Gravity core.Vector[T]
	Wind    core.Vector[T]
}

// Projectile is a point with a velocity
type Projectile[T core.Float] struct {
	Position core.Point[T]
	Velocity core.Vector[T]
}

// New creates a projectile at position moving with velocity
func New[T core.Float](position core.Point[T], velocity core.Vector[T]) *Projectile[T] {
	return &Projectile[T]{Position: position, Velocity: velocity}
}

// Tick moves the projectile by its current velocity, then replaces the
// velocity with extra plus the environment's gravity and wind.
// Passing the projectile's own velocity as extra accumulates the forces.
func (p *Projectile[T]) Tick(env Environment[T], extra core.Vector[T]) {
	p.Position = p.Position.Add(p.Velocity)
	p.Velocity = extra.Add(env.Gravity).Add(env.Wind)
}

// Trajectory ticks p until it drops below y = 0 or maxSteps ticks have
// run, and returns every position visited including the starting one.
// maxSteps <= 0 means DefaultMaxSteps.
func Trajectory[T core.Float](env Environment[T], p *Projectile[T], maxSteps int) []core.Point[T] {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	points := []core.Point[T]{p.Position}
	for step := 0; step < maxSteps && p.Position.Y >= 0; step++ {
		p.Tick(env, p.Velocity)
		points = append(points, p.Position)
	}
	return points
}

// Plot marks each point on c with color. x maps to the column and y to the
// row counted from the bottom edge. Points off the canvas are skipped.
// It returns how many points were drawn.
func Plot[T core.Float](c *canvas.Canvas[T], points []core.Point[T], color core.Color[T]) int {
	drawn := 0
	for _, p := range points {
		x := int(p.X)
		y := c.Height() - 1 - int(p.Y)
		if err := c.Set(x, y, color); err != nil {
			continue
		}
		drawn++
	}
	return drawn
}
