// Package renderer casts one ray per pixel through a pinhole camera and
// collects the shaded colors on a canvas.
package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-raytracer-challenge/pkg/canvas"
	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/world"
)

// DefaultProgressRows is how many rows pass between progress messages
const DefaultProgressRows = 16

// Raytracer renders a world row by row on the calling goroutine
type Raytracer[T core.Float] struct {
	camera       *Camera[T]
	logger       core.Logger
	progressRows int
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer[T core.Float](camera *Camera[T], logger core.Logger) *Raytracer[T] {
	if camera == nil {
		camera = NewDefaultCamera[T]()
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Raytracer[T]{
		camera:       camera,
		logger:       logger,
		progressRows: DefaultProgressRows,
	}
}

// SetProgressRows changes how often progress is logged; 0 disables it
func (rt *Raytracer[T]) SetProgressRows(rows int) {
	rt.progressRows = rows
}

// Camera returns the camera rays are generated from
func (rt *Raytracer[T]) Camera() *Camera[T] {
	return rt.camera
}

// Render shades width×height pixels. Cancellation is checked between rows;
// on cancellation the partially filled canvas is returned with ctx.Err().
func (rt *Raytracer[T]) Render(ctx context.Context, w *world.World[T], width, height int) (*canvas.Canvas[T], RenderStats, error) {
	var stats RenderStats
	img, err := canvas.New[T](width, height)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to create canvas: %w", err)
	}

	start := time.Now()
	core.Log().Info("render started", "width", width, "height", height,
		"objects", w.NumObjects(), "lights", len(w.Lights()))

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			core.Log().Warn("render cancelled", "rows", stats.Rows)
			return img, stats, err
		}

		for x := 0; x < width; x++ {
			color, hit := w.Trace(rt.camera.RayForPixel(x, y, width, height))
			if hit {
				stats.Hits++
			}
			// x and y are in range by construction
			_ = img.Set(x, y, color)
			stats.TotalPixels++
		}
		stats.Rows++

		if rt.progressRows > 0 && (stats.Rows%rt.progressRows == 0 || stats.Rows == height) {
			rt.logger.Printf("Row %d/%d (%.0f%%)\n", stats.Rows, height, 100*float64(stats.Rows)/float64(height))
		}
	}

	stats.Duration = time.Since(start)
	core.Log().Info("render finished", "pixels", stats.TotalPixels, "hits", stats.Hits,
		"duration", stats.Duration)
	return img, stats, nil
}
