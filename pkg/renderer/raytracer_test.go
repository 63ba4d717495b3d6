package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/geometry"
	"github.com/df07/go-raytracer-challenge/pkg/material"
	"github.com/df07/go-raytracer-challenge/pkg/world"
)

// recordingLogger collects progress messages
type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

func sphereWorld() *world.World[float64] {
	w := world.New[float64](nil)
	w.Add(geometry.NewUnitSphere[float64]())
	w.AddLight(material.NewLightOmni(core.NewPoint(-10.0, 10, -10), core.White[float64]()))
	return w
}

func TestRaytracer_Render(t *testing.T) {
	logger := &recordingLogger{}
	rt := NewRaytracer(NewDefaultCamera[float64](), logger)
	rt.SetProgressRows(10)

	img, stats, err := rt.Render(context.Background(), sphereWorld(), 21, 21)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Width() != 21 || img.Height() != 21 {
		t.Errorf("canvas size = %dx%d", img.Width(), img.Height())
	}
	if stats.TotalPixels != 441 || stats.Rows != 21 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Hits == 0 || stats.Hits == stats.TotalPixels {
		t.Errorf("expected some but not all pixels to hit, got %d", stats.Hits)
	}

	center, _ := img.At(10, 10)
	if center.R() <= 0.1 {
		t.Errorf("center pixel should be lit, got %v", center)
	}
	corner, _ := img.At(0, 0)
	if !corner.EqualsWithin(core.Black[float64](), 1e-12) {
		t.Errorf("corner pixel should be background, got %v", corner)
	}

	// rows 10, 20 and the final row
	if len(logger.messages) != 3 || !strings.HasPrefix(logger.messages[2], "Row 21/21") {
		t.Errorf("progress messages = %q", logger.messages)
	}
}

func TestRaytracer_RenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt := NewRaytracer[float64](nil, nil)
	img, stats, err := rt.Render(ctx, sphereWorld(), 8, 8)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if img == nil || stats.Rows != 0 {
		t.Errorf("cancelled render: canvas %v, rows %d", img, stats.Rows)
	}
}

func TestRaytracer_RenderInvalidSize(t *testing.T) {
	rt := NewRaytracer[float64](nil, nil)
	if _, _, err := rt.Render(context.Background(), sphereWorld(), 0, 8); err == nil {
		t.Error("expected an error for an empty canvas")
	}
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), slog.LevelInfo)
	logger.Printf("Row %d/%d\n", 3, 4)

	out := buf.String()
	if !strings.Contains(out, `msg="Row 3/4"`) {
		t.Errorf("slog output = %q", out)
	}
}
