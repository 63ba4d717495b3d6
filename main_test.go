package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-raytracer-challenge/pkg/canvas"
	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/renderer"
)

func writeSceneFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-scene.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	return path
}

func TestCreateScene(t *testing.T) {
	validFile := writeSceneFile(t, `{"name": "From File", "width": 40, "height": 30, "spheres": [{}]}`)
	brokenFile := writeSceneFile(t, `{"spheres": [{"radius": -2}]}`)

	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"transformed scene", "transformed", false},
		{"projectile scene", "projectile", false},

		// Scene files (by path)
		{"scene file path", validFile, false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"broken scene file", brokenFile, true},
		{"missing scene file", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %v", tt.sceneType, scene.Name)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.Width <= 0 || scene.Height <= 0 {
				t.Errorf("Scene size should be positive, got %dx%d", scene.Width, scene.Height)
			}
			if scene.World.NumObjects() == 0 {
				t.Errorf("Scene '%s' has no objects", tt.sceneType)
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		sceneType string
		expected  string
	}{
		{"built-in scene", "default", filepath.Join("output", "default")},
		{"scene file path", "scenes/two-spheres.json", filepath.Join("output", "two-spheres")},
		{"nested path", "a/b/my-scene.json", filepath.Join("output", "my-scene")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createOutputDir(tt.sceneType); got != tt.expected {
				t.Errorf("createOutputDir(%q) = %q, want %q", tt.sceneType, got, tt.expected)
			}
		})
	}
}

func TestSaveRenderAndPreview(t *testing.T) {
	img, err := canvas.New[float64](40, 20)
	if err != nil {
		t.Fatal(err)
	}
	img.Fill(core.NewRGB(0.2, 0.4, 0.6))
	stats := renderer.RenderStats{TotalPixels: 800, Duration: 1500 * time.Millisecond}
	dir := t.TempDir()

	for _, label := range []bool{false, true} {
		filename := filepath.Join(dir, "render.png")
		if label {
			filename = filepath.Join(dir, "render_label.bmp")
		}
		if err := saveRender(img, filename, label, stats); err != nil {
			t.Errorf("saveRender(label=%v): %v", label, err)
		}
	}

	previewFile, err := savePreview(img, filepath.Join(dir, "render.ppm"), 10)
	if err != nil {
		t.Fatalf("savePreview: %v", err)
	}
	if !strings.HasSuffix(previewFile, "render_preview.png") {
		t.Errorf("preview file = %q", previewFile)
	}
	if _, err := os.Stat(previewFile); err != nil {
		t.Errorf("preview not written: %v", err)
	}

	if got := renderLabel(40, 20, stats); got != "40x20 1.5s" {
		t.Errorf("renderLabel = %q", got)
	}
}
