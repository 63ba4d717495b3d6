package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-raytracer-challenge/pkg/canvas"
	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/loaders"
	"github.com/df07/go-raytracer-challenge/pkg/renderer"
	"github.com/df07/go-raytracer-challenge/pkg/scene"
)

// scenesDir holds JSON scene files that can be named with -scene
const scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	configFile := flag.String("config", "", "JSON scene file (overrides -scene)")
	outFile := flag.String("out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	format := flag.String("format", "png", "Output format when -out is not set: ppm, png, bmp or tiff")
	width := flag.Int("width", 0, "Override image width")
	height := flag.Int("height", 0, "Override image height")
	preview := flag.Int("preview", 0, "Also write a preview scaled to this width")
	label := flag.Bool("label", false, "Caption the image with its size and render time")
	verbose := flag.Bool("verbose", false, "Log debug diagnostics")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	setupLogging(*verbose)

	name := *sceneType
	if *configFile != "" {
		name = *configFile
	}
	s, err := createScene(name)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		s.Width = *width
	}
	if *height > 0 {
		s.Height = *height
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Rendering %s (%dx%d)...\n", s.Name, s.Width, s.Height)
	var logger core.Logger = renderer.NewDefaultLogger()
	if *verbose {
		logger = renderer.NewSlogLogger(nil, slog.LevelInfo)
	}
	raytracer := renderer.NewRaytracer(s.Camera, logger)

	img, stats, err := raytracer.Render(ctx, s.World, s.Width, s.Height)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Render interrupted after %d of %d rows, saving partial image\n", stats.Rows, s.Height)
	}

	printSummary(stats)

	filename := *outFile
	if filename == "" {
		outputDir := createOutputDir(name)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))
	}

	if err := saveRender(img, filename, *label, stats); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)

	if *preview > 0 {
		previewFile, err := savePreview(img, filename, *preview)
		if err != nil {
			fmt.Printf("Error saving preview: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview saved as %s\n", previewFile)
	}
}

func showHelp() {
	fmt.Println("Ray Tracer Challenge")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		fmt.Printf("  (failed to list scene files: %v)\n", err)
	}
	for _, info := range scenes {
		fmt.Printf("  %-20s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// createScene resolves a built-in scene name, a scene file path, or the
// name of a file in the scenes directory
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("empty scene name: %w", scene.ErrUnknownScene)
	}
	if s := tryLoadSceneFile(name); s != nil {
		return s, nil
	}
	if strings.HasSuffix(name, ".json") {
		// surface the loader error for explicit paths
		return loaders.LoadScene(name)
	}
	return scene.Builtin(name)
}

// tryLoadSceneFile loads name as a path or as scenes/<name>.json, returning nil if neither loads
func tryLoadSceneFile(name string) *scene.Scene {
	candidates := []string{filepath.Join(scenesDir, name+".json")}
	if strings.HasSuffix(name, ".json") {
		candidates = []string{name}
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		s, err := loaders.LoadScene(path)
		if err != nil {
			core.Log().Warn("failed to load scene file", "path", path, "err", err)
			continue
		}
		return s
	}
	return nil
}

// createOutputDir returns output/<scene> with scene file paths reduced to their base name
func createOutputDir(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), ".json")
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "scene"
	}
	return filepath.Join("output", base)
}

func saveRender(img *canvas.Canvas[float64], filename string, label bool, stats renderer.RenderStats) error {
	if !label {
		return img.Save(filename)
	}
	rgba := img.ToImage()
	canvas.Label(rgba, renderLabel(img.Width(), img.Height(), stats), color.White)
	return canvas.SaveImage(filename, rgba)
}

func renderLabel(width, height int, stats renderer.RenderStats) string {
	return fmt.Sprintf("%dx%d %s", width, height, stats.Duration.Round(time.Millisecond))
}

// savePreview writes a copy scaled to width next to filename as <name>_preview.png
func savePreview(img *canvas.Canvas[float64], filename string, width int) (string, error) {
	height := max(1, width*img.Height()/img.Width())
	scaled, err := img.Scaled(width, height)
	if err != nil {
		return "", err
	}
	previewFile := strings.TrimSuffix(filename, filepath.Ext(filename)) + "_preview.png"
	return previewFile, canvas.SaveImage(previewFile, scaled)
}

func printSummary(stats renderer.RenderStats) {
	p := message.NewPrinter(language.English)
	p.Printf("Render completed in %v\n", stats.Duration)
	p.Printf("Pixels: %d (%d hits, %.1f%%)\n", stats.TotalPixels, stats.Hits, 100*stats.HitRatio())
	p.Printf("Throughput: %.0f pixels/s\n", stats.PixelsPerSecond())
}
