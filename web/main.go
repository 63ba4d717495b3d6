package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenes := flag.String("scenes", "scenes", "Directory of JSON scene files")
	verbose := flag.Bool("verbose", false, "Log debug diagnostics")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	webServer := server.NewServer(*port)
	webServer.SetScenesDir(*scenes)

	log.Printf("Ray Tracer Challenge Web Server")
	log.Printf("Render with http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
