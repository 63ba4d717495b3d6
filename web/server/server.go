// Package server exposes the ray tracer over HTTP: scene listing, renders
// streamed as server-sent events, and per-pixel inspection.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/loaders"
	"github.com/df07/go-raytracer-challenge/pkg/scene"
)

// Request size limits shared by the render and inspect endpoints
const (
	minImageSize = 1
	maxImageSize = 2000
)

// Server handles web requests for the ray tracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, scenesDir: "scenes"}
}

// SetScenesDir changes where scene files are discovered
func (s *Server) SetScenesDir(dir string) {
	s.scenesDir = dir
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/scenes", s.handleScenes)
	mux.HandleFunc("GET /api/render", s.handleRender)
	mux.HandleFunc("GET /api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	core.Log().Info("starting web server", "addr", srv.Addr)
	return srv.ListenAndServe()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and discovered scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		core.Log().Warn("scene discovery failed", "dir", s.scenesDir, "err", err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scenes})
}

// createScene resolves a scene id. File scenes are only loaded when
// discovery lists them, so arbitrary paths cannot be opened.
func (s *Server) createScene(id string) (*scene.Scene, error) {
	sc, err := scene.Builtin(id)
	if err == nil || !errors.Is(err, scene.ErrUnknownScene) {
		return sc, err
	}

	files, listErr := scene.ListSceneFiles(s.scenesDir)
	if listErr != nil {
		return nil, listErr
	}
	for _, info := range files {
		if info.ID == id {
			return loaders.LoadScene(info.FilePath)
		}
	}
	return nil, err
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		core.Log().Debug("failed to write response", "err", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
