package server

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sseEvent struct {
	event string
	data  string
}

func parseSSE(t *testing.T, body string) []sseEvent {
	t.Helper()
	var events []sseEvent
	var current sseEvent
	scanner := bufio.NewScanner(strings.NewReader(body))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current.event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current.data = strings.TrimPrefix(line, "data: ")
		case line == "":
			if current.event != "" {
				events = append(events, current)
			}
			current = sseEvent{}
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("Failed to read SSE stream: %v", err)
	}
	return events
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer(0)
	s.SetScenesDir(t.TempDir())
	return s
}

func TestServer_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("health = %d %s", rec.Code, rec.Body.String())
	}
}

func TestServer_Scenes(t *testing.T) {
	s := newTestServer(t)
	if err := os.WriteFile(filepath.Join(s.scenesDir, "ball.json"), []byte(`{"name": "Ball", "spheres": [{}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenes", nil))

	var body struct {
		Scenes []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"scenes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode scenes: %v", err)
	}
	if len(body.Scenes) != 4 {
		t.Fatalf("Expected 3 built-in scenes and 1 file, got %+v", body.Scenes)
	}
	if last := body.Scenes[3]; last.Name != "Ball" || last.Type != "file" {
		t.Errorf("file scene = %+v", last)
	}
}

func TestServer_Render(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		lastEvent  string
		width      int
		hasConsole bool
	}{
		{"default scene", "scene=default&width=20&height=10", "complete", 20, true},
		{"scene size", "scene=default", "complete", 200, true},
		{"unknown scene", "scene=cornell", "error", 0, false},
		{"bad width", "width=abc", "error", 0, false},
		{"width too large", "width=5000", "error", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?"+tt.query, nil))

			if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
				t.Errorf("Content-Type = %q", ct)
			}
			events := parseSSE(t, rec.Body.String())
			if len(events) == 0 {
				t.Fatal("Expected at least one event")
			}
			last := events[len(events)-1]
			if last.event != tt.lastEvent {
				t.Fatalf("Last event = %s (%s), want %s", last.event, last.data, tt.lastEvent)
			}

			consoles := 0
			for _, e := range events {
				if e.event == "console" {
					consoles++
				}
			}
			if tt.hasConsole != (consoles > 0) {
				t.Errorf("console events = %d", consoles)
			}

			if last.event != "complete" {
				return
			}
			var result RenderResult
			if err := json.Unmarshal([]byte(last.data), &result); err != nil {
				t.Fatalf("Failed to decode result: %v", err)
			}
			if result.Width != tt.width || result.Stats.Hits == 0 {
				t.Errorf("result = %dx%d, stats %+v", result.Width, result.Height, result.Stats)
			}
			raw, err := base64.StdEncoding.DecodeString(result.ImageData)
			if err != nil {
				t.Fatalf("Invalid base64: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(raw))
			if err != nil {
				t.Fatalf("Invalid PNG: %v", err)
			}
			if img.Bounds().Dx() != tt.width {
				t.Errorf("PNG width = %d", img.Bounds().Dx())
			}
		})
	}
}

func TestServer_Inspect(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		status   int
		hit      bool
		geometry string
	}{
		{"center of default", "scene=default&width=11&height=11&x=5&y=5", http.StatusOK, true, "sphere"},
		{"corner of default", "scene=default&width=11&height=11&x=0&y=0", http.StatusOK, false, ""},
		{"defaults to center", "", http.StatusOK, true, "sphere"},
		{"pixel out of range", "width=11&height=11&x=11&y=0", http.StatusBadRequest, false, ""},
		{"unknown scene", "scene=cornell", http.StatusBadRequest, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inspect?"+tt.query, nil))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}
			var resp InspectResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Hit != tt.hit || resp.GeometryType != tt.geometry {
				t.Errorf("response = %+v", resp)
			}
			if tt.hit {
				if resp.MaterialType != "phong" || !resp.FrontFace {
					t.Errorf("surface = %s, front %v", resp.MaterialType, resp.FrontFace)
				}
				// the purple sphere faces the camera at z = -1
				if resp.Normal[2] > -0.9 || resp.Distance < 3.9 || resp.Distance > 4.1 {
					t.Errorf("normal %v distance %v", resp.Normal, resp.Distance)
				}
			}
		})
	}
}

func TestServer_CreateSceneFromFile(t *testing.T) {
	s := newTestServer(t)
	path := filepath.Join(s.scenesDir, "pair.json")
	if err := os.WriteFile(path, []byte(`{"spheres": [{}, {"position": [2, 0, 0]}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := s.createScene(path)
	if err != nil {
		t.Fatalf("createScene: %v", err)
	}
	if sc.World.NumObjects() != 2 {
		t.Errorf("objects = %d", sc.World.NumObjects())
	}

	// files outside the scenes directory are not reachable
	outside := filepath.Join(t.TempDir(), "outside.json")
	if err := os.WriteFile(outside, []byte(`{"spheres": [{}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.createScene(outside); err == nil {
		t.Error("Expected an error for a file outside the scenes directory")
	}
}
