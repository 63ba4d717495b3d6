package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/df07/go-raytracer-challenge/pkg/canvas"
	"github.com/df07/go-raytracer-challenge/pkg/renderer"
)

// consoleBuffer is how many progress messages may queue before new ones are dropped
const consoleBuffer = 64

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string `json:"scene"`  // Scene id (e.g., "default")
	Width  int    `json:"width"`  // Image width, 0 keeps the scene's
	Height int    `json:"height"` // Image height, 0 keeps the scene's
}

// RenderResult is the payload of the final "complete" event
type RenderResult struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels int     `json:"totalPixels"`
	Hits        int     `json:"hits"`
	Rows        int     `json:"rows"`
	HitRatio    float64 `json:"hitRatio"`
}

type renderOutcome struct {
	img   *canvas.Canvas[float64]
	stats renderer.RenderStats
	err   error
}

// handleRender renders a scene and streams progress over SSE, ending with
// a "complete" event carrying the image or an "error" event
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sc, err := s.createScene(req.Scene)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Unknown scene: %v", err))
		return
	}
	if req.Width > 0 {
		sc.Width = req.Width
	}
	if req.Height > 0 {
		sc.Height = req.Height
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, consoleBuffer)
	raytracer := renderer.NewRaytracer(sc.Camera, NewWebLogger(renderID, consoleChan))
	raytracer.SetProgressRows(max(1, sc.Height/10))

	// Use request context to detect client disconnection
	ctx := r.Context()
	startTime := time.Now()
	done := make(chan renderOutcome, 1)
	go func() {
		img, stats, err := raytracer.Render(ctx, sc.World, sc.Width, sc.Height)
		done <- renderOutcome{img: img, stats: stats, err: err}
	}()

	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		case out := <-done:
			s.drainConsole(w, consoleChan)
			if out.err != nil {
				s.sendSSEError(w, fmt.Sprintf("Render error: %v", out.err))
				return
			}
			s.sendResult(w, out, time.Since(startTime))
			return
		}
	}
}

func (s *Server) drainConsole(w http.ResponseWriter, consoleChan <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		default:
			return
		}
	}
}

func (s *Server) sendResult(w http.ResponseWriter, out renderOutcome, elapsed time.Duration) {
	imageData, err := imageToBase64PNG(out.img)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	data, err := json.Marshal(RenderResult{
		ImageData: imageData,
		Width:     out.img.Width(),
		Height:    out.img.Height(),
		Stats: Stats{
			TotalPixels: out.stats.TotalPixels,
			Hits:        out.stats.Hits,
			Rows:        out.stats.Rows,
			HitRatio:    out.stats.HitRatio(),
		},
		ElapsedMs: elapsed.Milliseconds(),
	})
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode result: %v", err))
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	return req, nil
}

// setSSEHeaders sets the headers for a server-sent event stream
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// imageToBase64PNG converts a canvas to base64-encoded PNG
func imageToBase64PNG(img *canvas.Canvas[float64]) (string, error) {
	var buf bytes.Buffer
	if err := img.Encode(&buf, canvas.FormatPNG); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	s.sendSSEEvent(w, "console", string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) {
	s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}
