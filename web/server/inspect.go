package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/geometry"
	"github.com/df07/go-raytracer-challenge/pkg/material"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ObjectID     int                    `json:"objectId"`
	ClassID      int                    `json:"classId"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Color        string                 `json:"color"` // Shaded color as #rrggbb
	Properties   map[string]interface{} `json:"properties"`
}

// handleInspect casts the ray through one pixel and describes the nearest surface
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sceneID := query.Get("scene")
	if sceneID == "" {
		sceneID = "default"
	}

	sc, err := s.createScene(sceneID)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Unknown scene: %v", err))
		return
	}

	width, err := parseIntParam(query, "width", sc.Width, minImageSize, maxImageSize)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", sc.Height, minImageSize, maxImageSize)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	x, err := parseIntParam(query, "x", width/2, 0, width-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", height/2, 0, height-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ray := sc.Camera.RayForPixel(x, y, width, height)
	hit, rec, ok := sc.World.Inspect(ray)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	color, _ := sc.World.Trace(ray)
	response := InspectResponse{
		Hit:        true,
		ObjectID:   int(hit.Object.ID),
		ClassID:    int(hit.Object.Class),
		Point:      [3]float64{rec.Point.X, rec.Point.Y, rec.Point.Z},
		Normal:     [3]float64{rec.Normal.X, rec.Normal.Y, rec.Normal.Z},
		Distance:   rec.Distance,
		FrontFace:  rec.FrontFace,
		Color:      hexColor(color),
		Properties: make(map[string]interface{}),
	}

	geometryType, geometryProps := extractGeometryInfo(hit.Object.Shape)
	response.GeometryType = geometryType
	response.Properties["geometry"] = geometryProps

	materialType, materialProps := extractMaterialInfo(hit.Object.Shape.Material())
	response.MaterialType = materialType
	response.Properties["material"] = materialProps

	writeJSON(w, http.StatusOK, response)
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape[float64]) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere[float64]:
		center := geom.Center()
		properties["center"] = [3]float64{center.X, center.Y, center.Z}
		properties["radius"] = geom.Radius()
		properties["transform"] = geom.Transform().String()
		return geom.Kind().String(), properties
	default:
		return shape.Kind().String(), properties
	}
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material[float64]) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Phong[float64]:
		properties["color"] = hexColor(m.Color)
		properties["alpha"] = m.Color.A()
		for _, v := range []material.PhongValue{material.Ambient, material.Diffuse, material.Specular, material.Shininess} {
			properties[v.String()] = m.Value(v)
		}
		return "phong", properties
	case nil:
		return "none", properties
	default:
		properties["color"] = hexColor(mat.BaseColor())
		return "unknown", properties
	}
}

func hexColor(c core.Color[float64]) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.R()*255+0.5), int(c.G()*255+0.5), int(c.B()*255+0.5))
}
