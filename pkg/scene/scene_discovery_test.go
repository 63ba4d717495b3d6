package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"three-spheres", "Three Spheres"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		file        string
		content     string
		name        string
		description string
		expectError bool
	}{
		{"complete.json", `{"name": "Two Balls", "description": "A pair", "width": 10}`, "Two Balls", "A pair", false},
		{"no-header.json", `{"width": 10}`, "No Header", "", false},
		{"broken.json", `{"name": `, "Broken", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}

			info, err := ParseSceneMetadata(path)
			if (err != nil) != tc.expectError {
				t.Fatalf("error = %v, expectError %v", err, tc.expectError)
			}
			if info.Name != tc.name || info.Description != tc.description {
				t.Errorf("got %+v", info)
			}
			if info.Type != TypeFile || info.FilePath != path || info.ID != path {
				t.Errorf("file fields not set: %+v", info)
			}
		})
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.json":   `{"name": "Beta"}`,
		"a.json":   `{"name": "Alpha"}`,
		"bad.json": `not json`,
		"skip.txt": `{"name": "Ignored"}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes: %v", err)
	}
	if len(scenes) != len(builtins)+2 {
		t.Fatalf("got %d scenes: %+v", len(scenes), scenes)
	}
	for i := range builtins {
		if scenes[i].Type != TypeBuiltin {
			t.Errorf("scene %d should be built-in, got %+v", i, scenes[i])
		}
	}
	if scenes[len(builtins)].Name != "Alpha" || scenes[len(builtins)+1].Name != "Beta" {
		t.Errorf("file scenes not sorted: %+v", scenes[len(builtins):])
	}

	missing, err := ListSceneFiles(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Errorf("missing directory: %v, %v", missing, err)
	}
}
