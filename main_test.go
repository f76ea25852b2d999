package main

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"testing"
)

// testLogger implements core.Logger for testing by discarding all output
type testLogger struct{}

func (tl *testLogger) Printf(format string, args ...interface{}) {}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"materials scene", "materials", false},
		{"spheregrid scene", "spheregrid", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(Config{SceneType: tt.sceneType})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.Camera.ImageWidth <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", s.Camera.ImageWidth)
			}
		})
	}
}

func TestCreateScene_Overrides(t *testing.T) {
	s, err := createScene(Config{SceneType: "default", Width: 32, Samples: 3, MaxDepth: 4})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Camera.ImageWidth != 32 || s.Camera.SamplesPerPixel != 3 || s.Camera.MaxDepth != 4 {
		t.Errorf("Overrides not applied: %+v", s.Camera)
	}
}

func TestParseFlags(t *testing.T) {
	config, help := parseFlags([]string{"-scene", "materials", "-width", "64", "-workers", "2", "-seed", "9", "-output", "out.png"})
	if help {
		t.Fatal("Help should not be requested")
	}
	expected := Config{SceneType: "materials", Width: 64, Workers: 2, Seed: 9, Output: "out.png"}
	if config != expected {
		t.Errorf("Expected %+v, got %+v", expected, config)
	}
}

func TestRun_WritesPPM(t *testing.T) {
	for _, workers := range []int{1, 2} {
		path := filepath.Join(t.TempDir(), "nested", "image.ppm")
		config := Config{SceneType: "default", Width: 16, Samples: 1, MaxDepth: 3, Workers: workers, Seed: 1, Output: path}

		if err := run(context.Background(), config, &testLogger{}); err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}

		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open output: %v", err)
		}

		scanner := bufio.NewScanner(file)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		file.Close()

		// 16 wide at 16:9 is 9 rows: 3 header lines plus one line per pixel
		if len(lines) != 3+16*9 {
			t.Errorf("workers=%d: expected %d lines, got %d", workers, 3+16*9, len(lines))
		}
		if len(lines) > 1 && (lines[0] != "P3" || lines[1] != "16 9") {
			t.Errorf("workers=%d: unexpected header %v", workers, lines[:2])
		}
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"unknown scene", Config{SceneType: "nope", Output: "x.ppm"}},
		{"unsupported extension", Config{SceneType: "default", Output: "x.gif"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(context.Background(), tt.config, &testLogger{}); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
