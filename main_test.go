package main

import (
	"bufio"
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/sdl-raytracer/pkg/scene"
	"github.com/df07/sdl-raytracer/pkg/sdl"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"example scene", "example", false},
		{"plane scene", "plane", false},

		// SDL scenes (by path)
		{"two spheres", "scenes/two-spheres.sdl", false},
		{"sphere on plane", "scenes/sphere-on-plane.sdl", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid SDL path", "scenes/nonexistent.sdl", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %v", tt.sceneType, s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if config := s.Camera.Config(); config.Width <= 0 || config.Height <= 0 {
				t.Errorf("Scene dimensions should be positive, got %dx%d", config.Width, config.Height)
			}
			if len(s.Objects) == 0 {
				t.Errorf("Scene '%s' has no objects", tt.sceneType)
			}
		})
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format, output string
		expected       string
		expectError    bool
	}{
		{"", "-", "ppm", false},
		{"", "out.ppm", "ppm", false},
		{"", "out.PNG", "png", false},
		{"png", "-", "png", false},
		{"PPM", "out.png", "ppm", false},
		{"jpeg", "out.jpg", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format+"|"+tt.output, func(t *testing.T) {
			format, err := outputFormat(tt.format, tt.output)
			if tt.expectError {
				if err == nil {
					t.Errorf("outputFormat(%q, %q) should fail", tt.format, tt.output)
				}
				return
			}
			if err != nil || format != tt.expected {
				t.Errorf("outputFormat(%q, %q) = %q, %v; want %q", tt.format, tt.output, format, err, tt.expected)
			}
		})
	}
}

const discDocument = `
scene {
    camera {
        position 0 0 -20
        up 0 1 0
        right 1 0 0
    }
    focal-distance 10
    screen {
        width 64
        height 48
    }
    lights {
        light {
            position -10 10 -20
            color 255 255 255
        }
    }
    objects {
        sphere {
            color 0 255 0
            center 0 0 0
            radius 10
        }
    }
}
`

// readPPM parses the P3 stream written by renderer.WritePPM
func readPPM(t *testing.T, data []byte) (width, height int, pixels [][3]int) {
	t.Helper()
	scanner := bufio.NewScanner(bytes.NewReader(data))

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) < 3 || lines[0] != "P3" || lines[2] != "" {
		t.Fatalf("malformed PPM header: %q", lines[:min(3, len(lines))])
	}

	var maxValue int
	if _, err := fmt.Sscanf(lines[1], "%d %d %d", &width, &height, &maxValue); err != nil || maxValue != 255 {
		t.Fatalf("malformed PPM size line %q: %v", lines[1], err)
	}
	for _, line := range lines[3:] {
		var p [3]int
		if _, err := fmt.Sscanf(line, "%d %d %d", &p[0], &p[1], &p[2]); err != nil {
			t.Fatalf("malformed PPM pixel %q: %v", line, err)
		}
		pixels = append(pixels, p)
	}
	if len(pixels) != width*height {
		t.Fatalf("PPM has %d pixels, want %d", len(pixels), width*height)
	}
	return width, height, pixels
}

func TestRun_SphereDiscPPM(t *testing.T) {
	dir := t.TempDir()
	sceneFile := filepath.Join(dir, "disc.sdl")
	if err := os.WriteFile(sceneFile, []byte(discDocument), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	output := filepath.Join(dir, "disc.ppm")

	config := Config{SceneType: sceneFile, Output: output, ShadowEpsilon: 0.1}
	if err := run(config); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	width, height, pixels := readPPM(t, data)
	if width != 64 || height != 48 {
		t.Fatalf("image is %dx%d, want 64x48", width, height)
	}

	// A non-black disc roughly centered in the image, on a black background
	var sumX, sumY, lit int
	for i, p := range pixels {
		if p == [3]int{0, 0, 0} {
			continue
		}
		lit++
		sumX += i % width
		sumY += i / width
	}
	if lit == 0 {
		t.Fatal("no lit pixels in the render")
	}
	cx, cy := float64(sumX)/float64(lit), float64(sumY)/float64(lit)
	if cx < 24 || cx > 40 || cy < 16 || cy > 32 {
		t.Errorf("lit disc centered at (%.1f, %.1f), want near (32, 24)", cx, cy)
	}
	for _, corner := range []int{0, width - 1, (height - 1) * width, width*height - 1} {
		if pixels[corner] != [3]int{0, 0, 0} {
			t.Errorf("corner pixel %d = %v, want black", corner, pixels[corner])
		}
	}
}

func TestRun_PNG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "example.png")
	config := Config{SceneType: "example", Output: output, ShadowEpsilon: 0.1}
	if err := run(config); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("PNG bounds = %v, want 64x48", img.Bounds())
	}
}

func TestRun_InvalidScene(t *testing.T) {
	dir := t.TempDir()
	sceneFile := filepath.Join(dir, "broken.sdl")
	broken := strings.Replace(discDocument, "radius 10", "radius 10 11", 1)
	if err := os.WriteFile(sceneFile, []byte(broken), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	output := filepath.Join(dir, "broken.ppm")

	if err := run(Config{SceneType: sceneFile, Output: output}); err == nil {
		t.Fatal("run() should fail for an invalid scene")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("no output should be written for an invalid scene")
	}
}

func TestListScenes(t *testing.T) {
	var buf bytes.Buffer
	if err := listScenes(&buf, "scenes"); err != nil {
		t.Fatalf("listScenes() error = %v", err)
	}

	out := buf.String()
	for _, info := range scene.ListBuiltinScenes() {
		if !strings.Contains(out, info.ID) {
			t.Errorf("listScenes() output missing built-in %q", info.ID)
		}
	}
	if !strings.Contains(out, "Two Spheres") {
		t.Errorf("listScenes() output missing scenes/two-spheres.sdl:\n%s", out)
	}
}

func TestDumpScene(t *testing.T) {
	var buf bytes.Buffer
	if err := dumpScene(&buf, "scenes/two-spheres.sdl"); err != nil {
		t.Fatalf("dumpScene() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "scene {") {
		t.Errorf("dump should start with the root node, got %q", out)
	}
	if strings.Contains(out, "//") {
		t.Errorf("dump should not contain comments, got %q", out)
	}

	// The normalized form parses back to the same tree
	reparsed, err := sdl.Parse(out)
	if err != nil {
		t.Fatalf("sdl.Parse(dump) error = %v", err)
	}
	if reparsed.String() != out {
		t.Errorf("re-dumped tree differs:\n%s\nvs\n%s", reparsed.String(), out)
	}

	if err := dumpScene(&buf, "scenes/nonexistent.sdl"); err == nil {
		t.Error("dumpScene() of a missing file should fail")
	}
}
