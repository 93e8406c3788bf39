package renderer

import (
	"testing"

	"github.com/df07/sdl-raytracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Position:      core.NewVec3(0, 0, -20),
		Up:            core.NewVec3(0, 1, 0),
		Right:         core.NewVec3(1, 0, 0),
		FocalDistance: 10,
		Width:         64,
		Height:        48,
	}
}

func TestCamera_PixelPoint(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	tests := []struct {
		name     string
		x, y     int
		expected core.Vec3
	}{
		{"top left", 0, 0, core.NewVec3(-31.5, 23.5, -10)},
		{"top right", 63, 0, core.NewVec3(31.5, 23.5, -10)},
		{"bottom left", 0, 47, core.NewVec3(-31.5, -23.5, -10)},
		{"center", 32, 24, core.NewVec3(0.5, -0.5, -10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := camera.PixelPoint(tt.x, tt.y); p != tt.expected {
				t.Errorf("PixelPoint(%d, %d) = %v, want %v", tt.x, tt.y, p, tt.expected)
			}
		})
	}
}

func TestCamera_GetRay(t *testing.T) {
	config := testCameraConfig()
	config.Position = core.NewVec3(1, 2, 3)
	camera := NewCamera(config)

	ray := camera.GetRay(32, 24)
	if ray.Origin != config.Position {
		t.Errorf("ray origin = %v, want %v", ray.Origin, config.Position)
	}

	// Not normalized: the direction reaches exactly to the sampled screen point
	expected := core.NewVec3(0.5, -0.5, 10)
	if ray.Direction != expected {
		t.Errorf("ray direction = %v, want %v", ray.Direction, expected)
	}
}

func TestCamera_IgnoresUpAndRight(t *testing.T) {
	rotated := testCameraConfig()
	rotated.Up = core.NewVec3(1, 0, 0)
	rotated.Right = core.NewVec3(0, -1, 0)

	a := NewCamera(testCameraConfig()).GetRay(5, 7)
	b := NewCamera(rotated).GetRay(5, 7)
	if a != b {
		t.Errorf("rays differ: %v vs %v", a, b)
	}
}
