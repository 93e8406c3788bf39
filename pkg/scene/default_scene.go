package scene

import (
	"github.com/df07/sdl-raytracer/pkg/core"
	"github.com/df07/sdl-raytracer/pkg/geometry"
	"github.com/df07/sdl-raytracer/pkg/renderer"
)

// defaultCameraConfig looks down +Z from 20 units behind the origin
func defaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Position:      core.NewVec3(0, 0, -20),
		Up:            core.NewVec3(0, 1, 0),
		Right:         core.NewVec3(1, 0, 0),
		FocalDistance: 10,
		Width:         64,
		Height:        48,
	}
}

// NewExampleScene creates two overlapping spheres lit from the upper left
func NewExampleScene() *Scene {
	light := core.PointLight{
		Position: core.NewVec3(-10, 10, -20),
		Color:    core.NewColor(255, 200, 255),
	}

	objects := []geometry.Object{
		geometry.NewSphere(core.NewVec3(-5, 2.5, 0), 10, core.Green),
		geometry.NewSphere(core.NewVec3(5, -2.5, 0), 10, core.Blue),
	}

	return NewScene(defaultCameraConfig(), light, objects)
}

// NewPlaneScene creates a sphere resting on a ground plane, casting a shadow
func NewPlaneScene() *Scene {
	cameraConfig := defaultCameraConfig()
	cameraConfig.Width = 80
	cameraConfig.Height = 60
	cameraConfig.Position = core.NewVec3(0, 5, -60)
	cameraConfig.FocalDistance = 60

	light := core.PointLight{
		Position: core.NewVec3(-30, 40, -30),
		Color:    core.White,
	}

	objects := []geometry.Object{
		geometry.NewPlane(core.NewVec3(0, -10, 0), core.NewVec3(0, 1, 0), core.NewColor(200, 200, 200)),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 10, core.Red),
	}

	return NewScene(cameraConfig, light, objects)
}

// builtinScenes maps built-in scene names to their constructors
var builtinScenes = map[string]func() *Scene{
	"example": NewExampleScene,
	"plane":   NewPlaneScene,
}

// NewBuiltinScene returns the named built-in scene, if it exists
func NewBuiltinScene(name string) (*Scene, bool) {
	create, ok := builtinScenes[name]
	if !ok {
		return nil, false
	}
	return create(), true
}
