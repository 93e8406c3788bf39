package scene

import (
	"github.com/df07/sdl-raytracer/pkg/core"
	"github.com/df07/sdl-raytracer/pkg/geometry"
	"github.com/df07/sdl-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// It is built once and only read afterwards.
type Scene struct {
	Camera  *renderer.Camera
	Light   core.PointLight
	Objects []geometry.Object // Objects in the scene
}

// NewScene creates a scene and its camera
func NewScene(cameraConfig renderer.CameraConfig, light core.PointLight, objects []geometry.Object) *Scene {
	return &Scene{
		Camera:  renderer.NewCamera(cameraConfig),
		Light:   light,
		Objects: objects,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetLight returns the scene's point light
func (s *Scene) GetLight() core.PointLight {
	return s.Light
}

// GetObjects returns the objects to render
func (s *Scene) GetObjects() []geometry.Object {
	return s.Objects
}
