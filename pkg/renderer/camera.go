package renderer

import (
	"github.com/df07/sdl-raytracer/pkg/core"
)

// WorldForward is the fixed viewing axis. The camera always looks down +Z;
// its up and right vectors are recorded but do not rotate the view.
var WorldForward = core.NewVec3(0, 0, 1)

// pixelCenterOffset aligns the top-left sample with the pixel center convention
var pixelCenterOffset = core.NewVec3(0.5, -0.5, 0)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Position      core.Vec3 // Eye position
	Up            core.Vec3 // Up vector (unused by ray generation)
	Right         core.Vec3 // Right vector (unused by ray generation)
	FocalDistance float64   // Distance from the eye to the screen
	Width         int       // Screen width in pixels
	Height        int       // Screen height in pixels
}

// Camera generates primary rays through a screen of unit-sized pixels
type Camera struct {
	config  CameraConfig
	topLeft core.Vec3
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	center := config.Position.
		Add(WorldForward.Multiply(config.FocalDistance)).
		Add(pixelCenterOffset)

	topLeft := center.Add(core.NewVec3(
		-float64(config.Width)/2,
		float64(config.Height)/2,
		0,
	))

	return &Camera{config: config, topLeft: topLeft}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// PixelPoint returns the world-space point sampled for pixel (x, y),
// with x growing rightward and y growing downward.
func (c *Camera) PixelPoint(x, y int) core.Vec3 {
	return c.topLeft.Add(core.NewVec3(float64(x), -float64(y), 0))
}

// GetRay returns the primary ray for pixel (x, y). The direction is not normalized.
func (c *Camera) GetRay(x, y int) core.Ray {
	origin := c.config.Position
	return core.NewRay(origin, c.PixelPoint(x, y).Subtract(origin))
}
