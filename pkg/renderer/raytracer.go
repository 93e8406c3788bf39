package renderer

import (
	"math"
	"time"

	"github.com/df07/sdl-raytracer/pkg/core"
	"github.com/df07/sdl-raytracer/pkg/geometry"
)

// RenderConfig contains shading configuration
type RenderConfig struct {
	// ShadowEpsilon is how far shadow rays start from the surface, toward
	// the light, so they do not immediately re-hit the surface they leave.
	ShadowEpsilon float64
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ShadowEpsilon: 0.1,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetLight() core.PointLight
	GetObjects() []geometry.Object
}

// Raytracer shades every pixel of a scene with a single point light
type Raytracer struct {
	scene  Scene
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:  scene,
		camera: scene.GetCamera(),
		config: DefaultRenderConfig(),
		logger: logger,
	}
}

// SetRenderConfig updates the render configuration
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	rt.config = config
}

// hit is the nearest intersection found along a ray
type hit struct {
	object geometry.Object
	point  core.Vec3
}

// hitWorld returns the hit closest to the ray origin among those no farther
// than maxDist. Equidistant hits resolve to the earliest object in the scene.
func (rt *Raytracer) hitWorld(ray core.Ray, maxDist float64) (hit, bool) {
	var closest hit
	closestDist := math.Inf(1)
	hitAnything := false

	for _, object := range rt.scene.GetObjects() {
		point, isHit := object.HitTest(ray)
		if !isHit {
			continue
		}
		dist := point.Subtract(ray.Origin).Length()
		if dist > maxDist {
			continue
		}
		if dist < closestDist {
			closestDist = dist
			closest = hit{object: object, point: point}
			hitAnything = true
		}
	}

	return closest, hitAnything
}

type pixelResult int

const (
	pixelMissed pixelResult = iota
	pixelShadowed
	pixelLit
)

// shade returns the color seen along a primary ray
func (rt *Raytracer) shade(ray core.Ray) (core.Color, pixelResult) {
	h, isHit := rt.hitWorld(ray, math.MaxFloat64)
	if !isHit {
		return core.Black, pixelMissed
	}

	light := rt.scene.GetLight()
	toLight := light.Position.Subtract(h.point)
	lightDir := toLight.Normalize()

	// Cast a shadow ray toward the light, nudged off the surface
	shadowRay := core.NewRay(h.point.Add(lightDir.Multiply(rt.config.ShadowEpsilon)), toLight)
	if _, blocked := rt.hitWorld(shadowRay, toLight.Length()); blocked {
		return core.Black, pixelShadowed
	}

	// Absolute value so both faces of open surfaces receive light
	brightness := math.Abs(lightDir.Dot(h.object.Normal(h.point)))
	color := light.Color.DirectProduct(h.object.Color()).Scale(brightness)
	return color, pixelLit
}

// PixelColor returns the final color of pixel (x, y)
func (rt *Raytracer) PixelColor(x, y int) core.Color {
	color, _ := rt.shade(rt.camera.GetRay(x, y))
	return color
}

// Render shades every pixel in row-major order, top row first
func (rt *Raytracer) Render() (*Frame, RenderStats) {
	startTime := time.Now()
	config := rt.camera.Config()
	frame := NewFrame(config.Width, config.Height)
	var stats RenderStats

	for y := 0; y < config.Height; y++ {
		for x := 0; x < config.Width; x++ {
			color, result := rt.shade(rt.camera.GetRay(x, y))
			frame.Set(x, y, color)
			stats.record(result)
		}
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Rendered %dx%d in %v: %d hit (%.1f%%), %d lit, %d shadowed\n",
		config.Width, config.Height, stats.Duration,
		stats.HitPixels, 100*stats.Coverage(), stats.LitPixels, stats.ShadowedPixels)

	return frame, stats
}
