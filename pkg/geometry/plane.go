package geometry

import (
	"math"

	"github.com/df07/sdl-raytracer/pkg/core"
)

// PlaneEpsilon is the tolerance for treating a ray as parallel to a plane
// and for treating a parallel ray's origin as lying in the plane.
const PlaneEpsilon = 1e-9

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Anchor    core.Vec3 // A point on the plane
	Direction core.Vec3 // Unit normal
	Albedo    core.Color
}

// NewPlane creates a new plane
func NewPlane(anchor, normal core.Vec3, color core.Color) *Plane {
	return &Plane{
		Anchor:    anchor,
		Direction: normal.Normalize(), // Ensure normal is normalized
		Albedo:    color,
	}
}

// HitTest returns where the ray meets the plane, if at or in front of its origin
func (p *Plane) HitTest(ray core.Ray) (core.Vec3, bool) {
	// Shift so the plane passes through the origin
	origin := ray.Origin.Subtract(p.Anchor)

	denominator := p.Direction.Dot(ray.Direction)
	distance := p.Direction.Dot(origin)

	if math.Abs(denominator) <= PlaneEpsilon {
		// Parallel: the ray either lies in the plane or never meets it
		if math.Abs(distance) <= PlaneEpsilon {
			return ray.Origin, true
		}
		return core.Vec3{}, false
	}

	t := -distance / denominator
	if t < 0 {
		return core.Vec3{}, false
	}
	return ray.At(t), true
}

// Normal returns the plane normal, which is the same everywhere
func (p *Plane) Normal(point core.Vec3) core.Vec3 {
	return p.Direction
}

// Color returns the plane's surface color
func (p *Plane) Color() core.Color {
	return p.Albedo
}

func (p *Plane) object() {}
