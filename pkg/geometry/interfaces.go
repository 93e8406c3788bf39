package geometry

import (
	"github.com/df07/sdl-raytracer/pkg/core"
)

// Object is the capability set the renderer needs from a primitive.
// The set of implementations is closed: only *Sphere and *Plane satisfy it.
type Object interface {
	// HitTest returns the nearest valid world-space hit point along ray
	HitTest(ray core.Ray) (core.Vec3, bool)
	// Normal returns the unit surface normal at a point on the surface
	Normal(point core.Vec3) core.Vec3
	// Color returns the intrinsic color of the surface
	Color() core.Color

	object()
}
