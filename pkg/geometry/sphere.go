package geometry

import (
	"math"

	"github.com/df07/sdl-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Albedo core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Albedo: color,
	}
}

// HitTest returns the closest intersection strictly in front of the ray origin
func (s *Sphere) HitTest(ray core.Ray) (core.Vec3, bool) {
	// Solve with the sphere shifted to the origin
	oc := ray.Origin.Subtract(s.Center)
	d := ray.Direction

	// Quadratic equation coefficients: at² + bt + k = 0
	a := d.Dot(d)
	if a == 0 {
		return core.Vec3{}, false // degenerate ray with no direction
	}
	b := 2 * oc.Dot(d)
	k := oc.Dot(oc) - s.Radius*s.Radius

	roots, ok := solveQuadratic(a, b, k)
	if !ok {
		return core.Vec3{}, false
	}

	for _, t := range roots {
		if t > 0 {
			return ray.At(t), true
		}
	}
	return core.Vec3{}, false
}

// Normal returns the unit vector from the center to point
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Color returns the sphere's surface color
func (s *Sphere) Color() core.Color {
	return s.Albedo
}

func (s *Sphere) object() {}

// solveQuadratic returns the real roots of at² + bt + c = 0 in
// non-decreasing order. The two roots coincide for a tangent hit.
func solveQuadratic(a, b, c float64) ([2]float64, bool) {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return [2]float64{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return [2]float64{min(t1, t2), max(t1, t2)}, true
}
