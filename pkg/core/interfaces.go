package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// PointLight is a single point light source
type PointLight struct {
	Position Vec3
	Color    Color
}
