package scene

import (
	"fmt"
	"strings"

	"github.com/df07/sdl-raytracer/pkg/core"
	"github.com/df07/sdl-raytracer/pkg/geometry"
	"github.com/df07/sdl-raytracer/pkg/renderer"
	"github.com/df07/sdl-raytracer/pkg/sdl"
)

// MaxPixels bounds the frame size a scene may request
const MaxPixels = 1 << 26

// Parse parses SDL text and builds a scene from it
func Parse(text string) (*Scene, error) {
	root, err := sdl.Parse(text)
	if err != nil {
		return nil, err
	}
	return FromNode(root)
}

// Load reads an SDL file and builds a scene from it
func Load(filename string) (*Scene, error) {
	root, err := sdl.LoadSDL(filename)
	if err != nil {
		return nil, err
	}
	s, err := FromNode(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// FromNode builds a scene from a parsed SDL document. The first invalid
// field aborts construction.
func FromNode(root *sdl.Node) (*Scene, error) {
	var (
		cameraConfig renderer.CameraConfig
		light        core.PointLight
		err          error
	)

	if cameraConfig.Position, err = root.GetVec3("camera position"); err != nil {
		return nil, err
	}
	if cameraConfig.Up, err = root.GetVec3("camera up"); err != nil {
		return nil, err
	}
	if cameraConfig.Right, err = root.GetVec3("camera right"); err != nil {
		return nil, err
	}
	if cameraConfig.FocalDistance, err = root.GetFloat("focal-distance"); err != nil {
		return nil, err
	}
	if cameraConfig.Width, err = screenDimension(root, "screen width"); err != nil {
		return nil, err
	}
	if cameraConfig.Height, err = screenDimension(root, "screen height"); err != nil {
		return nil, err
	}
	if pixels := uint64(cameraConfig.Width) * uint64(cameraConfig.Height); pixels > MaxPixels {
		return nil, sdl.RangeErrorf("screen %dx%d has %d pixels (maximum %d)", cameraConfig.Width, cameraConfig.Height, pixels, MaxPixels)
	}

	if light.Position, err = root.GetVec3("lights light position"); err != nil {
		return nil, err
	}
	if light.Color, err = root.GetColor("lights light color"); err != nil {
		return nil, err
	}

	objectsNode, err := root.Get("objects")
	if err != nil {
		return nil, err
	}
	objects, err := ObjectsFromNode(objectsNode)
	if err != nil {
		return nil, err
	}

	return NewScene(cameraConfig, light, objects), nil
}

func screenDimension(root *sdl.Node, path string) (int, error) {
	value, err := root.GetUint(path)
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, sdl.RangeErrorf("%s must be at least 1", path)
	}
	return int(value), nil
}

// ObjectsFromNode converts every child of node into an object, dispatching
// on the child's name. Any failing child aborts the whole list.
func ObjectsFromNode(node *sdl.Node) ([]geometry.Object, error) {
	const fail = "cannot convert to object list"
	if len(node.Values) != 0 {
		return nil, sdl.SchemaErrorf("%s: node %q has %d values (expected 0)", fail, node.Name, len(node.Values))
	}

	objects := make([]geometry.Object, 0, len(node.Children))
	for i, child := range node.Children {
		object, err := ObjectFromNode(child)
		if err != nil {
			return nil, fmt.Errorf("%s: object %d (%s): %w", fail, i, child.Name, err)
		}
		objects = append(objects, object)
	}
	return objects, nil
}

// ObjectFromNode converts a single object node according to its name
func ObjectFromNode(node *sdl.Node) (geometry.Object, error) {
	switch node.Name {
	case "sphere":
		return SphereFromNode(node)
	case "plane":
		return PlaneFromNode(node)
	default:
		return nil, sdl.SchemaErrorf("unknown object type %q (expected one of: %s)",
			node.Name, strings.Join(ObjectTypes(), ", "))
	}
}

// ObjectTypes lists the object node names ObjectFromNode understands
func ObjectTypes() []string {
	return []string{"sphere", "plane"}
}

// SphereFromNode converts a sphere node with color, center and radius children
func SphereFromNode(node *sdl.Node) (*geometry.Sphere, error) {
	const fail = "cannot convert to Sphere"
	if len(node.Values) != 0 {
		return nil, sdl.SchemaErrorf("%s: node has %d values (expected 0)", fail, len(node.Values))
	}

	color, err := node.GetColor("color")
	if err != nil {
		return nil, err
	}
	center, err := node.GetVec3("center")
	if err != nil {
		return nil, err
	}
	radius, err := node.GetFloat("radius")
	if err != nil {
		return nil, err
	}
	if radius <= 0 {
		return nil, sdl.RangeErrorf("%s: radius must be positive, got %v", fail, radius)
	}

	return geometry.NewSphere(center, radius, color), nil
}

// PlaneFromNode converts a plane node with color, anchor and normal children
func PlaneFromNode(node *sdl.Node) (*geometry.Plane, error) {
	const fail = "cannot convert to Plane"
	if len(node.Values) != 0 {
		return nil, sdl.SchemaErrorf("%s: node has %d values (expected 0)", fail, len(node.Values))
	}

	color, err := node.GetColor("color")
	if err != nil {
		return nil, err
	}
	anchor, err := node.GetVec3("anchor")
	if err != nil {
		return nil, err
	}
	normal, err := node.GetVec3("normal")
	if err != nil {
		return nil, err
	}
	if normal.IsZero() {
		return nil, sdl.RangeErrorf("%s: normal must be non-zero", fail)
	}

	return geometry.NewPlane(anchor, normal, color), nil
}
