package sdl

import (
	"math"

	"github.com/df07/sdl-raytracer/pkg/core"
)

// expectShape checks that n is a leaf carrying exactly wantValues values
func (n *Node) expectShape(target string, wantValues int) error {
	if len(n.Children) != 0 {
		return SchemaErrorf("cannot convert to %s: node %q has %d children (expected 0)",
			target, n.Name, len(n.Children))
	}
	if len(n.Values) != wantValues {
		return SchemaErrorf("cannot convert to %s: node %q has %d values (expected %d)",
			target, n.Name, len(n.Values), wantValues)
	}
	return nil
}

// Float converts a leaf node with exactly one value
func (n *Node) Float() (float64, error) {
	if err := n.expectShape("float64", 1); err != nil {
		return 0, err
	}
	return n.Values[0], nil
}

// Uint converts a leaf node with exactly one integral value in the uint32 range
func (n *Node) Uint() (uint32, error) {
	if err := n.expectShape("uint32", 1); err != nil {
		return 0, err
	}
	value := n.Values[0]
	if value != math.Trunc(value) {
		return 0, RangeErrorf("cannot convert to uint32: node %q value has fractional component: %v", n.Name, value)
	}
	if value < 0 || value > math.MaxUint32 {
		return 0, RangeErrorf("cannot convert to uint32: node %q value out of range: %v", n.Name, value)
	}
	return uint32(value), nil
}

// Vec3 converts a leaf node with exactly three values, mapped to X, Y and Z
func (n *Node) Vec3() (core.Vec3, error) {
	if err := n.expectShape("Vec3", 3); err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(n.Values[0], n.Values[1], n.Values[2]), nil
}

// Color converts a leaf node with exactly three integral values in [0, 255]
func (n *Node) Color() (core.Color, error) {
	if err := n.expectShape("Color", 3); err != nil {
		return core.Color{}, err
	}
	var channels [3]uint8
	for i, value := range n.Values {
		if value != math.Trunc(value) {
			return core.Color{}, RangeErrorf("cannot convert to Color: node %q has fractional value %v", n.Name, value)
		}
		if value < 0 || value > 255 {
			return core.Color{}, RangeErrorf("cannot convert to Color: node %q value out of range 0-255: %v", n.Name, value)
		}
		channels[i] = uint8(value)
	}
	return core.NewColor(channels[0], channels[1], channels[2]), nil
}

// GetFloat looks up path and converts the result with Float
func (n *Node) GetFloat(path string) (float64, error) {
	node, err := n.Get(path)
	if err != nil {
		return 0, err
	}
	return node.Float()
}

// GetUint looks up path and converts the result with Uint
func (n *Node) GetUint(path string) (uint32, error) {
	node, err := n.Get(path)
	if err != nil {
		return 0, err
	}
	return node.Uint()
}

// GetVec3 looks up path and converts the result with Vec3
func (n *Node) GetVec3(path string) (core.Vec3, error) {
	node, err := n.Get(path)
	if err != nil {
		return core.Vec3{}, err
	}
	return node.Vec3()
}

// GetColor looks up path and converts the result with Color
func (n *Node) GetColor(path string) (core.Color, error) {
	node, err := n.Get(path)
	if err != nil {
		return core.Color{}, err
	}
	return node.Color()
}
