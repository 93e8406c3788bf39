package sdl

import (
	"errors"
	"testing"
)

func TestNode_Get(t *testing.T) {
	root, err := Parse(`
scene {
    light {
        color 1 1 1
    }
    light {
        color 2 2 2
    }
    camera {
        position 0 0 -20
    }
}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		name     string
		path     string
		expected float64
	}{
		{"first match wins", "light color", 1},
		{"nested path", "camera position", 0},
		{"extra whitespace", "  camera \t position ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := root.Get(tt.path)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.path, err)
			}
			if node.Values[0] != tt.expected {
				t.Errorf("Get(%q).Values[0] = %v, want %v", tt.path, node.Values[0], tt.expected)
			}
		})
	}

	if node, err := root.Get(""); err != nil || node != root {
		t.Errorf("Get(\"\") = %v, %v; want root", node, err)
	}
}

func TestNode_GetMissing(t *testing.T) {
	root := &Node{Name: "scene", Children: []*Node{NewNode("camera")}}

	for _, path := range []string{"lights", "camera position"} {
		_, err := root.Get(path)
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Errorf("Get(%q) error = %v, want *SchemaError", path, err)
		}
	}
}

func TestNode_String(t *testing.T) {
	root := &Node{
		Name: "x",
		Children: []*Node{
			NewNode("y", 1, -2.5),
			{Name: "z", Children: []*Node{NewNode("w")}},
		},
	}

	expected := "x {\n    y 1 -2.5\n    z {\n        w\n    }\n}\n"
	if s := root.String(); s != expected {
		t.Errorf("String() = %q, want %q", s, expected)
	}

	// The rendered text parses back to the same tree
	reparsed, err := Parse(root.String())
	if err != nil {
		t.Fatalf("Parse(String()) error = %v", err)
	}
	if reparsed.String() != expected {
		t.Errorf("round trip = %q, want %q", reparsed.String(), expected)
	}
}
