// Package sdl implements the scene description language: a small
// line-oriented format of named nodes carrying numeric values and
// optional brace-delimited child blocks.
//
//	scene {
//	    camera {
//	        position 0 0 -20
//	    }
//	    focal-distance 10
//	}
package sdl

import (
	"strconv"
	"strings"
)

// Node is one element of a parsed SDL document
type Node struct {
	Name     string
	Values   []float64
	Children []*Node
}

// NewNode creates a new node
func NewNode(name string, values ...float64) *Node {
	return &Node{Name: name, Values: values}
}

// Child returns the first direct child with the given name, or nil
func (n *Node) Child(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Get walks a whitespace-separated path of names from n, choosing the first
// matching child at each step. An empty path returns n itself.
func (n *Node) Get(path string) (*Node, error) {
	curr := n
	for _, name := range strings.Fields(path) {
		next := curr.Child(name)
		if next == nil {
			return nil, SchemaErrorf("node %q has no child named %q (path %q)", curr.Name, name, path)
		}
		curr = next
	}
	return curr, nil
}

// String renders the node and its descendants back to SDL text
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("    ", depth))
	sb.WriteString(n.Name)
	for _, v := range n.Values {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	if len(n.Children) == 0 {
		sb.WriteByte('\n')
		return
	}
	sb.WriteString(" {\n")
	for _, child := range n.Children {
		child.write(sb, depth+1)
	}
	sb.WriteString(strings.Repeat("    ", depth))
	sb.WriteString("}\n")
}
