// Package scene collects the parts of one equipment model under stable
// generated ids. Ids come from a counter owned by the scene, so every
// model numbers its parts from p00001 regardless of what was built before.
package scene

import (
	"fmt"
	"strings"

	"github.com/chazu/fabgen/pkg/part"
)

// Node is one part placed in a scene.
type Node struct {
	ID   string
	Part part.Part
}

// Scene is an ordered set of uniquely named parts. It is not safe for
// concurrent use; each model builds its own scene.
type Scene struct {
	Name string

	nodes   []Node
	index   map[string]int
	counter int
}

// New creates an empty scene.
func New(name string) *Scene {
	return &Scene{
		Name:  name,
		index: make(map[string]int),
	}
}

// FromParts creates a scene holding parts in order.
func FromParts(name string, parts []part.Part) *Scene {
	s := New(name)
	for _, p := range parts {
		s.Add(p)
	}
	return s
}

// Add appends p under the next id and returns that id.
func (s *Scene) Add(p part.Part) string {
	s.counter++
	id := fmt.Sprintf("p%05d", s.counter)
	s.index[id] = len(s.nodes)
	s.nodes = append(s.nodes, Node{ID: id, Part: p})
	return id
}

// Len returns the number of parts.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Nodes returns the nodes in insertion order. The slice is a copy.
func (s *Scene) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Lookup returns the node with the given id.
func (s *Scene) Lookup(id string) (Node, bool) {
	i, ok := s.index[id]
	if !ok {
		return Node{}, false
	}
	return s.nodes[i], true
}

// Tagged returns the nodes whose part tag starts with prefix, in
// insertion order.
func (s *Scene) Tagged(prefix string) []Node {
	var out []Node
	for _, n := range s.nodes {
		if n.Part.Tag != "" && strings.HasPrefix(n.Part.Tag, prefix) {
			out = append(out, n)
		}
	}
	return out
}
