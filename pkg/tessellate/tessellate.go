// Package tessellate walks a scene and produces triangle meshes using a
// geometry kernel. One mesh is produced per part, in scene order.
package tessellate

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/kernel"
	"github.com/chazu/fabgen/pkg/scene"
)

// Tessellate builds every part of s with k, bakes its world transform into
// the vertices, and names each mesh after its scene id. The tessellator is
// read-only and never mutates the scene.
func Tessellate(s *scene.Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if s == nil {
		return nil, nil
	}

	nodes := s.Nodes()
	meshes := make([]*kernel.Mesh, 0, len(nodes))
	for _, n := range nodes {
		mesh, err := handlePart(k, n)
		if err != nil {
			return nil, fmt.Errorf("tessellate: %s: %w", s.Name, err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// handlePart creates world-space geometry for one node.
func handlePart(k kernel.Kernel, n scene.Node) (*kernel.Mesh, error) {
	if n.Part.Geometry == nil {
		return nil, fmt.Errorf("node %s has no geometry", n.ID)
	}

	mesh, err := k.ToMesh(n.Part.Build(k))
	if err != nil {
		return nil, fmt.Errorf("ToMesh failed for node %s: %w", n.ID, err)
	}
	if mesh.IsEmpty() {
		return nil, fmt.Errorf("node %s produced an empty mesh", n.ID)
	}

	mesh.PartName = n.ID
	return mesh, nil
}
