// Package kernel defines the abstract geometry kernel interface.
// A kernel builds convex primitives in local space, applies 4x4
// transforms to them, and extracts triangle meshes. Callers never
// depend on a backend's internal representation.
package kernel

import "github.com/deadsy/sdfx/sdf"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives, centered on the local origin.
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid // long axis along Z

	// Transform applies m to every point of s.
	Transform(s Solid, m sdf.M44) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
