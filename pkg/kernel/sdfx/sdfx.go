// Package sdfx implements the kernel.Kernel interface on top of the
// github.com/deadsy/sdfx geometry types. Primitives are built directly as
// polyhedra (sdf.Triangle3 lists) so that segment counts are exact and
// output is bit-for-bit reproducible; sdfx supplies the vector, matrix and
// triangle math.
package sdfx

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/fabgen/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// ErrDegenerate is returned by ToMesh when a solid has no area.
var ErrDegenerate = errors.New("degenerate solid")

// sdfxSolid is a closed triangle soup with outward winding.
type sdfxSolid struct {
	tris []sdf.Triangle3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	if len(s.tris) == 0 {
		return min, max
	}
	lo := v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, tri := range s.tris {
		for _, v := range tri {
			lo = v3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
			hi = v3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
		}
	}
	min = [3]float64{lo.X, lo.Y, lo.Z}
	max = [3]float64{hi.X, hi.Y, hi.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx types.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// unwrap extracts the underlying triangles from a kernel.Solid.
func unwrap(s kernel.Solid) []sdf.Triangle3 {
	return s.(*sdfxSolid).tris
}

// wrap creates a kernel.Solid from triangles.
func wrap(tris []sdf.Triangle3) kernel.Solid {
	return &sdfxSolid{tris: tris}
}

// quad appends two triangles for the counter-clockwise quad a-b-c-d.
func quad(tris []sdf.Triangle3, a, b, c, d v3.Vec) []sdf.Triangle3 {
	return append(tris, sdf.Triangle3{a, b, c}, sdf.Triangle3{a, c, d})
}

// Box creates a box with the given extents centered on the origin:
// 6 faces, 12 triangles.
func (k *SdfxKernel) Box(x, y, z float64) kernel.Solid {
	hx, hy, hz := x/2, y/2, z/2
	p := func(sx, sy, sz float64) v3.Vec { return v3.Vec{X: sx * hx, Y: sy * hy, Z: sz * hz} }

	tris := make([]sdf.Triangle3, 0, 12)
	// +x
	tris = quad(tris, p(1, -1, -1), p(1, 1, -1), p(1, 1, 1), p(1, -1, 1))
	// -x
	tris = quad(tris, p(-1, -1, -1), p(-1, -1, 1), p(-1, 1, 1), p(-1, 1, -1))
	// +y
	tris = quad(tris, p(-1, 1, -1), p(-1, 1, 1), p(1, 1, 1), p(1, 1, -1))
	// -y
	tris = quad(tris, p(-1, -1, -1), p(1, -1, -1), p(1, -1, 1), p(-1, -1, 1))
	// +z
	tris = quad(tris, p(-1, -1, 1), p(1, -1, 1), p(1, 1, 1), p(-1, 1, 1))
	// -z
	tris = quad(tris, p(-1, -1, -1), p(-1, 1, -1), p(1, 1, -1), p(1, -1, -1))
	return wrap(tris)
}

// Cylinder creates a faceted cylinder centered on the origin with its
// long axis along Z. Each segment contributes one side quad and one
// triangle to each cap: 4*segments triangles in total.
func (k *SdfxKernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	if segments < 1 {
		return wrap(nil)
	}
	hz := height / 2
	ring := make([]v3.Vec, segments+1)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = v3.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	ring[segments] = ring[0]

	top := v3.Vec{Z: hz}
	bottom := v3.Vec{Z: -hz}
	at := func(p v3.Vec, z float64) v3.Vec { return v3.Vec{X: p.X, Y: p.Y, Z: z} }

	tris := make([]sdf.Triangle3, 0, 4*segments)
	for i := 0; i < segments; i++ {
		p0, p1 := ring[i], ring[i+1]
		tris = quad(tris, at(p0, -hz), at(p1, -hz), at(p1, hz), at(p0, hz))
		tris = append(tris,
			sdf.Triangle3{top, at(p0, hz), at(p1, hz)},
			sdf.Triangle3{bottom, at(p1, -hz), at(p0, -hz)},
		)
	}
	return wrap(tris)
}

// Transform applies m to every vertex. Rigid transforms keep the winding.
func (k *SdfxKernel) Transform(s kernel.Solid, m sdf.M44) kernel.Solid {
	src := unwrap(s)
	out := make([]sdf.Triangle3, len(src))
	for i, tri := range src {
		for j := 0; j < 3; j++ {
			out[i][j] = m.MulPosition(tri[j])
		}
	}
	return wrap(out)
}

// ToMesh flattens the solid into per-face vertices with flat normals.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	triangles := unwrap(s)
	if len(triangles) == 0 {
		return nil, fmt.Errorf("sdfx: no triangles: %w", ErrDegenerate)
	}

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) || n.Length() == 0 {
			return nil, fmt.Errorf("sdfx: triangle %d has zero area: %w", i, ErrDegenerate)
		}
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
