package tessellate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/kernel"
	"github.com/chazu/fabgen/pkg/kernel/sdfx"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
	"github.com/chazu/fabgen/pkg/scene"
	"github.com/chazu/fabgen/pkg/tessellate"
)

// newKernel returns a fresh sdfx kernel for testing.
func newKernel() kernel.Kernel {
	return sdfx.New()
}

// makeBox creates a body-colored box part at the given center.
func makeBox(t *testing.T, w, h, d, x, y, z float64) part.Part {
	t.Helper()
	p, err := part.NewBox(geom.V(w, h, d), geom.V(x, y, z), material.Body)
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}
	return p
}

func TestSingleBox(t *testing.T) {
	k := newKernel()
	s := scene.New("EUV")
	s.Add(makeBox(t, 0.6, 0.3, 0.018, 0, 0, 0))

	meshes, err := tessellate.Tessellate(s, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}

	m := meshes[0]
	if m.IsEmpty() {
		t.Fatal("mesh should not be empty")
	}
	if m.PartName != "p00001" {
		t.Errorf("expected PartName %q, got %q", "p00001", m.PartName)
	}
	if m.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", m.TriangleCount())
	}
}

func TestMeshesFollowSceneOrder(t *testing.T) {
	k := newKernel()
	s := scene.New("CVD")
	s.Add(makeBox(t, 0.4, 0.3, 0.018, 0, 0, 0))
	cyl, err := part.NewCylinder(0.1, 0.5, geom.V(1, 0, 0), material.Trim, part.WithSegments(8))
	if err != nil {
		t.Fatal(err)
	}
	s.Add(cyl)
	s.Add(makeBox(t, 0.6, 0.3, 0.018, 2, 0, 0))

	meshes, err := tessellate.Tessellate(s, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 3 {
		t.Fatalf("expected 3 meshes, got %d", len(meshes))
	}
	for i, want := range []string{"p00001", "p00002", "p00003"} {
		if meshes[i].PartName != want {
			t.Errorf("mesh %d: PartName = %q, want %q", i, meshes[i].PartName, want)
		}
	}
	if got := meshes[1].TriangleCount(); got != 32 {
		t.Errorf("8-segment cylinder: %d triangles, want 32", got)
	}
}

func TestPartWithTransform(t *testing.T) {
	k := newKernel()
	s := scene.New("CMP")
	s.Add(makeBox(t, 1.0, 0.5, 0.1, 2.0, 1.0, 0.5))

	meshes, err := tessellate.Tessellate(s, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}

	// Transforms are baked into the vertices: the box spans
	// (1.5, 0.75, 0.45)-(2.5, 1.25, 0.55).
	min, max := meshes[0].Bounds()
	want := [2][3]float64{{1.5, 0.75, 0.45}, {2.5, 1.25, 0.55}}
	const tol = 1e-6
	for i := 0; i < 3; i++ {
		if math.Abs(float64(min[i])-want[0][i]) > tol || math.Abs(float64(max[i])-want[1][i]) > tol {
			t.Errorf("axis %d: bounds [%f, %f], want [%f, %f]", i, min[i], max[i], want[0][i], want[1][i])
		}
	}
}

func TestRotatedPart(t *testing.T) {
	k := newKernel()
	s := scene.New("SEM")
	p, err := part.NewBox(geom.V(0.02, 0.05, 0.55), geom.V(0, 0, 0), material.Dark,
		part.WithRotation(geom.Euler{Y: math.Pi / 2}))
	if err != nil {
		t.Fatal(err)
	}
	s.Add(p)

	meshes, err := tessellate.Tessellate(s, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	// A quarter turn about Y swaps the X and Z extents.
	min, max := meshes[0].Bounds()
	if dx := float64(max[0] - min[0]); math.Abs(dx-0.55) > 1e-6 {
		t.Errorf("x extent = %f, want 0.55", dx)
	}
	if dz := float64(max[2] - min[2]); math.Abs(dz-0.02) > 1e-6 {
		t.Errorf("z extent = %f, want 0.02", dz)
	}
}

func TestEmptyScene(t *testing.T) {
	meshes, err := tessellate.Tessellate(scene.New("ETCH"), newKernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected 0 meshes, got %d", len(meshes))
	}
}

func TestNilScene(t *testing.T) {
	meshes, err := tessellate.Tessellate(nil, newKernel())
	if err != nil || meshes != nil {
		t.Fatalf("Tessellate(nil) = %v, %v", meshes, err)
	}
}

func TestDegeneratePartFails(t *testing.T) {
	s := scene.New("EUV")
	s.Add(makeBox(t, 1, 1, 1, 0, 0, 0))
	// Bypass the builder guards.
	s.Add(part.Part{Geometry: part.BoxGeometry{W: 1, H: 0, D: 1}})

	_, err := tessellate.Tessellate(s, newKernel())
	if !errors.Is(err, sdfx.ErrDegenerate) {
		t.Fatalf("expected ErrDegenerate, got %v", err)
	}
}

func TestMissingGeometryFails(t *testing.T) {
	s := scene.New("EUV")
	s.Add(part.Part{})
	if _, err := tessellate.Tessellate(s, newKernel()); err == nil {
		t.Fatal("expected error for part without geometry")
	}
}
