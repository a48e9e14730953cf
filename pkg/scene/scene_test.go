package scene

import (
	"testing"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(t *testing.T, x float64, opts ...part.Option) part.Part {
	t.Helper()
	p, err := part.NewBox(geom.V(1, 1, 1), geom.V(x, 0, 0), material.Body, opts...)
	require.NoError(t, err)
	return p
}

func TestNewScene(t *testing.T) {
	s := New("EUV")
	assert.Equal(t, "EUV", s.Name)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Nodes())
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := New("CVD")
	for i, want := range []string{"p00001", "p00002", "p00003"} {
		id := s.Add(box(t, float64(i)))
		assert.Equal(t, want, id)
	}
	require.Equal(t, 3, s.Len())

	n, ok := s.Lookup("p00002")
	require.True(t, ok)
	assert.Equal(t, 1.0, n.Part.Center().X)

	_, ok = s.Lookup("p00004")
	assert.False(t, ok)
}

func TestIDsArePerScene(t *testing.T) {
	a := New("EUV")
	for i := 0; i < 5; i++ {
		a.Add(box(t, 0))
	}
	b := New("CVD")
	assert.Equal(t, "p00001", b.Add(box(t, 0)))
}

func TestIDsUnique(t *testing.T) {
	s := New("CMP")
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := s.Add(box(t, 0))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, "p01000", s.Nodes()[999].ID)
}

func TestFromPartsKeepsOrder(t *testing.T) {
	parts := []part.Part{box(t, 3), box(t, 1), box(t, 2)}
	s := FromParts("ETCH", parts)
	nodes := s.Nodes()
	require.Len(t, nodes, 3)
	for i, n := range nodes {
		assert.Equal(t, parts[i], n.Part)
	}
}

func TestNodesReturnsCopy(t *testing.T) {
	s := FromParts("SEM", []part.Part{box(t, 0)})
	nodes := s.Nodes()
	nodes[0].ID = "changed"
	assert.Equal(t, "p00001", s.Nodes()[0].ID)
}

func TestTagged(t *testing.T) {
	s := New("EUV")
	s.Add(box(t, 0))
	green := s.Add(box(t, 1, part.WithTag("lamp.green")))
	s.Add(box(t, 2, part.WithTag("other")))
	red := s.Add(box(t, 3, part.WithTag("lamp.red")))

	lamps := s.Tagged("lamp.")
	require.Len(t, lamps, 2)
	assert.Equal(t, green, lamps[0].ID)
	assert.Equal(t, red, lamps[1].ID)
	assert.Len(t, s.Tagged(""), 3)
}

func TestValidate(t *testing.T) {
	s := New("EUV")
	s.Add(box(t, 0))
	glass, err := part.NewGlassPanel(geom.V(1, 1, 0.02), geom.V(0, 0, 0))
	require.NoError(t, err)
	s.Add(glass)
	assert.Empty(t, Validate(s))

	bad := New("EUV")
	bad.Add(part.Part{Geometry: part.BoxGeometry{W: 1, H: 0, D: -1}})
	bad.Add(part.Part{Geometry: part.CylinderGeometry{Radius: 1, Height: 1, Segments: 2}})
	bad.Add(part.Part{})
	tinted := glass
	tinted.Material.BaseColor[0] = 0.5
	bad.Add(tinted)
	over := box(t, 0)
	over.Material.Metallic = 1.2
	bad.Add(over)

	errs := Validate(bad)
	require.Len(t, errs, 6)
	assert.Equal(t, "p00001", errs[0].NodeID)
	assert.Equal(t, "p00001", errs[1].NodeID)
	assert.Equal(t, "p00002", errs[2].NodeID)
	assert.Equal(t, "p00003", errs[3].NodeID)
	assert.Equal(t, "p00004", errs[4].NodeID)
	assert.Equal(t, "p00005", errs[5].NodeID)
	assert.Contains(t, errs[0].Error(), "height")
}
