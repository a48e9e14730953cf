package part

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/kernel/sdfx"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extents(t *testing.T, p Part) [3]float64 {
	t.Helper()
	min, max := p.Build(sdfx.New()).BoundingBox()
	return [3]float64{max[0] - min[0], max[1] - min[1], max[2] - min[2]}
}

func TestNewBoxValidExtents(t *testing.T) {
	sizes := []geom.Vec3{geom.V(1, 1, 1), geom.V(0.001, 2, 3), geom.V(8.5, 2.4, 3.4)}
	for _, s := range sizes {
		p, err := NewBox(s, geom.V(1, 2, 3), material.Body)
		require.NoError(t, err)
		assert.Equal(t, BoxGeometry{W: s.X, H: s.Y, D: s.Z}, p.Geometry)
		assert.Equal(t, geom.V(1, 2, 3), p.Center())
		assert.Equal(t, material.Brushed.Metallic, p.Material.Metallic)
	}
}

func TestNewBoxDegenerate(t *testing.T) {
	sizes := []geom.Vec3{geom.V(0, 1, 1), geom.V(1, 0, 1), geom.V(1, 1, 0), geom.V(-1, 1, 1), geom.V(1, -0.5, 1), geom.V(math.NaN(), 1, 1)}
	for _, s := range sizes {
		_, err := NewBox(s, geom.V(0, 0, 0), material.Body)
		assert.Truef(t, errors.Is(err, ErrDegenerateGeometry), "size %v: got %v", s, err)
	}
}

func TestNewBoxRejectsBadMaterial(t *testing.T) {
	_, err := NewBox(geom.V(1, 1, 1), geom.V(0, 0, 0), "#12345")
	assert.True(t, errors.Is(err, material.ErrInvalidColorFormat))

	_, err = NewBox(geom.V(1, 1, 1), geom.V(0, 0, 0), material.Body, WithFinish(material.Custom(1.5, 0.2)))
	assert.True(t, errors.Is(err, material.ErrInvalidMaterialParameter))
}

func TestNewBoxWorldPlacement(t *testing.T) {
	p, err := NewBox(geom.V(2, 1, 0.5), geom.V(10, 0, -3), material.Body)
	require.NoError(t, err)
	min, max := p.Build(sdfx.New()).BoundingBox()
	assert.InDelta(t, 9, min[0], 1e-9)
	assert.InDelta(t, 11, max[0], 1e-9)
	assert.InDelta(t, -3.25, min[2], 1e-9)
	assert.InDelta(t, -2.75, max[2], 1e-9)
}

func TestNewBoxRotationOrder(t *testing.T) {
	// A 4x1x1 bar: Z then X puts its long side on global Z.
	p, err := NewBox(geom.V(4, 1, 1), geom.V(0, 0, 0), material.Body,
		WithRotation(geom.Euler{Z: math.Pi / 2, X: math.Pi / 2}))
	require.NoError(t, err)
	e := extents(t, p)
	assert.InDelta(t, 1, e[0], 1e-9)
	assert.InDelta(t, 1, e[1], 1e-9)
	assert.InDelta(t, 4, e[2], 1e-9)
}

func TestNewCylinderAxisRemap(t *testing.T) {
	tests := []struct {
		axis geom.Axis
		long int
	}{
		{geom.AxisX, 0},
		{geom.AxisY, 1},
		{geom.AxisZ, 2},
	}
	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			p, err := NewCylinder(0.1, 2, geom.V(0, 0, 0), material.Trim, AlongAxis(tt.axis))
			require.NoError(t, err)
			e := extents(t, p)
			for i := range e {
				if i == tt.long {
					assert.InDelta(t, 2, e[i], 1e-9)
				} else {
					assert.Less(t, e[i], 0.21)
				}
			}
		})
	}
}

func TestNewCylinderDefaults(t *testing.T) {
	p, err := NewCylinder(0.2, 1, geom.V(0, 0.5, 0), material.Dark)
	require.NoError(t, err)
	c := p.Geometry.(CylinderGeometry)
	assert.Equal(t, DefaultSegments, c.Segments)
	assert.Equal(t, geom.AxisY, c.Axis)
}

func TestNewCylinderDegenerate(t *testing.T) {
	tests := []struct {
		name string
		r, h float64
		segs int
	}{
		{"zero radius", 0, 1, 16},
		{"negative height", 0.1, -1, 16},
		{"two segments", 0.1, 1, 2},
		{"NaN radius", math.NaN(), 1, 16},
		{"NaN height", 0.1, math.NaN(), 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCylinder(tt.r, tt.h, geom.V(0, 0, 0), material.Dark, WithSegments(tt.segs))
			assert.True(t, errors.Is(err, ErrDegenerateGeometry), "got %v", err)
		})
	}
	_, err := NewCylinder(0.1, 1, geom.V(0, 0, 0), material.Dark, WithSegments(3))
	assert.NoError(t, err)
}

func TestNewGlassPanel(t *testing.T) {
	p, err := NewGlassPanel(geom.V(4.44, 1.23, 0.025), geom.V(0, 2.4, 0.3))
	require.NoError(t, err)
	assert.Equal(t, material.Glass(), p.Material)
	assert.True(t, p.Transform.Rotation.IsZero())

	_, err = NewGlassPanel(geom.V(1, 0, 1), geom.V(0, 0, 0))
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	_, err = NewGlassPanel(geom.V(1, 1, math.NaN()), geom.V(0, 0, 0))
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
}

func TestCollectorKeepsOrderAndFirstError(t *testing.T) {
	var c Collector
	c.Box(geom.V(1, 1, 1), geom.V(0, 0, 0), material.Body)
	c.Cylinder(0.1, 1, geom.V(1, 0, 0), material.Trim)
	c.Glass(geom.V(1, 1, 0.01), geom.V(2, 0, 0))
	require.Equal(t, 3, c.Len())

	parts, err := c.Parts()
	require.NoError(t, err)
	assert.Equal(t, geom.V(1, 0, 0), parts[1].Center())

	c.Box(geom.V(0, 1, 1), geom.V(0, 0, 0), material.Body)
	c.Box(geom.V(1, 1, 1), geom.V(0, 0, 0), "bad")
	c.Box(geom.V(1, 1, 1), geom.V(0, 0, 0), material.Body)
	assert.Equal(t, 3, c.Len())
	assert.True(t, errors.Is(c.Err(), ErrDegenerateGeometry))

	parts, err = c.Parts()
	assert.Nil(t, parts)
	assert.Error(t, err)
}

func TestCollectorExtend(t *testing.T) {
	var c Collector
	p, err := NewBox(geom.V(1, 1, 1), geom.V(0, 0, 0), material.Body)
	require.NoError(t, err)
	c.Extend([]Part{p, p}, nil)
	c.Extend(nil, errors.New("assembly failed"))
	c.Extend([]Part{p}, nil)
	assert.Equal(t, 2, c.Len())
	assert.EqualError(t, c.Err(), "assembly failed")
}
