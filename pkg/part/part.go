// Package part builds placed, materialized primitives: boxes, cylinders
// and glass panels. A Part is a value; once built it is never modified.
package part

import (
	"errors"
	"fmt"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/kernel"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/deadsy/sdfx/sdf"
)

// ErrDegenerateGeometry is returned for non-positive extents, radii or
// heights, and for cylinders with fewer than three segments.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// DefaultSegments is the cylinder tessellation used when none is given.
const DefaultSegments = 16

// Geometry is the local-space shape of a part.
type Geometry interface {
	// Solid builds the untransformed shape with k.
	Solid(k kernel.Kernel) kernel.Solid
	geometry()
}

// BoxGeometry is an axis-aligned box centered on the local origin.
type BoxGeometry struct {
	W, H, D float64
}

func (b BoxGeometry) Solid(k kernel.Kernel) kernel.Solid { return k.Box(b.W, b.H, b.D) }

func (BoxGeometry) geometry() {}

// CylinderGeometry is a faceted cylinder. Axis is the global axis the
// long side ends up on; the native kernel axis is Z.
type CylinderGeometry struct {
	Radius   float64
	Height   float64
	Axis     geom.Axis
	Segments int
}

func (c CylinderGeometry) Solid(k kernel.Kernel) kernel.Solid {
	return k.Cylinder(c.Height, c.Radius, c.Segments)
}

func (CylinderGeometry) geometry() {}

// Part is one placed, materialized primitive.
type Part struct {
	Geometry  Geometry
	Transform geom.Transform
	Material  material.Material

	// Tag is an optional in-process role marker (e.g. "lamp.green").
	// It is never written to the exported asset.
	Tag string
}

// Matrix returns the part's world matrix, including the cylinder axis remap.
func (p Part) Matrix() sdf.M44 {
	pre := sdf.Identity3d()
	if c, ok := p.Geometry.(CylinderGeometry); ok {
		pre = geom.Remap(c.Axis)
	}
	return geom.Compose(pre, p.Transform)
}

// Build returns the world-space solid for the part.
func (p Part) Build(k kernel.Kernel) kernel.Solid {
	return k.Transform(p.Geometry.Solid(k), p.Matrix())
}

// Center returns the world position of the part's local origin.
func (p Part) Center() geom.Vec3 {
	return p.Transform.Translation
}

type options struct {
	rotation geom.Euler
	finish   material.Finish
	segments int
	axis     geom.Axis
	tag      string
}

// Option customizes a builder call.
type Option func(*options)

// WithRotation rotates the part about its local origin before translation.
func WithRotation(e geom.Euler) Option {
	return func(o *options) { o.rotation = e }
}

// WithFinish overrides the default Brushed finish.
func WithFinish(f material.Finish) Option {
	return func(o *options) { o.finish = f }
}

// WithSegments sets the cylinder facet count. Small or hidden parts use
// 8; prominent rotational surfaces (domes, chucks, platens) go up to 32.
func WithSegments(n int) Option {
	return func(o *options) { o.segments = n }
}

// AlongAxis sets the cylinder's long axis (default Y, vertical).
func AlongAxis(a geom.Axis) Option {
	return func(o *options) { o.axis = a }
}

// WithTag attaches an in-process role marker.
func WithTag(tag string) Option {
	return func(o *options) { o.tag = tag }
}

func collect(opts []Option) options {
	o := options{finish: material.Brushed, segments: DefaultSegments, axis: geom.AxisY}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewBox builds a box of size (w, h, d) centered at `at`.
func NewBox(size, at geom.Vec3, color string, opts ...Option) (Part, error) {
	if !(size.X > 0 && size.Y > 0 && size.Z > 0) {
		return Part{}, fmt.Errorf("part: box %.4gx%.4gx%.4g at (%.4g, %.4g, %.4g): %w",
			size.X, size.Y, size.Z, at.X, at.Y, at.Z, ErrDegenerateGeometry)
	}
	o := collect(opts)
	mat, err := material.ResolveFinish(color, o.finish)
	if err != nil {
		return Part{}, fmt.Errorf("part: box at (%.4g, %.4g, %.4g): %w", at.X, at.Y, at.Z, err)
	}
	return Part{
		Geometry:  BoxGeometry{W: size.X, H: size.Y, D: size.Z},
		Transform: geom.Transform{Rotation: o.rotation, Translation: at},
		Material:  mat,
		Tag:       o.tag,
	}, nil
}

// NewCylinder builds a cylinder of the given radius and height centered at `at`.
func NewCylinder(radius, height float64, at geom.Vec3, color string, opts ...Option) (Part, error) {
	o := collect(opts)
	if !(radius > 0 && height > 0) || o.segments < 3 {
		return Part{}, fmt.Errorf("part: cylinder r=%.4g h=%.4g segments=%d at (%.4g, %.4g, %.4g): %w",
			radius, height, o.segments, at.X, at.Y, at.Z, ErrDegenerateGeometry)
	}
	mat, err := material.ResolveFinish(color, o.finish)
	if err != nil {
		return Part{}, fmt.Errorf("part: cylinder at (%.4g, %.4g, %.4g): %w", at.X, at.Y, at.Z, err)
	}
	return Part{
		Geometry:  CylinderGeometry{Radius: radius, Height: height, Axis: o.axis, Segments: o.segments},
		Transform: geom.Transform{Rotation: o.rotation, Translation: at},
		Material:  mat,
		Tag:       o.tag,
	}, nil
}

// NewGlassPanel builds an axis-aligned translucent panel. Panels take no
// rotation; a rotated panel has to be built from pre-rotated geometry.
func NewGlassPanel(size, at geom.Vec3) (Part, error) {
	if !(size.X > 0 && size.Y > 0 && size.Z > 0) {
		return Part{}, fmt.Errorf("part: glass panel %.4gx%.4gx%.4g: %w",
			size.X, size.Y, size.Z, ErrDegenerateGeometry)
	}
	return Part{
		Geometry:  BoxGeometry{W: size.X, H: size.Y, D: size.Z},
		Transform: geom.At(at),
		Material:  material.Glass(),
	}, nil
}
