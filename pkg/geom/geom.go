// Package geom holds the small amount of spatial vocabulary shared by the
// builders and the kernel: vectors, axes, rotation tuples and the single
// function that composes them into a 4x4 matrix. Matrix and vector math is
// delegated to sdfx.
package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec3 is a point or direction in meters. +X right, +Y up, +Z toward the viewer.
type Vec3 = v3.Vec

// V is shorthand for a Vec3 literal.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Axis names a global coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Euler is a rotation tuple in radians. Compose always applies it Z first,
// then Y, then X, whatever order the fields are written in.
type Euler struct {
	Z, Y, X float64
}

// IsZero reports whether the tuple is the identity rotation.
func (e Euler) IsZero() bool {
	return e.Z == 0 && e.Y == 0 && e.X == 0
}

// Matrix returns Rx * Ry * Rz.
func (e Euler) Matrix() sdf.M44 {
	m := sdf.Identity3d()
	if e.Z != 0 {
		m = sdf.RotateZ(e.Z).Mul(m)
	}
	if e.Y != 0 {
		m = sdf.RotateY(e.Y).Mul(m)
	}
	if e.X != 0 {
		m = sdf.RotateX(e.X).Mul(m)
	}
	return m
}

// Transform is a rotation followed by a translation.
type Transform struct {
	Rotation    Euler
	Translation Vec3
}

// At returns a pure translation.
func At(p Vec3) Transform {
	return Transform{Translation: p}
}

// Compose builds the world matrix for a part: pre is applied to local
// geometry first (e.g. a cylinder axis remap), then the rotation tuple in
// Z, Y, X order, then the translation. Every placed part goes through this
// function so equivalent parts can never end up with different rotation orders.
func Compose(pre sdf.M44, t Transform) sdf.M44 {
	return sdf.Translate3d(t.Translation).Mul(t.Rotation.Matrix()).Mul(pre)
}

// Remap returns the fixed rotation that turns a primitive's native long
// axis (Z) onto the requested axis.
func Remap(a Axis) sdf.M44 {
	switch a {
	case AxisY:
		return sdf.RotateX(math.Pi / 2)
	case AxisX:
		return sdf.RotateY(math.Pi / 2)
	default:
		return sdf.Identity3d()
	}
}
