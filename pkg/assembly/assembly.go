// Package assembly builds the sub-assemblies shared between equipment
// models: the wafer cassette, the load port that carries it, and the
// three-lamp signal tower. Every function is pure and returns parts in a
// fixed order.
package assembly

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// Facing selects which X face of an assembly carries its door.
type Facing int

const (
	FacePosX Facing = 1
	FaceNegX Facing = -1
)

func (f Facing) String() string {
	switch f {
	case FacePosX:
		return "+x"
	case FaceNegX:
		return "-x"
	}
	return fmt.Sprintf("Facing(%d)", int(f))
}

func (f Facing) valid() bool { return f == FacePosX || f == FaceNegX }

func (f Facing) sign() float64 { return float64(f) }

// Wafer cassette dimensions (300 mm front-opening pod).
const (
	CassetteDepth         = 0.26
	DefaultCassetteHeight = 0.38
	DefaultCassetteWidth  = 0.40
)

var (
	shellFinish     = material.Custom(0.05, 0.60)
	doorFinish      = material.Custom(0.05, 0.55)
	recessFinish    = material.Custom(0.55, 0.40)
	handleFinish    = material.Custom(0.85, 0.28)
	labelFinish     = material.Custom(0.02, 0.80)
	indicatorFinish = material.Custom(0.02, 0.40)
)

// WaferCassette builds a cassette centered at center with its door on the
// face side. Height runs along Y and width along Z; depth is fixed.
//
// Parts, in order: shell, door, door recess, handle bar, two handle stubs,
// label, latch indicator.
func WaferCassette(center geom.Vec3, face Facing, height, width float64) ([]part.Part, error) {
	if !face.valid() {
		return nil, fmt.Errorf("assembly: wafer cassette: invalid facing %v", face)
	}
	s := face.sign()
	x, y, z := center.X, center.Y, center.Z
	doorX := x + s*(CassetteDepth/2+0.005)

	var c part.Collector
	c.Box(geom.V(CassetteDepth, height, width), center,
		material.CassetteShell, part.WithFinish(shellFinish))
	c.Box(geom.V(0.012, height*0.86, width*0.82), geom.V(doorX, y, z),
		material.CassetteDoor, part.WithFinish(doorFinish))
	c.Box(geom.V(0.006, height*0.90, width*0.88), geom.V(doorX-s*0.004, y, z),
		material.CassetteRecess, part.WithFinish(recessFinish))
	c.Box(geom.V(CassetteDepth*0.32, 0.048, width*0.50), geom.V(x, y+height/2+0.024, z),
		material.CassetteHandle, part.WithFinish(handleFinish))
	for _, dz := range []float64{-width * 0.14, width * 0.14} {
		c.Box(geom.V(CassetteDepth*0.10, 0.030, 0.018), geom.V(x, y+height/2+0.005, z+dz),
			material.CassetteHandle, part.WithFinish(handleFinish))
	}
	c.Box(geom.V(0.007, height*0.22, width*0.44), geom.V(doorX+s*0.004, y+height*0.10, z),
		material.CassetteLabel, part.WithFinish(labelFinish))
	c.Box(geom.V(0.007, 0.030, 0.030), geom.V(doorX+s*0.004, y-height*0.28, z),
		material.LEDGreen, part.WithFinish(indicatorFinish))

	parts, err := c.Parts()
	if err != nil {
		return nil, fmt.Errorf("assembly: wafer cassette: %w", err)
	}
	return parts, nil
}
