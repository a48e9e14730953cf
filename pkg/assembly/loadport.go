package assembly

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// Load port geometry. The cassette always sits on the table at CassetteY.
const (
	DefaultColumnWidth = 0.13
	DefaultTableWidth  = 0.50

	CassetteY  = 1.28
	frameInset = 0.128
	ledInset   = 0.060
)

var (
	frameFinish  = material.Custom(0.70, 0.30)
	columnFinish = material.Custom(0.58, 0.40)
	tableFinish  = material.Custom(0.62, 0.28)
)

// LoadPortSpec places one load port. Sizes are used as given; start from
// DefaultLoadPort for the standard ones.
type LoadPortSpec struct {
	CassetteX float64
	Z         float64
	Face      Facing

	CassetteHeight float64
	ColumnWidth    float64
	TableWidth     float64
}

// DefaultLoadPort returns a LoadPortSpec with the standard cassette height,
// column width and table width.
func DefaultLoadPort(cassetteX, z float64, face Facing) LoadPortSpec {
	return LoadPortSpec{
		CassetteX:      cassetteX,
		Z:              z,
		Face:           face,
		CassetteHeight: DefaultCassetteHeight,
		ColumnWidth:    DefaultColumnWidth,
		TableWidth:     DefaultTableWidth,
	}
}

// FrameX returns the X position of the port frame, which sits flush with
// the equipment wall behind the cassette.
func (s LoadPortSpec) FrameX() float64 {
	return s.CassetteX - s.Face.sign()*frameInset
}

// LoadPort builds a port frame, pedestal column, table slab, status LED
// and a loaded wafer cassette, in that order.
func LoadPort(spec LoadPortSpec) ([]part.Part, error) {
	if !spec.Face.valid() {
		return nil, fmt.Errorf("assembly: load port at z=%.3g: invalid facing %v", spec.Z, spec.Face)
	}
	x, z := spec.CassetteX, spec.Z
	ledX := x + spec.Face.sign()*ledInset

	var c part.Collector
	c.Box(geom.V(0.015, 0.44, 0.44), geom.V(spec.FrameX(), CassetteY, z),
		material.PortFrame, part.WithFinish(frameFinish))
	c.Box(geom.V(spec.ColumnWidth, 1.02, 0.44), geom.V(x, 0.51, z),
		material.PortColumn, part.WithFinish(columnFinish))
	c.Box(geom.V(spec.TableWidth, 0.08, 0.46), geom.V(x, 1.05, z),
		material.PortTable, part.WithFinish(tableFinish))
	c.Cylinder(0.030, 0.04, geom.V(ledX, 0.86, z), material.LEDGreen,
		part.WithSegments(8), part.AlongAxis(geom.AxisZ), part.WithFinish(material.Indicator))
	c.Extend(WaferCassette(geom.V(x, CassetteY, z), spec.Face, spec.CassetteHeight, DefaultCassetteWidth))

	parts, err := c.Parts()
	if err != nil {
		return nil, fmt.Errorf("assembly: load port at z=%.3g: %w", z, err)
	}
	return parts, nil
}
