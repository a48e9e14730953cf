package assembly

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// Lamp tags, bottom to top. Renderers find lamps through the ids the
// pipeline records for these tags.
const (
	LampTagPrefix = "lamp."
	TagLampGreen  = LampTagPrefix + "green"
	TagLampYellow = LampTagPrefix + "yellow"
	TagLampRed    = LampTagPrefix + "red"
)

// LampPitch is the vertical distance between lamp centers.
const LampPitch = 0.15

const (
	DefaultPoleRadius = 0.05
	DefaultLampRadius = 0.08
	DefaultLampHeight = 0.12

	towerSegments = 8
)

// SignalTowerSpec places a signal tower.
type SignalTowerSpec struct {
	X, Z       float64
	PoleY      float64
	PoleHeight float64
	GreenY     float64

	PoleRadius float64
	LampRadius float64
	LampHeight float64
}

// DefaultSignalTower returns a SignalTowerSpec with the standard pole
// radius and lamp size.
func DefaultSignalTower(x, z, poleY, poleHeight, greenY float64) SignalTowerSpec {
	return SignalTowerSpec{
		X:          x,
		Z:          z,
		PoleY:      poleY,
		PoleHeight: poleHeight,
		GreenY:     greenY,
		PoleRadius: DefaultPoleRadius,
		LampRadius: DefaultLampRadius,
		LampHeight: DefaultLampHeight,
	}
}

// SignalTower builds a pole and three lamps stacked green, yellow, red.
// Lamps are always emitted in the off color; lit state belongs to the
// renderer.
func SignalTower(spec SignalTowerSpec) ([]part.Part, error) {
	var c part.Collector
	c.Cylinder(spec.PoleRadius, spec.PoleHeight, geom.V(spec.X, spec.PoleY, spec.Z), material.Trim,
		part.WithSegments(towerSegments))
	for i, tag := range []string{TagLampGreen, TagLampYellow, TagLampRed} {
		at := geom.V(spec.X, spec.GreenY+float64(i)*LampPitch, spec.Z)
		c.Cylinder(spec.LampRadius, spec.LampHeight, at, material.LampOff,
			part.WithSegments(towerSegments), part.WithFinish(material.Indicator), part.WithTag(tag))
	}

	parts, err := c.Parts()
	if err != nil {
		return nil, fmt.Errorf("assembly: signal tower at (%.3g, %.3g): %w", spec.X, spec.Z, err)
	}
	return parts, nil
}
