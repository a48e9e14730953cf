package compose

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/layout"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// CVD lays out the deposition cluster tool: a polygonal transfer hub
// ringed by process chambers, the EFEM, gas cabinet and vacuum system.
func CVD(l layout.CVD) ([]part.Part, error) {
	var c part.Collector
	r := l.HubRadius

	// Transfer hub. The segment count makes it polygonal.
	c.Cylinder(r, 1.70, geom.V(0, 0.85, 0), material.Body, segs(l.HubSides))
	c.Cylinder(r+0.10, 0.18, geom.V(0, 1.76, 0), cvdPrimary, segs(l.HubSides), polished)
	c.Cylinder(r+0.10, 0.12, geom.V(0, 0.05, 0), material.Body, segs(l.HubSides))

	for _, ch := range l.Chambers {
		x, z := ch[0], ch[1]
		c.Box(geom.V(1.3, 1.6, 1.3), geom.V(x, 0.80, z), material.Body)
		c.Box(geom.V(1.4, 0.18, 1.4), geom.V(x, 1.67, z), cvdPrimary, polished)
		c.Cylinder(0.55, 0.40, geom.V(x, 1.85, z), cvdDark, segs(20), polished)
		// RF match on the outboard side.
		c.Box(geom.V(0.40, 0.42, 0.40), geom.V(x+side(x, 0.88), 0.60, z), material.Body)
		c.Cylinder(0.09, 0.06, geom.V(x, 0.95, z+side(z, 0.67)), cvdLight, segs(12), alongZ, viewport)
		// Gate valve halfway to the hub.
		c.Box(geom.V(0.25, 0.30, 0.25), geom.V(x*0.5, 0.80, z*0.5), material.Body)
		c.Cylinder(0.07, 0.60, geom.V(x, 0.20, z+side(z, 0.62)), cvdAccent, segs(8), alongZ)
	}

	// EFEM.
	c.Box(geom.V(1.6, 2.0, 3.0), geom.V(2.8, 1.0, 0), material.Body)
	c.Box(geom.V(1.7, 0.16, 3.1), geom.V(2.8, 2.08, 0), cvdPrimary, polished)
	loadPorts(&c, l.LoadPorts)

	// Gas cabinet and its feed lines.
	c.Box(geom.V(0.85, 2.2, 1.1), geom.V(-2.5, 1.1, 0.7), material.Body)
	for i := 0; i < l.GasLines; i++ {
		c.Cylinder(0.03, 1.1, geom.V(-2.1, 1.15+float64(i)*0.18, -0.15), cvdAccent, segs(8), alongZ)
	}

	// Vacuum system.
	c.Box(geom.V(1.1, 1.6, 2.8), geom.V(-2.5, 0.8, -0.8), material.Body)
	for _, z := range l.VacuumPumpZ {
		c.Cylinder(0.28, 1.0, geom.V(-2.5, 0.5, z), cvdDark, segs(12))
	}

	signalTower(&c, l.SignalTower)

	parts, err := c.Parts()
	if err != nil {
		return nil, fmt.Errorf("compose: %s: %w", NameCVD, err)
	}
	return parts, nil
}
