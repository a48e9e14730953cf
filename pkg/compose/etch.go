package compose

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/layout"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// Etch lays out the dry etch system: a square transfer module with ICP
// chambers on its corners, the EFEM, gas delivery and dry pump.
func Etch(l layout.Etch) ([]part.Part, error) {
	var c part.Collector
	w, h, d := l.Hub[0], l.Hub[1], l.Hub[2]

	// Transfer module.
	c.Box(geom.V(w, h, d), geom.V(0, h/2, 0), material.Body)
	c.Box(geom.V(w+0.1, 0.20, d+0.1), geom.V(0, h+0.10, 0), etchPrimary, polished)

	for _, ch := range l.Chambers {
		x, z := ch[0], ch[1]
		c.Box(geom.V(1.1, 1.55, 1.1), geom.V(x, 0.775, z), material.Body)
		c.Box(geom.V(1.2, 0.18, 1.2), geom.V(x, 1.640, z), etchDark, polished)
		c.Cylinder(0.50, 0.40, geom.V(x, 1.82, z), etchDeep, segs(20), polished)
		// RF match and its cable.
		rf := side(x, 0.85)
		c.Box(geom.V(0.50, 0.42, 0.50), geom.V(x+rf, 0.55, z), material.Body)
		c.Cylinder(0.04, 0.40, geom.V(x+rf*0.7, 0.50, z), etchCable, segs(8), alongX)
		c.Cylinder(0.20, 0.80, geom.V(x, 0.35, z+side(z, 0.75)), etchDark, segs(12))
		c.Cylinder(0.07, 0.05, geom.V(x+side(x, 0.57), 0.90, z), etchViewport, segs(12), alongX, viewport)
		// Gate valve toward the hub.
		c.Box(geom.V(0.22, 0.30, 0.22), geom.V(x*0.6, 0.80, z*0.6), etchDark)
	}

	// EFEM.
	c.Box(geom.V(1.5, 2.0, 2.8), geom.V(1.7, 1.0, 0), material.Body)
	c.Box(geom.V(1.6, 0.16, 2.8), geom.V(1.7, 2.08, 0), etchDark, polished)
	loadPorts(&c, l.LoadPorts)

	// Gas delivery.
	c.Box(geom.V(0.9, 2.2, 1.3), geom.V(-2.3, 1.1, 0), material.Body)
	for i := 0; i < l.GasLines; i++ {
		c.Cylinder(0.03, 1.0, geom.V(-1.9, 1.3+float64(i)*0.14, -0.05), etchPrimary, segs(8), alongZ)
	}

	// Dry pump.
	c.Box(geom.V(0.8, 1.0, 1.4), geom.V(-2.3, 0.5, -1.1), material.Body)

	signalTower(&c, l.SignalTower)

	parts, err := c.Parts()
	if err != nil {
		return nil, fmt.Errorf("compose: %s: %w", NameEtch, err)
	}
	return parts, nil
}
