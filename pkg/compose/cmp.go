package compose

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/layout"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// CMP lays out the polisher: a row of platens under a glass enclosure,
// the head carousel, slurry supply, cleaning module, load station and an
// angled operator touchscreen.
func CMP(l layout.CMP) ([]part.Part, error) {
	var c part.Collector
	w, h, d := l.Frame[0], l.Frame[1], l.Frame[2]
	pz := l.PlatenZ

	// Main frame.
	c.Box(geom.V(w, h, d), geom.V(0, h/2, 0), material.Body)
	c.Box(geom.V(w, 0.16, d), geom.V(0, h+0.08, 0), cmpTop, polished)

	// Platens, each with a conditioner and a slurry nozzle.
	for _, x := range l.PlatenX {
		c.Cylinder(0.58, 0.14, geom.V(x, 1.81, pz), cmpPlaten, segs(32), polished)
		c.Cylinder(0.53, 0.06, geom.V(x, 1.87, pz), cmpPad, segs(32), pad)
		c.Box(geom.V(0.72, 0.05, 0.08), geom.V(x+0.24, 1.93, pz), cmpPrimary, polished)
		c.Cylinder(0.11, 0.06, geom.V(x+0.60, 1.93, pz), cmpDark, segs(16), polished)
		c.Box(geom.V(0.50, 0.04, 0.04), geom.V(x-0.15, 1.95, pz+0.35), cmpNozzle)
		c.Cylinder(0.03, 0.12, geom.V(x-0.38, 1.90, pz+0.40), cmpNozzleTip, segs(8), alongZ)
	}

	// Head carousel.
	c.Cylinder(0.10, 0.90, geom.V(0, 2.25, pz), cmpPrimary, segs(8))
	c.Cylinder(0.62, 0.08, geom.V(0, 2.70, pz), cmpDark, segs(24), polished)

	// Slurry supply.
	c.Box(geom.V(0.85, 1.3, 0.7), geom.V(-2.7, 0.65, 0.7), material.Body)
	for i := 0; i < l.SlurryTanks; i++ {
		c.Cylinder(0.14, 0.65, geom.V(-2.7+float64(i)*0.38-0.38, 1.60, 0.7), cmpPrimary, segs(12))
	}

	// Cleaning module.
	c.Box(geom.V(2.2, 1.55, 3.0), geom.V(3.0, 0.775, 0), material.Body)
	c.Box(geom.V(2.2, 0.15, 3.0), geom.V(3.0, 1.625, 0), cmpCleanerTop, polished)
	for _, z := range l.CleanerZ {
		c.Box(geom.V(0.65, 1.3, 0.65), geom.V(3.5, 0.75, z), material.Body)
		c.Cylinder(0.20, 0.80, geom.V(3.5, 1.40, z), cmpPrimary, segs(12))
	}

	// Load station.
	c.Box(geom.V(1.1, 1.6, 1.4), geom.V(-2.7, 0.80, -0.75), material.Body)
	loadPorts(&c, l.LoadPorts)

	// Touchscreen on its arm, yawed toward the operator.
	yaw := part.WithRotation(geom.Euler{Y: l.ScreenYaw})
	c.Box(geom.V(0.06, 0.06, 0.42), geom.V(3.0, 1.62, 1.71), cmpScreenArm)
	c.Box(geom.V(0.04, 1.2, 0.85), geom.V(3.000, 1.40, 1.90), cmpScreenFrame, yaw, anodized)
	c.Box(geom.V(0.03, 0.95, 0.70), geom.V(3.032, 1.40, 1.913), material.ScreenFace, yaw, screen)

	enclosure(&c, l.Enclosure)

	signalTower(&c, l.SignalTower)

	parts, err := c.Parts()
	if err != nil {
		return nil, fmt.Errorf("compose: %s: %w", NameCMP, err)
	}
	return parts, nil
}

// enclosure appends five glass panels (front, back, two sides, roof),
// then the four corner posts and eight edge rails.
func enclosure(c *part.Collector, e layout.Enclosure) {
	gx, t := e.HalfWidth, e.Thickness
	gw := gx * 2
	gd := e.FrontZ - e.BackZ
	zc := (e.FrontZ + e.BackZ) / 2
	yc := e.BaseY + e.Height/2
	top := e.BaseY + e.Height

	c.Glass(geom.V(gw, e.Height, t), geom.V(0, yc, e.FrontZ))
	c.Glass(geom.V(gw, e.Height, t), geom.V(0, yc, e.BackZ))
	c.Glass(geom.V(t, e.Height, gd), geom.V(-gx, yc, zc))
	c.Glass(geom.V(t, e.Height, gd), geom.V(gx, yc, zc))
	c.Glass(geom.V(gw, t, gd), geom.V(0, top, zc))

	const bar = 0.04
	for _, x := range []float64{-gx, gx} {
		for _, z := range []float64{e.FrontZ, e.BackZ} {
			c.Box(geom.V(bar, e.Height, bar), geom.V(x, yc, z), material.SteelLight, polished)
		}
	}
	for _, y := range []float64{top, e.BaseY} {
		c.Box(geom.V(gw, bar, bar), geom.V(0, y, e.FrontZ), material.SteelLight, polished)
		c.Box(geom.V(gw, bar, bar), geom.V(0, y, e.BackZ), material.SteelLight, polished)
		c.Box(geom.V(bar, bar, gd), geom.V(-gx, y, zc), material.SteelLight, polished)
		c.Box(geom.V(bar, bar, gd), geom.V(gx, y, zc), material.SteelLight, polished)
	}
}
