package compose

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/layout"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// EUV lays out the lithography scanner: main frame, light source pod,
// illumination column, projection optics, reticle and wafer stages, the
// EFEM with its load ports, and the rear utilities.
func EUV(l layout.EUV) ([]part.Part, error) {
	var c part.Collector
	w, h, d := l.Frame[0], l.Frame[1], l.Frame[2]
	fx := l.FrameX

	// Main frame.
	c.Box(geom.V(w, h, d), geom.V(fx, h/2, 0), material.Body)
	lineZ := d/2 - 0.05
	c.Box(geom.V(w, 0.05, 0.02), geom.V(fx, h*0.7, lineZ), material.PanelLine)
	c.Box(geom.V(w, 0.05, 0.02), geom.V(fx, h*0.7, -lineZ), material.PanelLine)

	// Light source pod.
	c.Box(geom.V(3.8, 2.6, 3.0), geom.V(-6.5, 1.30, 0), material.Body)
	c.Box(geom.V(3.8, 0.15, 3.0), geom.V(-6.5, 2.68, 0), material.SteelDark)
	c.Box(geom.V(0.05, 0.42, 0.42), geom.V(-4.60, 1.60, 0), euvWindow, viewport)
	c.Box(geom.V(1.0, 0.50, 0.50), geom.V(-4.0, 1.60, 0), material.Body)
	c.Cylinder(0.08, 0.85, geom.V(-5.2, 1.60, 0), material.SteelMid, segs(8), alongX, polished)
	for _, f := range l.SourceFeet {
		c.Cylinder(0.12, 0.07, geom.V(f[0], 0.035, f[1]), material.Steel, segs(8))
	}

	// Illumination column.
	c.Box(geom.V(0.8, 1.4, 0.8), geom.V(-2.5, h+0.70, 0), material.Body)
	c.Cylinder(0.35, 0.90, geom.V(-2.5, h+1.65, 0), material.Body, segs(20))

	// Projection optics.
	c.Box(geom.V(2.8, 2.0, 2.6), geom.V(0.5, h+1.00, 0), material.Body)
	c.Cylinder(0.60, 1.80, geom.V(0.5, h+0.90, 0), material.Body, segs(24))
	c.Box(geom.V(1.0, 0.50, 1.0), geom.V(0.5, h+2.20, 0), material.SteelDark)
	for _, z := range l.OpticsRibZ {
		c.Box(geom.V(0.10, 0.30, 0.10), geom.V(0.5, h+2.00, z), material.SteelMid)
	}

	// Reticle stage and pod library.
	c.Box(geom.V(3.4, 0.70, 2.8), geom.V(0.4, h+2.65, 0), material.Body)
	c.Box(geom.V(1.8, 0.12, 1.6), geom.V(0.4, h+3.02, 0), material.SteelMid, polished)
	c.Box(geom.V(0.15, 0.15, 1.8), geom.V(0.4, h+2.95, 0), material.Steel, polished)
	c.Box(geom.V(1.4, 1.80, 1.4), geom.V(2.2, h+2.20, 0.8), material.Body)
	c.Box(geom.V(0.05, 1.40, 1.2), geom.V(2.95, h+2.20, 0.8), material.Trim)

	// Wafer stage.
	const stageX = 4.0
	c.Box(geom.V(4.2, 1.60, 3.4), geom.V(stageX, 0.80, 0), material.Body)
	c.Box(geom.V(2.4, 0.18, 2.4), geom.V(stageX, 1.69, 0), material.SteelLight, polished)
	c.Cylinder(0.16, 0.05, geom.V(stageX, 1.78, 0), material.SteelPale, segs(32), polished)
	for _, o := range l.Interferometer {
		c.Box(geom.V(0.12, 0.12, 0.12), geom.V(stageX+o[0], 1.85, o[1]), material.SteelMid, polished)
	}
	for _, r := range l.MotorRails {
		c.Box(geom.V(0.15, 0.15, 3.2), geom.V(r[0], 1.68, r[1]), material.Body)
	}

	// EFEM with its transfer robot.
	c.Box(geom.V(2.6, 2.2, 3.4), geom.V(6.9, 1.10, 0), material.Body)
	c.Box(geom.V(1.8, 1.0, 1.8), geom.V(6.9, 0.80, 0.2), material.Body)
	c.Cylinder(0.18, 0.80, geom.V(6.9, 0.60, 0), material.Robot, segs(12))
	c.Box(geom.V(0.60, 0.06, 0.08), geom.V(7.2, 0.90, 0), material.SteelMid, polished)
	c.Box(geom.V(0.40, 0.06, 0.08), geom.V(7.6, 0.90, 0), material.Steel, polished)
	c.Cylinder(0.14, 0.03, geom.V(7.9, 0.90, 0), material.SteelLight, segs(16), polished)
	loadPorts(&c, l.LoadPorts)

	// Rear vacuum pumps.
	for _, x := range l.PumpX {
		c.Cylinder(0.28, 1.40, geom.V(x, 0.70, -2.20), material.Dark, segs(12))
		c.Cylinder(0.18, 0.28, geom.V(x, 1.54, -2.20), material.SteelDark, segs(12), polished)
	}

	// Chillers.
	for _, x := range l.ChillerX {
		c.Box(geom.V(1.8, 1.90, 0.90), geom.V(x, 0.95, -2.30), material.Dark)
		for i := 0; i < l.ChillerVents; i++ {
			c.Box(geom.V(1.6, 0.04, 0.02), geom.V(x, 0.30+float64(i)*0.32, -1.88), material.DarkVent, anodized)
		}
	}

	// Gas cabinet.
	c.Box(geom.V(0.9, 2.30, 0.9), geom.V(-6.2, 1.15, -1.4), material.Body)

	// Control rack.
	c.Box(geom.V(0.85, 2.20, 0.9), geom.V(8.0, 1.10, -1.35), material.Body)
	for i := 0; i < l.RackScreens; i++ {
		c.Box(geom.V(0.72, 0.16, 0.02), geom.V(8.0, 0.28+float64(i)*0.4, -0.92), material.ScreenFace, screen)
	}

	// Cable trays.
	c.Box(geom.V(10.0, 0.14, 0.36), geom.V(fx, h+0.07, 1.60), material.Trim)
	c.Box(geom.V(10.0, 0.14, 0.36), geom.V(fx, h+0.07, -1.60), material.Trim)

	signalTower(&c, l.SignalTower)

	for _, p := range l.LevelingPads {
		c.Cylinder(0.14, 0.06, geom.V(p[0], 0.03, p[1]), material.SteelMid, segs(8), polished)
	}

	parts, err := c.Parts()
	if err != nil {
		return nil, fmt.Errorf("compose: %s: %w", NameEUV, err)
	}
	return parts, nil
}
