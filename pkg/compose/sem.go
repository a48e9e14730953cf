package compose

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/layout"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// SEM lays out the electron microscope: isolated main body, the electron
// column over its sample chamber, an operator desk and the vacuum rack.
// It has no load port.
func SEM(l layout.SEM) ([]part.Part, error) {
	var c part.Collector
	w, h, d := l.Body[0], l.Body[1], l.Body[2]
	cx, cz := l.ColumnAt[0], l.ColumnAt[1]

	// Main body on isolators.
	c.Box(geom.V(w, h, d), geom.V(0, h/2, 0), material.Body)
	c.Box(geom.V(w, 0.15, d), geom.V(0, h+0.05, 0), semPrimary, polished)
	for _, iso := range l.Isolators {
		c.Cylinder(0.09, 0.10, geom.V(iso[0], 0.05, iso[1]), semPrimary, segs(8), polished)
	}

	// Electron column, gun at the top.
	c.Cylinder(0.28, 1.30, geom.V(cx, 2.55, cz), material.Body, segs(20))
	c.Cylinder(0.18, 0.42, geom.V(cx, 3.41, cz), material.Body, segs(20))
	c.Cylinder(0.12, 0.38, geom.V(cx, 3.84, cz), semGun, segs(16), polished)
	c.Cylinder(0.06, 0.10, geom.V(cx, 4.05, cz), semDeep, segs(8), polished)
	c.Box(geom.V(0.22, 0.22, 0.30), geom.V(0.12, 2.40, 0), material.Body)
	c.Cylinder(0.06, 0.04, geom.V(cx, 2.15, cz), semLight, segs(16), polished)

	// Sample chamber and air lock.
	c.Box(geom.V(0.85, 0.55, 0.85), geom.V(cx, 1.52, cz), material.Body)
	c.Box(geom.V(0.02, 0.45, 0.75), geom.V(cx+0.42, 1.52, cz), material.Trim)
	c.Box(geom.V(0.30, 0.30, 0.30), geom.V(cx+0.82, 1.60, cz), material.Body)
	c.Cylinder(0.09, 0.06, geom.V(cx+0.97, 1.60, cz), semDeep, segs(12), alongX, polished)

	// Operator desk.
	c.Box(geom.V(0.88, 1.05, 1.65), geom.V(1.10, 0.525, 0), material.Body)
	c.Box(geom.V(0.88, 0.06, 1.65), geom.V(1.10, 1.080, 0), semDark, polished)
	c.Box(geom.V(0.32, 0.05, 0.05), geom.V(1.18, 1.35, 0), material.Trim)
	c.Box(geom.V(0.05, 0.50, 0.82), geom.V(1.35, 1.36, 0), semFrame, anodized)
	c.Box(geom.V(0.03, 0.42, 0.72), geom.V(1.37, 1.36, 0), semScreen, screen)
	c.Box(geom.V(0.02, 0.05, 0.55), geom.V(1.10, 1.14, 0.06), semFrame,
		part.WithRotation(geom.Euler{X: l.KeyboardTilt}), screen)

	// Vacuum rack.
	c.Box(geom.V(0.45, 0.95, 0.55), geom.V(-1.1, 0.475, 0.55), material.Body)
	for i := 0; i < l.RackSlots; i++ {
		c.Box(geom.V(0.38, 0.16, 0.05), geom.V(-1.1, 0.20+float64(i)*0.30, 0.8), material.ScreenFace, screen)
	}

	// Turbo pump.
	c.Cylinder(0.20, 0.60, geom.V(-1.1, 0.30, -0.45), semDark, segs(12))

	signalTower(&c, l.SignalTower)

	parts, err := c.Parts()
	if err != nil {
		return nil, fmt.Errorf("compose: %s: %w", NameSEM, err)
	}
	return parts, nil
}
