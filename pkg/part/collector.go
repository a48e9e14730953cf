package part

import "github.com/chazu/fabgen/pkg/geom"

// Collector accumulates parts in order. The first builder error sticks:
// later calls are ignored and Parts reports it, so layout code can read as
// a flat list of placements.
type Collector struct {
	parts []Part
	err   error
}

// Box appends NewBox(size, at, color, opts...).
func (c *Collector) Box(size, at geom.Vec3, color string, opts ...Option) {
	if c.err != nil {
		return
	}
	c.Add(NewBox(size, at, color, opts...))
}

// Cylinder appends NewCylinder(radius, height, at, color, opts...).
func (c *Collector) Cylinder(radius, height float64, at geom.Vec3, color string, opts ...Option) {
	if c.err != nil {
		return
	}
	c.Add(NewCylinder(radius, height, at, color, opts...))
}

// Glass appends NewGlassPanel(size, at).
func (c *Collector) Glass(size, at geom.Vec3) {
	if c.err != nil {
		return
	}
	c.Add(NewGlassPanel(size, at))
}

// Add appends a single builder result.
func (c *Collector) Add(p Part, err error) {
	if c.err != nil {
		return
	}
	if err != nil {
		c.err = err
		return
	}
	c.parts = append(c.parts, p)
}

// Extend appends the result of an assembly call.
func (c *Collector) Extend(parts []Part, err error) {
	if c.err != nil {
		return
	}
	if err != nil {
		c.err = err
		return
	}
	c.parts = append(c.parts, parts...)
}

// Err returns the first error seen.
func (c *Collector) Err() error {
	return c.err
}

// Len returns the number of parts collected so far.
func (c *Collector) Len() int {
	return len(c.parts)
}

// Parts returns the collected parts, or the first error.
func (c *Collector) Parts() ([]Part, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.parts, nil
}
