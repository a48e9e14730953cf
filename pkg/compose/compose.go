// Package compose lays out the five equipment models. Each composer reads
// its placement table from package layout, keeps the part dimensions
// inline, and returns the parts in a fixed order so ids stay stable
// across regenerations. Composers never depend on each other.
package compose

import (
	"github.com/chazu/fabgen/pkg/assembly"
	"github.com/chazu/fabgen/pkg/geom"
	"github.com/chazu/fabgen/pkg/layout"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// Model names, in generation order.
const (
	NameEUV  = "EUV"
	NameCVD  = "CVD"
	NameCMP  = "CMP"
	NameEtch = "ETCH"
	NameSEM  = "SEM"
)

// Model is one named equipment composer bound to its layout.
type Model struct {
	Name  string
	Build func() ([]part.Part, error)
}

// Models binds every composer to its table in t, in generation order.
func Models(t layout.Tables) []Model {
	return []Model{
		{Name: NameEUV, Build: func() ([]part.Part, error) { return EUV(t.EUV) }},
		{Name: NameCVD, Build: func() ([]part.Part, error) { return CVD(t.CVD) }},
		{Name: NameCMP, Build: func() ([]part.Part, error) { return CMP(t.CMP) }},
		{Name: NameEtch, Build: func() ([]part.Part, error) { return Etch(t.Etch) }},
		{Name: NameSEM, Build: func() ([]part.Part, error) { return SEM(t.SEM) }},
	}
}

// Finish and axis shorthands. Brushed is the part default.
var (
	polished = part.WithFinish(material.Polished)
	anodized = part.WithFinish(material.Anodized)
	pad      = part.WithFinish(material.Pad)
	viewport = part.WithFinish(material.Viewport)
	screen   = part.WithFinish(material.Screen)

	alongX = part.AlongAxis(geom.AxisX)
	alongZ = part.AlongAxis(geom.AxisZ)

	segs = part.WithSegments
)

// loadPorts appends one load port per Z position in lp.
func loadPorts(c *part.Collector, lp layout.LoadPorts) {
	for _, z := range lp.Z {
		spec := assembly.DefaultLoadPort(lp.X, z, assembly.Facing(lp.Face))
		override(&spec.CassetteHeight, lp.CassetteHeight)
		override(&spec.ColumnWidth, lp.ColumnWidth)
		override(&spec.TableWidth, lp.TableWidth)
		c.Extend(assembly.LoadPort(spec))
	}
}

// signalTower appends the tower described by t.
func signalTower(c *part.Collector, t layout.Tower) {
	spec := assembly.DefaultSignalTower(t.X, t.Z, t.PoleY, t.PoleHeight, t.GreenY)
	override(&spec.PoleRadius, t.PoleRadius)
	override(&spec.LampRadius, t.LampRadius)
	override(&spec.LampHeight, t.LampHeight)
	c.Extend(assembly.SignalTower(spec))
}

// override sets *dst to *v when the table gave a value, zero included.
func override(dst, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// side returns +v for a positive coordinate and -v otherwise.
func side(coord, v float64) float64 {
	if coord > 0 {
		return v
	}
	return -v
}
