package scene

import (
	"fmt"

	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/part"
)

// ValidationError describes one node that cannot be exported.
type ValidationError struct {
	NodeID  string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.NodeID, e.Message)
}

// Validate re-checks every node against the builder guards. Parts made by
// the part package always pass; parts assembled by hand may not.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, n := range s.nodes {
		errs = append(errs, validateGeometry(n)...)
		errs = append(errs, validateMaterial(n)...)
	}
	return errs
}

// validateGeometry checks that boxes and cylinders have positive extents
// and cylinders have at least three segments.
func validateGeometry(n Node) []ValidationError {
	var errs []ValidationError
	switch g := n.Part.Geometry.(type) {
	case part.BoxGeometry:
		for _, d := range []struct {
			axis string
			v    float64
		}{{"width", g.W}, {"height", g.H}, {"depth", g.D}} {
			if !(d.v > 0) {
				errs = append(errs, ValidationError{
					NodeID:  n.ID,
					Message: fmt.Sprintf("box %s is %.4f, must be positive", d.axis, d.v),
				})
			}
		}
	case part.CylinderGeometry:
		if !(g.Radius > 0) || !(g.Height > 0) {
			errs = append(errs, ValidationError{
				NodeID:  n.ID,
				Message: fmt.Sprintf("cylinder r=%.4f h=%.4f, both must be positive", g.Radius, g.Height),
			})
		}
		if g.Segments < 3 {
			errs = append(errs, ValidationError{
				NodeID:  n.ID,
				Message: fmt.Sprintf("cylinder has %d segments, need at least 3", g.Segments),
			})
		}
	case nil:
		errs = append(errs, ValidationError{NodeID: n.ID, Message: "part has no geometry"})
	}
	return errs
}

// validateMaterial checks the PBR factors and that only glass blends.
func validateMaterial(n Node) []ValidationError {
	m := n.Part.Material
	var errs []ValidationError
	if err := material.Custom(m.Metallic, m.Roughness).Validate(); err != nil {
		errs = append(errs, ValidationError{NodeID: n.ID, Message: err.Error()})
	}
	if m.AlphaMode == material.Blend && m != material.Glass() {
		errs = append(errs, ValidationError{NodeID: n.ID, Message: "only glass panels may use blend alpha"})
	}
	return errs
}
