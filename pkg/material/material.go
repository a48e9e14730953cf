// Package material resolves hex color tokens and surface finishes into
// PBR material descriptors suitable for a glTF metallic-roughness pipeline.
package material

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidColorFormat is returned when a color token is not exactly
	// six hex digits with an optional leading '#'.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidMaterialParameter is returned when metallic or roughness
	// falls outside [0, 1].
	ErrInvalidMaterialParameter = errors.New("invalid material parameter")
)

// Color is a normalized RGB triple with each channel in [0, 1].
type Color struct {
	R, G, B float64
}

// ParseColor converts a token such as "#1565c0" or "1565C0" into a Color.
func ParseColor(token string) (Color, error) {
	hex := strings.TrimPrefix(token, "#")
	if len(hex) != 6 || !isHex(hex) {
		return Color{}, fmt.Errorf("material: %q: %w", token, ErrInvalidColorFormat)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("material: %q: %w", token, ErrInvalidColorFormat)
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// AlphaMode mirrors the glTF alphaMode property.
type AlphaMode int

const (
	Opaque AlphaMode = iota
	Blend
)

func (m AlphaMode) String() string {
	switch m {
	case Opaque:
		return "OPAQUE"
	case Blend:
		return "BLEND"
	default:
		return "unknown"
	}
}

// Material is a resolved physically based material.
type Material struct {
	BaseColor   [4]float64 // RGBA, each in [0,1]
	Metallic    float64
	Roughness   float64
	AlphaMode   AlphaMode
	DoubleSided bool
}

// Resolve returns an opaque material for the token using the Brushed finish.
func Resolve(token string) (Material, error) {
	return ResolveFinish(token, Brushed)
}

// ResolveFinish returns an opaque material for the token with the given finish.
// Out-of-range finishes are rejected rather than clamped.
func ResolveFinish(token string, f Finish) (Material, error) {
	if err := f.Validate(); err != nil {
		return Material{}, err
	}
	c, err := ParseColor(token)
	if err != nil {
		return Material{}, err
	}
	return Material{
		BaseColor: [4]float64{c.R, c.G, c.B, 1},
		Metallic:  f.Metallic,
		Roughness: f.Roughness,
		AlphaMode: Opaque,
	}, nil
}

// Glass returns the fixed translucent material used by enclosure panels.
// It is the only material with Blend alpha; both faces render so thin
// panels stay visible from either side.
func Glass() Material {
	return Material{
		BaseColor:   [4]float64{0.80, 0.93, 1.0, 0.18},
		Metallic:    0,
		Roughness:   0.04,
		AlphaMode:   Blend,
		DoubleSided: true,
	}
}
