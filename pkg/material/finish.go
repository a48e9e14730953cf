package material

import (
	"fmt"
	"math"
)

// Finish is a (metallic, roughness) pair. The named presets below are the
// only finishes the composers use; Custom exists for one-off tuning and is
// validated when resolved.
type Finish struct {
	Metallic  float64
	Roughness float64
	name      string
}

// Surface finish presets.
var (
	Polished  = Finish{Metallic: 0.95, Roughness: 0.08, name: "polished"}
	Brushed   = Finish{Metallic: 0.82, Roughness: 0.28, name: "brushed"}
	Anodized  = Finish{Metallic: 0.78, Roughness: 0.35, name: "anodized"}
	Painted   = Finish{Metallic: 0.55, Roughness: 0.48, name: "painted"}
	Pad       = Finish{Metallic: 0.40, Roughness: 0.70, name: "pad"}
	Viewport  = Finish{Metallic: 0.05, Roughness: 0.04, name: "viewport"}
	Indicator = Finish{Metallic: 0.02, Roughness: 0.45, name: "indicator"}
	Screen    = Finish{Metallic: 0.02, Roughness: 0.80, name: "screen"}
)

// Presets lists every named finish in a stable order.
func Presets() []Finish {
	return []Finish{Polished, Brushed, Anodized, Painted, Pad, Viewport, Indicator, Screen}
}

// Custom returns an unnamed finish.
func Custom(metallic, roughness float64) Finish {
	return Finish{Metallic: metallic, Roughness: roughness}
}

// Validate reports ErrInvalidMaterialParameter if either factor is outside [0, 1].
func (f Finish) Validate() error {
	if !unit(f.Metallic) {
		return fmt.Errorf("material: metallic %.4f outside [0,1]: %w", f.Metallic, ErrInvalidMaterialParameter)
	}
	if !unit(f.Roughness) {
		return fmt.Errorf("material: roughness %.4f outside [0,1]: %w", f.Roughness, ErrInvalidMaterialParameter)
	}
	return nil
}

func unit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func (f Finish) String() string {
	if f.name != "" {
		return f.name
	}
	return fmt.Sprintf("custom(%.2f,%.2f)", f.Metallic, f.Roughness)
}
