package pipeline

import (
	"fmt"
	"strings"

	"github.com/chazu/fabgen/pkg/assembly"
	"github.com/chazu/fabgen/pkg/export"
	"github.com/chazu/fabgen/pkg/scene"
	"gopkg.in/yaml.v3"
)

// ManifestFile is written next to the assets.
const ManifestFile = "manifest.yaml"

// Manifest lists the generated assets. Renderers use it to find the
// signal-tower lamps, since the assets carry no semantic labels.
type Manifest struct {
	Generator string       `yaml:"generator"`
	Models    []ModelEntry `yaml:"models"`
}

// ModelEntry describes one asset.
type ModelEntry struct {
	Name  string `yaml:"name"`
	File  string `yaml:"file"`
	Bytes int    `yaml:"bytes"`
	Parts int    `yaml:"parts"`
	Lamps []Lamp `yaml:"lamps"`
}

// Lamp locates one signal-tower lamp by node id.
type Lamp struct {
	ID     string     `yaml:"id"`
	Role   string     `yaml:"role"`
	Center [3]float64 `yaml:"center,flow"`
}

// lamps returns the scene's lamps bottom to top.
func lamps(s *scene.Scene) []Lamp {
	var out []Lamp
	for _, n := range s.Tagged(assembly.LampTagPrefix) {
		c := n.Part.Center()
		out = append(out, Lamp{
			ID:     n.ID,
			Role:   strings.TrimPrefix(n.Part.Tag, assembly.LampTagPrefix),
			Center: [3]float64{c.X, c.Y, c.Z},
		})
	}
	return out
}

// Marshal encodes the manifest as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("pipeline: marshal manifest: %w", err)
	}
	return data, nil
}

// WriteFile writes the manifest to path atomically.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if _, err := export.WriteFile(path, data); err != nil {
		return err
	}
	return nil
}
