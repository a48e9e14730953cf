// Package export encodes a scene as a binary glTF 2.0 asset. Every part
// becomes one node with one single-primitive mesh, both named after the
// part's scene id. World transforms are already baked into the vertices,
// so nodes carry no transform of their own.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/chazu/fabgen/pkg/kernel"
	"github.com/chazu/fabgen/pkg/material"
	"github.com/chazu/fabgen/pkg/scene"
	"github.com/chazu/fabgen/pkg/tessellate"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var (
	// ErrExportFailure is returned when a scene cannot be tessellated or
	// encoded.
	ErrExportFailure = errors.New("export failure")

	// ErrIOFailure is returned when an encoded asset cannot be written.
	ErrIOFailure = errors.New("io failure")
)

// Generator is written to the asset header.
const Generator = "fabgen"

// Binary tessellates s with k and returns the .glb bytes. The output is
// a pure function of the scene: the same parts always encode to the same
// bytes.
func Binary(s *scene.Scene, k kernel.Kernel) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("export: nil scene: %w", ErrExportFailure)
	}
	if errs := scene.Validate(s); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("export: %s: %s: %w", s.Name, strings.Join(msgs, "; "), ErrExportFailure)
	}

	meshes, err := tessellate.Tessellate(s, k)
	if err != nil {
		return nil, fmt.Errorf("export: %w: %w", ErrExportFailure, err)
	}

	doc, err := buildDocument(s, meshes)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("export: %s: encode: %v: %w", s.Name, err, ErrExportFailure)
	}
	return buf.Bytes(), nil
}

// buildDocument lays meshes out in scene order. meshes[i] belongs to the
// i-th scene node.
func buildDocument(s *scene.Scene, meshes []*kernel.Mesh) (*gltf.Document, error) {
	nodes := s.Nodes()
	if len(meshes) != len(nodes) {
		return nil, fmt.Errorf("export: %s: %d meshes for %d parts: %w",
			s.Name, len(meshes), len(nodes), ErrExportFailure)
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = Generator
	doc.Asset.Version = "2.0"
	doc.Scenes[0].Name = s.Name

	mats := newMaterialTable(doc)
	for i, m := range meshes {
		if m.IsEmpty() {
			return nil, fmt.Errorf("export: %s: part %s has no triangles: %w", s.Name, m.PartName, ErrExportFailure)
		}
		matIdx := mats.index(nodes[i].Part.Material)

		pos := modeler.WritePosition(doc, m.Positions())
		nrm := modeler.WriteNormal(doc, m.NormalVectors())
		ind := modeler.WriteIndices(doc, m.Indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: m.PartName,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(ind),
				Attributes: map[string]uint32{
					gltf.POSITION: pos,
					gltf.NORMAL:   nrm,
				},
				Material: gltf.Index(matIdx),
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.PartName,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc, nil
}

// materialTable deduplicates materials in first-use order.
type materialTable struct {
	doc  *gltf.Document
	seen map[material.Material]uint32
}

func newMaterialTable(doc *gltf.Document) *materialTable {
	return &materialTable{doc: doc, seen: make(map[material.Material]uint32)}
}

func (t *materialTable) index(m material.Material) uint32 {
	if i, ok := t.seen[m]; ok {
		return i
	}
	i := uint32(len(t.doc.Materials))
	t.doc.Materials = append(t.doc.Materials, toGLTF(m, i))
	t.seen[m] = i
	return i
}

func toGLTF(m material.Material, i uint32) *gltf.Material {
	var base [4]float32
	for c, v := range m.BaseColor {
		base[c] = float32(v)
	}
	out := &gltf.Material{
		Name: fmt.Sprintf("m%03d", i),
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &base,
			MetallicFactor:  gltf.Float(float32(m.Metallic)),
			RoughnessFactor: gltf.Float(float32(m.Roughness)),
		},
		DoubleSided: m.DoubleSided,
	}
	if m.AlphaMode == material.Blend {
		out.AlphaMode = gltf.AlphaBlend
	}
	return out
}
