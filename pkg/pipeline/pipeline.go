// Package pipeline generates the equipment assets: for each model it
// builds the parts, assembles a scene, encodes it and writes
// <OutputDir>/<NAME>.glb, then records everything in a manifest.
// Models run one at a time; the first failure stops the batch.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chazu/fabgen/pkg/compose"
	"github.com/chazu/fabgen/pkg/export"
	"github.com/chazu/fabgen/pkg/kernel"
	"github.com/chazu/fabgen/pkg/kernel/sdfx"
	"github.com/chazu/fabgen/pkg/scene"
	"go.uber.org/zap"
)

// DefaultOutputDir is where the CLI writes assets.
const DefaultOutputDir = "public/models"

// Config configures a Runner. Zero fields take defaults: a no-op logger,
// discarded progress output and the sdfx kernel.
type Config struct {
	OutputDir string
	Logger    *zap.Logger
	Progress  io.Writer
	Kernel    kernel.Kernel
}

// ModelError names the model that stopped the batch.
type ModelError struct {
	Model string
	Err   error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s: %v", e.Model, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// Runner generates models into one output directory.
type Runner struct {
	dir      string
	log      *zap.Logger
	progress io.Writer
	kernel   kernel.Kernel
}

// New creates a Runner from cfg.
func New(cfg Config) *Runner {
	r := &Runner{
		dir:      cfg.OutputDir,
		log:      cfg.Logger,
		progress: cfg.Progress,
		kernel:   cfg.Kernel,
	}
	if r.dir == "" {
		r.dir = DefaultOutputDir
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	if r.progress == nil {
		r.progress = io.Discard
	}
	if r.kernel == nil {
		r.kernel = sdfx.New()
	}
	return r
}

// OutputDir returns the directory assets are written to.
func (r *Runner) OutputDir() string {
	return r.dir
}

// Run generates every model in order and writes the manifest once all of
// them succeed. Files written before a failure are left in place.
func (r *Runner) Run(models []compose.Model) (*Manifest, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: create %s: %v: %w", r.dir, err, export.ErrIOFailure)
	}
	r.log.Debug("Output directory ready", zap.String("dir", r.dir))

	m := &Manifest{Generator: export.Generator}
	for _, model := range models {
		entry, err := r.generate(model)
		if err != nil {
			r.log.Warn("Model generation failed", zap.String("model", model.Name), zap.Error(err))
			return nil, &ModelError{Model: model.Name, Err: err}
		}
		m.Models = append(m.Models, entry)
		fmt.Fprintf(r.progress, "  ✓  %s   %d KB\n", entry.File, kilobytes(entry.Bytes))
	}

	if err := m.WriteFile(filepath.Join(r.dir, ManifestFile)); err != nil {
		return nil, err
	}
	return m, nil
}

// generate builds, encodes and writes one model.
func (r *Runner) generate(model compose.Model) (ModelEntry, error) {
	start := time.Now()

	// Step 1: Lay out the parts.
	parts, err := model.Build()
	if err != nil {
		return ModelEntry{}, err
	}

	// Step 2: Assemble the scene; ids start at p00001 for every model.
	s := scene.FromParts(model.Name, parts)
	r.log.Debug("Scene assembled", zap.String("model", model.Name), zap.Int("parts", s.Len()))

	// Step 3: Tessellate and encode.
	data, err := export.Binary(s, r.kernel)
	if err != nil {
		return ModelEntry{}, err
	}

	// Step 4: Replace the asset on disk.
	file := model.Name + ".glb"
	n, err := export.WriteFile(filepath.Join(r.dir, file), data)
	if err != nil {
		return ModelEntry{}, err
	}

	r.log.Debug("Model written",
		zap.String("model", model.Name),
		zap.String("file", file),
		zap.Int("bytes", n),
		zap.Duration("elapsed", time.Since(start)))

	return ModelEntry{
		Name:  model.Name,
		File:  file,
		Bytes: n,
		Parts: s.Len(),
		Lamps: lamps(s),
	}, nil
}

// kilobytes rounds n bytes to the nearest KB.
func kilobytes(n int) int {
	return (n + 512) / 1024
}
